package validator

import (
	"time"

	"github.com/dmitrymomot/modelkit/pkg/registry"
)

// DefaultDateLayout is used by the date validator when no layout argument
// is supplied.
const DefaultDateLayout = "2006-01-02"

// Date validates that a string parses with the given time layout (first
// argument, defaulting to DefaultDateLayout). Empty values are skipped.
func Date(value any, cfg registry.Config) error {
	layout := DefaultDateLayout
	if len(cfg.Args) > 0 {
		s, ok := cfg.StringArg(0)
		if !ok {
			return invalidArgs("date", "expects a time layout string", cfg.Args)
		}
		layout = s
	}
	if isEmpty(value) {
		return nil
	}
	fail := func() error {
		return cfg.Fail("date", "{{name}} must be a valid date in the format {{layout}}.",
			map[string]any{"layout": layout})
	}
	s, ok := value.(string)
	if !ok {
		return fail()
	}
	if _, err := time.Parse(layout, s); err != nil {
		return fail()
	}
	return nil
}
