package validator

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/modelkit/pkg/registry"
)

// UUID validates standard UUID format with pre-validation to avoid
// expensive parsing. Empty values are skipped.
func UUID(value any, cfg registry.Config) error {
	if isEmpty(value) {
		return nil
	}
	fail := func() error {
		return cfg.Fail("uuid", "{{name}} must be a valid UUID.", nil)
	}
	s, ok := value.(string)
	if !ok {
		return fail()
	}
	// Fast rejection: check length and hyphen positions before parsing.
	if len(s) != 36 {
		return fail()
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return fail()
	}
	if _, err := uuid.Parse(s); err != nil {
		return fail()
	}
	return nil
}
