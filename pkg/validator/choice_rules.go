package validator

import "github.com/dmitrymomot/modelkit/pkg/registry"

// In validates that a value equals one of the given arguments. Comparison
// is loose across numeric and string shapes so YAML-decoded rule tables and
// literal Go arguments behave the same. Empty values are skipped.
func In(value any, cfg registry.Config) error {
	if len(cfg.Args) == 0 {
		return invalidArgs("in", "expects at least one allowed value", cfg.Args)
	}
	if isEmpty(value) {
		return nil
	}
	for _, allowed := range cfg.Args {
		if looseEqual(value, allowed) {
			return nil
		}
	}
	return cfg.Fail("in", "{{name}} is not in the list of allowed values.", nil)
}
