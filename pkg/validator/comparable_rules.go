package validator

import "github.com/dmitrymomot/modelkit/pkg/registry"

// Compare validates that a value equals the expected value given as the
// first argument. Pair it with an argument thunk to compare against a
// sibling attribute resolved at execution time, e.g. password confirmation.
// Empty values are skipped.
func Compare(value any, cfg registry.Config) error {
	if len(cfg.Args) != 1 {
		return invalidArgs("compare", "expects exactly one expected value", cfg.Args)
	}
	if isEmpty(value) {
		return nil
	}
	if !looseEqual(value, cfg.Args[0]) {
		return cfg.Fail("compare", "{{name}} does not match the expected value.", nil)
	}
	return nil
}
