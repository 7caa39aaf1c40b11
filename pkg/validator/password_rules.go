package validator

import (
	"unicode"

	"github.com/dmitrymomot/modelkit/pkg/registry"
)

// DefaultPasswordLength is the minimum length enforced by the password
// validator when no length argument is supplied.
const DefaultPasswordLength = 8

// Password validates password strength: a minimum length (first argument,
// defaulting to DefaultPasswordLength) plus at least one uppercase letter,
// one lowercase letter, and one digit. Empty values are skipped.
func Password(value any, cfg registry.Config) error {
	min := DefaultPasswordLength
	if len(cfg.Args) > 0 {
		n, ok := cfg.IntArg(0)
		if !ok {
			return invalidArgs("password", "expects a minimum length", cfg.Args)
		}
		min = n
	}
	if isEmpty(value) {
		return nil
	}
	fail := func() error {
		return cfg.Fail("password",
			"{{name}} must be at least {{min}} characters long and contain upper and lower case letters and a digit.",
			map[string]any{"min": min})
	}
	s, ok := value.(string)
	if !ok {
		return fail()
	}
	runes := []rune(s)
	if len(runes) < min {
		return fail()
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fail()
	}
	return nil
}
