package validator

import (
	"strings"

	"github.com/dmitrymomot/modelkit/pkg/registry"
)

// Required validates that a value is present: not nil and, for strings, not
// empty or whitespace-only. It is the only built-in validator that does not
// skip empty input.
func Required(value any, cfg registry.Config) error {
	fail := func() error {
		return cfg.Fail("required", "{{name}} cannot be blank.", nil)
	}
	if value == nil {
		return fail()
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return fail()
	}
	return nil
}

// String validates that a value is a string. Empty values are skipped.
func String(value any, cfg registry.Config) error {
	if isEmpty(value) {
		return nil
	}
	if _, ok := value.(string); !ok {
		return cfg.Fail("string", "{{name}} must be a string.", nil)
	}
	return nil
}

// Length validates string length in characters. With one argument the
// length must match exactly; with two arguments it must fall inside the
// inclusive [min, max] range. Empty values are skipped.
func Length(value any, cfg registry.Config) error {
	// Argument problems must surface even for empty values; they are
	// rule-table mistakes, not validation outcomes.
	exact, min, max, err := lengthBounds(cfg)
	if err != nil {
		return err
	}
	if isEmpty(value) {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return cfg.Fail("length", "{{name}} must be a string.", nil)
	}
	n := len([]rune(s))
	if exact >= 0 {
		if n != exact {
			return cfg.Fail("length", "{{name}} must be exactly {{length}} characters long.",
				map[string]any{"length": exact})
		}
	} else {
		if n < min {
			return cfg.Fail("length", "{{name}} must be at least {{min}} characters long.",
				map[string]any{"min": min, "max": max})
		}
		if n > max {
			return cfg.Fail("length", "{{name}} must be at most {{max}} characters long.",
				map[string]any{"min": min, "max": max})
		}
	}
	return nil
}

// lengthBounds parses the length arguments: one argument is an exact
// length (min/max unused), two are an inclusive range (exact is -1).
func lengthBounds(cfg registry.Config) (exact, min, max int, err error) {
	switch len(cfg.Args) {
	case 1:
		n, ok := cfg.IntArg(0)
		if !ok {
			return 0, 0, 0, errLengthArgs(cfg)
		}
		return n, 0, 0, nil
	case 2:
		lo, okLo := cfg.IntArg(0)
		hi, okHi := cfg.IntArg(1)
		if !okLo || !okHi {
			return 0, 0, 0, errLengthArgs(cfg)
		}
		return -1, lo, hi, nil
	default:
		return 0, 0, 0, errLengthArgs(cfg)
	}
}

func errLengthArgs(cfg registry.Config) error {
	return invalidArgs("length", "expects an exact length or a min/max pair", cfg.Args)
}
