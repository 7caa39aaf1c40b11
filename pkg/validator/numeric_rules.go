package validator

import (
	"strconv"

	"github.com/dmitrymomot/modelkit/pkg/registry"
)

// Number validates that a value is numeric, accepting native numeric types
// and numeric strings. Optional arguments bound the value: one argument is
// a minimum, two are an inclusive [min, max] range. Empty values are
// skipped.
func Number(value any, cfg registry.Config) error {
	if len(cfg.Args) > 2 {
		return errNumberArgs(cfg)
	}
	for i := range cfg.Args {
		if _, ok := cfg.FloatArg(i); !ok {
			return errNumberArgs(cfg)
		}
	}
	if isEmpty(value) {
		return nil
	}
	n, ok := asFloat(value)
	if !ok {
		return cfg.Fail("number", "{{name}} must be a number.", nil)
	}
	values := map[string]any{}
	if len(cfg.Args) > 0 {
		values["min"] = cfg.Args[0]
	}
	if len(cfg.Args) > 1 {
		values["max"] = cfg.Args[1]
	}
	if len(cfg.Args) > 0 {
		if min, _ := cfg.FloatArg(0); n < min {
			return cfg.Fail("number", "{{name}} must be at least {{min}}.", values)
		}
	}
	if len(cfg.Args) > 1 {
		if max, _ := cfg.FloatArg(1); n > max {
			return cfg.Fail("number", "{{name}} must be at most {{max}}.", values)
		}
	}
	return nil
}

// Boolean validates boolean-like values: native bools, 0/1 numbers, and the
// strings "true", "false", "0", "1". Empty values are skipped.
func Boolean(value any, cfg registry.Config) error {
	if isEmpty(value) {
		return nil
	}
	switch v := value.(type) {
	case bool:
		return nil
	case int, int64:
		if n, _ := asFloat(v); n == 0 || n == 1 {
			return nil
		}
	case string:
		switch v {
		case "true", "false", "0", "1":
			return nil
		}
	}
	return cfg.Fail("boolean", "{{name}} must be either true or false.", nil)
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func errNumberArgs(cfg registry.Config) error {
	return invalidArgs("number", "expects numeric bounds", cfg.Args)
}
