package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the per-invocation configuration record handed to validator and
// sanitizer functions. It is built fresh for every directive execution, so
// implementations may read it freely without copying; nothing in it is
// shared between invocations.
type Config struct {
	// Args are the directive's positional arguments, e.g. min/max bounds.
	Args []any
	// Placeholders are substituted into {{token}} slots of error messages.
	// The executor injects the attribute's display label under "name".
	Placeholders map[string]any
	// Messages overrides the default error template per directive name.
	Messages map[string]string
}

// StringArg returns the i-th argument as a string.
func (c Config) StringArg(i int) (string, bool) {
	if i < 0 || i >= len(c.Args) {
		return "", false
	}
	s, ok := c.Args[i].(string)
	return s, ok
}

// IntArg returns the i-th argument as an int, accepting the integer and
// float shapes produced by literal Go args and YAML decoding alike.
func (c Config) IntArg(i int) (int, bool) {
	if i < 0 || i >= len(c.Args) {
		return 0, false
	}
	switch v := c.Args[i].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// FloatArg returns the i-th argument as a float64.
func (c Config) FloatArg(i int) (float64, bool) {
	if i < 0 || i >= len(c.Args) {
		return 0, false
	}
	switch v := c.Args[i].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// Fail builds the failure error for a rule: the template is the custom
// message registered for the rule name, falling back to fallback, with
// rule-supplied values and the config placeholders interpolated. Config
// placeholders win over rule-supplied values so callers can pin a token.
func (c Config) Fail(rule, fallback string, values map[string]any) error {
	tmpl := fallback
	if m, ok := c.Messages[rule]; ok {
		tmpl = m
	}
	merged := make(map[string]any, len(values)+len(c.Placeholders))
	for k, v := range values {
		merged[k] = v
	}
	for k, v := range c.Placeholders {
		merged[k] = v
	}
	return errors.New(Interpolate(tmpl, merged))
}

// Interpolate substitutes {{token}} slots in template with the given
// values, formatting non-string values with %v. Unknown tokens are left in
// place so missing placeholders stay visible instead of silently vanishing.
func Interpolate(template string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(template, "{{") {
		return template
	}
	out := template
	for token, value := range values {
		s, ok := value.(string)
		if !ok {
			s = fmt.Sprintf("%v", value)
		}
		out = strings.ReplaceAll(out, "{{"+token+"}}", s)
	}
	return out
}
