package sanitizer

import "github.com/dmitrymomot/modelkit/pkg/registry"

// Named adapts a plain string transform into a registry sanitizer.
// Non-string values pass through untouched so directive chains stay safe on
// heterogeneous attribute maps.
func Named(fn func(string) string) registry.SanitizerFunc {
	return func(value any, _ registry.Config) (any, error) {
		if s, ok := value.(string); ok {
			return fn(s), nil
		}
		return value, nil
	}
}

// Register installs every built-in sanitizer into r under its directive
// name. The "email" entry is deliberately dual-registered with the email
// validator: one directive validates the address and then normalizes it.
func Register(r *registry.Registry) {
	r.RegisterSanitizer("trim", Named(Trim))
	r.RegisterSanitizer("lowercase", Named(ToLower))
	r.RegisterSanitizer("uppercase", Named(ToUpper))
	r.RegisterSanitizer("title", Named(ToTitle))
	r.RegisterSanitizer("collapse_spaces", Named(CollapseWhitespace))
	r.RegisterSanitizer("escape", Named(EscapeHTML))
	r.RegisterSanitizer("digits", Named(Digits))
	r.RegisterSanitizer("email", Named(NormalizeEmail))
	r.RegisterSanitizer("truncate", truncateRule)
}

func truncateRule(value any, cfg registry.Config) (any, error) {
	n, ok := cfg.IntArg(0)
	if !ok {
		return value, invalidArgs("truncate", "expects a maximum length", cfg.Args)
	}
	if s, isStr := value.(string); isStr {
		return Truncate(s, n), nil
	}
	return value, nil
}
