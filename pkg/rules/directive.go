package rules

import "strings"

// SanitizeOnlyMarker prefixes a directive name to suppress its validator
// half: "!trim" runs only the sanitizer even when a validator is registered
// under the same name.
const SanitizeOnlyMarker = "!"

// GateName is the reserved directive name declaring the group's
// short-circuit gate. It is folded into the group's gate state during
// normalization and never executed as a rule.
const GateName = "one"

// ArgsFunc resolves a directive's arguments at execution time, typically to
// pull sibling attribute values into a comparison. A non-nil error is a
// configuration error and aborts the validation pass.
type ArgsFunc func(h Host) ([]any, error)

// HandlerFunc is an inline rule: a closure attached directly to a directive
// or a named handler registered on the host model. It receives the current
// attribute value and is expected to act through the host — record errors
// with AddError, rewrite the value with SetAttribute — rather than return a
// verdict. A non-nil error is a configuration error.
type HandlerFunc func(h Host, attr string, value any, args ...any) error

// Directive is one named operation inside a rule group, parsed into an
// explicit variant: bare name, name with arguments, name with an argument
// thunk, or an inline closure.
type Directive struct {
	name         string
	args         []any
	argsFn       ArgsFunc
	fn           HandlerFunc
	sanitizeOnly bool
}

// Do declares a bare directive: the name alone, no arguments.
func Do(name string) Directive {
	name, sanitizeOnly := splitMarker(name)
	return Directive{name: name, sanitizeOnly: sanitizeOnly}
}

// With declares a directive with positional arguments.
func With(name string, args ...any) Directive {
	name, sanitizeOnly := splitMarker(name)
	return Directive{name: name, args: args, sanitizeOnly: sanitizeOnly}
}

// WithFunc declares a directive whose arguments are resolved against the
// host when the directive runs.
func WithFunc(name string, fn ArgsFunc) Directive {
	name, sanitizeOnly := splitMarker(name)
	return Directive{name: name, argsFn: fn, sanitizeOnly: sanitizeOnly}
}

// Inline declares an anonymous rule executed directly against the host.
func Inline(fn HandlerFunc) Directive {
	return Directive{fn: fn}
}

// Name returns the directive name with any sanitize-only marker stripped.
// Inline directives have no name.
func (d Directive) Name() string { return d.name }

// Args returns the directive's static arguments.
func (d Directive) Args() []any { return d.args }

// Bare reports whether the directive is a plain name with no arguments,
// thunk, or closure. Required-ness introspection only counts bare
// "required" entries.
func (d Directive) Bare() bool {
	return d.name != "" && d.args == nil && d.argsFn == nil && d.fn == nil
}

// SanitizeOnly reports whether the directive skips its validator half.
func (d Directive) SanitizeOnly() bool { return d.sanitizeOnly }

func splitMarker(name string) (string, bool) {
	if rest, ok := strings.CutPrefix(name, SanitizeOnlyMarker); ok {
		return rest, true
	}
	return name, false
}
