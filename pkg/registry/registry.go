package registry

import "maps"

// ValidatorFunc checks a value against a named rule. A nil return means the
// value is valid. A non-nil return carries the formatted, user-facing error
// message, except when it wraps ErrInvalidArgs, which signals a rule-table
// configuration mistake and aborts the whole validation pass.
type ValidatorFunc func(value any, cfg Config) error

// SanitizerFunc transforms a value. Values of unsupported types must be
// returned unchanged rather than rejected; sanitizers never report
// validation failures.
type SanitizerFunc func(value any, cfg Config) (any, error)

// Registry maps directive names to validator and sanitizer implementations.
// A name may be registered on either side or on both; the executor runs the
// validator half first and the sanitizer half after, per directive.
//
// Registration is expected to happen once, before the registry is shared.
// Lookups never hand out shared mutable state: every invocation receives its
// own Config, so one registry is safe to share across model instances.
type Registry struct {
	validators map[string]ValidatorFunc
	sanitizers map[string]SanitizerFunc
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		validators: make(map[string]ValidatorFunc),
		sanitizers: make(map[string]SanitizerFunc),
	}
}

// RegisterValidator registers or replaces the validator half of a name.
func (r *Registry) RegisterValidator(name string, fn ValidatorFunc) {
	r.validators[name] = fn
}

// RegisterSanitizer registers or replaces the sanitizer half of a name.
func (r *Registry) RegisterSanitizer(name string, fn SanitizerFunc) {
	r.sanitizers[name] = fn
}

// HasValidator reports whether a validator is registered under name.
func (r *Registry) HasValidator(name string) bool {
	_, ok := r.validators[name]
	return ok
}

// HasSanitizer reports whether a sanitizer is registered under name.
func (r *Registry) HasSanitizer(name string) bool {
	_, ok := r.sanitizers[name]
	return ok
}

// Has reports whether name is known to either side of the registry.
func (r *Registry) Has(name string) bool {
	return r.HasValidator(name) || r.HasSanitizer(name)
}

// Validate runs the named validator against value. It returns
// ErrNotRegistered if no validator exists under name.
func (r *Registry) Validate(name string, value any, cfg Config) error {
	fn, ok := r.validators[name]
	if !ok {
		return errNotRegistered(name, "validator")
	}
	return fn(value, cfg)
}

// Sanitize runs the named sanitizer against value and returns the
// transformed result. It returns ErrNotRegistered if no sanitizer exists
// under name.
func (r *Registry) Sanitize(name string, value any, cfg Config) (any, error) {
	fn, ok := r.sanitizers[name]
	if !ok {
		return value, errNotRegistered(name, "sanitizer")
	}
	return fn(value, cfg)
}

// Clone returns an independent copy of the registry. Useful for extending
// the default rule set for one model without affecting others.
func (r *Registry) Clone() *Registry {
	return &Registry{
		validators: maps.Clone(r.validators),
		sanitizers: maps.Clone(r.sanitizers),
	}
}
