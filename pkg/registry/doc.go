// Package registry holds the named rule tables that back directive
// resolution: one mapping from name to validator function, one from name to
// sanitizer function. A single name may carry both halves, in which case a
// directive referencing it validates first and sanitizes after.
//
// # Architecture
//
// Rule implementations are plain functions receiving the value under test
// and a per-invocation Config record (arguments, message overrides,
// placeholder values). The registry stores no per-rule state and the Config
// is rebuilt for every invocation, so a single registry instance is safe to
// share between many models validated concurrently.
//
// # Error Contract
//
// A validator returns nil for a valid value. A non-nil error is the
// formatted message to record against the attribute, unless it wraps
// ErrInvalidArgs, which signals a broken rule table and must abort the
// whole validation pass. Sanitizers never produce validation failures; a
// non-nil error from a sanitizer is always a configuration mistake.
//
// # Usage
//
//	r := registry.New()
//	r.RegisterValidator("required", validator.Required)
//	r.RegisterSanitizer("trim", sanitizer.Named(sanitizer.Trim))
//
//	err := r.Validate("required", "", registry.Config{
//	    Placeholders: map[string]any{"name": "Email"},
//	})
package registry
