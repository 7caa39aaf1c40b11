// Package validator provides the built-in named validators behind the
// default rule registry: presence, string shape and length, common formats
// (email, URL, IP, UUID, date), numeric and boolean checks, membership and
// equality comparisons, and password strength.
//
// Every validator shares the same contract: it receives the raw attribute
// value and a registry.Config carrying positional arguments, message
// overrides, and placeholder values. A nil return means valid; a plain
// error carries the formatted message to record against the attribute; an
// error wrapping registry.ErrInvalidArgs reports a broken rule table and
// aborts the validation pass.
//
// With the sole exception of Required, validators skip empty input (nil or
// the empty string). Whether an empty value is acceptable is therefore
// decided by pairing a directive with "required", not by each individual
// rule — the executor passes values through without any coercion.
//
// Default messages use {{token}} placeholders; {{name}} is filled with the
// attribute's display label unless overridden:
//
//	err := validator.Length("ab", registry.Config{
//	    Args:         []any{3, 20},
//	    Placeholders: map[string]any{"name": "Username"},
//	})
//	// err: "Username must be at least 3 characters long."
package validator
