package rules

import "errors"

// ErrUnknownRule is returned when a named directive resolves to neither a
// model handler nor a registered validator or sanitizer. It indicates a
// broken rule table, not a validation failure.
var ErrUnknownRule = errors.New("unknown rule")
