package ruleset

import "errors"

var (
	// ErrParseFailed wraps YAML syntax and decoding failures.
	ErrParseFailed = errors.New("failed to parse rule table")

	// ErrInvalidTable reports a structurally broken rule table: wrong node
	// shapes, unknown group keys, or groups without attributes.
	ErrInvalidTable = errors.New("invalid rule table")
)
