package validator

import (
	"fmt"

	"github.com/dmitrymomot/modelkit/pkg/registry"
)

// invalidArgs wraps registry.ErrInvalidArgs with the offending rule name and
// arguments so the resulting configuration error pinpoints the broken
// rule-table entry.
func invalidArgs(rule, reason string, args []any) error {
	return fmt.Errorf("%w: %s %s, got %v", registry.ErrInvalidArgs, rule, reason, args)
}
