package sanitizer

import (
	"fmt"

	"github.com/dmitrymomot/modelkit/pkg/registry"
)

func invalidArgs(rule, reason string, args []any) error {
	return fmt.Errorf("%w: %s %s, got %v", registry.ErrInvalidArgs, rule, reason, args)
}
