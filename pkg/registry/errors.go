package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRegistered is returned when a name is resolved against a
	// registry side that has no entry for it.
	ErrNotRegistered = errors.New("rule not registered")

	// ErrInvalidArgs marks a rule-table configuration mistake: a directive
	// received arguments it cannot work with. Validators wrap this sentinel
	// to abort the validation pass instead of recording an attribute error.
	ErrInvalidArgs = errors.New("invalid rule arguments")
)

func errNotRegistered(name, side string) error {
	return fmt.Errorf("%w: no %s named %q", ErrNotRegistered, side, name)
}
