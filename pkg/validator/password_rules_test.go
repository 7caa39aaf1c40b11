package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/modelkit/pkg/registry"
	"github.com/dmitrymomot/modelkit/pkg/validator"
)

func TestPassword(t *testing.T) {
	t.Run("passes for a strong password", func(t *testing.T) {
		assert.NoError(t, validator.Password("Str0ngPass", named("Password")))
	})

	t.Run("fails when a character class is missing", func(t *testing.T) {
		for _, v := range []string{"alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
			assert.Error(t, validator.Password(v, named("Password")), v)
		}
	})

	t.Run("fails below the minimum length", func(t *testing.T) {
		err := validator.Password("Ab1", named("Password"))
		assert.EqualError(t, err,
			"Password must be at least 8 characters long and contain upper and lower case letters and a digit.")
	})

	t.Run("custom minimum length", func(t *testing.T) {
		cfg := named("Password")
		cfg.Args = []any{4}
		assert.NoError(t, validator.Password("Ab1c", cfg))
	})

	t.Run("non-integer length is a configuration error", func(t *testing.T) {
		cfg := registry.Config{Args: []any{"eight"}}
		assert.ErrorIs(t, validator.Password("Str0ngPass", cfg), registry.ErrInvalidArgs)
	})

	t.Run("skips empty values", func(t *testing.T) {
		assert.NoError(t, validator.Password("", named("Password")))
	})
}
