package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/modelkit/pkg/registry"
	"github.com/dmitrymomot/modelkit/pkg/validator"
)

func TestDate(t *testing.T) {
	t.Run("default layout", func(t *testing.T) {
		assert.NoError(t, validator.Date("2026-08-30", named("Birthday")))
		assert.EqualError(t, validator.Date("30.08.2026", named("Birthday")),
			"Birthday must be a valid date in the format 2006-01-02.")
	})

	t.Run("custom layout", func(t *testing.T) {
		cfg := named("Birthday")
		cfg.Args = []any{"02.01.2006"}
		assert.NoError(t, validator.Date("30.08.2026", cfg))
		assert.Error(t, validator.Date("2026-08-30", cfg))
	})

	t.Run("non-string layout is a configuration error", func(t *testing.T) {
		cfg := registry.Config{Args: []any{20060102}}
		assert.ErrorIs(t, validator.Date("2026-08-30", cfg), registry.ErrInvalidArgs)
	})

	t.Run("skips empty values", func(t *testing.T) {
		assert.NoError(t, validator.Date("", named("Birthday")))
		assert.NoError(t, validator.Date(nil, named("Birthday")))
	})
}
