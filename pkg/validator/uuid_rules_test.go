package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/modelkit/pkg/validator"
)

func TestUUID(t *testing.T) {
	t.Run("passes for a canonical UUID", func(t *testing.T) {
		assert.NoError(t, validator.UUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8", named("ID")))
	})

	t.Run("fails fast on wrong shape", func(t *testing.T) {
		for _, v := range []string{
			"6ba7b810",
			"6ba7b810-9dad-11d1-80b4-00c04fd430c80",
			"6ba7b8109dad-11d1-80b4-00c04fd430c888",
			"gba7b810-9dad-11d1-80b4-00c04fd430c8",
		} {
			assert.EqualError(t, validator.UUID(v, named("ID")), "ID must be a valid UUID.", v)
		}
	})

	t.Run("fails for non-string values", func(t *testing.T) {
		assert.Error(t, validator.UUID(12345, named("ID")))
	})

	t.Run("skips empty values", func(t *testing.T) {
		assert.NoError(t, validator.UUID("", named("ID")))
	})
}
