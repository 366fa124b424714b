package validator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passguard/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("text", "hello"),
			validator.MaxLen("text", "hello", 5),
			validator.Range("length", 16, 4, 128),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("text", "   "),
			validator.Range("length", 2, 4, 128),
			validator.MaxLen("text", "пароль", 5),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		ve, ok := validator.Extract(err)
		require.True(t, ok)
		require.Len(t, ve, 3)
		assert.Equal(t, "required", ve[0].Code)
		assert.Equal(t, "range", ve[1].Code)
		assert.Equal(t, map[string]any{"min": 4, "max": 128}, ve[1].Params)
		assert.Equal(t, "max_length", ve[2].Code)

		assert.True(t, ve.Has("length"))
		assert.False(t, ve.Has("size"))
		assert.Equal(t, map[string][]string{
			"text":   {"field is required", "must be at most 5 characters long"},
			"length": {"must be between 4 and 128"},
		}, ve.Fields())
		assert.Equal(t, "validation failed: text: field is required; length: must be between 4 and 128; text: must be at most 5 characters long", err.Error())
	})
}

func TestMaxLenCountsCharacters(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.MaxLen("p", "пароль", 6)))
	assert.Error(t, validator.Apply(validator.MaxLen("p", strings.Repeat("x", 7), 6)))
}

func TestRangeBounds(t *testing.T) {
	t.Parallel()

	for _, v := range []int{4, 64, 128} {
		assert.NoError(t, validator.Apply(validator.Range("length", v, 4, 128)), "value %d", v)
	}
	for _, v := range []int{-1, 3, 129} {
		assert.Error(t, validator.Apply(validator.Range("length", v, 4, 128)), "value %d", v)
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	_, ok := validator.Extract(errors.New("other"))
	assert.False(t, ok)

	wrapped := fmt.Errorf("bind: %w", validator.Apply(validator.Required("text", "")))
	ve, ok := validator.Extract(wrapped)
	require.True(t, ok)
	assert.True(t, ve.Has("text"))
}
