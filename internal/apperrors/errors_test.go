package apperrors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"ulascansenturk/weather-lookup/internal/apperrors"
)

func TestErrorKinds(t *testing.T) {
	t.Run("validation has no cause", func(t *testing.T) {
		err := apperrors.Validation("query cannot be empty")

		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		assert.False(t, errors.Is(err, apperrors.ErrNetwork))
		assert.Equal(t, "query cannot be empty", err.Error())
	})

	t.Run("network unwraps to its cause", func(t *testing.T) {
		err := apperrors.Network("forecast request failed", context.DeadlineExceeded)

		assert.True(t, errors.Is(err, apperrors.ErrNetwork))
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Equal(t, "forecast request failed: context deadline exceeded", err.Error())
	})

	t.Run("kind survives further wrapping", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", apperrors.Parse("malformed JSON", errors.New("unexpected EOF")))

		assert.Equal(t, apperrors.ErrParse, apperrors.KindOf(err))
		assert.Nil(t, apperrors.KindOf(errors.New("plain")))
	})
}
