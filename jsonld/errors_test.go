package jsonld

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessingError_Unwrap(t *testing.T) {
	t.Run("Details is error", func(t *testing.T) {
		err := errors.New("failed")
		assert.Equal(t, err, NewProcessingError(UnknownError, err).Unwrap())
	})
	t.Run("Details is not an error", func(t *testing.T) {
		assert.Nil(t, NewProcessingError(UnknownError, "failed").Unwrap())
	})
	t.Run("Details is nil", func(t *testing.T) {
		assert.Nil(t, NewProcessingError(UnknownError, nil).Unwrap())
	})
}
