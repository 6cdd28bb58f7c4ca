package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("genre", "7")

	assert.Equal(t, "genre not found with id 7", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestIsNotFound(t *testing.T) {
	wrapped := fmt.Errorf("associating genres: %w", NotFound("videogame", "1000001"))

	assert.True(t, IsNotFound(wrapped, ""))
	assert.True(t, IsNotFound(wrapped, "videogame"))
	assert.False(t, IsNotFound(wrapped, "genre"))
	assert.False(t, IsNotFound(errors.New("boom"), ""))
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed("releaseDate", "invalid date")

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "releaseDate", appErr.Resource)
	assert.True(t, errors.Is(err, ErrValidation))
}
