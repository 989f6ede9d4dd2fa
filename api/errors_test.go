package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	e := NewError(ErrCodeInvalidArgument, "bad")
	assert.Equal(t, "bad", e.Error())

	e.WithContext("capacity", 0)
	assert.Equal(t, "bad (context: map[capacity:0])", e.Error())
}

func TestWrap_PreservesIdentity(t *testing.T) {
	err := fmt.Errorf("outer: %w", Wrap(ErrCodeOutOfRange, ErrIndexOutOfRange).WithContext("position", 7))

	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.False(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, ErrCodeOutOfRange, CodeOf(err))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeOK, CodeOf(nil))
	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, "not_found", ErrCodeNotFound.String())
	assert.ErrorIs(t, ErrInvalidCapacity, ErrInvalidArgument)
}

func TestWithContext_NilMap(t *testing.T) {
	e := &Error{Code: ErrCodeInternal, Message: "x"}
	e.WithContext("k", "v")
	assert.Equal(t, "v", e.Context["k"])
}
