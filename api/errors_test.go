package api_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-deque/api"
)

func TestError_UnwrapsToSentinel(t *testing.T) {
	err := api.CodeError(api.ErrCodeOutOfRange).WithContext("offset", 9)
	assert.ErrorIs(t, err, api.ErrOutOfRange)
	assert.NotErrorIs(t, err, api.ErrNotIncrementable)
	assert.Equal(t, "iterator out of range (context: map[offset:9])", err.Error())

	wrapped := fmt.Errorf("walk: %w", err)
	assert.Equal(t, api.ErrCodeOutOfRange, api.CodeOf(wrapped))
	var e *api.Error
	assert.True(t, errors.As(wrapped, &e))
	assert.Equal(t, 9, e.Context["offset"])
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, api.ErrCodeOK, api.CodeOf(nil))
	assert.Equal(t, api.ErrCodeStaleIterator, api.CodeOf(api.ErrStaleIterator))
	assert.Equal(t, api.ErrCodeUnknown, api.CodeOf(errors.New("boom")))
	assert.Equal(t, "plain", api.NewError(api.ErrCodeInvalidArgument, "plain").Error())
}

func TestIsContractViolation(t *testing.T) {
	for _, err := range []error{
		api.ErrNotDereferenceable,
		api.ErrNotIncrementable,
		api.ErrNotDecrementable,
		api.ErrOutOfRange,
		api.ErrEmptyContainer,
		api.CodeError(api.ErrCodeStaleIterator),
	} {
		assert.True(t, api.IsContractViolation(err), "%v", err)
	}
	assert.False(t, api.IsContractViolation(nil))
	assert.False(t, api.IsContractViolation(api.ErrResourceExhausted))
	assert.False(t, api.IsContractViolation(api.CodeError(api.ErrCodeResourceExhausted)))
	assert.False(t, api.IsContractViolation(errors.New("boom")))
}
