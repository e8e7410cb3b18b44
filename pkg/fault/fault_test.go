package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"library-engine/pkg/fault"
)

func TestKindSurvivesWrapping(t *testing.T) {
	sentinel := fault.Conflict(errors.New("no copies available"))
	wrapped := fmt.Errorf("%w: book_id=42", sentinel)

	assert.True(t, fault.IsConflict(wrapped))
	assert.False(t, fault.IsInput(wrapped))
	assert.True(t, errors.Is(wrapped, sentinel))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, fault.Kind(""), fault.KindOf(errors.New("plain")))
	assert.False(t, fault.IsInput(nil))
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, fault.Input(nil))
	assert.NoError(t, fault.Conflict(nil))
}
