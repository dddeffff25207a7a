package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNoTopFace", ErrNoTopFace},
		{"ErrNoEdgeLoops", ErrNoEdgeLoops},
		{"ErrNoSolidGeometry", ErrNoSolidGeometry},
		{"ErrUnsupportedBoolean", ErrUnsupportedBoolean},
		{"ErrNotAFloor", ErrNotAFloor},
		{"ErrNoOpenScope", ErrNoOpenScope},
		{"ErrScopeAlreadyOpen", ErrScopeAlreadyOpen},
		{"ErrCommitFailed", ErrCommitFailed},
		{"ErrSelectionCancelled", ErrSelectionCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNoTopFace, ErrNoEdgeLoops))
	assert.False(t, errors.Is(ErrNoEdgeLoops, ErrNoSolidGeometry))
	assert.False(t, errors.Is(ErrNoSolidGeometry, ErrNoTopFace))
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("copy floor f-1: %w", ErrNoTopFace)

	assert.True(t, errors.Is(wrapped, ErrNoTopFace))
	assert.Contains(t, wrapped.Error(), "floor does not have a top face")
}
