package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

func TestCopyCmd_AcceptsMaxOneArg(t *testing.T) {
	setupTestServices(t, true)

	_, err := execute(t, "", "copy", "a", "b")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func TestCopyCmd_ErrorsWithoutServices(t *testing.T) {
	SetServices(Services{})

	_, err := execute(t, "", "copy", "Deck")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestCopyCmd_DirectByName(t *testing.T) {
	env := setupTestServices(t, true)

	out, err := execute(t, "", "copy", "Deck")

	require.NoError(t, err)
	assert.Contains(t, out, "Copied floor")
	assert.Contains(t, out, "Direct (explicit openings)")
	assert.Contains(t, out, "Offset:       10")
	assert.Contains(t, out, "Openings:     1")

	floors, err := env.doc.ListFloors(context.Background())
	require.NoError(t, err)
	assert.Len(t, floors, 2)
	assert.InDelta(t, 10.0, floors[1].Boundary[0].Start().Z, 1e-9)
}

func TestCopyCmd_FlagOverridesAreNotStored(t *testing.T) {
	env := setupTestServices(t, true)

	out, err := execute(t, "", "copy", "Deck", "--strategy", "boolean", "--offset", "3")

	require.NoError(t, err)
	assert.Contains(t, out, "Boolean (solid subtraction)")
	assert.Contains(t, out, "Offset:       3")
	assert.Contains(t, out, "Subtractions: 1")
	assert.Contains(t, out, "Disposed:     1")

	floors, err := env.doc.ListFloors(context.Background())
	require.NoError(t, err)
	assert.Len(t, floors, 2)

	stored, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyDirect, stored.Copy.Strategy)
	assert.InDelta(t, domain.DefaultOffset, stored.Copy.Offset, 1e-9)
}

func TestCopyCmd_KeepScaffolding(t *testing.T) {
	env := setupTestServices(t, true)

	out, err := execute(t, "", "copy", "Deck", "--strategy", "boolean", "--keep-scaffolding")

	require.NoError(t, err)
	assert.Contains(t, out, "Kept temporary floor:")
	assert.Contains(t, out, "Disposed:     0")

	floors, err := env.doc.ListFloors(context.Background())
	require.NoError(t, err)
	assert.Len(t, floors, 3)
}

func TestCopyCmd_UsesStoredSettings(t *testing.T) {
	env := setupTestServices(t, true)
	require.NoError(t, env.settings.SetStrategy(domain.StrategyBoolean))
	require.NoError(t, env.settings.SetOffset(-4))

	out, err := execute(t, "", "copy", "Deck")

	require.NoError(t, err)
	assert.Contains(t, out, "Boolean (solid subtraction)")
	assert.Contains(t, out, "Offset:       -4")
}

func TestCopyCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "strategy", args: []string{"copy", "Deck", "--strategy", "union"}, wantMsg: "invalid strategy"},
		{name: "offset", args: []string{"copy", "Deck", "--offset", "up"}, wantMsg: "invalid offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServices(t, true)

			_, err := execute(t, "", tt.args...)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			floors, err := env.doc.ListFloors(context.Background())
			require.NoError(t, err)
			assert.Len(t, floors, 1)
		})
	}
}

func TestCopyCmd_UnknownFloor(t *testing.T) {
	setupTestServices(t, true)

	_, err := execute(t, "", "copy", "Roof")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCopyCmd_InteractiveSelection(t *testing.T) {
	env := setupTestServices(t, true)

	out, err := execute(t, "1\n", "copy")

	require.NoError(t, err)
	assert.Contains(t, out, "1) Deck")
	assert.Contains(t, out, "Select a floor [1-1, empty to cancel]:")
	assert.Contains(t, out, "Copied floor")

	floors, err := env.doc.ListFloors(context.Background())
	require.NoError(t, err)
	assert.Len(t, floors, 2)
}

func TestCopyCmd_InteractiveCancel(t *testing.T) {
	env := setupTestServices(t, true)

	out, err := execute(t, "\n", "copy")

	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")

	floors, err := env.doc.ListFloors(context.Background())
	require.NoError(t, err)
	assert.Len(t, floors, 1)
}

func TestCopyCmd_InteractiveInvalidChoice(t *testing.T) {
	setupTestServices(t, true)

	_, err := execute(t, "7\n", "copy")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCopyCmd_InteractiveEmptyModel(t *testing.T) {
	setupTestServices(t, false)

	_, err := execute(t, "1\n", "copy")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOverlaySettings_WithoutStore(t *testing.T) {
	overlay := &overlaySettings{apply: func(c *domain.CopySettings) { c.Offset = 2 }}

	settings, err := overlay.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.StrategyDirect, settings.Copy.Strategy)
	assert.InDelta(t, 2.0, settings.Copy.Offset, 1e-9)
}

func TestSelectionFor_PipedInputUsesPrompt(t *testing.T) {
	setupTestServices(t, true)
	copyCmd.SetIn(strings.NewReader("1\n"))
	defer copyCmd.SetIn(nil)

	sel := selectionFor(copyCmd)

	_, ok := sel.(*promptSelection)
	assert.True(t, ok)
}
