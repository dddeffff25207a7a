package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

func TestServer_handleListFloors(t *testing.T) {
	ctx := context.Background()

	t.Run("skips temporary floors by default", func(t *testing.T) {
		server, err := NewServer(&Ports{FloorCopy: &mockFloorCopyService{}, Floors: sampleFloors()})
		require.NoError(t, err)

		_, output, err := server.handleListFloors(ctx, nil, ListFloorsInput{})

		require.NoError(t, err)
		require.Equal(t, 1, output.Count)
		assert.Equal(t, FloorOutput{
			ID:       "f1",
			Name:     "Deck",
			Level:    "Ground",
			Offset:   0.5,
			Openings: 1,
		}, output.Floors[0])
	})

	t.Run("includes temporary floors on request", func(t *testing.T) {
		server, err := NewServer(&Ports{FloorCopy: &mockFloorCopyService{}, Floors: sampleFloors()})
		require.NoError(t, err)

		_, output, err := server.handleListFloors(ctx, nil, ListFloorsInput{IncludeTemporary: true})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.True(t, output.Floors[1].Temporary)
	})

	t.Run("no floor source returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{FloorCopy: &mockFloorCopyService{}})
		require.NoError(t, err)

		_, output, err := server.handleListFloors(ctx, nil, ListFloorsInput{})

		require.NoError(t, err)
		assert.Zero(t, output.Count)
		assert.NotNil(t, output.Floors)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		floors := &mockFloorSource{err: errors.New("store offline")}
		server, err := NewServer(&Ports{FloorCopy: &mockFloorCopyService{}, Floors: floors})
		require.NoError(t, err)

		_, _, err = server.handleListFloors(ctx, nil, ListFloorsInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing floors")
	})
}

func TestServer_handleCopyFloor(t *testing.T) {
	ctx := context.Background()

	t.Run("copies the requested floor", func(t *testing.T) {
		copier := &mockFloorCopyService{result: &domain.CopyResult{
			Source:       "f1",
			Floor:        "f9",
			Strategy:     domain.StrategyBoolean,
			Offset:       3,
			Openings:     []domain.ElementID{},
			Subtractions: 2,
			Kept:         []domain.ElementID{"t1"},
		}}
		server, err := NewServer(&Ports{FloorCopy: copier})
		require.NoError(t, err)

		_, output, err := server.handleCopyFloor(ctx, nil, CopyFloorInput{FloorID: "f1"})

		require.NoError(t, err)
		assert.Equal(t, []domain.ElementID{"f1"}, copier.copied)
		assert.Equal(t, CopyFloorOutput{
			Source:       "f1",
			Floor:        "f9",
			Strategy:     "boolean",
			Offset:       3,
			Openings:     []string{},
			Subtractions: 2,
			Kept:         []string{"t1"},
		}, output)
	})

	t.Run("missing floor id is rejected", func(t *testing.T) {
		copier := &mockFloorCopyService{}
		server, err := NewServer(&Ports{FloorCopy: copier})
		require.NoError(t, err)

		_, _, err = server.handleCopyFloor(ctx, nil, CopyFloorInput{})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, copier.copied)
	})

	t.Run("cancelled context stops a throttled copy", func(t *testing.T) {
		copier := &mockFloorCopyService{result: &domain.CopyResult{}}
		server, err := NewServer(&Ports{FloorCopy: copier})
		require.NoError(t, err)
		server.copies = rate.NewLimiter(rate.Every(time.Hour), 1)

		_, _, err = server.handleCopyFloor(ctx, nil, CopyFloorInput{FloorID: "f1"})
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, _, err = server.handleCopyFloor(cancelled, nil, CopyFloorInput{FloorID: "f1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "waiting for copy slot")
		assert.Len(t, copier.copied, 1)
	})

	t.Run("returns copy errors", func(t *testing.T) {
		copier := &mockFloorCopyService{err: domain.ErrNoTopFace}
		server, err := NewServer(&Ports{FloorCopy: copier})
		require.NoError(t, err)

		_, _, err = server.handleCopyFloor(ctx, nil, CopyFloorInput{FloorID: "f1"})

		assert.ErrorIs(t, err, domain.ErrNoTopFace)
	})
}
