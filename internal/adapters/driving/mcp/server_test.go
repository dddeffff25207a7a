package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil floor copy service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingFloorCopyService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{FloorCopy: &mockFloorCopyService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil floor copy service returns error", func(t *testing.T) {
		ports := &Ports{Floors: sampleFloors()}
		assert.ErrorIs(t, ports.Validate(), ErrMissingFloorCopyService)
	})

	t.Run("floor copy only is valid", func(t *testing.T) {
		ports := &Ports{FloorCopy: &mockFloorCopyService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{FloorCopy: &mockFloorCopyService{}, Floors: sampleFloors()}
		assert.NoError(t, ports.Validate())
	})
}
