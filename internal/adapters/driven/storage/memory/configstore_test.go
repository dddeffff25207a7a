package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("copy.strategy", "direct"))
	require.NoError(t, store.Set("copy.strategy", "boolean"))

	val, ok := store.Get("copy.strategy")
	assert.True(t, ok)
	assert.Equal(t, "boolean", val)

	_, ok = store.Get("copy.missing")
	assert.False(t, ok)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("storage.data_dir", "/tmp/floorcopy"))
	require.NoError(t, store.Set("copy.offset", 10.0))

	assert.Equal(t, "/tmp/floorcopy", store.GetString("storage.data_dir"))
	assert.Empty(t, store.GetString("copy.offset"))
	assert.Empty(t, store.GetString("nonexistent"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{name: "float64", value: 2.5, want: 2.5},
		{name: "float32", value: float32(0.5), want: 0.5},
		{name: "int", value: 10, want: 10},
		{name: "int64", value: int64(-3), want: -3},
		{name: "string", value: "10", want: 0},
		{name: "bool", value: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStore()
			require.NoError(t, store.Set("copy.offset", tt.value))
			assert.InDelta(t, tt.want, store.GetFloat("copy.offset"), 1e-9)
		})
	}

	assert.Zero(t, NewConfigStore().GetFloat("nonexistent"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("copy.inherit_style", true))
	require.NoError(t, store.Set("copy.structural", "true"))

	assert.True(t, store.GetBool("copy.inherit_style"))
	assert.False(t, store.GetBool("copy.structural"))
	assert.False(t, store.GetBool("nonexistent"))
}

func TestConfigStore_SaveLoad_NoOp(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("copy.offset", 4.0))

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.InDelta(t, 4.0, store.GetFloat("copy.offset"), 1e-9)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("copy.key%d", id%5)
			_ = store.Set(key, float64(id))
			_ = store.GetFloat(key)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		_, ok := store.Get(fmt.Sprintf("copy.key%d", i))
		assert.True(t, ok)
	}
}
