package modelfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

func TestNewWatcher_RejectsUnknownExtension(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "model.json"), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, w)
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "gone", "model.toml"), nil)

	assert.Error(t, err)
	assert.Nil(t, w)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "model.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0600))

	models := make(chan *Model, 4)
	w, err := NewWatcher(path, func(_ context.Context, m *Model) error {
		models <- m
		return nil
	})
	require.NoError(t, err)
	w.WithDebounce(20 * time.Millisecond)
	assert.Equal(t, path, w.Path())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0600))

	select {
	case m := <-models:
		assert.Len(t, m.Floors, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_KeepsWatchingAfterParseError(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "model.yaml")

	models := make(chan *Model, 4)
	w, err := NewWatcher(path, func(_ context.Context, m *Model) error {
		models <- m
		return nil
	})
	require.NoError(t, err)
	w.WithDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte("levels: [unclosed"), 0600))
	select {
	case <-models:
		t.Fatal("malformed file should not be delivered")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0600))
	select {
	case m := <-models:
		assert.Len(t, m.Levels, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after fix")
	}

	cancel()
	require.NoError(t, <-done)
}
