package file

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_Watch_ReloadsOnWrite(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("dispatch.interval_ms", int64(300)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, func() { reloads.Add(1) })
	}()

	// Give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(store.Path(), []byte("[dispatch]\ninterval_ms = 900\n"), 0600))

	assert.Eventually(t, func() bool {
		return store.GetInt("dispatch.interval_ms") == 900 && reloads.Load() > 0
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestConfigStore_Watch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads atomic.Int32
	go func() {
		_ = store.Watch(ctx, func() { reloads.Add(1) })
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(dir+"/other.toml", []byte("x = 1\n"), 0600))
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, int32(0), reloads.Load())
}
