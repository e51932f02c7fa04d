package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runWatcher(t *testing.T, dir string, callback func()) func() {
	t.Helper()

	w, err := New([]string{dir}, 20*time.Millisecond, callback)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.Run(ctx, func(err error) { t.Log(err) })
	}()

	return func() {
		cancel()
		wg.Wait()
		require.NoError(t, w.Close())
	}
}

func TestWatcherDebouncesFixtureWrites(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32

	stop := runWatcher(t, dir, func() { calls.Add(1) })
	defer stop()

	path := filepath.Join(dir, "leads.yaml")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("Oslo: []\n"), 0o644))
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32

	stop := runWatcher(t, dir, func() { calls.Add(1) })
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notas.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".leads.yaml.swp"), []byte("x"), 0o644))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestNewFailsForMissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "nao-existe")}, 0, func() {})
	assert.Error(t, err)
}

func TestIsFixture(t *testing.T) {
	assert.True(t, isFixture("/tmp/leads.yaml"))
	assert.True(t, isFixture("renewals.YML"))
	assert.False(t, isFixture("leads.yaml~"))
	assert.False(t, isFixture("README.md"))
}
