package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope", "dog.py")
	w, err := New(path, 0, nil)
	assert.Error(t, err)
	assert.Nil(t, w)
}

func TestFileWatcher_DebouncesWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "dog.py")
	require.NoError(t, os.WriteFile(target, []byte("class Dog:\n    pass\n"), 0o644))

	w, err := New(target, 100*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	fired := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() {
			calls.Add(1)
			fired <- struct{}{}
		})
	}()

	// 给 Run 一点时间进入事件循环
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(target, []byte("class Dog:\n    x = 1\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("callback not fired")
	}

	// 静默期内不应再次触发
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestFileWatcher_IgnoresSiblingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "dog.py")
	require.NoError(t, os.WriteFile(target, []byte(""), 0o644))

	w, err := New(target, 50*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { calls.Add(1) })
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cat.py"), []byte("x = 1\n"), 0o644))
	time.Sleep(300 * time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, int32(0), calls.Load())
}

func TestFileWatcher_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "dog.py")
	w, err := New(target, 0, nil)
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
