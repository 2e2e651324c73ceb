package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio/folio/pkg/logger"
)

func tempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewWatcher(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config path", func(t *testing.T) {
		path := tempConfig(t, "app:\n  name: test\n")
		w, err := NewWatcher(path, loader)
		require.NoError(t, err)
		defer w.Stop()

		assert.Equal(t, path, w.ConfigPath())
		assert.Equal(t, 500*time.Millisecond, w.debounce)
	})

	t.Run("empty config path", func(t *testing.T) {
		_, err := NewWatcher("", loader)
		assert.Error(t, err)
	})

	t.Run("options", func(t *testing.T) {
		path := tempConfig(t, "app:\n  name: test\n")
		l := logger.Nop()
		w, err := NewWatcher(path, loader, WithDebounce(100*time.Millisecond), WithLogger(l))
		require.NoError(t, err)
		defer w.Stop()

		assert.Equal(t, 100*time.Millisecond, w.debounce)
		assert.Same(t, l, w.log)
	})
}

func TestWatcher_DetectsChanges(t *testing.T) {
	path := tempConfig(t, "log:\n  level: info\n")

	w, err := NewWatcher(path, NewLoader(), WithDebounce(50*time.Millisecond), WithLogger(logger.Nop()))
	require.NoError(t, err)
	defer w.Stop()

	received := make(chan *Config, 4)
	w.OnChange(func(cfg *Config) { received <- cfg })

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	go func() { _ = w.Watch(ctx) }()

	require.Eventually(t, w.IsRunning, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	select {
	case cfg := <-received:
		assert.Equal(t, "debug", cfg.Log.Level)
	case <-ctx.Done():
		t.Fatal("callback was not called after config change")
	}
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	path := tempConfig(t, "app:\n  name: test\n")
	w, err := NewWatcher(path, NewLoader())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	require.Eventually(t, w.IsRunning, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}

func TestWatcher_PreventsDoubleWatch(t *testing.T) {
	path := tempConfig(t, "app:\n  name: test\n")
	w, err := NewWatcher(path, NewLoader())
	require.NoError(t, err)
	defer w.Stop()

	go func() { _ = w.Watch(context.Background()) }()
	require.Eventually(t, w.IsRunning, time.Second, 10*time.Millisecond)

	assert.Error(t, w.Watch(context.Background()))
}

func TestWatcher_OnChangeRunsAllCallbacks(t *testing.T) {
	path := tempConfig(t, "app:\n  name: test\n")
	w, err := NewWatcher(path, NewLoader(), WithLogger(logger.Nop()))
	require.NoError(t, err)
	defer w.Stop()

	var mu sync.Mutex
	var order []int
	w.OnChange(func(*Config) { mu.Lock(); order = append(order, 1); mu.Unlock() })
	w.OnChange(func(*Config) { panic("boom") })
	w.OnChange(func(*Config) { mu.Lock(); order = append(order, 3); mu.Unlock() })

	w.reloadConfig(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 3}, order)
}

func TestWatcher_InvalidReloadSkipsCallbacks(t *testing.T) {
	path := tempConfig(t, "storage:\n  type: nope\n")
	w, err := NewWatcher(path, NewLoader(), WithLogger(logger.Nop()))
	require.NoError(t, err)
	defer w.Stop()

	called := false
	w.OnChange(func(*Config) { called = true })
	w.reloadConfig(context.Background())

	assert.False(t, called)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	path := tempConfig(t, "app:\n  name: test\n")
	w, err := NewWatcher(path, NewLoader())
	require.NoError(t, err)

	go func() { _ = w.Watch(context.Background()) }()
	require.Eventually(t, w.IsRunning, time.Second, 10*time.Millisecond)

	require.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
	assert.Eventually(t, func() bool { return !w.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestWatcher_NonExistentFile(t *testing.T) {
	w, err := NewWatcher("/nonexistent/config.yaml", NewLoader())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	assert.Error(t, w.Watch(ctx))
}

func TestLogLevelReloader(t *testing.T) {
	l := logger.New(&logger.Config{Level: logger.InfoLevel, Writer: os.Stderr})
	apply := LogLevelReloader(l)

	cfg := DefaultConfig()
	cfg.Log.Level = "debug"
	apply(cfg)
	assert.Equal(t, logger.DebugLevel, l.GetLevel())

	cfg.Log.Level = "error"
	apply(cfg)
	assert.Equal(t, logger.ErrorLevel, l.GetLevel())
}
