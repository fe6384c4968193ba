package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherRerunsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "module.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o644))

	reran := make(chan struct{}, 1)
	w := New(zaptest.NewLogger(t), 20*time.Millisecond, []string{path}, func() error {
		select {
		case reran <- struct{}{}:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register, then touch the file.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("package main\n// touched\n"), 0o644))

	select {
	case <-reran:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher never triggered a re-run")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcherMissingPath(t *testing.T) {
	w := New(zaptest.NewLogger(t), time.Millisecond, []string{"no/such/file.go"}, func() error { return nil })
	err := w.Run(context.Background())
	assert.Error(t, err)
}
