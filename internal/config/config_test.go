package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Empty(t, cfg.Puzzles)
		assert.Empty(t, cfg.SolveTimeout)
		assert.Equal(t, "500ms", cfg.Watch.Debounce)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sudobench.yaml")
		data := "puzzles: /var/lib/puzzles.txt\nsolve_timeout: 30s\nwatch:\n  debounce: 1s\nlogging:\n  verbose: true\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/puzzles.txt", cfg.Puzzles)
		assert.Equal(t, "30s", cfg.SolveTimeout)
		assert.Equal(t, "1s", cfg.Watch.Debounce)
		assert.True(t, cfg.Logging.Verbose)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("puzzles: [unclosed"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("puzzles path", func(t *testing.T) {
		t.Setenv("SUDOBENCH_PUZZLES", "/tmp/override.txt")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/override.txt", cfg.Puzzles)
	})

	t.Run("solve timeout", func(t *testing.T) {
		t.Setenv("SUDOBENCH_SOLVE_TIMEOUT", "5s")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "5s", cfg.SolveTimeout)
	})

	t.Run("verbose", func(t *testing.T) {
		t.Setenv("SUDOBENCH_VERBOSE", "true")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.Logging.Verbose)
	})
}

func TestSolveTimeoutDuration(t *testing.T) {
	t.Run("empty disables the bound", func(t *testing.T) {
		d, err := (&Config{}).SolveTimeoutDuration()
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), d)
	})

	t.Run("zero disables the bound", func(t *testing.T) {
		d, err := (&Config{SolveTimeout: "0"}).SolveTimeoutDuration()
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), d)
	})

	t.Run("parses durations", func(t *testing.T) {
		d, err := (&Config{SolveTimeout: "1m30s"}).SolveTimeoutDuration()
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, d)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := (&Config{SolveTimeout: "soon"}).SolveTimeoutDuration()
		assert.Error(t, err)
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := (&Config{SolveTimeout: "-1s"}).SolveTimeoutDuration()
		assert.Error(t, err)
	})
}
