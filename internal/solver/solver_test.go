package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLabel(t *testing.T) {
	t.Run("plain string", func(t *testing.T) {
		assert.NoError(t, ValidateLabel("naive backtracker"))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.NoError(t, ValidateLabel(""))
	})

	t.Run("79 bytes is the longest allowed", func(t *testing.T) {
		assert.NoError(t, ValidateLabel(strings.Repeat("a", 79)))
	})

	t.Run("80 bytes is rejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidateLabel(strings.Repeat("a", 80)), ErrBadLabel)
	})

	t.Run("comma is rejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidateLabel("doe, jane"), ErrBadLabel)
	})

	t.Run("line break is rejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidateLabel("two\nlines"), ErrBadLabel)
		assert.ErrorIs(t, ValidateLabel("carriage\rreturn"), ErrBadLabel)
	})
}

func TestLoadDispatch(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load("solver.wasm")
		assert.ErrorIs(t, err, ErrLoad)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("no/such/module.go")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLoad)
	})
}
