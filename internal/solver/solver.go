// Package solver defines the contract a pluggable sudoku-solving module
// must satisfy and the loaders that bring one into the process.
//
// A module exposes three bindings: Name and Author strings and a Solve
// function. Solve receives a mutable 81-cell buffer pre-filled with the
// puzzle (blanks as 0) and returns a status code; non-negative means the
// buffer now holds a full solution attempt. On a negative status the
// buffer contents are undefined and must not be trusted.
//
// The buffer form depends on the backend: native plugins export
// Solve(cells *[81]int) int, while interpreted Go source modules declare
// Solve(cells []int) int and receive the same buffer as an 81-element
// slice (see the interpreted loader for why).
package solver

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"sudobench/internal/puzzle"
)

var (
	// ErrLoad reports a module that could not be brought into the process.
	ErrLoad = errors.New("module load failed")
	// ErrMissingSymbol reports a module lacking one of the three
	// required bindings, or exposing one with the wrong type.
	ErrMissingSymbol = errors.New("module missing required symbol")
	// ErrBadLabel reports a name or author string that fails validation.
	ErrBadLabel = errors.New("invalid module label")
)

// maxLabelLen bounds name and author strings. They appear unescaped in a
// comma-delimited report, hence the comma and line-break restrictions.
const maxLabelLen = 79

// Solver is a loaded module. Implementations are read-only after load
// and are never reloaded mid-run.
type Solver interface {
	Name() string
	Author() string
	Solve(cells *[puzzle.Size]int) int
}

// ValidateLabel enforces the report-safety rules on a name or author
// string: shorter than 80 bytes, no comma, no line break.
func ValidateLabel(s string) error {
	if len(s) > maxLabelLen {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrBadLabel, len(s), maxLabelLen)
	}
	if strings.ContainsAny(s, ",\n\r") {
		return fmt.Errorf("%w: contains comma or line break", ErrBadLabel)
	}
	return nil
}

// Load brings a solver module into the process. Go source files are
// interpreted; .so files are opened as native Go plugins. A load failure
// is fatal to the run: a benchmark with a missing comparison subject is
// meaningless.
func Load(path string) (Solver, error) {
	switch ext := filepath.Ext(path); ext {
	case ".go":
		return loadInterpreted(path)
	case ".so":
		return loadNative(path)
	default:
		return nil, fmt.Errorf("%w: unsupported module type %q", ErrLoad, ext)
	}
}

func validateLabels(name, author, path string) error {
	if err := ValidateLabel(name); err != nil {
		return fmt.Errorf("name of %s: %w", path, err)
	}
	if err := ValidateLabel(author); err != nil {
		return fmt.Errorf("author of %s: %w", path, err)
	}
	return nil
}
