package solver

import (
	"fmt"
	"os"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"sudobench/internal/puzzle"
)

// interpreted is a module evaluated by the yaegi interpreter. Running
// foreign solver code through the interpreter avoids a compile step and
// the dynamic-linking pitfalls of native plugins; the module sees only
// stdlib symbols.
//
// Interpreted modules declare Solve(cells []int) int rather than the
// pointer-to-array form: the interpreter cannot index the buffer through
// a wrapped *[81]int value, so the loader hands the module the backing
// array as a slice. Writes through the slice land in the harness's
// scratch buffer as usual.
type interpreted struct {
	name   string
	author string
	solve  func([]int) int
}

func (m *interpreted) Name() string   { return m.name }
func (m *interpreted) Author() string { return m.author }

func (m *interpreted) Solve(cells *[puzzle.Size]int) int {
	return m.solve(cells[:])
}

// loadInterpreted evaluates a Go source file and resolves the three
// required bindings from its main package scope.
func loadInterpreted(path string) (Solver, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("%w: stdlib symbols: %v", ErrLoad, err)
	}
	if _, err := i.Eval(string(src)); err != nil {
		return nil, fmt.Errorf("%w: evaluating %s: %v", ErrLoad, path, err)
	}

	name, err := evalString(i, "main.Name")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	author, err := evalString(i, "main.Author")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	solveVal, err := i.Eval("main.Solve")
	if err != nil {
		return nil, fmt.Errorf("%w: Solve in %s: %v", ErrMissingSymbol, path, err)
	}
	solve, ok := solveVal.Interface().(func([]int) int)
	if !ok {
		return nil, fmt.Errorf("%w: Solve in %s has wrong signature %T",
			ErrMissingSymbol, path, solveVal.Interface())
	}

	if err := validateLabels(name, author, path); err != nil {
		return nil, err
	}
	return &interpreted{name: name, author: author, solve: solve}, nil
}

func evalString(i *interp.Interpreter, symbol string) (string, error) {
	v, err := i.Eval(symbol)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMissingSymbol, symbol, err)
	}
	s, ok := v.Interface().(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want string", ErrMissingSymbol, symbol, v.Interface())
	}
	return s, nil
}
