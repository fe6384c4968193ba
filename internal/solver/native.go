package solver

import (
	"fmt"
	"plugin"

	"sudobench/internal/puzzle"
)

// native is a module loaded from a shared object built with
// -buildmode=plugin. The plugin must export Name and Author string
// variables and a Solve function with the contract signature.
//
// Go never unloads plugins, so a changed .so cannot be picked up without
// restarting the process.
type native struct {
	name   string
	author string
	solve  func(*[puzzle.Size]int) int
}

func (m *native) Name() string   { return m.name }
func (m *native) Author() string { return m.author }

func (m *native) Solve(cells *[puzzle.Size]int) int {
	return m.solve(cells)
}

func loadNative(path string) (Solver, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	name, err := lookupString(p, "Name", path)
	if err != nil {
		return nil, err
	}
	author, err := lookupString(p, "Author", path)
	if err != nil {
		return nil, err
	}

	solveSym, err := p.Lookup("Solve")
	if err != nil {
		return nil, fmt.Errorf("%w: Solve in %s: %v", ErrMissingSymbol, path, err)
	}
	solve, ok := solveSym.(func(*[puzzle.Size]int) int)
	if !ok {
		return nil, fmt.Errorf("%w: Solve in %s has wrong signature %T",
			ErrMissingSymbol, path, solveSym)
	}

	if err := validateLabels(name, author, path); err != nil {
		return nil, err
	}
	return &native{name: name, author: author, solve: solve}, nil
}

func lookupString(p *plugin.Plugin, symbol, path string) (string, error) {
	sym, err := p.Lookup(symbol)
	if err != nil {
		return "", fmt.Errorf("%w: %s in %s: %v", ErrMissingSymbol, symbol, path, err)
	}
	s, ok := sym.(*string)
	if !ok {
		return "", fmt.Errorf("%w: %s in %s is %T, want *string",
			ErrMissingSymbol, symbol, path, sym)
	}
	return *s, nil
}
