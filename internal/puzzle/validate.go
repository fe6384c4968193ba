package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrCellRange reports a cell value outside [0,9].
	ErrCellRange = errors.New("cell value out of range")
	// ErrConflict reports a value repeated within a row, column, or box.
	ErrConflict = errors.New("duplicate value in group")
	// ErrSolutionRange reports a solution cell outside [1,9]. Solutions
	// may not contain blanks.
	ErrSolutionRange = errors.New("solution cell out of range")
	// ErrGivenMismatch reports a solution that changed a given cell.
	ErrGivenMismatch = errors.New("solution changes a given cell")
)

// indexFunc resolves (group, position) to a linear cell index. The three
// mappings share it so one group-checking routine covers rows, columns,
// and boxes alike.
type indexFunc func(group, pos int) int

var groupIndexes = [...]indexFunc{RowIndex, ColIndex, BoxIndex}

// Check verifies the sudoku invariant: every cell in [0,9], and no value
// 1-9 repeated within any of the 27 groups. Blank cells never conflict.
func Check(p *Puzzle) error {
	for i, v := range p {
		if v < 0 || v > 9 {
			return fmt.Errorf("%w: cell %d holds %d", ErrCellRange, i, v)
		}
	}
	for group := 0; group < AxisSize; group++ {
		for _, index := range groupIndexes {
			if err := checkGroup(p, index, group); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkGroup(p *Puzzle, index indexFunc, group int) error {
	var seen [AxisSize]bool
	for pos := 0; pos < AxisSize; pos++ {
		v := p[index(group, pos)]
		if v == 0 {
			continue
		}
		if seen[v-1] {
			return fmt.Errorf("%w: value %d repeats", ErrConflict, v)
		}
		seen[v-1] = true
	}
	return nil
}

// CrossCheck verifies that candidate is a complete, constraint-satisfying
// solution of given: no blanks, every given cell preserved, and Check
// passing independently.
func CrossCheck(given, candidate *Puzzle) error {
	for i := 0; i < Size; i++ {
		if candidate[i] < 1 || candidate[i] > 9 {
			return fmt.Errorf("%w: cell %d holds %d", ErrSolutionRange, i, candidate[i])
		}
		if given[i] > 0 && given[i] != candidate[i] {
			return fmt.Errorf("%w: cell %d", ErrGivenMismatch, i)
		}
	}
	return Check(candidate)
}
