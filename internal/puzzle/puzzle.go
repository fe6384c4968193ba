// Package puzzle holds the 81-cell sudoku model, the text intake format,
// and the constraint validation used to vet both input puzzles and the
// output of solver modules.
package puzzle

const (
	// AxisSize is the side length of the grid.
	AxisSize = 9
	// Size is the total cell count.
	Size = AxisSize * AxisSize
	// BoxSize is the side length of one 3x3 box.
	BoxSize = 3
)

// Puzzle is a row-major 9x9 grid. Cell values are 0-9, where 0 means
// blank. A Puzzle is immutable once built; solvers always receive a
// scratch copy, never the canonical grid.
type Puzzle [Size]int

// RowIndex maps (row, position-in-row) to a linear cell index.
func RowIndex(row, col int) int {
	return AxisSize*row + col
}

// ColIndex maps (column, position-in-column) to a linear cell index.
// It is the row mapping with its arguments swapped.
func ColIndex(col, row int) int {
	return RowIndex(row, col)
}

// BoxIndex maps (box 0-8, position 0-8 within the box) to a linear cell
// index. Boxes are numbered left to right, top to bottom.
func BoxIndex(box, pos int) int {
	return RowIndex(
		BoxSize*(box/BoxSize)+pos/BoxSize,
		BoxSize*(box%BoxSize)+pos%BoxSize,
	)
}
