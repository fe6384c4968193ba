// Reference solver module: plain depth-first backtracking over blank
// cells. Interpreted at load time; only stdlib symbols are available,
// and the puzzle buffer arrives as an 81-element slice.
package main

var Name = "backtrack"
var Author = "sudobench examples"

func Solve(cells []int) int {
	fits := func(i, v int) bool {
		row, col := i/9, i%9
		for k := 0; k < 9; k++ {
			if cells[row*9+k] == v || cells[k*9+col] == v {
				return false
			}
		}
		br, bc := row/3*3, col/3*3
		for r := br; r < br+3; r++ {
			for c := bc; c < bc+3; c++ {
				if cells[r*9+c] == v {
					return false
				}
			}
		}
		return true
	}

	var solve func(i int) bool
	solve = func(i int) bool {
		for i < 81 && cells[i] != 0 {
			i++
		}
		if i == 81 {
			return true
		}
		for v := 1; v <= 9; v++ {
			if fits(i, v) {
				cells[i] = v
				if solve(i + 1) {
					return true
				}
				cells[i] = 0
			}
		}
		return false
	}

	if !solve(0) {
		return -1
	}
	return 0
}
