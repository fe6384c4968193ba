// Package report renders run results as the fixed-format CSV table.
package report

import (
	"fmt"
	"io"

	"sudobench/internal/bench"
	"sudobench/internal/stats"
)

const header = "name,author,success,fail,average,stdev,median,min,max"

// Write prints the header and one row per module, in result order.
// Name and author were validated at load time to contain no comma and
// no line break, so values are written unescaped. The fail column is
// derived as total puzzles minus successes.
func Write(w io.Writer, results []*bench.Result, totalPuzzles int) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, res := range results {
		sum := stats.Derive(res.Timings.Data())
		_, err := fmt.Fprintf(w, "%s,%s,%d,%d,%d,%d,%d,%d,%d\n",
			res.Solver.Name(), res.Solver.Author(),
			res.Successes, totalPuzzles-res.Successes,
			sum.Average, sum.Stdev, sum.Median, sum.Min, sum.Max)
		if err != nil {
			return err
		}
	}
	return nil
}
