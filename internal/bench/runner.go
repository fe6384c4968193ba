package bench

import (
	"time"

	"go.uber.org/zap"

	"sudobench/internal/puzzle"
	"sudobench/internal/solver"
	"sudobench/internal/stats"
)

// Runner drives the full puzzles-by-modules benchmark grid, strictly
// sequential: exactly one (module, puzzle) attempt is in flight at any
// instant.
type Runner struct {
	log     *zap.Logger
	timeout time.Duration
}

// NewRunner returns a Runner. A zero timeout disables the per-attempt
// bound entirely.
func NewRunner(log *zap.Logger, timeout time.Duration) *Runner {
	return &Runner{log: log, timeout: timeout}
}

// Run benchmarks every module against every puzzle, puzzles in the
// outer loop and modules inner, in the order modules were supplied.
// Each Recorder is pre-sized to the puzzle count, so inserts cannot
// overflow; an overflow or a clock failure aborts the run.
func (r *Runner) Run(solvers []solver.Solver, puzzles []puzzle.Puzzle) ([]*Result, error) {
	results := make([]*Result, len(solvers))
	for i, s := range solvers {
		results[i] = &Result{Solver: s, Timings: stats.NewRecorder(len(puzzles))}
	}

	for pi := range puzzles {
		for mi, s := range solvers {
			att, err := Benchmark(s, &puzzles[pi], r.timeout)
			if err != nil {
				return nil, err
			}
			res := results[mi]
			if !att.OK {
				res.Failures++
				r.log.Debug("attempt failed",
					zap.String("module", s.Name()),
					zap.Int("puzzle", pi))
				continue
			}
			if err := res.Timings.Insert(att.Duration); err != nil {
				return nil, err
			}
			res.Successes++
			r.log.Debug("attempt succeeded",
				zap.String("module", s.Name()),
				zap.Int("puzzle", pi),
				zap.Uint64("duration_us", att.Duration))
		}
	}

	for _, res := range results {
		r.log.Info("module finished",
			zap.String("module", res.Solver.Name()),
			zap.Int("successes", res.Successes),
			zap.Int("failures", res.Failures))
	}
	return results, nil
}
