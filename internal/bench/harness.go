// Package bench runs solver modules against puzzles, times them on the
// process CPU clock, and accumulates per-module results.
package bench

import (
	"time"

	"sudobench/internal/puzzle"
	"sudobench/internal/solver"
	"sudobench/internal/stats"
)

// Attempt is the outcome of one (module, puzzle) benchmark. Duration is
// only meaningful when OK is true.
type Attempt struct {
	OK       bool
	Duration uint64 // microseconds of process CPU time
}

// Result accumulates one module's outcomes across a run. It is touched
// only by the single in-flight attempt, never shared across modules.
type Result struct {
	Solver    solver.Solver
	Successes int
	Failures  int
	Timings   *stats.Recorder
}

// Benchmark runs one solver against one puzzle. The solver only ever
// sees a scratch copy; the canonical puzzle stays untouched regardless
// of what the module does to its buffer.
//
// A negative solve status and a failed cross-check both collapse into
// the same failed attempt; neither records a duration. The returned
// error is reserved for clock failures, which are fatal to the run.
func Benchmark(s solver.Solver, p *puzzle.Puzzle, timeout time.Duration) (Attempt, error) {
	scratch := *p

	start, err := cpuTimeMicros()
	if err != nil {
		return Attempt{}, err
	}
	status := invoke(s, (*[puzzle.Size]int)(&scratch), timeout)
	end, err := cpuTimeMicros()
	if err != nil {
		return Attempt{}, err
	}

	if status < 0 {
		return Attempt{}, nil
	}
	if err := puzzle.CrossCheck(p, &scratch); err != nil {
		return Attempt{}, nil
	}
	return Attempt{OK: true, Duration: end - start}, nil
}

// invoke calls Solve, optionally bounding the wait. With no bound the
// call can block forever, which matches the historical behavior of the
// harness. When the bound fires the attempt counts as a failure; the
// abandoned goroutine is left to run to completion, there is no way to
// kill it. While it runs it keeps charging the process CPU clock, so
// every later attempt in the run measures high by whatever the
// abandoned solver burns in the background.
func invoke(s solver.Solver, cells *[puzzle.Size]int, timeout time.Duration) int {
	if timeout <= 0 {
		return s.Solve(cells)
	}

	done := make(chan int, 1)
	go func() {
		done <- s.Solve(cells)
	}()
	select {
	case status := <-done:
		return status
	case <-time.After(timeout):
		return -1
	}
}
