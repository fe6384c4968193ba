// sudobench loads solver modules sharing a common binary contract, runs
// each one against every puzzle read from the input stream, and writes
// per-module timing statistics to stdout as CSV.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sudobench/internal/bench"
	"sudobench/internal/config"
	"sudobench/internal/puzzle"
	"sudobench/internal/report"
	"sudobench/internal/solver"
	"sudobench/internal/watch"
)

var (
	// Global flags
	verbose      bool
	cfgPath      string
	watchMode    bool
	solveTimeout time.Duration

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sudobench [module...]",
	Short: "Benchmark pluggable sudoku solver modules",
	Long: `sudobench benchmarks competing sudoku solver implementations that
share a common binary contract.

A module is either a Go source file, interpreted at load time, or a
native Go plugin (.so). Each must expose a Name string, an Author
string, and a Solve function returning a non-negative status on
success: interpreted modules declare Solve(cells []int) int, native
plugins Solve(cells *[81]int) int. Puzzles are read from stdin as
back-to-back frames of nine nine-digit lines, 0 meaning blank.

Every module is run against every puzzle; each attempt is timed on the
process CPU clock and its output cross-checked against the puzzle. The
report is one CSV row per module:

  name,author,success,fail,average,stdev,median,min,max`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		if verbose || cfg.Logging.Verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if logger, err = zapCfg.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runBench,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Configuration file (YAML)")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-run when a module file changes")
	rootCmd.Flags().DurationVar(&solveTimeout, "solve-timeout", 0, "Bound a single solve call (0 waits forever)")
}

func runBench(cmd *cobra.Command, args []string) error {
	log := logger.With(zap.String("run_id", uuid.NewString()))

	in := cmd.InOrStdin()
	if cfg.Puzzles != "" {
		f, err := os.Open(cfg.Puzzles)
		if err != nil {
			return fmt.Errorf("open puzzles: %w", err)
		}
		defer f.Close()
		in = f
	}
	puzzles, err := puzzle.ReadAll(in)
	if err != nil {
		return err
	}
	if len(puzzles) == 0 {
		return errors.New("no puzzles")
	}
	log.Info("puzzles loaded", zap.Int("count", len(puzzles)))

	timeout := solveTimeout
	if !cmd.Flags().Changed("solve-timeout") {
		if timeout, err = cfg.SolveTimeoutDuration(); err != nil {
			return err
		}
	}

	runner := bench.NewRunner(log, timeout)
	run := func() error {
		solvers, err := loadSolvers(log, args)
		if err != nil {
			return err
		}
		results, err := runner.Run(solvers, puzzles)
		if err != nil {
			return err
		}
		return report.Write(cmd.OutOrStdout(), results, len(puzzles))
	}

	if err := run(); err != nil {
		return err
	}
	if !watchMode {
		return nil
	}

	debounce, err := cfg.WatchDebounce()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := watch.New(log, debounce, args, run).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("watch stopped")
	return nil
}

func loadSolvers(log *zap.Logger, paths []string) ([]solver.Solver, error) {
	solvers := make([]solver.Solver, 0, len(paths))
	for _, path := range paths {
		s, err := solver.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load module %s: %w", path, err)
		}
		log.Info("module loaded",
			zap.String("path", path),
			zap.String("name", s.Name()),
			zap.String("author", s.Author()))
		solvers = append(solvers, s)
	}
	return solvers, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
