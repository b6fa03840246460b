// Package main provides the freealg CLI, which replays scenario files against
// the free constructions.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/comalice/freealg/internal/scenario"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "freealg",
		Short:         "Replay free algebra scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every step")

	logger := func(cmd *cobra.Command) *slog.Logger {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	}

	cmd.AddCommand(runCmd(logger))
	cmd.AddCommand(rulesCmd())
	return cmd
}

func runCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var (
		compact   bool
		watch     bool
		parallel  int
		stepLimit int
	)

	cmd := &cobra.Command{
		Use:   "run [file|dir]...",
		Short: "Run scenario files",
		Long: `Run scenario files and print each final element.

Directories are expanded to the .yaml and .yml files they contain. Scenarios
run concurrently; the first failure cancels the rest.

Examples:
  freealg run examples/scenarios
  freealg run --compact quadratic.yaml
  freealg run --watch examples/scenarios   # re-run on change
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expand(args)
			if err != nil {
				return err
			}
			log := logger(cmd)
			runner := scenario.NewRunner(
				scenario.WithLogger(log),
				scenario.WithCompact(compact),
				scenario.WithStepLimit(stepLimit),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = runAll(ctx, cmd.OutOrStdout(), runner, paths, parallel)
			if !watch {
				return err
			}
			if err != nil {
				log.Error("Run failed", slog.String("error", err.Error()))
			}
			return watchFiles(ctx, log, paths, func(path string) {
				if err := runAll(ctx, cmd.OutOrStdout(), runner, []string{path}, 1); err != nil {
					log.Error("Run failed", slog.String("error", err.Error()))
				}
			})
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Juxtapose products in output")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-run scenarios when their files change")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "Maximum scenarios run at once")
	cmd.Flags().IntVar(&stepLimit, "step-limit", 0, "Reject scenarios with more steps (0 = no limit)")
	return cmd
}

// expand replaces directories with the scenario files inside them.
func expand(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, filepath.Clean(arg))
			continue
		}
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(arg, pattern))
			if err != nil {
				return nil, err
			}
			paths = append(paths, matches...)
		}
	}
	slices.Sort(paths)
	paths = slices.Compact(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %v", args)
	}
	return paths, nil
}

// runAll runs paths with at most parallel scenarios in flight and prints the
// results in path order.
func runAll(ctx context.Context, out io.Writer, runner *scenario.Runner, paths []string, parallel int) error {
	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	results := make([]scenario.Result, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			res, err := runner.RunFile(ctx, path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	err := g.Wait()
	for _, res := range results {
		if res.Name != "" {
			fmt.Fprintf(out, "%s: %s\n", res.Name, res.Output)
		}
	}
	return err
}
