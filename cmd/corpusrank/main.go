package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vertex-lab/corpusrank/pkg/corpus"
	"github.com/vertex-lab/corpusrank/pkg/models"
	"github.com/vertex-lab/corpusrank/pkg/pagerank"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := NewRootCommand(os.Environ(), os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

// NewRootCommand() returns the corpusrank command. The estimators parameters
// are read from environ.
func NewRootCommand(environ []string, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "corpusrank <corpus-dir>",
		Short: "Estimate the PageRank of a corpus of HTML pages",
		Long: `corpusrank reads the HTML pages of a directory, extracts the links between
them and estimates the PageRank of each page, first by sampling a random
surfer and then by iterating the PageRank formula until convergence.

The parameters are read from the environment: DAMPING, SAMPLES, TOLERANCE,
MAX_ITERATIONS, SEED, LOGS, LOG_LEVEL and PRINT_CONFIG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// from here on, errors are not about usage
			cmd.SilenceUsage = true

			config, err := LoadConfig(environ, stderr)
			if err != nil {
				return err
			}
			defer config.CloseLogs()

			return run(cmd.Context(), config, args[0], stdout)
		},
	}

	// usage and help are diagnostics; stdout only gets the results
	root.SetOut(stderr)
	root.SetErr(stderr)
	return root
}

// run loads the corpus in dir, runs both estimators and prints their results.
func run(ctx context.Context, config *Config, dir string, stdout io.Writer) error {
	log := config.Log
	params := config.Pagerank

	if config.PrintConfig {
		config.Print(config.LogWriter)
	}

	G, err := corpus.Load(ctx, dir)
	if err != nil {
		return err
	}
	log.Info("loaded %d pages from %s", G.Size(), dir)

	sampled, err := pagerank.Sample(G, params.Damping, params.Samples, pagerank.NewRand(params.Seed))
	if err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}

	iterated, err := pagerank.Iterate(G, params.Damping, params.Tolerance, params.MaxIterations)
	switch {
	case errors.Is(err, models.ErrNotConverged):
		log.Warn("printing the last iteration: %v", err)

	case err != nil:
		return fmt.Errorf("iteration failed: %w", err)
	}

	log.Debug("L1 distance between the estimates: %.4f", models.Distance(iterated, sampled))

	printRanks(stdout, fmt.Sprintf("PageRank Results from Sampling (n = %d)", params.Samples), G.Pages(), sampled)
	printRanks(stdout, "PageRank Results from Iteration", G.Pages(), iterated)
	return nil
}

// printRanks() prints the title followed by the rank of each page, in the given order.
func printRanks(w io.Writer, title string, pages []string, ranks models.RankVector) {
	fmt.Fprintln(w, title)
	for _, page := range pages {
		fmt.Fprintf(w, "  %s: %.4f\n", page, ranks[page])
	}
}
