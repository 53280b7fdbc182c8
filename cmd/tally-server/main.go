package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/P3rtang/tallyWeb-sub000/internal/config"
	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		overrides   config.Overrides
		showVersion bool
	)

	root := &cobra.Command{
		Use:           "tally-server",
		Short:         "Administer the authoritative tally database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&overrides.ServerDBPath, "server-db", "", "path to the server database (env TALLY_SERVER_DB)")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "debug, info, warn or error (env TALLY_LOG_LEVEL)")
	root.Flags().BoolVar(&showVersion, "version", false, "Show version information")

	root.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending migrations and print the schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withStorage(cmd.Context(), overrides, func(s *sqlite.Storage, logger *slog.Logger) error {
					version, err := s.SchemaVersion()
					if err != nil {
						return err
					}
					logger.Info("Database migrated", "version", version)
					fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d\n", version)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "summary",
			Short: "Print the totals of every owner",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withStorage(cmd.Context(), overrides, func(s *sqlite.Storage, _ *slog.Logger) error {
					return printSummary(cmd.Context(), cmd.OutOrStdout(), s)
				})
			},
		},
	)

	return root
}

// withStorage opens the server database for the duration of fn
func withStorage(ctx context.Context, overrides config.Overrides, fn func(s *sqlite.Storage, logger *slog.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Override(overrides); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))

	// Миграции применяются при открытии
	s, err := sqlite.New(ctx, cfg.ServerDBPath)
	if err != nil {
		return fmt.Errorf("failed to open server database: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	return fn(s, logger)
}

// ownerSummary totals of one owner's tree
type ownerSummary struct {
	Owner     string
	Nodes     int
	Counters  int
	Completed int
	Count     int64
	Elapsed   string
}

func summarize(ctx context.Context, s *sqlite.Storage) ([]ownerSummary, error) {
	owners, err := s.ListOwners(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ownerSummary, 0, len(owners))
	for _, owner := range owners {
		records, err := s.GetOwnerCountables(ctx, owner)
		if err != nil {
			return nil, err
		}
		store, err := countable.FromRecords(owner, records)
		if err != nil {
			return nil, fmt.Errorf("owner %s: %w", owner, err)
		}
		roots, err := store.RootNodes()
		if err != nil {
			return nil, err
		}

		u := store.Recursive().Unchecked()
		sum := ownerSummary{Owner: owner.String(), Nodes: store.Len(), Counters: len(roots)}
		var elapsed int64
		for _, root := range roots {
			sum.Count += int64(u.Count(root))
			sum.Completed += u.Completed(root)
			elapsed += int64(u.Time(root))
		}
		sum.Elapsed = formatElapsed(elapsed)
		summaries = append(summaries, sum)
	}

	return summaries, nil
}

func printSummary(ctx context.Context, w io.Writer, s *sqlite.Storage) error {
	summaries, err := summarize(ctx, s)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No owners found.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %6s  %8s  %10s  %10s  %9s\n", "OWNER", "NODES", "COUNTERS", "COUNT", "TIME", "COMPLETED")
	for _, sum := range summaries {
		fmt.Fprintf(w, "%-36s  %6d  %8d  %10d  %10s  %9d\n",
			sum.Owner, sum.Nodes, sum.Counters, sum.Count, sum.Elapsed, sum.Completed)
	}
	return nil
}

// formatElapsed печатает наносекунды как h:mm:ss
func formatElapsed(ns int64) string {
	secs := ns / 1e9
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "Tally Server\n")
	fmt.Fprintf(w, "Version:    %s\n", Version)
	fmt.Fprintf(w, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(w, "Git Commit: %s\n", GitCommit)
}
