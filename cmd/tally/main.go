package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/P3rtang/tallyWeb-sub000/internal/client/cli"
	"github.com/P3rtang/tallyWeb-sub000/internal/client/iocli"
	"github.com/P3rtang/tallyWeb-sub000/internal/client/storage/boltdb"
	"github.com/P3rtang/tallyWeb-sub000/internal/client/sync"
	"github.com/P3rtang/tallyWeb-sub000/internal/config"
	"github.com/P3rtang/tallyWeb-sub000/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// app держит открытые хранилища на время выполнения команды
type app struct {
	cli     *cli.Cli
	closers []func() error
}

func main() {
	a := &app{}
	root := newRootCmd(a)

	err := root.ExecuteContext(context.Background())
	if closeErr := a.close(); closeErr != nil {
		slog.Error("failed to close storage", "error", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	var (
		overrides   config.Overrides
		showVersion bool
	)

	root := &cobra.Command{
		Use:           "tally",
		Short:         "Offline-first shiny hunt counter",
		Long:          cli.Usage(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsStorage(cmd) {
				return nil
			}
			return a.open(cmd.Context(), overrides)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&overrides.DBPath, "db", "", "path to the local cache (env TALLY_DB)")
	flags.StringVar(&overrides.ServerDBPath, "server-db", "", "path to the server database (env TALLY_SERVER_DB)")
	flags.StringVar(&overrides.Owner, "owner", "", "owner id of the tree (env TALLY_OWNER)")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "debug, info, warn or error (env TALLY_LOG_LEVEL)")
	root.Flags().BoolVar(&showVersion, "version", false, "Show version information")

	cli.AddCommands(root, func() *cli.Cli { return a.cli })
	return root
}

// needsStorage reports whether cmd works on the trees.
// Корневой команде (--version), help и completion хранилища не нужны
func needsStorage(cmd *cobra.Command) bool {
	if cmd == cmd.Root() {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// open reads the configuration and wires the storages into the cli
func (a *app) open(ctx context.Context, overrides config.Overrides) error {
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
	slog.SetDefault(logger)

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open local cache: %w", err)
	}
	a.closers = append(a.closers, boltStorage.Close)

	// Авторитетное хранилище открывается сразу, миграции применяются при открытии
	serverStorage, err := sqlite.New(ctx, cfg.ServerDBPath)
	if err != nil {
		return fmt.Errorf("failed to open server database: %w", err)
	}
	a.closers = append(a.closers, serverStorage.Close)

	configured, ok := cfg.OwnerID()
	owner, err := cli.ResolveOwner(ctx, boltStorage, configured, ok)
	if err != nil {
		return err
	}
	logger.Debug("Opened storages", "db", cfg.DBPath, "server_db", cfg.ServerDBPath, "owner", owner)

	// boltStorage реализует и CountableStorage, и MetadataStorage
	syncService := sync.NewService(serverStorage, boltStorage, boltStorage, logger)
	a.cli = cli.New(iocli.NewStdio(), boltStorage, boltStorage, syncService, logger, owner)

	return nil
}

// close закрывает хранилища в обратном порядке
func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "Tally Client\n")
	fmt.Fprintf(w, "Version:    %s\n", Version)
	fmt.Fprintf(w, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(w, "Git Commit: %s\n", GitCommit)
}
