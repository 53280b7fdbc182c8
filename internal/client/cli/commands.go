package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// Usage returns the long description of the tally binary
func Usage() string {
	return strings.TrimSpace(usageTemplate)
}

// AddCommands registers every tally command on root.
// app returns the Cli built by the PersistentPreRunE of root.
func AddCommands(root *cobra.Command, app func() *Cli) {
	root.AddCommand(
		newCmd(app),
		listCmd(app),
		showCmd(app),
		countCmd(app),
		timeCmd(app),
		renameCmd(app),
		huntTypeCmd(app),
		charmCmd(app),
		successCmd(app),
		archiveCmd(app),
		syncCmd(app),
		exportCmd(app),
		importCmd(app),
		statusCmd(app),
	)
}

func newCmd(app func() *Cli) *cobra.Command {
	var parent string
	var empty bool

	cmd := &cobra.Command{
		Use:   "new counter|phase [name]",
		Short: "Create a counter or a phase",
		Long: `Create a counter or a phase.
A new counter starts with "Phase 1" unless --empty is given.
A phase needs --parent and continues the hunt type and charm of its counter.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			var name string
			if len(args) > 1 {
				name = args[1]
			}
			return app().runNew(cmd.Context(), kind, name, parent, empty)
		},
	}

	cmd.Flags().StringVarP(&parent, "parent", "p", "", "id of the parent counter")
	cmd.Flags().BoolVar(&empty, "empty", false, "create a counter without a first phase")
	return cmd
}

func listCmd(app func() *Cli) *cobra.Command {
	var opts listOptions
	var sortBy string

	cmd := &cobra.Command{
		Use:     "list [id]",
		Aliases: []string{"ls"},
		Short:   "Show the counter tree",
		Long: `Show the counter tree.
Top-level counters are ordered by --sort. --search keeps countables whose name
contains the pattern, together with their ancestors and descendants.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var root string
			if len(args) == 1 {
				root = args[0]
			}

			method, err := ParseSortMethod(sortBy)
			if err != nil {
				return err
			}
			opts.Sort = method

			return app().runList(cmd.Context(), root, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "include archived countables")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", string(SortCreated), "order of counters: created, name, count, time or id")
	cmd.Flags().BoolVarP(&opts.Reverse, "reverse", "r", false, "reverse the order")
	cmd.Flags().StringVar(&opts.Search, "search", "", "show only countables whose name contains the pattern")
	return cmd
}

func showCmd(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the details of a countable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runShow(cmd.Context(), args[0])
		},
	}
}

func countCmd(app func() *Cli) *cobra.Command {
	var opts countOptions

	cmd := &cobra.Command{
		Use:   "count <id> [delta]",
		Short: "Add encounters to a countable (default 1)",
		Long: `Add encounters to a countable, or set its total with --set.
On a counter the change goes to its newest phases first.
Use -- before a negative delta: tally count 1a2b -- -3`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta := int32(1)
			if len(args) == 2 {
				n, err := strconv.ParseInt(args[1], 10, 32)
				if err != nil {
					return fmt.Errorf("invalid delta %q: %w", args[1], err)
				}
				delta = int32(n)
			}
			opts.HasSet = cmd.Flags().Changed("set")
			return app().runCount(cmd.Context(), args[0], delta, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.Set, "set", 0, "set the total count instead of adding")
	cmd.Flags().BoolVar(&opts.Level, "level", false, "only change the direct phases of a counter")
	return cmd
}

func timeCmd(app func() *Cli) *cobra.Command {
	var opts timeOptions

	cmd := &cobra.Command{
		Use:   "time <id> <duration>",
		Short: "Add hunting time to a countable (1h30m or h:mm:ss)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runTime(cmd.Context(), args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Set, "set", false, "set the total time instead of adding")
	cmd.Flags().BoolVar(&opts.Level, "level", false, "only change the direct phases of a counter")
	return cmd
}

func renameCmd(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a countable",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runRename(cmd.Context(), args[0], args[1])
		},
	}
}

func huntTypeCmd(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "hunttype <id> <type>",
		Short: "Set the hunt type of a phase or of every phase of a counter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runHuntType(cmd.Context(), args[0], args[1])
		},
	}
}

func charmCmd(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "charm <id> on|off",
		Short: "Switch the shiny charm of a phase or of every phase of a counter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runCharm(cmd.Context(), args[0], args[1])
		},
	}
}

func successCmd(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "success <id>",
		Short: "Toggle the found flag of a phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runSuccess(cmd.Context(), args[0])
		},
	}
}

func archiveCmd(app func() *Cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a countable and everything below it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runArchive(cmd.Context(), args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func syncCmd(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Synchronize the local cache with the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().runSync(cmd.Context())
		},
	}
}

func exportCmd(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export the local tree as a snapshot (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stdioPath
			if len(args) == 1 {
				path = args[0]
			}
			return app().runExport(cmd.Context(), path)
		},
	}
}

func importCmd(app func() *Cli) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a snapshot into the local tree (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runImport(cmd.Context(), args[0], replace)
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "replace the local tree instead of merging")
	return cmd
}

func statusCmd(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the cache and sync status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().runStatus(cmd.Context())
		},
	}
}
