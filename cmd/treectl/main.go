// Command treectl imports Markdown outlines into the node store and prints
// stored branches from the command line.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pathtree/internal/config"
	"pathtree/internal/outline"
	"pathtree/internal/pathtree"
	"pathtree/internal/service"
	"pathtree/internal/storage"
)

// app holds what the subcommands share once the root command has run.
type app struct {
	db   *sql.DB
	tree service.TreeService
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "treectl",
		Short:         "Manage a materialized path tree stored in SQLite",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.db != nil {
				return a.db.Close()
			}
			return nil
		},
	}

	rootCmd.AddCommand(newImportCmd(a), newTreeCmd(a), newRootsCmd(a))
	return rootCmd
}

func (a *app) open() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	a.db = db
	a.tree = service.NewTreeService(storage.NewNodeRepo(db), cfg.Delimiter)
	return nil
}

func newImportCmd(a *app) *cobra.Command {
	var parentPath string

	cmd := &cobra.Command{
		Use:   "import [file.md|directory]",
		Short: "Create nodes from a Markdown outline or a directory of Markdown files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			entries, err := readOutline(ctx, args[0])
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("%s contains no headings, list items or Markdown files", args[0])
			}

			nodes, err := a.tree.ImportOutline(ctx, parentPath, entries)
			if err != nil {
				return err
			}
			for _, n := range nodes {
				fmt.Fprintln(cmd.OutOrStdout(), n.Path)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "imported %d nodes\n", len(nodes))
			return nil
		},
	}
	cmd.Flags().StringVarP(&parentPath, "parent", "p", "", "path of the node to import under (default: create roots)")
	return cmd
}

func readOutline(ctx context.Context, target string) ([]*outline.Entry, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	parser := outline.NewParser()
	if info.IsDir() {
		return parser.ScanDir(ctx, target)
	}
	content, err := os.ReadFile(target)
	if err != nil {
		return nil, err
	}
	return parser.Parse(content), nil
}

func newTreeCmd(a *app) *cobra.Command {
	var fullNames bool

	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "Print the branch rooted at path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branch, err := a.tree.Branch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printBranch(cmd.OutOrStdout(), branch, fullNames)
		},
	}
	cmd.Flags().BoolVar(&fullNames, "full-names", false, "print full names instead of indented names")
	return cmd
}

func printBranch(w io.Writer, branch *pathtree.Branch, fullNames bool) error {
	return branch.Walk(func(n *pathtree.BranchNode, depth int) error {
		if fullNames {
			name, _ := branch.FullName(n.Path, pathtree.FullNameOptions{})
			_, err := fmt.Fprintf(w, "%s\t%s\n", n.Path, name)
			return err
		}
		_, err := fmt.Fprintf(w, "%s%s (%s)\n", strings.Repeat("  ", depth), n.Name, n.Path)
		return err
	})
}

func newRootsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "List the root nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := a.tree.Roots(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range roots {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", n.Path, n.Name)
			}
			return nil
		},
	}
}
