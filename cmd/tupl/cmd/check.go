package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/tuplang/foundation/core/log"
	"github.com/msto63/tuplang/internal/history"
	"github.com/msto63/tuplang/tupl/ast"
)

var (
	checkTree   bool
	checkRecord bool
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check TUPL programs",
	Long: `Runs lexical, syntax and semantic analysis on each FILE.

Prints "syntax OK" for a correct program and one line per semantic
diagnostic otherwise. Exits with status 1 when any file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkFiles(cmd, args, checkTree, checkRecord)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkTree, "tree", false, "print the syntax tree of each file")
	checkCmd.Flags().BoolVar(&checkRecord, "record", false, "store each run in the check history")
	rootCmd.AddCommand(checkCmd)
}

// checkFiles checks every path and reports errCheckFailed when at least
// one of them has a fatal error or a diagnostic. History failures only
// log a warning.
func checkFiles(cmd *cobra.Command, paths []string, withTree, record bool) error {
	out := cmd.OutOrStdout()

	var store history.Store
	if record {
		s, err := history.Open(history.Config{Path: settings.HistoryPath})
		if err != nil {
			logger.WarnWithErr("check history unavailable, runs are not recorded", err,
				mdwlog.Fields{"path": settings.HistoryPath})
		} else {
			defer s.Close()
			store = s
		}
	}

	failed := 0
	for _, path := range paths {
		if len(paths) > 1 {
			fmt.Fprintln(out, renderer.Title(path))
		}

		result, err := engine.CheckFile(path)
		switch {
		case err != nil:
			fmt.Fprintln(out, renderer.Error(err))
			failed++
		case !result.Valid():
			fmt.Fprint(out, renderer.Diagnostics(result.Diagnostics))
			failed++
		default:
			fmt.Fprintln(out, renderer.OK())
		}

		if withTree && result != nil {
			fmt.Fprint(out, renderer.Tree(ast.Sprint(result.Program)))
		}

		if store != nil {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			recErr := store.Record(ctx, history.NewRun(path, result, err))
			cancel()
			if recErr != nil {
				logger.WarnWithErr("failed to record check run", recErr, mdwlog.Fields{"path": path})
			}
		}
	}

	logger.Debug("check finished", mdwlog.Fields{"files": len(paths), "failed": failed})
	if failed > 0 {
		return errCheckFailed
	}
	return nil
}
