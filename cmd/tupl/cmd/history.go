package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/tuplang/foundation/core/log"
	"github.com/msto63/tuplang/foundation/utils/filex"
	"github.com/msto63/tuplang/internal/history"
)

var (
	historyLimit int
	historyStats bool
	historyPrune time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded check runs",
	Long: `Lists the most recent runs stored by "tupl check --record". A missing
history database is reported as an empty history and is not created.

With --prune, runs older than the given duration are deleted first.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to list")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "print run counts per status")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "delete runs older than this duration")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if !filex.Exists(settings.HistoryPath) {
		fmt.Fprint(cmd.OutOrStdout(), renderer.Runs(nil))
		return nil
	}

	store, err := history.Open(history.Config{Path: settings.HistoryPath})
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if historyPrune > 0 {
		n, err := store.Prune(ctx, historyPrune)
		if err != nil {
			return err
		}
		logger.Info("history pruned", mdwlog.Fields{"deleted": n, "olderThan": historyPrune.String()})
	}

	if historyStats {
		stats, err := store.Stats(ctx)
		if err != nil {
			return err
		}
		statuses := make([]history.Status, 0, len(stats))
		for s := range stats {
			statuses = append(statuses, s)
		}
		sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
		for _, s := range statuses {
			fmt.Fprintf(out, "%-15s %d\n", s, stats[s])
		}
		return nil
	}

	runs, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderer.Runs(runs))
	return nil
}
