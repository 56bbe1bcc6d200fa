package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"rune/internal/history"
	"rune/internal/textutil"
)

const historyInputWidth = 32

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversion runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.HistoryEnabled() {
				return errors.New("run history is disabled (set paths.history_db)")
			}
			store, err := history.Open(cmd.Context(), cfg.Paths.HistoryDB)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Mode", "Status", "Input", "Frames", "Grid", "Size", "Elapsed"},
				historyRows(runs, time.Now()),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show (0 for all)")
	return cmd
}

func historyRows(runs []history.Run, now time.Time) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		grid := "-"
		if run.Cols > 0 {
			grid = fmt.Sprintf("%d×%d", run.Cols, run.Rows)
		}
		elapsed := "-"
		if d := run.Elapsed(); d > 0 {
			elapsed = d.Round(time.Millisecond).String()
		}
		status := string(run.Status)
		if run.ErrorKind != "" {
			status += " (" + run.ErrorKind + ")"
		}
		rows = append(rows, []string{
			humanize.RelTime(run.StartedAt, now, "ago", "from now"),
			run.Mode,
			status,
			textutil.TruncateLeft(run.InputPath, historyInputWidth),
			strconv.Itoa(run.FrameCount),
			grid,
			textutil.Ternary(run.OutputBytes > 0, humanize.Bytes(uint64(run.OutputBytes)), "-"),
			elapsed,
		})
	}
	return rows
}
