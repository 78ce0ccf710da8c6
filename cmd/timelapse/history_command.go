package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/OliverBailey/runelite-timelapse/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past render runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "History journal is disabled (history.enabled = false).")
				return nil
			}

			store, err := history.Open(cfg.HistoryPath())
			if err != nil {
				return fmt.Errorf("open history journal: %w", err)
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No renders recorded yet.")
				return nil
			}

			headers := []string{"When", "Frames", "Duration", "Strategy", "Codec", "Result", "Output"}
			aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignLeft}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, historyRow(rec))
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list (0 for all)")
	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all recorded render runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.HistoryPath())
			if err != nil {
				return fmt.Errorf("open history journal: %w", err)
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d recorded runs.\n", removed)
			return nil
		},
	}
}

func historyRow(rec history.Record) []string {
	result := "ok"
	if !rec.Success {
		result = "failed"
	}
	output := rec.OutputPath
	if !rec.Success && rec.Error != "" {
		output = truncate(rec.Error, 60)
	}
	strategy := rec.Strategy
	if strategy == "" {
		strategy = "silent"
	}
	return []string{
		rec.StartedAt.Local().Format(time.DateTime),
		strconv.Itoa(rec.Frames),
		fmt.Sprintf("%.1fs", rec.FinalDuration),
		strategy,
		rec.Codec,
		result,
		output,
	}
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max-3] + "..."
}
