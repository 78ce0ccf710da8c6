package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/OliverBailey/runelite-timelapse/internal/config"
	"github.com/OliverBailey/runelite-timelapse/internal/history"
	"github.com/OliverBailey/runelite-timelapse/internal/logging"
	"github.com/OliverBailey/runelite-timelapse/internal/render"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the timelapse video",
		Long: "Collects timestamped screenshots beneath the configured directory, " +
			"plans the video and music timeline, and renders the result with ffmpeg.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var logger *slog.Logger
			if dryRun {
				logger = logging.NewNop()
			} else {
				logger, err = logging.NewFromConfig(cfg)
				if err != nil {
					return fmt.Errorf("create logger: %w", err)
				}
			}

			opts := []render.Option{}
			if cfg.History.Enabled && !dryRun {
				store, err := history.Open(cfg.HistoryPath())
				if err != nil {
					return fmt.Errorf("open history journal: %w", err)
				}
				defer store.Close()
				opts = append(opts, render.WithJournal(store))
			}

			renderer := render.New(cfg, logger, opts...)
			outcome, err := renderer.Run(cmd.Context(), dryRun)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outcome.DryRun {
				printDryRun(out, cfg, outcome)
				return nil
			}

			fmt.Fprintf(out, "Rendered %d screenshots into %s\n", outcome.Frames, outcome.OutputPath)
			fmt.Fprintf(out, "  duration: %.1fs  codec: %s  elapsed: %s\n",
				outcome.Plan.FinalDuration, outcome.Selection.Codec, outcome.Elapsed.Round(100*time.Millisecond))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute the plan and print the ffmpeg command without encoding")
	return cmd
}

func printDryRun(out io.Writer, cfg *config.Config, outcome *render.Outcome) {
	fmt.Fprintf(out, "Dry run %s\n", outcome.RunID)
	fmt.Fprintf(out, "  frames: %d (skipped %d)\n", outcome.Frames, outcome.Skipped)
	fmt.Fprintf(out, "  natural duration: %.1fs  final duration: %.1fs\n",
		outcome.Plan.NaturalDuration, outcome.Plan.FinalDuration)
	if music := outcome.Plan.Music; music != nil {
		fmt.Fprintf(out, "  music: %s (%.1fs, strategy %s)\n", music.Path, music.Duration, music.Strategy)
	} else {
		fmt.Fprintln(out, "  music: none (silent video)")
	}
	if blur := outcome.Blur; blur != nil {
		fmt.Fprintf(out, "  blur: %dx%d at (%d,%d), sigma %d\n",
			blur.Width, blur.Height, blur.X, blur.Y, blur.Amount)
	} else {
		fmt.Fprintln(out, "  blur: disabled")
	}
	fmt.Fprintf(out, "  encoder: %s (requested %s)\n", outcome.Selection.Codec, outcome.Selection.Requested)
	fmt.Fprintf(out, "  output: %s\n", cfg.Paths.OutputVideo)
	fmt.Fprintf(out, "\n%s\n", strings.Join(outcome.Command, " "))
}
