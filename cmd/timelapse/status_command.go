package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OliverBailey/runelite-timelapse/internal/config"
	"github.com/OliverBailey/runelite-timelapse/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and dependency health",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			_, resolvedPath, exists, err := config.Load(ctx.configPath())
			if err != nil {
				return err
			}

			for _, line := range renderSectionHeader("Configuration", colorize) {
				fmt.Fprintln(out, line)
			}
			source := resolvedPath
			if !exists {
				source += " (not found, using defaults and environment)"
			}
			fmt.Fprintln(out, renderStatusLine("Config file", statusInfo, source, colorize))
			fmt.Fprintln(out, renderStatusLine("Output video", statusInfo, cfg.Paths.OutputVideo, colorize))
			fmt.Fprintln(out, renderStatusLine("Resolution", statusInfo,
				fmt.Sprintf("%dx%d @ %d fps (pacing %d/s)", cfg.Video.OutputWidth, cfg.Video.OutputHeight,
					cfg.Video.OutputFPS, cfg.Video.Framerate), colorize))
			fmt.Fprintln(out, renderStatusLine("Encoder preference", statusInfo, cfg.Video.Encoder, colorize))
			fmt.Fprintln(out, renderStatusLine("Blur enabled", statusInfo, yesNo(cfg.Blur.Enabled), colorize))
			music := "none (silent video)"
			if cfg.MusicEnabled() {
				strategy := "loop audio"
				if cfg.Music.HoldLastFrame {
					strategy = "hold last frame"
				}
				music = fmt.Sprintf("%s (%s)", cfg.Music.File, strategy)
			}
			fmt.Fprintln(out, renderStatusLine("Music", statusInfo, music, colorize))
			if cfg.History.Enabled {
				fmt.Fprintln(out, renderStatusLine("History journal", statusInfo, cfg.HistoryPath(), colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("History journal", statusInfo, "disabled", colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Paths", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, result := range preflight.RunAll(cfg) {
				kind := statusError
				if result.Passed {
					kind = statusOK
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("External tools", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, status := range preflight.CheckSystemDeps(cfg) {
				kind := statusError
				detail := status.Command
				if status.Available {
					kind = statusOK
				} else {
					if status.Optional {
						kind = statusWarn
					}
					detail = status.Detail
				}
				if status.Description != "" {
					detail = strings.TrimSpace(detail + " - " + status.Description)
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, detail, colorize))
			}
			return nil
		},
	}
}
