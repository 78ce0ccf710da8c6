package main

import (
	"context"
	"testing"
	"time"

	"github.com/OliverBailey/runelite-timelapse/internal/history"
)

func TestHistoryEmptyJournal(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, []string{"history"})
	if err != nil {
		t.Fatalf("history: %v\n%s", err, out)
	}
	requireContains(t, out, "No renders recorded yet")
}

func TestHistoryListsRecordedRuns(t *testing.T) {
	setupCLITestEnv(t)

	// Seed the journal at the location the sandbox config resolves to.
	cfg := loadTestConfig(t)
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	rec := history.Record{
		RunID:         "run-1",
		StartedAt:     time.Now().UTC(),
		FinishedAt:    time.Now().UTC(),
		Frames:        100,
		PacingRate:    5,
		FinalDuration: 35,
		Strategy:      "hold_last_frame",
		Codec:         "libx264",
		OutputPath:    "/videos/out.mp4",
		Success:       true,
	}
	if err := store.Add(context.Background(), rec); err != nil {
		t.Fatalf("seed journal: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close journal: %v", err)
	}

	out, err := runCLI(t, []string{"history"})
	if err != nil {
		t.Fatalf("history: %v\n%s", err, out)
	}
	requireContains(t, out, "hold_last_frame")
	requireContains(t, out, "libx264")
	requireContains(t, out, "/videos/out.mp4")

	out, err = runCLI(t, []string{"history", "clear"})
	if err != nil {
		t.Fatalf("history clear: %v\n%s", err, out)
	}
	requireContains(t, out, "Removed 1 recorded runs")
}
