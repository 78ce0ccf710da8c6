package plan_test

import (
	"math"
	"testing"

	"github.com/OliverBailey/runelite-timelapse/internal/plan"
)

func TestBuildSilent(t *testing.T) {
	p := plan.Build(100, 5, true, nil)
	if !p.Silent() {
		t.Fatal("expected silent plan")
	}
	if p.NaturalDuration != 20 {
		t.Fatalf("natural duration = %v, want 20", p.NaturalDuration)
	}
	if p.FinalDuration != 20 {
		t.Fatalf("final duration = %v, want 20", p.FinalDuration)
	}
	if p.HoldPadding != 0 {
		t.Fatalf("hold padding = %v, want 0", p.HoldPadding)
	}
}

func TestBuildHoldPadsToMusic(t *testing.T) {
	p := plan.Build(100, 5, true, &plan.MusicTrack{Path: "track.mp3", Duration: 35})
	if p.Silent() {
		t.Fatal("expected music plan")
	}
	if p.Music.Strategy != plan.StrategyHoldLastFrame {
		t.Fatalf("strategy = %q, want hold", p.Music.Strategy)
	}
	if p.FinalDuration != 35 {
		t.Fatalf("final duration = %v, want 35", p.FinalDuration)
	}
	if p.HoldPadding != 15 {
		t.Fatalf("hold padding = %v, want 15", p.HoldPadding)
	}
}

func TestBuildHoldNeverTruncatesVideo(t *testing.T) {
	p := plan.Build(100, 5, true, &plan.MusicTrack{Path: "track.mp3", Duration: 10})
	if p.FinalDuration != 20 {
		t.Fatalf("final duration = %v, want natural 20", p.FinalDuration)
	}
	if p.HoldPadding != 0 {
		t.Fatalf("hold padding = %v, want 0", p.HoldPadding)
	}
	if p.Music.Strategy != plan.StrategyHoldLastFrame {
		t.Fatalf("strategy = %q, want hold", p.Music.Strategy)
	}
}

func TestBuildLoopCutsAtVideoLength(t *testing.T) {
	p := plan.Build(100, 5, false, &plan.MusicTrack{Path: "track.mp3", Duration: 10})
	if p.Music.Strategy != plan.StrategyLoopAudio {
		t.Fatalf("strategy = %q, want loop", p.Music.Strategy)
	}
	if p.FinalDuration != 20 {
		t.Fatalf("final duration = %v, want 20", p.FinalDuration)
	}
	if p.HoldPadding != 0 {
		t.Fatalf("hold padding = %v, want 0", p.HoldPadding)
	}
}

func TestBuildLoopIgnoresLongerMusic(t *testing.T) {
	p := plan.Build(100, 5, false, &plan.MusicTrack{Path: "track.mp3", Duration: 35})
	if p.FinalDuration != 20 {
		t.Fatalf("final duration = %v, want 20", p.FinalDuration)
	}
}

func TestBuildFractionalDurations(t *testing.T) {
	p := plan.Build(7, 3, true, &plan.MusicTrack{Path: "track.mp3", Duration: 4})
	wantNatural := 7.0 / 3.0
	if math.Abs(p.NaturalDuration-wantNatural) > 1e-9 {
		t.Fatalf("natural duration = %v, want %v", p.NaturalDuration, wantNatural)
	}
	if p.FinalDuration != 4 {
		t.Fatalf("final duration = %v, want 4", p.FinalDuration)
	}
	if math.Abs(p.HoldPadding-(4-wantNatural)) > 1e-9 {
		t.Fatalf("hold padding = %v, want %v", p.HoldPadding, 4-wantNatural)
	}
}
