// Package plan reconciles the screenshot timeline with an optional soundtrack
// into a single target duration and audio strategy.
package plan

import "math"

// Strategy names the audio/video duration reconciliation applied to a run
// with music. Exactly one strategy applies per run.
type Strategy string

const (
	// StrategyHoldLastFrame drives the video length from the music: the final
	// frame is cloned to cover any gap between the screenshot timeline and
	// the soundtrack. The video is never truncated; when it outlasts the
	// music, the music simply ends early.
	StrategyHoldLastFrame Strategy = "hold_last_frame"
	// StrategyLoopAudio drives the video length from the screenshot count:
	// the music repeats from the start as often as needed and is cut at the
	// video boundary.
	StrategyLoopAudio Strategy = "loop_audio"
)

// MusicTrack describes a probed soundtrack handed to the plan builder.
// Duration is in seconds and must be positive; a non-positive probe result is
// rejected upstream.
type MusicTrack struct {
	Path     string
	Duration float64
}

// MusicPlan carries the soundtrack and the strategy chosen for it.
type MusicPlan struct {
	Path     string
	Duration float64
	Strategy Strategy
}

// Plan is the computed encoding timeline for one run. All durations are in
// seconds.
type Plan struct {
	Frames          int
	PacingRate      int
	NaturalDuration float64
	FinalDuration   float64
	// HoldPadding is how long the last frame is cloned under the hold
	// strategy. Zero for silent and loop runs, and for hold runs whose
	// screenshot timeline already covers the music.
	HoldPadding float64
	Music       *MusicPlan
}

// Silent reports whether the run renders without audio.
func (p Plan) Silent() bool {
	return p.Music == nil
}

// Build computes the encoding timeline. frames and pacingRate must be
// positive, and music (when non-nil) must carry a positive duration; callers
// validate both before planning.
func Build(frames, pacingRate int, holdLastFrame bool, music *MusicTrack) Plan {
	natural := float64(frames) / float64(pacingRate)
	p := Plan{
		Frames:          frames,
		PacingRate:      pacingRate,
		NaturalDuration: natural,
		FinalDuration:   natural,
	}
	if music == nil {
		return p
	}

	if holdLastFrame {
		p.FinalDuration = math.Max(natural, music.Duration)
		p.HoldPadding = p.FinalDuration - natural
		p.Music = &MusicPlan{Path: music.Path, Duration: music.Duration, Strategy: StrategyHoldLastFrame}
		return p
	}

	p.Music = &MusicPlan{Path: music.Path, Duration: music.Duration, Strategy: StrategyLoopAudio}
	return p
}
