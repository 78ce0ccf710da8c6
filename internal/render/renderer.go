package render

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/OliverBailey/runelite-timelapse/internal/config"
	"github.com/OliverBailey/runelite-timelapse/internal/fileutil"
	"github.com/OliverBailey/runelite-timelapse/internal/geometry"
	"github.com/OliverBailey/runelite-timelapse/internal/history"
	"github.com/OliverBailey/runelite-timelapse/internal/logging"
	"github.com/OliverBailey/runelite-timelapse/internal/media/ffprobe"
	"github.com/OliverBailey/runelite-timelapse/internal/plan"
	"github.com/OliverBailey/runelite-timelapse/internal/screenshots"
	"github.com/OliverBailey/runelite-timelapse/internal/services"
	"github.com/OliverBailey/runelite-timelapse/internal/services/ffmpeg"
)

const lockFileName = "render.lock"

// Encoder is the external encoding collaborator.
type Encoder interface {
	SelectEncoder(ctx context.Context, preference string) (ffmpeg.Selection, error)
	Encode(ctx context.Context, req ffmpeg.Request) error
}

// Journal receives one record per completed run.
type Journal interface {
	Add(ctx context.Context, rec history.Record) error
}

// Prober inspects a media file, by default via ffprobe.
type Prober func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// Option configures the renderer.
type Option func(*Renderer)

// WithEncoder overrides the ffmpeg client, primarily for tests.
func WithEncoder(encoder Encoder) Option {
	return func(r *Renderer) {
		if encoder != nil {
			r.encoder = encoder
		}
	}
}

// WithJournal attaches a render journal. A nil journal disables recording.
func WithJournal(journal Journal) Option {
	return func(r *Renderer) {
		r.journal = journal
	}
}

// WithProber overrides music probing, primarily for tests.
func WithProber(probe Prober) Option {
	return func(r *Renderer) {
		if probe != nil {
			r.probe = probe
		}
	}
}

// Renderer executes the render pipeline for one configuration.
type Renderer struct {
	cfg     *config.Config
	logger  *slog.Logger
	encoder Encoder
	journal Journal
	probe   Prober
}

// New constructs a renderer. The default encoder shells out to ffmpeg and the
// default prober to ffprobe.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Renderer {
	r := &Renderer{
		cfg:     cfg,
		logger:  logging.NewComponentLogger(logger, "render"),
		encoder: ffmpeg.NewClient(ffmpeg.WithBinary(cfg.FFmpegBinary())),
		probe:   ffprobe.Inspect,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Outcome summarizes a run for the CLI and the journal.
type Outcome struct {
	RunID      string
	Frames     int
	Skipped    int
	Plan       plan.Plan
	Selection  ffmpeg.Selection
	Blur       *geometry.Region
	Title      string
	OutputPath string
	OutputSize int64
	Elapsed    time.Duration
	DryRun     bool
	// Command is the full ffmpeg invocation, binary first. Dry runs print it
	// instead of executing.
	Command []string
}

// Run executes the pipeline once. Dry runs compute the full plan and argv but
// touch nothing: no lock, no staging, no encode, no journal entry. The
// returned outcome carries whatever was computed before any failure.
func (r *Renderer) Run(ctx context.Context, dryRun bool) (*Outcome, error) {
	started := time.Now()
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)

	if !dryRun {
		if err := r.cfg.EnsureDirectories(); err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "render", "prepare directories", "", err)
		}

		lock := flock.New(filepath.Join(r.cfg.Paths.LogDir, lockFileName))
		acquired, err := lock.TryLock()
		if err != nil {
			return nil, services.Wrap(services.ErrTransient, "render", "acquire lock", lock.Path(), err)
		}
		if !acquired {
			return nil, services.Wrap(services.ErrLocked, "render", "acquire lock",
				"another render is already running", nil)
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	outcome, err := r.render(ctx, logger, runID, dryRun)
	outcome.Elapsed = time.Since(started)

	if !dryRun {
		r.record(ctx, logger, started, outcome, err)
	}
	if err != nil {
		return outcome, err
	}

	logger.Info("render finished",
		logging.Int("frames", outcome.Frames),
		logging.Float64("final_duration", outcome.Plan.FinalDuration),
		logging.String("codec", outcome.Selection.Codec),
		logging.String("output", outcome.OutputPath),
		logging.Duration("elapsed", outcome.Elapsed),
	)
	return outcome, nil
}

func (r *Renderer) render(ctx context.Context, logger *slog.Logger, runID string, dryRun bool) (*Outcome, error) {
	cfg := r.cfg
	outcome := &Outcome{RunID: runID, DryRun: dryRun}

	shots, report, err := screenshots.Collect(cfg.Paths.ScreenshotsDir)
	if err != nil {
		return outcome, err
	}
	outcome.Frames = len(shots)
	outcome.Skipped = len(report.Skipped)
	for _, skipped := range report.Skipped {
		logger.Debug("skipping file without parseable timestamp", logging.String("path", skipped))
	}
	logger.Info("collected screenshots",
		logging.Int("frames", len(shots)),
		logging.Int("skipped", len(report.Skipped)),
	)

	outcome.Title = DeriveTitle(cfg.Paths.ScreenshotsDir)

	if cfg.Blur.Enabled {
		scaled := geometry.Scale(geometry.Region{
			X:      cfg.Blur.X,
			Y:      cfg.Blur.Y,
			Width:  cfg.Blur.Width,
			Height: cfg.Blur.Height,
			Amount: cfg.Blur.Amount,
		}, cfg.Video.OutputWidth, cfg.Video.OutputHeight)
		outcome.Blur = &scaled
	}

	var track *plan.MusicTrack
	if cfg.MusicEnabled() {
		track, err = r.probeMusic(ctx)
		if err != nil {
			return outcome, err
		}
		logger.Info("probed music track",
			logging.String("path", track.Path),
			logging.Float64("duration", track.Duration),
		)
	}

	outcome.Plan = plan.Build(len(shots), cfg.Video.Framerate, cfg.Music.HoldLastFrame, track)

	selection, err := r.encoder.SelectEncoder(ctx, cfg.Video.Encoder)
	if err != nil {
		return outcome, err
	}
	outcome.Selection = selection
	if selection.Fallback() {
		logger.Warn("configured encoder unavailable, falling back",
			logging.String("requested", selection.Requested),
			logging.String("codec", selection.Codec),
		)
	}

	stagingDir := filepath.Join(cfg.Paths.StagingDir, runID)
	listFile := filepath.Join(stagingDir, "frames.txt")
	stagedOutput := filepath.Join(stagingDir, filepath.Base(cfg.Paths.OutputVideo))

	req := ffmpeg.Request{
		ListFile:   listFile,
		PacingRate: cfg.Video.Framerate,
		OutputFPS:  cfg.Video.OutputFPS,
		Width:      cfg.Video.OutputWidth,
		Height:     cfg.Video.OutputHeight,
		Blur:       outcome.Blur,
		Plan:       outcome.Plan,
		Codec:      selection.Codec,
		Quality:    cfg.Video.Quality,
		Title:      outcome.Title,
		OutputPath: stagedOutput,
	}
	outcome.Command = append([]string{cfg.FFmpegBinary()}, ffmpeg.BuildArgs(req)...)

	if dryRun {
		return outcome, nil
	}

	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return outcome, services.Wrap(services.ErrTransient, "render", "create staging directory", stagingDir, err)
	}
	defer func() {
		_ = os.RemoveAll(stagingDir)
	}()

	paths := make([]string, 0, len(shots))
	for _, shot := range shots {
		paths = append(paths, shot.Path)
	}
	if err := ffmpeg.WriteConcatList(listFile, paths); err != nil {
		return outcome, services.Wrap(services.ErrTransient, "render", "write concat list", "", err)
	}

	logger.Info("encoding",
		logging.String("codec", selection.Codec),
		logging.Float64("final_duration", outcome.Plan.FinalDuration),
	)
	if err := r.encoder.Encode(ctx, req); err != nil {
		return outcome, err
	}

	if err := fileutil.MoveFile(stagedOutput, cfg.Paths.OutputVideo); err != nil {
		return outcome, services.Wrap(services.ErrTransient, "render", "finalize output", cfg.Paths.OutputVideo, err)
	}
	outcome.OutputPath = cfg.Paths.OutputVideo
	if info, err := os.Stat(cfg.Paths.OutputVideo); err == nil {
		outcome.OutputSize = info.Size()
	}
	return outcome, nil
}

// probeMusic validates the configured soundtrack and measures its duration.
// A missing or audio-less file is unreadable; a probe that runs but yields no
// usable duration is a probe failure. Both abort the run.
func (r *Renderer) probeMusic(ctx context.Context) (*plan.MusicTrack, error) {
	path := r.cfg.Music.File

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrMusicUnreadable, "probe", "stat", path, nil)
		}
		return nil, services.Wrap(services.ErrMusicUnreadable, "probe", "stat", path, err)
	}
	if info.IsDir() {
		return nil, services.Wrap(services.ErrMusicUnreadable, "probe", "stat", path+" is a directory", nil)
	}

	result, err := r.probe(ctx, r.cfg.FFprobeBinary(), path)
	if err != nil {
		return nil, services.Wrap(services.ErrMusicUnreadable, "probe", "inspect", path, err)
	}
	if result.AudioStreamCount() == 0 {
		return nil, services.Wrap(services.ErrMusicUnreadable, "probe", "inspect",
			path+" contains no audio stream", nil)
	}

	duration := result.DurationSeconds()
	if math.IsNaN(duration) || duration <= 0 {
		return nil, services.Wrap(services.ErrDurationProbe, "probe", "duration",
			path+" reported no usable duration", nil)
	}
	return &plan.MusicTrack{Path: path, Duration: duration}, nil
}

func (r *Renderer) record(ctx context.Context, logger *slog.Logger, started time.Time, outcome *Outcome, runErr error) {
	if r.journal == nil {
		return
	}

	rec := history.Record{
		RunID:      outcome.RunID,
		StartedAt:  started.UTC(),
		FinishedAt: time.Now().UTC(),
		Frames:     outcome.Frames,
		PacingRate: r.cfg.Video.Framerate,
		Codec:      outcome.Selection.Codec,
		OutputPath: outcome.OutputPath,
		OutputSize: outcome.OutputSize,
		Elapsed:    outcome.Elapsed,
		Success:    runErr == nil,
	}
	rec.NaturalDuration = outcome.Plan.NaturalDuration
	rec.FinalDuration = outcome.Plan.FinalDuration
	if outcome.Plan.Music != nil {
		rec.Strategy = string(outcome.Plan.Music.Strategy)
	}
	if runErr != nil {
		rec.Error = runErr.Error()
	}

	if err := r.journal.Add(ctx, rec); err != nil {
		logger.Warn("failed to record render in history", logging.Error(err))
	}
}
