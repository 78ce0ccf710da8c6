package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.applyEnvOverrides(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeVideo()
	if err := c.normalizeMusic(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

// applyEnvOverrides layers environment variables over file values. Variable
// names match the knobs users already export for the renderer, so a config
// file is never required for scripted runs.
func (c *Config) applyEnvOverrides() error {
	if value, ok := lookupEnv("SCREENSHOTS_DIR"); ok {
		c.Paths.ScreenshotsDir = value
	}
	if value, ok := lookupEnv("OUTPUT_VIDEO"); ok {
		c.Paths.OutputVideo = value
	}
	if value, ok := lookupEnv("MUSIC_FILE"); ok {
		c.Music.File = value
	}
	if value, ok := lookupEnv("VIDEO_ENCODER"); ok {
		c.Video.Encoder = value
	}

	intOverrides := []struct {
		name   string
		target *int
	}{
		{"FRAMERATE", &c.Video.Framerate},
		{"OUTPUT_FPS", &c.Video.OutputFPS},
		{"OUTPUT_WIDTH", &c.Video.OutputWidth},
		{"OUTPUT_HEIGHT", &c.Video.OutputHeight},
		{"VIDEO_QUALITY", &c.Video.Quality},
		{"BLUR_X", &c.Blur.X},
		{"BLUR_Y", &c.Blur.Y},
		{"BLUR_WIDTH", &c.Blur.Width},
		{"BLUR_HEIGHT", &c.Blur.Height},
		{"BLUR_AMOUNT", &c.Blur.Amount},
	}
	for _, override := range intOverrides {
		raw, ok := lookupEnv(override.name)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", override.name, raw)
		}
		*override.target = parsed
	}

	boolOverrides := []struct {
		name   string
		target *bool
	}{
		{"HOLD_LAST_FRAME", &c.Music.HoldLastFrame},
		{"BLUR_ENABLED", &c.Blur.Enabled},
	}
	for _, override := range boolOverrides {
		raw, ok := lookupEnv(override.name)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", override.name, raw)
		}
		*override.target = parsed
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	c.Paths.ScreenshotsDir = strings.TrimSpace(c.Paths.ScreenshotsDir)
	if c.Paths.ScreenshotsDir != "" {
		if c.Paths.ScreenshotsDir, err = expandPath(c.Paths.ScreenshotsDir); err != nil {
			return fmt.Errorf("paths.screenshots_dir: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.StagingDir) == "" {
		c.Paths.StagingDir = defaultStagingDir
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputVideo) == "" {
		c.Paths.OutputVideo = defaultOutputVideo
	}
	if c.Paths.OutputVideo, err = expandPath(c.Paths.OutputVideo); err != nil {
		return fmt.Errorf("paths.output_video: %w", err)
	}
	return nil
}

func (c *Config) normalizeVideo() {
	c.Video.Encoder = strings.ToLower(strings.TrimSpace(c.Video.Encoder))
	if c.Video.Encoder == "" {
		c.Video.Encoder = defaultEncoder
	}
}

func (c *Config) normalizeMusic() error {
	var err error
	c.Music.File = strings.TrimSpace(c.Music.File)
	if c.Music.File != "" {
		if c.Music.File, err = expandPath(c.Music.File); err != nil {
			return fmt.Errorf("music.file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	var err error
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		c.History.Path = filepath.Join(c.Paths.LogDir, "history.db")
	}
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func lookupEnv(name string) (string, bool) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}
