package config

import (
	"errors"
	"fmt"
	"strings"
)

var allowedEncoders = map[string]struct{}{
	"auto":   {},
	"nvidia": {},
	"amd":    {},
	"intel":  {},
	"cpu":    {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateVideo(); err != nil {
		return err
	}
	if err := c.validateBlur(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.ScreenshotsDir == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/timelapse/config.toml"
		}
		return fmt.Errorf("paths.screenshots_dir is required. Set SCREENSHOTS_DIR env var or edit %s (create with 'timelapse config init')", defaultPath)
	}
	if strings.TrimSpace(c.Paths.OutputVideo) == "" {
		return errors.New("paths.output_video must be set")
	}
	return nil
}

func (c *Config) validateVideo() error {
	if err := ensurePositiveMap(map[string]int{
		"video.framerate":     c.Video.Framerate,
		"video.output_fps":    c.Video.OutputFPS,
		"video.output_width":  c.Video.OutputWidth,
		"video.output_height": c.Video.OutputHeight,
	}); err != nil {
		return err
	}
	if c.Video.Quality < 0 || c.Video.Quality > 51 {
		return errors.New("video.quality must be between 0 and 51")
	}
	if _, ok := allowedEncoders[c.Video.Encoder]; !ok {
		return fmt.Errorf("video.encoder must be one of %s", strings.Join(EncoderPreferences, ", "))
	}
	return nil
}

func (c *Config) validateBlur() error {
	if !c.Blur.Enabled {
		return nil
	}
	if c.Blur.X < 0 || c.Blur.Y < 0 {
		return errors.New("blur.x and blur.y must be >= 0")
	}
	if c.Blur.Width <= 0 || c.Blur.Height <= 0 {
		return errors.New("blur.width and blur.height must be positive when blur.enabled is true")
	}
	if c.Blur.Amount <= 0 {
		return errors.New("blur.amount must be positive when blur.enabled is true")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
