package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"rune/internal/extract"
	"rune/internal/logging"
	"rune/internal/ramp"
	"rune/internal/workspace"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateConvert(); err != nil {
		return err
	}
	if err := c.validateFFmpeg(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.ScratchDir == "" {
		return errors.New("paths.scratch_dir must be set")
	}
	if workspace.Overlaps(c.Paths.OutputDir, c.Paths.ScratchDir) {
		return errors.New("paths.scratch_dir and paths.output_dir must not be the same or nested; both are cleared before a run")
	}
	return nil
}

func (c *Config) validateConvert() error {
	if c.Convert.Width <= 0 {
		return fmt.Errorf("convert.width must be positive, got %d", c.Convert.Width)
	}
	if c.Convert.FPS <= 0 {
		return fmt.Errorf("convert.fps must be positive, got %d", c.Convert.FPS)
	}
	if c.Convert.Threshold < 0 || c.Convert.Threshold > 1 {
		return fmt.Errorf("convert.threshold must be between 0 and 1, got %v", c.Convert.Threshold)
	}
	if _, err := ramp.Resolve(c.Convert.Ramp, c.Convert.CustomRamp); err != nil {
		return fmt.Errorf("convert.ramp: %w", err)
	}
	return nil
}

func (c *Config) validateFFmpeg() error {
	if !extract.ValidExt(c.FFmpeg.FrameExt) {
		return fmt.Errorf("ffmpeg.frame_ext must be one of %s, got %q", strings.Join(extract.SupportedExts, ", "), c.FFmpeg.FrameExt)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(logging.Formats, c.Logging.Format) {
		return fmt.Errorf("logging.format must be one of %s, got %q", strings.Join(logging.Formats, ", "), c.Logging.Format)
	}
	if !slices.Contains(logging.Levels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %s, got %q", strings.Join(logging.Levels, ", "), c.Logging.Level)
	}
	return nil
}

// ClampThreshold forces a threshold into [0,1]. Flags use it before
// validation so out-of-range input is corrected rather than rejected.
func ClampThreshold(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
