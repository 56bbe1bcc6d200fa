package convert

import (
	"fmt"
	"strings"

	"rune/internal/config"
	"rune/internal/ramp"
	"rune/internal/services"
	"rune/internal/workspace"
)

// Options are the resolved knobs for one Driver.
type Options struct {
	Width      int
	FPS        int
	Ramp       ramp.Ramp
	Threshold  float64
	OutputDir  string
	ScratchDir string
}

// OptionsFromConfig resolves the ramp and copies the conversion settings out
// of cfg.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	if cfg == nil {
		return Options{}, services.Wrap(services.ErrConfiguration, "convert", "options", "nil config", nil)
	}
	r, err := ramp.Resolve(cfg.Convert.Ramp, cfg.Convert.CustomRamp)
	if err != nil {
		return Options{}, services.Wrap(services.ErrConfiguration, "convert", "options", "ramp", err)
	}
	opts := Options{
		Width:      cfg.Convert.Width,
		FPS:        cfg.Convert.FPS,
		Ramp:       r,
		Threshold:  config.ClampThreshold(cfg.Convert.Threshold),
		OutputDir:  cfg.Paths.OutputDir,
		ScratchDir: cfg.Paths.ScratchDir,
	}
	return opts, opts.validate()
}

func (o Options) validate() error {
	switch {
	case o.Width <= 0:
		return services.Wrap(services.ErrValidation, "convert", "options", fmt.Sprintf("width must be positive, got %d", o.Width), nil)
	case o.Ramp.Len() == 0:
		return services.Wrap(services.ErrValidation, "convert", "options", "ramp is empty", nil)
	case strings.TrimSpace(o.OutputDir) == "":
		return services.Wrap(services.ErrValidation, "convert", "options", "output directory required", nil)
	}
	return nil
}

func (o Options) validateVideo() error {
	if o.FPS <= 0 {
		return services.Wrap(services.ErrValidation, "convert", "options", fmt.Sprintf("fps must be positive, got %d", o.FPS), nil)
	}
	if strings.TrimSpace(o.ScratchDir) == "" {
		return services.Wrap(services.ErrValidation, "convert", "options", "scratch directory required", nil)
	}
	if workspace.Overlaps(o.ScratchDir, o.OutputDir) {
		return services.Wrap(services.ErrValidation, "convert", "options", "scratch and output directories must not be the same or nested", nil)
	}
	return nil
}
