package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"rune/internal/config"
	"rune/internal/convert"
	"rune/internal/extract"
	"rune/internal/history"
	"rune/internal/logging"
	"rune/internal/probe"
)

// convertFlags are the per-run overrides shared by image and video.
type convertFlags struct {
	width      int
	fps        int
	rampName   string
	customRamp string
	threshold  float64
	outDir     string
}

func (f *convertFlags) register(cmd *cobra.Command, video bool) {
	flags := cmd.Flags()
	flags.IntVarP(&f.width, "width", "w", 0, "Output width in glyph columns (default from config)")
	flags.StringVar(&f.rampName, "ramp", "", "Built-in glyph ramp (see `rune ramps`)")
	flags.StringVar(&f.customRamp, "custom-ramp", "", "Custom ramp, darkest to lightest; overrides --ramp")
	flags.Float64Var(&f.threshold, "threshold", 1.0, "Lightness above this is drawn fully lit, clamped to [0,1]")
	flags.StringVarP(&f.outDir, "out", "o", "", "Output directory (cleared before the run)")
	if video {
		flags.IntVar(&f.fps, "fps", 0, "Frames sampled per second (default from config)")
	}
}

// apply copies the flags the user actually set onto cfg and revalidates.
func (f *convertFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Convert.Width = f.width
	}
	if flags.Changed("fps") {
		cfg.Convert.FPS = f.fps
	}
	if flags.Changed("ramp") {
		cfg.Convert.Ramp = f.rampName
	}
	if flags.Changed("custom-ramp") {
		cfg.Convert.CustomRamp = f.customRamp
	}
	if flags.Changed("threshold") {
		cfg.Convert.Threshold = config.ClampThreshold(f.threshold)
	}
	if flags.Changed("out") {
		cfg.Paths.OutputDir = f.outDir
	}
	if err := cfg.Normalize(); err != nil {
		return err
	}
	return cfg.Validate()
}

func newImageCommand(ctx *commandContext) *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "image <file>",
		Short: "Convert a still image into frame.jsonl, frame.jsonl.gz, frame.txt and manifest.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, flags, convert.ModeImage, args[0])
		},
	}
	flags.register(cmd, false)
	return cmd
}

func newVideoCommand(ctx *commandContext) *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "video <file>",
		Short: "Sample a video with ffmpeg and convert every frame into frames.* and manifest.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, flags, convert.ModeVideo, args[0])
		},
	}
	flags.register(cmd, true)
	return cmd
}

func runConvert(cmd *cobra.Command, ctx *commandContext, flags *convertFlags, mode, input string) error {
	base, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg := *base
	if err := flags.apply(cmd, &cfg); err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	logger, err := ctx.newLogger(&cfg, stderr)
	if err != nil {
		return err
	}
	opts, err := convert.OptionsFromConfig(&cfg)
	if err != nil {
		return err
	}
	if width := opts.Ramp.MaxWidth(); width > 1 {
		logging.WarnWithContext(logger, "ramp has wide glyphs", "wide_ramp_glyphs",
			logging.String("ramp", opts.Ramp.Name()),
			logging.Int("max_width", width),
			logging.String(logging.FieldImpact, "rows render wider than the grid in terminals"),
		)
	}

	driverOpts := []convert.Option{
		convert.WithLogger(logger),
		convert.WithReporter(convert.NewReporter(stderr, logger)),
		convert.WithProber(probe.FFprobe{Binary: cfg.FFmpeg.FFprobeBinary}),
	}
	if store := openHistory(cmd.Context(), &cfg, logger); store != nil {
		defer store.Close()
		driverOpts = append(driverOpts, convert.WithRecorder(store))
	}

	driver := convert.New(opts, extract.FFmpeg{Binary: cfg.FFmpeg.Binary, Ext: cfg.FFmpeg.FrameExt}, driverOpts...)

	var res convert.Result
	if mode == convert.ModeVideo {
		res, err = driver.ConvertVideo(cmd.Context(), input)
	} else {
		res, err = driver.ConvertImage(cmd.Context(), input)
	}
	if err != nil {
		return err
	}
	writeSummary(cmd.OutOrStdout(), res)
	return nil
}

// openHistory opens the run ledger when enabled. Failures only warn.
func openHistory(ctx context.Context, cfg *config.Config, logger *slog.Logger) *history.Store {
	if !cfg.HistoryEnabled() {
		return nil
	}
	store, err := history.Open(ctx, cfg.Paths.HistoryDB)
	if err != nil {
		logging.WarnWithContext(logger, "run history disabled", "history_open_failed",
			logging.Error(err),
			logging.String("path", cfg.Paths.HistoryDB),
			logging.String(logging.FieldImpact, "this run will not appear in `rune history`"),
		)
		return nil
	}
	return store
}

func fprintLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
