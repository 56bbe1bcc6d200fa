package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"rune/internal/frame"
	"rune/internal/history"
	"rune/internal/logging"
	"rune/internal/probe"
	"rune/internal/render"
	"rune/internal/services"
	"rune/internal/sink"
	"rune/internal/workspace"
)

// Extractor samples a video into still frames inside dir and returns the
// frame paths.
type Extractor interface {
	Extract(ctx context.Context, input, dir string, fps int) ([]string, error)
}

// Prober reports media metadata. It is optional and only informs logs.
type Prober interface {
	Inspect(ctx context.Context, path string) (probe.Result, error)
}

// Recorder persists the run ledger. *history.Store satisfies it.
type Recorder interface {
	Start(ctx context.Context, run history.Run) error
	Complete(ctx context.Context, id string, out history.Outcome) error
	Fail(ctx context.Context, id string, frames int, cause error) error
}

// Driver converts images and videos into the stream files.
type Driver struct {
	opts      Options
	extractor Extractor
	prober    Prober
	recorder  Recorder
	reporter  Reporter
	logger    *slog.Logger
	newID     func() string
}

// Option customizes a Driver.
type Option func(*Driver)

// WithLogger sets the logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(d *Driver) {
		if r != nil {
			d.reporter = r
		}
	}
}

// WithRecorder enables the run ledger.
func WithRecorder(r Recorder) Option {
	return func(d *Driver) { d.recorder = r }
}

// WithProber enables media inspection before extraction.
func WithProber(p Prober) Option {
	return func(d *Driver) { d.prober = p }
}

// New constructs a Driver. extractor may be nil when only images are converted.
func New(opts Options, extractor Extractor, options ...Option) *Driver {
	d := &Driver{
		opts:      opts,
		extractor: extractor,
		reporter:  nopReporter{},
		logger:    logging.NewNop(),
		newID:     uuid.NewString,
	}
	for _, opt := range options {
		opt(d)
	}
	d.logger = logging.NewComponentLogger(d.logger, "convert")
	return d
}

// ConvertImage converts a single still into frame.* and manifest.json.
func (d *Driver) ConvertImage(ctx context.Context, input string) (Result, error) {
	return d.run(ctx, ModeImage, input, func(ctx context.Context, logger *slog.Logger, res *Result) error {
		if err := d.opts.validate(); err != nil {
			return err
		}
		locks, err := workspace.AcquireAll(d.opts.OutputDir)
		if err != nil {
			return err
		}
		defer releaseLocks(logger, locks)

		if err := workspace.Reset(d.opts.OutputDir, logger); err != nil {
			return err
		}
		return d.writeFrames(ctx, logger, res, []string{res.Input}, imageBase, 0)
	})
}

// ConvertVideo extracts frames from input at the configured rate and converts
// them in order into frames.* and manifest.json.
func (d *Driver) ConvertVideo(ctx context.Context, input string) (Result, error) {
	return d.run(ctx, ModeVideo, input, func(ctx context.Context, logger *slog.Logger, res *Result) error {
		if err := d.opts.validate(); err != nil {
			return err
		}
		if err := d.opts.validateVideo(); err != nil {
			return err
		}
		if d.extractor == nil {
			return services.Wrap(services.ErrConfiguration, "convert", "video", "no frame extractor configured", nil)
		}
		locks, err := workspace.AcquireAll(d.opts.OutputDir, d.opts.ScratchDir)
		if err != nil {
			return err
		}
		defer releaseLocks(logger, locks)

		d.inspect(ctx, logger, input)

		if err := workspace.Reset(d.opts.ScratchDir, logger); err != nil {
			return err
		}
		extractCtx := services.WithStage(ctx, "extract")
		started := time.Now()
		frames, err := d.extractor.Extract(extractCtx, input, d.opts.ScratchDir, d.opts.FPS)
		if err != nil {
			return err
		}
		if len(frames) == 0 {
			return services.Wrap(services.ErrExtraction, "convert", "extract", "no frames extracted", nil)
		}
		logger.Info("frames extracted",
			logging.Int("frame_count", len(frames)),
			logging.Int("fps", d.opts.FPS),
			logging.Duration("elapsed", time.Since(started)),
			logging.String(logging.FieldEventType, "frames_extracted"),
		)

		if err := workspace.Reset(d.opts.OutputDir, logger); err != nil {
			return err
		}
		return d.writeFrames(ctx, logger, res, frames, videoBase, d.opts.FPS)
	})
}

// writeFrames converts paths in order and fans each frame out to the sinks.
func (d *Driver) writeFrames(ctx context.Context, logger *slog.Logger, res *Result, paths []string, base string, fps int) (err error) {
	fanout, files, err := sink.Open(d.opts.OutputDir, base)
	if err != nil {
		return err
	}
	res.Files = files
	defer func() {
		if closeErr := fanout.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	manifest, err := sink.OpenManifest(d.opts.OutputDir)
	if err != nil {
		return err
	}
	res.ManifestPath = manifest.Path()
	defer func() {
		if closeErr := manifest.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	total := len(paths)
	d.reporter.Start(total)
	defer d.reporter.Finish()

	for i, path := range paths {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return services.Wrap(services.ErrIO, "convert", "frames", fmt.Sprintf("cancelled before frame %d of %d", i+1, total), ctxErr)
		}
		f, convErr := frame.Convert(path, d.opts.Width, d.opts.Ramp, d.opts.Threshold)
		if convErr != nil {
			return frameError(path, convErr)
		}
		f = render.Attach(f)

		if i == 0 {
			res.Manifest = sink.NewManifest(f, res.Mode, fps, total)
			if err := manifest.Write(res.Manifest); err != nil {
				return err
			}
			logger.Debug("manifest written",
				logging.String("path", manifest.Path()),
				logging.Int("cols", res.Manifest.Cols),
				logging.Int("rows", res.Manifest.Rows),
				logging.String(logging.FieldEventType, "manifest_written"),
			)
		}

		if err := fanout.WriteFrame(f); err != nil {
			return err
		}
		res.FrameCount = i + 1
		logger.Debug("frame written",
			logging.Int("frame", i+1),
			logging.Int("run_count", render.RunCount(f)),
			logging.String(logging.FieldEventType, "frame_written"),
		)
		d.reporter.Advance(i+1, total)
	}
	return nil
}

// frameError names the failing frame. Errors already carrying a marker keep
// it; anything else is a decode failure.
func frameError(path string, err error) error {
	name := filepath.Base(path)
	if services.Marker(err) != nil {
		return fmt.Errorf("frame %s: %w", name, err)
	}
	return services.Wrap(services.ErrDecode, "convert", "frame", name, err)
}

type runFunc func(ctx context.Context, logger *slog.Logger, res *Result) error

// run wraps a conversion with run id tagging, timing and the ledger.
func (d *Driver) run(ctx context.Context, mode, input string, fn runFunc) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	abs, err := filepath.Abs(input)
	if err != nil {
		return Result{}, services.Wrap(services.ErrValidation, "convert", mode, input, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return Result{}, services.Wrap(services.ErrIO, "convert", mode, "input not readable", err)
	}

	res := Result{
		RunID:     d.newID(),
		Mode:      mode,
		Input:     abs,
		OutputDir: d.opts.OutputDir,
		Ramp:      d.opts.Ramp.Name(),
	}
	ctx = services.WithRunID(ctx, res.RunID)
	logger := logging.WithContext(ctx, d.logger)

	started := time.Now()
	d.recordStart(ctx, logger, res, started)
	logger.Info("conversion started",
		logging.String("mode", mode),
		logging.String("input", abs),
		logging.String("output_dir", d.opts.OutputDir),
		logging.Int("width", d.opts.Width),
		logging.String("ramp", res.Ramp),
		logging.String(logging.FieldEventType, "run_started"),
	)

	runErr := fn(ctx, logger, &res)
	res.Elapsed = time.Since(started)

	if runErr != nil {
		logging.ErrorWithContext(logger, "conversion failed", "run_failed",
			logging.Error(runErr),
			logging.String(logging.FieldErrorKind, services.Kind(runErr)),
			logging.Int("frames_written", res.FrameCount),
			logging.String(logging.FieldErrorHint, errorHint(runErr)),
		)
		d.recordFailure(ctx, logger, res, runErr)
		return res, runErr
	}

	logger.Info("conversion completed",
		logging.Int("frame_count", res.FrameCount),
		logging.Int("cols", res.Manifest.Cols),
		logging.Int("rows", res.Manifest.Rows),
		logging.Int64("output_bytes", res.OutputBytes()),
		logging.Duration("elapsed", res.Elapsed),
		logging.String(logging.FieldEventType, "run_completed"),
	)
	d.recordCompletion(ctx, logger, res)
	return res, nil
}

func (d *Driver) inspect(ctx context.Context, logger *slog.Logger, input string) {
	if d.prober == nil {
		return
	}
	info, err := d.prober.Inspect(ctx, input)
	if err != nil {
		logging.WarnWithContext(logger, "media inspection failed", "probe_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "frame estimate unavailable"),
		)
		return
	}
	attrs := []logging.Attr{
		logging.Float64("duration_seconds", info.DurationSeconds()),
		logging.Int("estimated_frames", info.EstimatedFrames(d.opts.FPS)),
		logging.Int64("size_bytes", info.SizeBytes()),
		logging.String(logging.FieldEventType, "media_inspected"),
	}
	if stream, ok := info.Video(); ok {
		attrs = append(attrs, logging.String("video", stream.String()))
	}
	logger.Info("media inspected", logging.Args(attrs...)...)
}

func (d *Driver) recordStart(ctx context.Context, logger *slog.Logger, res Result, started time.Time) {
	if d.recorder == nil {
		return
	}
	err := d.recorder.Start(ctx, history.Run{
		ID:        res.RunID,
		Mode:      res.Mode,
		InputPath: res.Input,
		OutputDir: res.OutputDir,
		Ramp:      res.Ramp,
		Width:     d.opts.Width,
		FPS:       videoFPS(res.Mode, d.opts.FPS),
		StartedAt: started,
	})
	if err != nil {
		d.disableRecorder(logger, err)
	}
}

func (d *Driver) recordCompletion(ctx context.Context, logger *slog.Logger, res Result) {
	if d.recorder == nil {
		return
	}
	err := d.recorder.Complete(context.WithoutCancel(ctx), res.RunID, history.Outcome{
		FrameCount:  res.FrameCount,
		Cols:        res.Manifest.Cols,
		Rows:        res.Manifest.Rows,
		OutputBytes: res.OutputBytes(),
	})
	if err != nil {
		d.disableRecorder(logger, err)
	}
}

func (d *Driver) recordFailure(ctx context.Context, logger *slog.Logger, res Result, cause error) {
	if d.recorder == nil {
		return
	}
	if err := d.recorder.Fail(context.WithoutCancel(ctx), res.RunID, res.FrameCount, cause); err != nil {
		d.disableRecorder(logger, err)
	}
}

// disableRecorder drops the ledger for the rest of the Driver's life after a
// write failure. Conversions continue without history.
func (d *Driver) disableRecorder(logger *slog.Logger, err error) {
	logging.WarnWithContext(logger, "run history unavailable", "history_write_failed",
		logging.Error(err),
		logging.String(logging.FieldImpact, "run not recorded in history"),
		logging.String(logging.FieldErrorHint, "check paths.history_db"),
	)
	d.recorder = nil
}

func releaseLocks(logger *slog.Logger, locks workspace.Locks) {
	if err := locks.Release(); err != nil {
		logging.WarnWithContext(logger, "failed to release directory lock", "lock_release_failed",
			logging.Error(err),
		)
	}
}

func videoFPS(mode string, fps int) int {
	if mode == ModeVideo {
		return fps
	}
	return 0
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, services.ErrBusy):
		return "another run is using the output or scratch directory"
	case errors.Is(err, services.ErrExtraction):
		return "run `rune deps` and check the input is a readable video"
	case errors.Is(err, services.ErrDecode):
		return "the named frame could not be decoded"
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrConfiguration):
		return "check flags and config values"
	default:
		return "check directory permissions and free space"
	}
}
