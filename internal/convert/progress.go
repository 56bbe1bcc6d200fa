package convert

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"rune/internal/logging"
)

// Reporter receives per-frame progress.
type Reporter interface {
	Start(total int)
	Advance(counter, total int)
	Finish()
}

type nopReporter struct{}

func (nopReporter) Start(int)        {}
func (nopReporter) Advance(int, int) {}
func (nopReporter) Finish()          {}

// NewReporter picks a progress bar when w is a terminal and sampled log
// lines otherwise.
func NewReporter(w io.Writer, logger *slog.Logger) Reporter {
	if file, ok := w.(*os.File); ok && isTerminal(file.Fd()) {
		return NewBarReporter(w)
	}
	return NewLogReporter(logger)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// BarReporter draws a progress bar.
type BarReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewBarReporter returns a Reporter drawing to w.
func NewBarReporter(w io.Writer) *BarReporter {
	return &BarReporter{w: w}
}

func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription("frames"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Advance(counter, _ int) {
	if r.bar == nil {
		return
	}
	_ = r.bar.Set(counter)
}

func (r *BarReporter) Finish() {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	r.bar = nil
}

// LogReporter logs progress at 10% steps.
type LogReporter struct {
	logger  *slog.Logger
	sampler *logging.ProgressSampler
}

// NewLogReporter returns a Reporter that writes sampled progress to logger.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LogReporter{logger: logger, sampler: logging.NewProgressSampler(10)}
}

func (r *LogReporter) Start(total int) {
	r.sampler.Reset()
	r.logger.Debug("progress started",
		logging.Int("total", total),
		logging.String(logging.FieldEventType, "progress_started"),
	)
}

func (r *LogReporter) Advance(counter, total int) {
	if total <= 0 {
		return
	}
	percent := float64(counter) * 100 / float64(total)
	if !r.sampler.ShouldLog(percent, "convert") {
		return
	}
	r.logger.Info("converting frames",
		logging.Int(logging.FieldFrame, counter),
		logging.Int("total", total),
		logging.Float64("percent", percent),
		logging.String(logging.FieldEventType, "progress"),
	)
}

func (r *LogReporter) Finish() {}
