package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"rune/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// History is disabled unless WithHistory is supplied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.ScratchDir = filepath.Join(base, "scratch")
	cfgVal.Paths.HistoryDB = ""
	cfgVal.Convert.Width = 8

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithHistory enables the run ledger under the temp base directory.
func WithHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.HistoryDB = filepath.Join(b.baseDir, "state", "history.db")
	}
}

// WithWidth overrides the output column count.
func WithWidth(width int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Convert.Width = width
	}
}

// WithRamp selects a built-in ramp or, when custom is non-empty, a custom one.
func WithRamp(name, custom string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Convert.Ramp = name
		b.cfg.Convert.CustomRamp = custom
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, ffmpeg and ffprobe are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"ffmpeg", "ffprobe"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		for _, name := range names {
			WriteScript(b.t, filepath.Join(binDir, name), "exit 0")
		}
		b.t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
