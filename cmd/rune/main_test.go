package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"rune/internal/config"
	"rune/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
	input      string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithHistory()}, opts...)...)
	base := testsupport.BaseDir(cfg)
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("RUNE_FFMPEG", "")
	t.Setenv("RUNE_FFPROBE", "")
	cfg.FFmpeg.FFprobeBinary = filepath.Join(base, "bin", "missing-ffprobe")

	configPath := filepath.Join(base, "rune.toml")
	writeTestConfig(t, configPath, cfg)

	input := filepath.Join(base, "input", "my_cat.png")
	testsupport.WritePNG(t, input, 16, 8, color.RGBA{R: 255, A: 255})

	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base, input: input}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestRootShowsHelp(t *testing.T) {
	out, _, err := runCLI(t, nil, "")
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	requireContains(t, out, "image")
	requireContains(t, out, "video")
}
