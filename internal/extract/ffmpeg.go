package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"rune/internal/services"
)

// FramePrefix starts every extracted file name.
const FramePrefix = "frame_"

// SupportedExts lists the still formats ffmpeg is asked to produce.
var SupportedExts = []string{"jpg", "png"}

// FFmpeg extracts frames by running the ffmpeg binary.
type FFmpeg struct {
	Binary string
	Ext    string
}

// Pattern returns the printf-style output name handed to ffmpeg.
func Pattern(ext string) string {
	return FramePrefix + "%05d." + normalizeExt(ext)
}

// Args builds the ffmpeg argument list for sampling input at fps into dir.
func (f FFmpeg) Args(input, dir string, fps int) []string {
	return []string{
		"-y",
		"-loglevel", "error",
		"-i", input,
		"-vf", "fps=" + strconv.Itoa(fps),
		filepath.Join(dir, Pattern(f.Ext)),
	}
}

// Extract runs ffmpeg and returns the produced frame paths, sorted. A
// non-zero exit or an empty result is an extraction error.
func (f FFmpeg) Extract(ctx context.Context, input, dir string, fps int) ([]string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, services.Wrap(services.ErrValidation, "extract", "ffmpeg", "empty input path", nil)
	}
	if fps <= 0 {
		return nil, services.Wrap(services.ErrValidation, "extract", "ffmpeg", fmt.Sprintf("fps must be positive, got %d", fps), nil)
	}
	if _, err := os.Stat(input); err != nil {
		return nil, services.Wrap(services.ErrExtraction, "extract", "ffmpeg", "input not readable", err)
	}

	binary := strings.TrimSpace(f.Binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	cmd := exec.CommandContext(ctx, binary, f.Args(input, dir, fps)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, services.Wrap(services.ErrExtraction, "extract", "ffmpeg", "cancelled", ctxErr)
		}
		detail := strings.TrimSpace(string(output))
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail = fmt.Sprintf("exit status %d: %s", exitErr.ExitCode(), detail)
		}
		return nil, services.Wrap(services.ErrExtraction, "extract", "ffmpeg", detail, err)
	}

	frames, err := ListFrames(dir, f.Ext)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, services.Wrap(services.ErrExtraction, "extract", "list", "ffmpeg produced no frames", nil)
	}
	return frames, nil
}

// ListFrames returns the frame files in dir with the given extension, sorted
// lexicographically. Zero padding makes that playback order.
func ListFrames(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrIO, "extract", "list", dir, err)
	}
	suffix := "." + normalizeExt(ext)
	var frames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, FramePrefix) || !strings.HasSuffix(strings.ToLower(name), suffix) {
			continue
		}
		frames = append(frames, filepath.Join(dir, name))
	}
	sort.Strings(frames)
	return frames, nil
}

// ValidExt reports whether ext is one of SupportedExts.
func ValidExt(ext string) bool {
	ext = normalizeExt(ext)
	for _, candidate := range SupportedExts {
		if candidate == ext {
			return true
		}
	}
	return false
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if ext == "" || ext == "jpeg" {
		return "jpg"
	}
	return ext
}
