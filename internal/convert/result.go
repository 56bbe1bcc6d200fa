package convert

import (
	"time"

	"rune/internal/sink"
	"rune/internal/workspace"
)

// Mode names what a run converted.
const (
	ModeImage = sink.TypeImage
	ModeVideo = sink.TypeVideo
)

const (
	imageBase = "frame"
	videoBase = "frames"
)

// Result describes a finished run.
type Result struct {
	RunID        string
	Mode         string
	Input        string
	OutputDir    string
	Ramp         string
	Manifest     sink.Manifest
	ManifestPath string
	Files        sink.Files
	FrameCount   int
	Elapsed      time.Duration
}

// Artifacts lists every file the run wrote, manifest first.
func (r Result) Artifacts() []string {
	paths := make([]string, 0, 4)
	if r.ManifestPath != "" {
		paths = append(paths, r.ManifestPath)
	}
	for _, p := range r.Files.All() {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// OutputBytes totals the output directory. It is cleared before each run,
// so everything in it belongs to this one.
func (r Result) OutputBytes() int64 {
	if r.OutputDir == "" {
		return 0
	}
	return workspace.DirSize(r.OutputDir)
}
