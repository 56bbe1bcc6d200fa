package sink

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"rune/internal/frame"
	"rune/internal/services"
)

// ManifestName is the manifest file written next to the streams.
const ManifestName = "manifest.json"

const (
	TypeImage = "image"
	TypeVideo = "video"
)

// Manifest describes the grid shared by every frame in a clip.
type Manifest struct {
	Cols       int    `json:"cols"`
	Rows       int    `json:"rows"`
	Channels   int    `json:"channels"`
	Type       string `json:"type"`
	FPS        int    `json:"fps"`
	FrameCount int    `json:"frame_count"`
}

// NewManifest takes the dimensions from the resized frame.
func NewManifest(f frame.AsciiFrame, kind string, fps, frameCount int) Manifest {
	return Manifest{
		Cols:       f.Cols(),
		Rows:       f.Rows(),
		Channels:   f.Image.Channels(),
		Type:       kind,
		FPS:        fps,
		FrameCount: frameCount,
	}
}

// WriteManifest encodes m as an indented JSON object followed by a newline.
func WriteManifest(w io.Writer, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return services.Wrap(services.ErrIO, "sink", "manifest", "encode", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return services.Wrap(services.ErrIO, "sink", "manifest", "write", err)
	}
	return nil
}

// ManifestFile is dir/manifest.json, created before the first frame decodes
// so a run that fails on frame 1 still leaves it in place.
type ManifestFile struct {
	path string
	file *os.File
}

// OpenManifest creates or truncates dir/manifest.json.
func OpenManifest(dir string) (*ManifestFile, error) {
	path := filepath.Join(dir, ManifestName)
	f, err := os.Create(path)
	if err != nil {
		return nil, services.Wrap(services.ErrIO, "sink", "manifest", path, err)
	}
	return &ManifestFile{path: path, file: f}, nil
}

// Path returns the manifest location.
func (m *ManifestFile) Path() string { return m.path }

// Write encodes manifest into the file. It is called once per run.
func (m *ManifestFile) Write(manifest Manifest) error {
	return WriteManifest(m.file, manifest)
}

// Close flushes the manifest to disk.
func (m *ManifestFile) Close() error {
	if m == nil || m.file == nil {
		return nil
	}
	err := m.file.Close()
	m.file = nil
	if err != nil {
		return services.Wrap(services.ErrIO, "sink", "manifest", m.path, err)
	}
	return nil
}

// ReadManifest loads a manifest written through ManifestFile.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, services.Wrap(services.ErrIO, "sink", "manifest", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, services.Wrap(services.ErrDecode, "sink", "manifest", path, err)
	}
	return m, nil
}
