package sink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"rune/internal/frame"
	"rune/internal/services"
)

// FrameSink consumes frames in order.
type FrameSink interface {
	WriteFrame(f frame.AsciiFrame) error
	Close() error
}

// Entry names a sink inside a Fanout so failures can say which stream broke.
type Entry struct {
	Name string
	Sink FrameSink
}

// Fanout delivers each frame to every sink before accepting the next.
type Fanout struct {
	entries []Entry
	closed  bool
}

// NewFanout preserves the order of entries.
func NewFanout(entries ...Entry) *Fanout {
	return &Fanout{entries: append([]Entry(nil), entries...)}
}

// WriteFrame stops at the first sink error.
func (f *Fanout) WriteFrame(fr frame.AsciiFrame) error {
	if f.closed {
		return services.Wrap(services.ErrIO, "sink", "write", "fanout already closed", nil)
	}
	for _, e := range f.entries {
		if err := e.Sink.WriteFrame(fr); err != nil {
			return services.Wrap(services.ErrIO, "sink", "write", e.Name, err)
		}
	}
	return nil
}

// Close closes every sink even after a failure and joins the errors.
func (f *Fanout) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	var errs []error
	for _, e := range f.entries {
		if err := e.Sink.Close(); err != nil {
			errs = append(errs, services.Wrap(services.ErrIO, "sink", "close", e.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Names lists the sinks in delivery order.
func (f *Fanout) Names() []string {
	names := make([]string, len(f.entries))
	for i, e := range f.entries {
		names[i] = e.Name
	}
	return names
}

// Files records where Open put each stream.
type Files struct {
	JSONL string
	Gzip  string
	HTML  string
}

// All returns the stream paths in sink order.
func (f Files) All() []string {
	return []string{f.JSONL, f.Gzip, f.HTML}
}

// Paths derives the stream file names for base inside dir.
func Paths(dir, base string) Files {
	return Files{
		JSONL: filepath.Join(dir, base+".jsonl"),
		Gzip:  filepath.Join(dir, base+".jsonl.gz"),
		HTML:  filepath.Join(dir, base+".txt"),
	}
}

// Open creates the three stream files for base inside dir. On failure any
// file already opened is closed.
func Open(dir, base string) (*Fanout, Files, error) {
	files := Paths(dir, base)
	var opened []Entry
	fail := func(path string, err error) (*Fanout, Files, error) {
		_ = NewFanout(opened...).Close()
		return nil, Files{}, services.Wrap(services.ErrIO, "sink", "open", path, err)
	}

	jsonl, err := os.Create(files.JSONL)
	if err != nil {
		return fail(files.JSONL, err)
	}
	opened = append(opened, Entry{Name: "jsonl", Sink: NewJSONLSink(jsonl)})

	gz, err := os.Create(files.Gzip)
	if err != nil {
		return fail(files.Gzip, err)
	}
	opened = append(opened, Entry{Name: "jsonl.gz", Sink: NewGzipJSONLSink(gz)})

	html, err := os.Create(files.HTML)
	if err != nil {
		return fail(files.HTML, err)
	}
	opened = append(opened, Entry{Name: "html", Sink: NewHTMLSink(html)})

	return NewFanout(opened...), files, nil
}

func closeAll(first error, closers ...func() error) error {
	errs := []error{first}
	for _, c := range closers {
		if c == nil {
			continue
		}
		errs = append(errs, c())
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
