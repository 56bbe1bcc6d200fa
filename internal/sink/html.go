package sink

import (
	"bufio"
	"io"

	"rune/internal/frame"
	"rune/internal/render"
)

// HTMLSink writes one rendered line per frame.
type HTMLSink struct {
	w      *bufio.Writer
	closer io.Closer
}

func NewHTMLSink(w io.Writer) *HTMLSink {
	s := &HTMLSink{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// WriteFrame uses f.HTML when the frame was already rendered.
func (s *HTMLSink) WriteFrame(f frame.AsciiFrame) error {
	line := f.HTML
	if line == "" && len(f.Cells) > 0 {
		line = render.HTML(f)
	}
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

func (s *HTMLSink) Close() error {
	err := s.w.Flush()
	if s.closer == nil {
		return err
	}
	return closeAll(err, s.closer.Close)
}
