package sink

import (
	"bufio"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"

	"rune/internal/colormodel"
	"rune/internal/frame"
)

// AppendRecord appends one JSONL record for cells, including the trailing
// newline. Keys are emitted in the fixed order g, h, s, l without whitespace.
func AppendRecord(dst []byte, cells []frame.Cell) []byte {
	dst = append(dst, `{"cells":[`...)
	for i, c := range cells {
		if i > 0 {
			dst = append(dst, ',')
		}
		q := colormodel.Quantize(c.H, c.S, c.L)
		dst = append(dst, `{"g":"`...)
		dst = AppendGlyph(dst, c.Glyph)
		dst = append(dst, `","h":`...)
		dst = strconv.AppendInt(dst, int64(q.H), 10)
		dst = append(dst, `,"s":`...)
		dst = strconv.AppendInt(dst, int64(q.S), 10)
		dst = append(dst, `,"l":`...)
		dst = strconv.AppendInt(dst, int64(q.L), 10)
		dst = append(dst, '}')
	}
	return append(dst, "]}\n"...)
}

const hexDigits = "0123456789abcdef"

// AppendGlyph appends s as the body of a JSON string. Everything outside
// printable ASCII is written as \u escapes so the stream stays 7-bit clean;
// code points above U+FFFF become surrogate pairs and malformed bytes become
// U+FFFD.
func AppendGlyph(dst []byte, s string) []byte {
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			i++
			switch c {
			case '\\':
				dst = append(dst, `\\`...)
			case '"':
				dst = append(dst, `\"`...)
			case '\b':
				dst = append(dst, `\b`...)
			case '\f':
				dst = append(dst, `\f`...)
			case '\n':
				dst = append(dst, `\n`...)
			case '\r':
				dst = append(dst, `\r`...)
			case '\t':
				dst = append(dst, `\t`...)
			default:
				if c < 0x20 {
					dst = appendUnicode(dst, rune(c))
				} else {
					dst = append(dst, c)
				}
			}
			continue
		}
		r, size := decodeRune(s[i:])
		i += size
		if r > 0xFFFF {
			r -= 0x10000
			dst = appendUnicode(dst, 0xD800+(r>>10))
			dst = appendUnicode(dst, 0xDC00+(r&0x3FF))
			continue
		}
		dst = appendUnicode(dst, r)
	}
	return dst
}

func appendUnicode(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[(r>>12)&0xF],
		hexDigits[(r>>8)&0xF],
		hexDigits[(r>>4)&0xF],
		hexDigits[r&0xF])
}

// decodeRune reads one sequence from its lead byte. Malformed or truncated
// input consumes a single byte and yields U+FFFD.
func decodeRune(s string) (rune, int) {
	lead := s[0]
	var (
		n   int
		low rune
		r   rune
	)
	switch {
	case lead&0xE0 == 0xC0:
		n, low, r = 2, 0x80, rune(lead&0x1F)
	case lead&0xF0 == 0xE0:
		n, low, r = 3, 0x800, rune(lead&0x0F)
	case lead&0xF8 == 0xF0:
		n, low, r = 4, 0x10000, rune(lead&0x07)
	default:
		return utf8.RuneError, 1
	}
	if len(s) < n {
		return utf8.RuneError, 1
	}
	for k := 1; k < n; k++ {
		b := s[k]
		if b&0xC0 != 0x80 {
			return utf8.RuneError, 1
		}
		r = r<<6 | rune(b&0x3F)
	}
	if r < low || r > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
		return utf8.RuneError, 1
	}
	return r, n
}

// JSONLSink writes one record per frame to a plain stream.
type JSONLSink struct {
	w      *bufio.Writer
	closer io.Closer
	buf    []byte
}

// NewJSONLSink buffers writes to w. If w is an io.Closer, Close closes it.
func NewJSONLSink(w io.Writer) *JSONLSink {
	s := &JSONLSink{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

func (s *JSONLSink) WriteFrame(f frame.AsciiFrame) error {
	s.buf = AppendRecord(s.buf[:0], f.Cells)
	_, err := s.w.Write(s.buf)
	return err
}

func (s *JSONLSink) Close() error {
	err := s.w.Flush()
	if s.closer == nil {
		return err
	}
	return closeAll(err, s.closer.Close)
}

// GzipJSONLSink writes the same records as JSONLSink through a single gzip
// member.
type GzipJSONLSink struct {
	gz     *gzip.Writer
	closer io.Closer
	buf    []byte
}

// NewGzipJSONLSink compresses records into w. If w is an io.Closer, Close
// closes it after the compressor is flushed.
func NewGzipJSONLSink(w io.Writer) *GzipJSONLSink {
	s := &GzipJSONLSink{gz: gzip.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

func (s *GzipJSONLSink) WriteFrame(f frame.AsciiFrame) error {
	s.buf = AppendRecord(s.buf[:0], f.Cells)
	_, err := s.gz.Write(s.buf)
	return err
}

func (s *GzipJSONLSink) Close() error {
	err := s.gz.Close()
	if s.closer == nil {
		return err
	}
	return closeAll(err, s.closer.Close)
}
