package services_test

import (
	"errors"
	"strings"
	"testing"

	"rune/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExtraction, "video", "ffmpeg", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"video", "ffmpeg", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrValidation, "", "", "", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "conversion failure") {
		t.Fatalf("expected default detail, got %q", err.Error())
	}
}

func TestWrapDefaultsToIOMarker(t *testing.T) {
	err := services.Wrap(nil, "sink", "open", "", errors.New("denied"))
	if !errors.Is(err, services.ErrIO) {
		t.Fatalf("expected io marker, got %v", err)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{services.Wrap(services.ErrDecode, "frame", "decode", "", nil), "decode"},
		{services.Wrap(services.ErrExtraction, "", "", "", nil), "extraction"},
		{services.Wrap(services.ErrIO, "", "", "", nil), "io"},
		{services.Wrap(services.ErrBusy, "", "", "", nil), "busy"},
		{errors.New("plain"), "unknown"},
	}
	for _, tt := range tests {
		if got := services.Kind(tt.err); got != tt.want {
			t.Fatalf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestMarker(t *testing.T) {
	wrapped := services.Wrap(services.ErrValidation, "frame", "resize", "width", nil)
	if got := services.Marker(wrapped); got != services.ErrValidation {
		t.Fatalf("Marker = %v, want validation marker", got)
	}
	if got := services.Marker(errors.New("plain")); got != nil {
		t.Fatalf("plain error should carry no marker, got %v", got)
	}
	if got := services.Marker(nil); got != nil {
		t.Fatalf("nil error should carry no marker, got %v", got)
	}
}
