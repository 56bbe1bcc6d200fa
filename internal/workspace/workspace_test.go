package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"rune/internal/logging"
	"rune/internal/services"
)

func TestAcquireIsExclusive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	first, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if first.Path() != dir+".lock" {
		t.Fatalf("unexpected lock path %q", first.Path())
	}
	if _, err := Acquire(dir); !errors.Is(err, services.ErrBusy) {
		t.Fatalf("expected busy error, got %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	again, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	_ = again.Release()
}

func TestAcquireAllRollsBack(t *testing.T) {
	base := t.TempDir()
	out := filepath.Join(base, "out")
	scratch := filepath.Join(base, "scratch")
	blocker, err := Acquire(scratch)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer blocker.Release()

	if _, err := AcquireAll(out, scratch); !errors.Is(err, services.ErrBusy) {
		t.Fatalf("expected busy error, got %v", err)
	}
	// out must have been released by the rollback.
	lock, err := Acquire(out)
	if err != nil {
		t.Fatalf("out still locked after rollback: %v", err)
	}
	_ = lock.Release()
}

func TestResetEmptiesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"old.jsonl", filepath.Join("nested", "x.txt")} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("stale"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := Reset(dir, logging.NewNop()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty dir, found %d entries", len(entries))
	}
}

func TestResetCreatesMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := Reset(dir, nil); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory, got %v", err)
	}
}

func TestResetRefusesRootAndHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, dir := range []string{"/", home, ""} {
		if err := Reset(dir, nil); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("Reset(%q) = %v, want validation error", dir, err)
		}
	}
}

func TestListFilesAndDirSize(t *testing.T) {
	dir := t.TempDir()
	for name, size := range map[string]int{"b.txt": 3, "a.jsonl": 5} {
		if err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files, err := ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 2 || files[0].Name != "a.jsonl" || files[0].Size != 5 {
		t.Fatalf("unexpected files %+v", files)
	}
	if DirSize(dir) != 8 {
		t.Fatalf("DirSize = %d", DirSize(dir))
	}
	missing, err := ListFiles(filepath.Join(dir, "missing"))
	if err != nil || missing != nil {
		t.Fatalf("missing dir: %v %v", missing, err)
	}
}

func TestOverlaps(t *testing.T) {
	base := t.TempDir()
	cases := []struct {
		a, b string
		want bool
	}{
		{filepath.Join(base, "out"), filepath.Join(base, "out"), true},
		{filepath.Join(base, "out"), filepath.Join(base, "out", "frames"), true},
		{filepath.Join(base, "out", "frames"), filepath.Join(base, "out"), true},
		{filepath.Join(base, "out"), filepath.Join(base, "out-frames"), false},
		{filepath.Join(base, "out"), filepath.Join(base, "scratch"), false},
		{filepath.Join(base, "..out"), filepath.Join(base, "out"), false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.a, tc.b); got != tc.want {
			t.Fatalf("Overlaps(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
