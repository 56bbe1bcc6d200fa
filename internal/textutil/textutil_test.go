package textutil

import "testing"

func TestTitle(t *testing.T) {
	if got := Title(" dense ramp "); got != "Dense Ramp" {
		t.Fatalf("Title = %q", got)
	}
}

func TestLabelFromPath(t *testing.T) {
	cases := map[string]string{
		"/clips/my_cat-video.mp4": "My Cat Video",
		"sunset.PNG":              "Sunset",
		"":                        "Untitled",
		"/tmp/___.jpg":            "Untitled",
	}
	for in, want := range cases {
		if got := LabelFromPath(in); got != want {
			t.Fatalf("LabelFromPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Truncate("abcdefghij", 5); got != "abcd…" {
		t.Fatalf("unexpected %q", got)
	}
	// each ideograph is two cells wide
	if got := Truncate("漢字漢字", 5); got != "漢字…" {
		t.Fatalf("unexpected %q", got)
	}
	if Width(Truncate("漢字漢字", 5)) > 5 {
		t.Fatal("truncated text exceeds width")
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestTruncateLeft(t *testing.T) {
	if got := TruncateLeft("/very/long/path/frames.jsonl", 14); got != "…/frames.jsonl" {
		t.Fatalf("unexpected %q", got)
	}
	if got := TruncateLeft("a.txt", 14); got != "a.txt" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestTernary(t *testing.T) {
	if Ternary(true, "yes", "no") != "yes" || Ternary(false, 1, 2) != 2 {
		t.Fatal("Ternary picked the wrong branch")
	}
}
