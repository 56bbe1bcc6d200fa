package logging

import "testing"

func TestProgressSamplerBuckets(t *testing.T) {
	s := NewProgressSampler(0)
	if s.bucketSize != 10 {
		t.Fatalf("default bucket = %v", s.bucketSize)
	}
	steps := []struct {
		percent float64
		want    bool
	}{
		{0, true},
		{5, false},
		{10, true},
		{19.9, false},
		{35, true},
		{100, true},
		{120, false},
	}
	for _, step := range steps {
		if got := s.ShouldLog(step.percent, "convert"); got != step.want {
			t.Fatalf("ShouldLog(%v) = %v, want %v", step.percent, got, step.want)
		}
	}
}

func TestProgressSamplerStageChangeResets(t *testing.T) {
	s := NewProgressSampler(25)
	s.ShouldLog(50, "extract")
	if s.ShouldLog(50, "extract") {
		t.Fatal("same bucket should not emit")
	}
	if !s.ShouldLog(0, "convert") {
		t.Fatal("stage change should emit")
	}
	if !s.ShouldLog(-1, "write") {
		t.Fatal("stage change with unknown percent should emit")
	}
	if s.ShouldLog(-1, "write") {
		t.Fatal("unknown percent without stage change should not emit")
	}
	s.Reset()
	if !s.ShouldLog(0, "write") {
		t.Fatal("reset should allow emit")
	}
}

func TestProgressSamplerNil(t *testing.T) {
	var s *ProgressSampler
	if !s.ShouldLog(1, "x") {
		t.Fatal("nil sampler always logs")
	}
	s.Reset()
}
