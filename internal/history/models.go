package history

import "time"

// Status is the lifecycle state of a run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one row of the ledger.
type Run struct {
	ID          string
	Mode        string
	InputPath   string
	OutputDir   string
	Ramp        string
	Width       int
	FPS         int
	Status      Status
	FrameCount  int
	Cols        int
	Rows        int
	OutputBytes int64
	Error       string
	ErrorKind   string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Elapsed is the wall time of a finished run, or zero while running.
func (r Run) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Outcome carries the figures recorded when a run completes.
type Outcome struct {
	FrameCount  int
	Cols        int
	Rows        int
	OutputBytes int64
}
