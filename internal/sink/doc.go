// Package sink writes converted frames to the on-disk streams read by the
// player: plain JSONL, gzip-compressed JSONL, one HTML line per frame, and a
// manifest describing the grid.
//
// All sinks receive frames in the same order; Fanout drives them in lock step.
package sink
