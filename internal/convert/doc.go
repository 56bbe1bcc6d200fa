// Package convert drives a conversion run end to end.
//
// A Driver owns the output and scratch directories for the duration of a run:
// it locks them, clears them, extracts video frames through an Extractor,
// converts each frame to cells, renders HTML and fans every frame out to the
// three stream sinks in order. The manifest is written once, from the first
// frame's resized dimensions. Runs are strictly sequential and any failure
// aborts the run, leaving what was already written in place.
package convert
