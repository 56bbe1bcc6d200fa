// Package extract splits a video into numbered still frames with ffmpeg and
// lists the results in playback order.
package extract
