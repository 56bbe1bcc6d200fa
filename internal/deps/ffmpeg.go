package deps

// Requirements lists the binaries used by conversions. ffprobe only feeds
// progress estimates, so it is optional.
func Requirements(ffmpegBinary, ffprobeBinary string) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     ffmpegBinary,
			Description: "Extracts still frames from video input",
		},
		{
			Name:        "FFprobe",
			Command:     ffprobeBinary,
			Description: "Reads video duration for progress estimates",
			Optional:    true,
		},
	}
}
