package config

const (
	defaultOutputDir     = "./out"
	defaultScratchDir    = "~/.cache/rune/frames"
	defaultHistoryDB     = "~/.local/share/rune/history.db"
	defaultWidth         = 120
	defaultFPS           = 8
	defaultRamp          = "simple"
	defaultThreshold     = 1.0
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultFrameExt      = "jpg"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:  defaultOutputDir,
			ScratchDir: defaultScratchDir,
			HistoryDB:  defaultHistoryDB,
		},
		Convert: Convert{
			Width:     defaultWidth,
			FPS:       defaultFPS,
			Ramp:      defaultRamp,
			Threshold: defaultThreshold,
		},
		FFmpeg: FFmpeg{
			Binary:        defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
			FrameExt:      defaultFrameExt,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
