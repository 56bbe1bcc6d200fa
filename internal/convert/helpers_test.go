package convert_test

import (
	"io"
	"log/slog"

	"rune/internal/logging"
)

func testLogger(w io.Writer) *slog.Logger {
	logger, err := logging.NewWithWriter(w, "json", slog.LevelInfo, false)
	if err != nil {
		panic(err)
	}
	return logger
}
