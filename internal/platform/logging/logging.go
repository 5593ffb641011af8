package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New opens a zerolog logger writing JSON lines to logPath. Stdout belongs to
// the TUI, so everything (including fire-and-forget sync failures) goes to the
// log file.
func New(logPath, level string) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(f).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	zerolog.TimeFieldFormat = time.RFC3339
	return logger, f, nil
}
