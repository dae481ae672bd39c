package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// NewLogger creates the session logger. Bubble Tea owns the terminal, so
// output goes to the file at path; an empty path discards everything.
// The returned closer must be called when the session ends.
func NewLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("tui: invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("tui: cannot open log file %s: %w", path, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           lvl,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// logEvents writes game events to the logger.
func logEvents(logger *log.Logger, events []registry.Event) {
	if logger == nil {
		return
	}
	for _, ev := range events {
		if ev.Debug {
			logger.Debug(ev.Name, ev.Fields...)
			continue
		}
		logger.Info(ev.Name, ev.Fields...)
	}
}
