// Package logging builds the session logger. The terminal belongs to the TUI,
// so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/todo"
)

const prefix = "tada"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logfmt logger writing to cfg.File (appending), or a logger
// that discards everything when no file is configured.
func New(cfg config.LoggingConfig) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse logging level %q: %w", cfg.Level, err)
	}
	if cfg.File == "" {
		return newLogger(io.Discard, level), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, level), f, nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	})
}

// ObserveStore logs every store mutation at debug level.
// Todo text is not logged; only ids and counts.
func ObserveStore(l *log.Logger, s *todo.Store) (cancel func()) {
	return s.Subscribe(func(ev todo.Event) {
		if ev.Op == todo.OpPending {
			return
		}
		done, pending := todo.Stats(ev.Snapshot.Todos)
		l.Debug("store changed", "op", ev.Op, "id", ev.ID, "completed", done, "incomplete", pending)
	})
}
