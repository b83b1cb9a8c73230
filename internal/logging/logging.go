// Package logging provides structured logging for carbonfocus built on zerolog.
//
// A single logger is constructed at startup from the resolved configuration
// and flows through context.Context so every component logs with consistent
// fields. Components tag their events via ComponentLogger.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level string (trace, debug, info, warn, error).
	// Unparseable values fall back to info.
	Level string

	// Format selects the output encoding: "console" or "json".
	// Empty selects console when stderr is a terminal, json otherwise.
	Format string

	// File is an optional path that receives log output in addition to
	// stderr. An empty value disables file logging.
	File string
}

// NewLogger builds a zerolog.Logger from cfg.
//
// When cfg.File is set and the file cannot be opened, logging continues on
// stderr only and the returned fallback reason is non-empty. Startup never
// fails because of logging.
func NewLogger(cfg Config) (zerolog.Logger, string) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	writers := []io.Writer{consoleOrJSON(cfg.Format)}

	fallbackReason := ""
	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if openErr != nil {
			fallbackReason = openErr.Error()
		} else {
			writers = append(writers, f)
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return logger, fallbackReason
}

// consoleOrJSON returns the stderr writer for the requested format,
// defaulting by terminal detection when format is empty.
func consoleOrJSON(format string) io.Writer {
	useConsole := format == "console"
	if format == "" {
		useConsole = term.IsTerminal(int(os.Stderr.Fd()))
	}
	if useConsole {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return os.Stderr
}

// ComponentLogger returns a child logger tagged with a component field.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none is present. Pair with zerolog's Logger.WithContext.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
