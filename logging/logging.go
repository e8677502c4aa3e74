// Package logging holds the zerolog logger shared by the gdl3 packages.
//
// The default logger writes to stderr at the level named by LOG_LEVEL
// (info when unset, debug when DEBUG is set). Libraries log through
// Default(); programs may replace it with SetDefault.
package logging

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var defaultLogger atomic.Pointer[zerolog.Logger]

// Nop discards everything.
var Nop = zerolog.Nop()

func init() {
	l := New(os.Stderr, Level())
	defaultLogger.Store(&l)
}

// Default returns the shared logger.
func Default() *zerolog.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the shared logger.
func SetDefault(l zerolog.Logger) {
	defaultLogger.Store(&l)
}

// New returns a logger writing to w. A terminal gets console formatting
// unless LOG_FORMAT=json.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if f, ok := w.(*os.File); ok && isTerminal(f) && os.Getenv("LOG_FORMAT") != "json" {
		w = zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Level reads the level from the environment.
func Level() zerolog.Level {
	s := os.Getenv("LOG_LEVEL")
	if s == "" {
		if os.Getenv("DEBUG") != "" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
