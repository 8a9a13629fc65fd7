package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

var defaults struct {
	mu      sync.RWMutex
	level   string
	console bool
}

// Configure sets the level and format used by loggers created afterwards.
// Format "console" selects the human readable writer. LOG_LEVEL and
// APP_ENV still take precedence.
func Configure(level, format string) {
	defaults.mu.Lock()
	defer defaults.mu.Unlock()
	defaults.level = level
	defaults.console = strings.EqualFold(format, "console")
}

// NewZerologLogger creates a ZerologLogger writing to stdout. APP_ENV=dev
// switches to the human readable console writer. LOG_LEVEL accepts any
// zerolog level name and defaults to info.
func NewZerologLogger(component string) Logger {
	defaults.mu.RLock()
	level, console := defaults.level, defaults.console
	defaults.mu.RUnlock()
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level = v
	}
	var out io.Writer = os.Stdout
	if console || strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewZerologLoggerWithWriter(out, component, level)
}

// NewZerologLoggerWithWriter builds a logger on an arbitrary writer. An empty
// or unknown level falls back to info.
func NewZerologLoggerWithWriter(w io.Writer, component, level string) *ZerologLogger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	z := zerolog.New(w).Level(lvl).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Infow(msg string, fields map[string]any) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
