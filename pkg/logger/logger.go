// Package logger wraps zerolog with correlation-ID aware helpers.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper over zerolog with printf-style methods.
type Logger struct {
	logger *zerolog.Logger
}

// New creates a logger writing JSON to stdout at the given level.
// Unknown levels fall back to info.
func New(level string) *Logger {
	var l zerolog.Level

	switch strings.ToLower(level) {
	case "error":
		l = zerolog.ErrorLevel
	case "warn", "warning":
		l = zerolog.WarnLevel
	case "info":
		l = zerolog.InfoLevel
	case "debug":
		l = zerolog.DebugLevel
	default:
		l = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(l)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	return &Logger{logger: &logger}
}

func (l *Logger) Debug(message string, args ...interface{}) {
	l.msg(zerolog.DebugLevel, message, args...)
}

func (l *Logger) Info(message string, args ...interface{}) {
	l.msg(zerolog.InfoLevel, message, args...)
}

func (l *Logger) Warn(message string, args ...interface{}) {
	l.msg(zerolog.WarnLevel, message, args...)
}

func (l *Logger) Error(message string, args ...interface{}) {
	l.msg(zerolog.ErrorLevel, message, args...)
}

// Fatal logs the error and exits the process.
func (l *Logger) Fatal(err error) {
	l.logger.Fatal().Msg(err.Error())
}

func (l *Logger) msg(level zerolog.Level, message string, args ...interface{}) {
	if len(args) == 0 {
		l.logger.WithLevel(level).Msg(message)
		return
	}
	l.logger.WithLevel(level).Msg(fmt.Sprintf(message, args...))
}
