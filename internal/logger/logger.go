// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors and context helpers used across the storefront configuration
// library.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Components receive *Logger by pointer; per-operation loggers travel in the
// context via WithContext and FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a *Logger for the given role label (e.g. "resolver",
// "refresh-job") writing JSON to os.Stdout at debug level.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	l, _ := New(os.Stdout, role, zerolog.LevelDebugValue)
	return l
}

// New constructs a *Logger writing to w with the minimum level named by level
// (a zerolog level name such as "info"). An empty level means debug.
//
// On an unknown level the returned logger is still usable (debug level) and
// the error describes the bad value.
func New(w io.Writer, role, level string) (*Logger, error) {
	lvl := zerolog.DebugLevel
	var err error
	if level != "" {
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			lvl = zerolog.DebugLevel
			err = fmt.Errorf("unknown log level %q: %w", level, err)
		}
	}

	logger := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}, err
}

// Nop returns a *Logger that discards all log output.
// It is intended for tests and for embedders that bring no logger.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext returns a copy of ctx carrying the logger, for retrieval with
// [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default context
// logger (disabled unless configured), so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
