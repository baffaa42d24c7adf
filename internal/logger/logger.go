// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// asimov-account CLI.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Diagnostic logs go to stderr in a human-readable form; user-facing progress
// output is the job of the console package, not of this logger.
package logger

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// Options control how the CLI logger is built. They are derived from the
// startup configuration instead of from process-wide environment flags.
type Options struct {
	// Debug enables debug level and adds the calling function to each entry.
	Debug bool
	// Verbosity is the number of -v flags; two or more enables info level.
	Verbosity int
	// NoColor disables ANSI colours in the console output.
	NoColor bool
}

// Level returns the zerolog level implied by the options:
//   - Debug        → debug
//   - Verbosity ≥2 → info
//   - otherwise    → warn
func (o Options) Level() zerolog.Level {
	switch {
	case o.Debug:
		return zerolog.DebugLevel
	case o.Verbosity >= 2:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}

// NewCLILogger constructs a *Logger for the given role label that writes
// console-formatted entries to w (normally os.Stderr).
//
// The logger is configured with:
//   - a level derived from opts (see [Options.Level]);
//   - a "role" field set to role;
//   - a timestamp on every entry;
//   - in debug mode, a "func" caller field holding the fully-qualified
//     function name instead of file:line.
func NewCLILogger(role string, w io.Writer, opts Options) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    opts.NoColor,
		TimeFormat: time.TimeOnly,
	}

	ctx := zerolog.New(out).Level(opts.Level()).With().
		Str("role", role).
		Timestamp()
	if opts.Debug {
		ctx = ctx.Caller()
	}

	return &Logger{ctx.Logger()}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext returns a copy of ctx carrying the logger, retrievable with
// [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// (disabled) logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
