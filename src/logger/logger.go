// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"errors"
	"maps"

	"github.com/rs/zerolog"
)

// Fields are optional structured values attached to an entry.
// Set FieldProgress to true to mark progress-bar output.
type Fields map[string]any

// Logger defines the interface for logging operations.
// Every method takes a message and optional trailing fields.
type Logger interface {
	// Debug logs a debug entry.
	Debug(msg string, fields ...Fields)
	// Info logs an informational entry.
	Info(msg string, fields ...Fields)
	// Warn logs a warning.
	Warn(msg string, fields ...Fields)
	// Error logs an error.
	Error(msg string, fields ...Fields)
}

// CategoryLogger is the composite logger of one category: a console sink
// and zero or more file sinks behind a single zerolog logger.
//
// CategoryLogger is safe for concurrent use by multiple goroutines.
type CategoryLogger struct {
	category string
	zl       zerolog.Logger
	files    []*fileSink
}

// Category returns the category name of the logger.
func (l *CategoryLogger) Category() string { return l.category }

// Debug logs a debug entry.
func (l *CategoryLogger) Debug(msg string, fields ...Fields) { write(l.zl.Debug(), msg, fields) }

// Info logs an informational entry.
func (l *CategoryLogger) Info(msg string, fields ...Fields) { write(l.zl.Info(), msg, fields) }

// Warn logs a warning.
func (l *CategoryLogger) Warn(msg string, fields ...Fields) { write(l.zl.Warn(), msg, fields) }

// Error logs an error.
func (l *CategoryLogger) Error(msg string, fields ...Fields) { write(l.zl.Error(), msg, fields) }

// Progress logs msg as an informational progress entry.
func (l *CategoryLogger) Progress(msg string) { l.Info(msg, Fields{FieldProgress: true}) }

// Files returns the paths of the file sinks attached to the logger.
func (l *CategoryLogger) Files() []string {
	paths := make([]string, 0, len(l.files))
	for _, f := range l.files {
		paths = append(paths, f.path)
	}
	return paths
}

// Close closes the file sinks. The logger keeps working afterwards; a later
// write reopens the files.
func (l *CategoryLogger) Close() error {
	var errs []error
	for _, f := range l.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// reservedPrefix is prepended to caller fields that would collide with the
// keys written by the logger itself.
const reservedPrefix = "field."

func write(e *zerolog.Event, msg string, fields []Fields) {
	for _, f := range fields {
		if len(f) > 0 {
			e = e.Fields(sanitize(f))
		}
	}
	e.Msg(msg)
}

// sanitize renames the reserved keys of f. f itself is never modified.
func sanitize(f Fields) map[string]any {
	out := map[string]any(f)
	cloned := false
	for _, key := range []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
		FieldCategory,
	} {
		v, ok := f[key]
		if !ok {
			continue
		}
		if !cloned {
			out = maps.Clone(out)
			cloned = true
		}
		delete(out, key)
		out[reservedPrefix+key] = v
	}
	return out
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...Fields) {}
func (nopLogger) Info(string, ...Fields)  {}
func (nopLogger) Warn(string, ...Fields)  {}
func (nopLogger) Error(string, ...Fields) {}

// Nop returns a Logger that discards every entry. It is handy in tests.
func Nop() Logger { return nopLogger{} }
