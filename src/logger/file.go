// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/hlx/src/internal/helper/fsutil"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TimeFormat is the timestamp layout of every entry: RFC 3339 with
// milliseconds.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// timestampHook stamps every event using TimeFormat. It replaces the context
// timestamp, which follows the global zerolog.TimeFieldFormat.
type timestampHook struct{}

// Run implements zerolog.Hook.
func (timestampHook) Run(e *zerolog.Event, _ Level, _ string) {
	e.Str(zerolog.TimestampFieldName, time.Now().Format(TimeFormat))
}

// Rotation limits of every log file.
const (
	fileMaxSizeMB  = 10
	fileMaxBackups = 3
)

// levelFilter passes on events at or above min.
type levelFilter struct {
	w   io.Writer
	min Level
}

// Write implements io.Writer.
func (f levelFilter) Write(p []byte) (int, error) { return f.w.Write(p) }

// WriteLevel implements zerolog.LevelWriter.
func (f levelFilter) WriteLevel(l Level, p []byte) (int, error) {
	if l < f.min {
		return len(p), nil
	}
	return f.w.Write(p)
}

// fileSink is a rotated log file receiving debug entries and above.
type fileSink struct {
	path    string
	json    bool
	rotator *lumberjack.Logger
	writer  zerolog.LevelWriter
}

// openFileSink prepares the log file at path for category. The parent
// directory is created and the file opened once so that permission problems
// surface here rather than on the first write.
func openFileSink(path, category string) (*fileSink, error) {
	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close log file: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
	}

	sink := &fileSink{path: path, json: isJSONPath(path), rotator: rotator}
	if sink.json {
		sink.writer = levelFilter{w: rotator, min: DebugLevel}
	} else {
		sink.writer = levelFilter{w: technicalWriter(rotator, category), min: DebugLevel}
	}
	return sink, nil
}

// Close closes the underlying file.
func (s *fileSink) Close() error { return s.rotator.Close() }

// technicalWriter renders events as
//
//	2026-10-19T08:15:00.123Z WARN  [build] cache miss key=value
func technicalWriter(out io.Writer, category string) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: TimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{FieldCategory},
		FormatLevel: func(i any) string {
			name, _ := i.(string)
			return fmt.Sprintf("%-5s", strings.ToUpper(name))
		},
		FormatMessage: func(i any) string {
			if i == nil {
				return "[" + category + "]"
			}
			return fmt.Sprintf("[%s] %v", category, i)
		},
	}
}
