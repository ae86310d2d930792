// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/hlx/src/internal/helper/gc"
	"github.com/buger/jsonparser"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorAllowed honours the NO_COLOR convention and dumb terminals.
func colorAllowed() bool {
	return os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb"
}

// levelColor returns the colour of a level name on the console. Levels
// without an entry are printed plain.
func levelColor(l Level, enabled bool) *color.Color {
	var c *color.Color
	switch l {
	case InfoLevel:
		c = color.New(color.FgGreen)
	case WarnLevel:
		c = color.New(color.FgYellow)
	case ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		c = color.New(color.FgRed)
	default:
		return nil
	}
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// consoleSink renders zerolog events as human-readable lines.
//
// consoleSink is safe for concurrent use by multiple goroutines.
type consoleSink struct {
	mu       sync.Mutex
	out      io.Writer
	category string
	min      Level
	filter   entryFilter
	colors   map[Level]*color.Color
}

// newConsoleSink creates the console sink of category writing to w.
// interactive selects the progress behaviour, colored the level colours.
func newConsoleSink(w io.Writer, category string, min Level, interactive, colored bool) *consoleSink {
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
	}

	colors := make(map[Level]*color.Color, 3)
	for _, l := range []Level{InfoLevel, WarnLevel, ErrorLevel} {
		colors[l] = levelColor(l, colored)
	}

	return &consoleSink{
		out:      w,
		category: category,
		min:      min,
		filter:   filterFor(category, interactive),
		colors:   colors,
	}
}

// Write implements io.Writer for events written without a level.
func (s *consoleSink) Write(p []byte) (int, error) {
	name, _ := jsonparser.GetString(p, zerolog.LevelFieldName)
	l, err := zerolog.ParseLevel(name)
	if err != nil {
		l = zerolog.NoLevel
	}
	return s.WriteLevel(l, p)
}

// WriteLevel implements zerolog.LevelWriter.
func (s *consoleSink) WriteLevel(l Level, p []byte) (int, error) {
	n := len(p)
	if l < s.min {
		return n, nil
	}

	event, keep := s.filter(p)
	if !keep {
		return n, nil
	}

	msg, _ := jsonparser.GetString(event, zerolog.MessageFieldName)

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	s.format(buf, l, msg)

	s.mu.Lock()
	_, err := s.out.Write(buf.Bytes())
	s.mu.Unlock()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// format writes one console line into buf.
func (s *consoleSink) format(buf gc.Buffer, l Level, msg string) {
	msg = strings.TrimRight(msg, "\n")

	if s.category != CLICategory {
		buf.WriteByte('[')
		buf.WriteString(s.category)
		buf.WriteString("] ")
		s.writeLevel(buf, l)
	} else if l != InfoLevel && l != zerolog.NoLevel {
		s.writeLevel(buf, l)
	}

	buf.WriteString(msg)
	buf.WriteByte('\n')
}

func (s *consoleSink) writeLevel(buf gc.Buffer, l Level) {
	name := l.String()
	if name == "" {
		return
	}
	if c := s.colors[l]; c != nil {
		name = c.Sprint(name)
	}
	buf.WriteString(name)
	buf.WriteString(": ")
}
