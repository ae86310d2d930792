// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// Registry memoizes one CategoryLogger per category.
//
// A category is created on its first request and is never replaced or
// removed: later requests for the same category return the same logger and
// ignore their configuration.
//
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu         sync.Mutex
	loggers    map[string]*CategoryLogger
	stderr     io.Writer
	isTerminal func(io.Writer) bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithStderr sets the console destination (os.Stderr by default).
func WithStderr(w io.Writer) RegistryOption {
	return func(r *Registry) {
		if w != nil {
			r.stderr = w
		}
	}
}

// WithTerminalDetector overrides how the registry decides whether the console
// destination is interactive (IsTerminal by default).
func WithTerminalDetector(fn func(io.Writer) bool) RegistryOption {
	return func(r *Registry) {
		if fn != nil {
			r.isTerminal = fn
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		loggers:    make(map[string]*CategoryLogger),
		stderr:     os.Stderr,
		isTerminal: IsTerminal,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the process-wide registry. It starts empty, is populated lazily
// and is only closed when the process exits.
var Default = NewRegistry()

// GetOrCreate returns the logger of cfg's category from Default.
func GetOrCreate(cfg Config) *CategoryLogger { return Default.GetOrCreate(cfg) }

// ForCategory returns the logger of category from Default, creating it with
// the default configuration if needed.
func ForCategory(category string) *CategoryLogger {
	return Default.GetOrCreate(CategoryConfig(category))
}

// GetOrCreate returns the logger of the resolved category of cfg, building
// and registering it on first use.
func (r *Registry) GetOrCreate(cfg Config) *CategoryLogger {
	cfg = cfg.Resolve()

	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[cfg.Category]; ok {
		return l
	}

	l := r.build(cfg)
	r.loggers[cfg.Category] = l
	return l
}

// Lookup returns the logger of category if it has been created.
func (r *Registry) Lookup(category string) (*CategoryLogger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.loggers[category]
	return l, ok
}

// Categories returns the registered category names in sorted order.
func (r *Registry) Categories() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Close closes the file sinks of every logger. Call it once, at process exit.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, l := range r.loggers {
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// build assembles the composite logger of a resolved configuration.
func (r *Registry) build(cfg Config) *CategoryLogger {
	l := &CategoryLogger{category: cfg.Category}

	var (
		writers []io.Writer
		skipped []string
		console bool
	)

	for _, target := range cfg.LogFile {
		if target == StderrTarget {
			if console {
				continue
			}
			console = true
			interactive := r.isTerminal(r.stderr)
			writers = append(writers, newConsoleSink(r.stderr, cfg.Category, ParseLevel(cfg.Level), interactive, interactive && colorAllowed()))
			continue
		}

		sink, err := openFileSink(target, cfg.Category)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("unable to open log file %s: %v", target, err))
			continue
		}
		l.files = append(l.files, sink)
		writers = append(writers, sink.writer)
	}

	l.zl = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(DebugLevel).
		Hook(timestampHook{}).
		With().
		Str(FieldCategory, cfg.Category).
		Logger()

	for _, msg := range skipped {
		l.Warn(msg)
	}
	return l
}
