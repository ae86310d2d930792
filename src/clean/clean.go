// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package clean

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/hlx/src/internal/helper/fsutil"
	"github.com/H0llyW00dzZ/hlx/src/logger"
)

// StateDir is the per-project directory holding build output and caches.
const StateDir = ".hlx"

// ErrWorkingDir is reported for a target that is the working directory or
// one of its parents. Such a target is never removed.
var ErrWorkingDir = errors.New("refusing to remove the working directory or one of its parents")

// DefaultTargets returns the build output and cache directories of dir.
func DefaultTargets(dir string) (build, cache string) {
	return filepath.Join(dir, StateDir, "build"), filepath.Join(dir, StateDir, "cache")
}

// Command removes the build output and cache directories of a working
// directory. Configure it with the With methods, then call Run.
type Command struct {
	directory string
	targetDir string
	cacheDir  string
	log       logger.Logger
	remove    func(path string) error
}

// New creates a clean command logging to log. A nil log selects the "cli"
// logger of logger.Default.
func New(log logger.Logger) *Command {
	if log == nil {
		log = logger.ForCategory(logger.CLICategory)
	}
	return &Command{log: log, remove: fsutil.RemoveAll}
}

// WithDirectory sets the working directory. When unset, the process working
// directory at the time of Run is used.
func (c *Command) WithDirectory(dir string) *Command {
	c.directory = dir
	return c
}

// WithTargetDir overrides the build output directory. Relative paths are
// resolved against the working directory.
func (c *Command) WithTargetDir(dir string) *Command {
	c.targetDir = dir
	return c
}

// WithCacheDir overrides the cache directory. Relative paths are resolved
// against the working directory.
func (c *Command) WithCacheDir(dir string) *Command {
	c.cacheDir = dir
	return c
}

// Run removes the build output and cache directories concurrently and waits
// for both. Failures are logged, never returned.
func (c *Command) Run() {
	dir, targets := c.resolve()

	var wg sync.WaitGroup
	for _, target := range targets {
		wg.Go(func() { c.removeDir(dir, target) })
	}
	wg.Wait()
}

// resolve computes the working directory and the two targets from the
// configured fields.
func (c *Command) resolve() (dir string, targets [2]string) {
	dir = c.directory
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			dir = "."
		}
	}

	build, cache := DefaultTargets(dir)
	return dir, [2]string{
		resolveDir(dir, c.targetDir, build),
		resolveDir(dir, c.cacheDir, cache),
	}
}

func resolveDir(dir, override, fallback string) string {
	switch {
	case override == "":
		return fallback
	case filepath.IsAbs(override):
		return filepath.Clean(override)
	default:
		return filepath.Join(dir, override)
	}
}

func (c *Command) removeDir(dir, target string) {
	rel := relPath(dir, target)

	if err := checkTarget(dir, target); err != nil {
		c.log.Error(fmt.Sprintf("unable to remove %s: %v", rel, err))
		return
	}

	exists, err := fsutil.Exists(target)
	if err != nil {
		c.log.Error(fmt.Sprintf("unable to remove %s: %v", rel, err))
		return
	}
	if !exists {
		return
	}

	c.log.Debug(fmt.Sprintf("removing %s", target))
	if err := c.remove(target); err != nil {
		c.log.Error(fmt.Sprintf("unable to remove %s: %v", rel, err))
		return
	}
	c.log.Info(fmt.Sprintf("removed %s", rel))
}

// relPath returns target relative to dir, or target itself when it lies
// outside dir.
func relPath(dir, target string) string {
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return target
	}
	return rel
}

// checkTarget returns ErrWorkingDir when target contains dir.
func checkTarget(dir, target string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(absTarget, absDir)
	if err != nil {
		// Different volumes.
		return nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	return ErrWorkingDir
}
