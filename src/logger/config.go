// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// CLICategory is the category of user-facing command output.
	CLICategory = "cli"
	// DefaultLevel is the console level used when none is configured.
	DefaultLevel = "info"
	// DefaultLogsDir holds the default log file of every category.
	DefaultLogsDir = "logs"
	// StderrTarget is the output target naming the console.
	StderrTarget = "-"
)

// Targets lists the outputs of a logger. In JSON and YAML it may be written
// either as a single string or as a list of strings.
type Targets []string

// UnmarshalJSON accepts a string or an array of strings.
func (t *Targets) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*t = Targets{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("logFile must be a string or a list of strings: %w", err)
	}
	*t = many
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (t *Targets) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var one string
		if err := node.Decode(&one); err != nil {
			return err
		}
		*t = Targets{one}
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*t = many
	default:
		return fmt.Errorf("logFile must be a string or a list of strings (line %d)", node.Line)
	}
	return nil
}

// Config describes a category logger. The zero value is valid; Resolve fills
// in the defaults.
type Config struct {
	// Category selects the formatting rules and the default log file name.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	// Level is the minimum console level (debug, info, warn, error).
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// LogsDir is the directory of the default log file. It only places the
	// default file: explicit LogFile paths are not joined to it, so a
	// relative target is relative to the working directory.
	LogsDir string `json:"logsDir,omitempty" yaml:"logsDir,omitempty"`
	// LogFile lists output targets; "-" is standard error.
	LogFile Targets `json:"logFile,omitempty" yaml:"logFile,omitempty"`
}

// CategoryConfig returns the configuration for a bare category name.
func CategoryConfig(category string) Config { return Config{Category: category} }

// Resolve returns a copy of c with defaults applied:
//
//   - Category "cli"
//   - Level "info"
//   - LogsDir "logs"
//   - LogFile ["-", "<LogsDir>/<Category>-server.log"]
//
// Empty targets are dropped. Explicit file targets are used as given and
// are not placed under LogsDir.
func (c Config) Resolve() Config {
	c.Category = strings.TrimSpace(c.Category)
	if c.Category == "" {
		c.Category = CLICategory
	}
	if strings.TrimSpace(c.Level) == "" {
		c.Level = DefaultLevel
	}
	if strings.TrimSpace(c.LogsDir) == "" {
		c.LogsDir = DefaultLogsDir
	}

	targets := make(Targets, 0, len(c.LogFile))
	for _, target := range c.LogFile {
		if target = strings.TrimSpace(target); target != "" {
			targets = append(targets, target)
		}
	}
	if len(targets) == 0 {
		targets = Targets{StderrTarget, DefaultLogFile(c.LogsDir, c.Category)}
	}
	c.LogFile = targets

	return c
}

// DefaultLogFile returns the log file of category under logsDir.
func DefaultLogFile(logsDir, category string) string {
	return filepath.Join(logsDir, category+"-server.log")
}

// isJSONPath reports whether a file target should receive JSON lines.
func isJSONPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonl", ".ndjson":
		return true
	default:
		return false
	}
}
