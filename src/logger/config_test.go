// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/hlx/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    logger.Config
		expected logger.Config
	}{
		{
			name:  "Zero value",
			input: logger.Config{},
			expected: logger.Config{
				Category: "cli",
				Level:    "info",
				LogsDir:  "logs",
				LogFile:  logger.Targets{"-", filepath.Join("logs", "cli-server.log")},
			},
		},
		{
			name:  "Bare category",
			input: logger.CategoryConfig("build"),
			expected: logger.Config{
				Category: "build",
				Level:    "info",
				LogsDir:  "logs",
				LogFile:  logger.Targets{"-", filepath.Join("logs", "build-server.log")},
			},
		},
		{
			name:  "Custom logs dir",
			input: logger.Config{Category: "deploy", LogsDir: "/var/log/hlx"},
			expected: logger.Config{
				Category: "deploy",
				Level:    "info",
				LogsDir:  "/var/log/hlx",
				LogFile:  logger.Targets{"-", filepath.Join("/var/log/hlx", "deploy-server.log")},
			},
		},
		{
			name:  "Explicit targets keep order and drop blanks",
			input: logger.Config{Level: "debug", LogFile: logger.Targets{"", "out.json", " ", "-"}},
			expected: logger.Config{
				Category: "cli",
				Level:    "debug",
				LogsDir:  "logs",
				LogFile:  logger.Targets{"out.json", "-"},
			},
		},
		{
			name:  "Explicit targets are not placed under the logs dir",
			input: logger.Config{Category: "build", LogsDir: "out", LogFile: logger.Targets{"build.log"}},
			expected: logger.Config{
				Category: "build",
				Level:    "info",
				LogsDir:  "out",
				LogFile:  logger.Targets{"build.log"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Resolve())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logger.Level
	}{
		{"debug", logger.DebugLevel},
		{"DEBUG", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"Warning", logger.WarnLevel},
		{"error", logger.ErrorLevel},
		{"", logger.InfoLevel},
		{"chatty", logger.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, logger.ParseLevel(tt.input))
		})
	}
}

func TestTargetsUnmarshal(t *testing.T) {
	t.Run("JSON string", func(t *testing.T) {
		var cfg logger.Config
		require.NoError(t, json.Unmarshal([]byte(`{"logFile":"-"}`), &cfg))
		assert.Equal(t, logger.Targets{"-"}, cfg.LogFile)
	})

	t.Run("JSON array", func(t *testing.T) {
		var cfg logger.Config
		require.NoError(t, json.Unmarshal([]byte(`{"logFile":["-","logs/build.jsonl"]}`), &cfg))
		assert.Equal(t, logger.Targets{"-", "logs/build.jsonl"}, cfg.LogFile)
	})

	t.Run("JSON invalid", func(t *testing.T) {
		var cfg logger.Config
		assert.Error(t, json.Unmarshal([]byte(`{"logFile":42}`), &cfg))
	})

	t.Run("YAML scalar", func(t *testing.T) {
		var cfg logger.Config
		require.NoError(t, yaml.Unmarshal([]byte("logFile: build.log\n"), &cfg))
		assert.Equal(t, logger.Targets{"build.log"}, cfg.LogFile)
	})

	t.Run("YAML sequence", func(t *testing.T) {
		var cfg logger.Config
		require.NoError(t, yaml.Unmarshal([]byte("category: build\nlogFile:\n  - \"-\"\n  - build.log\n"), &cfg))
		assert.Equal(t, "build", cfg.Category)
		assert.Equal(t, logger.Targets{"-", "build.log"}, cfg.LogFile)
	})

	t.Run("YAML mapping", func(t *testing.T) {
		var cfg logger.Config
		assert.Error(t, yaml.Unmarshal([]byte("logFile:\n  path: build.log\n"), &cfg))
	})

	t.Run("Unknown fields ignored", func(t *testing.T) {
		var cfg logger.Config
		require.NoError(t, json.Unmarshal([]byte(`{"category":"build","colour":"always"}`), &cfg))
		assert.Equal(t, "build", cfg.Category)
	})
}
