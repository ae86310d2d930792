// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/hlx/src/logger"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfigFile = "HLX_CONFIG_FILE"
	EnvLogLevel   = "HLX_LOG_LEVEL"
)

//go:embed schema.json
var schema string

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json and anything unknown)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Clean holds the defaults of the clean command.
type Clean struct {
	// Directory is the working directory (process working directory when empty).
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty"`
	// TargetDir overrides <dir>/.hlx/build.
	TargetDir string `json:"targetDir,omitempty" yaml:"targetDir,omitempty"`
	// CacheDir overrides <dir>/.hlx/cache.
	CacheDir string `json:"cacheDir,omitempty" yaml:"cacheDir,omitempty"`
}

// Config represents the hlx configuration file.
// Missing values are left empty; consumers apply their own defaults.
type Config struct {
	Logging logger.Config `json:"logging" yaml:"logging"`
	Clean   Clean         `json:"clean" yaml:"clean"`
}

// ValidationError lists every schema violation of a configuration file.
type ValidationError struct {
	Path     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config file %s: %s", e.Path, strings.Join(e.Problems, "; "))
}

// detectFormat determines the configuration file format based on file extension.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// Load loads the configuration from path.
//
// Configuration Priority:
//  1. Empty defaults
//  2. HLX_CONFIG_FILE is used if path is empty
//  3. File values, after schema validation
//  4. HLX_LOG_LEVEL overrides logging.level
//
// A missing path yields the defaults; a path that cannot be read or parsed is
// an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decode(path, data, cfg); err != nil {
			return nil, err
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}

	return cfg, nil
}

// decode validates data and unmarshals it into cfg.
func decode(path string, data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var raw any
	switch detectFormat(path) {
	case formatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		if err := validate(path, raw); err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
		if err := validate(path, raw); err != nil {
			return err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// validate checks a decoded document against the embedded schema.
func validate(path string, document any) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewGoLoader(document))
	if err != nil {
		return fmt.Errorf("failed to validate config file: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Path: path}
	for _, desc := range result.Errors() {
		verr.Problems = append(verr.Problems, desc.String())
	}
	return verr
}
