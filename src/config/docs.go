// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the hlx configuration file.
//
// The file is JSON or YAML, selected by extension (.json, .yaml, .yml), and is
// validated against an embedded JSON Schema before use. Its path comes from the
// --config flag or the HLX_CONFIG_FILE environment variable; HLX_LOG_LEVEL
// overrides the configured console level.
//
// Example (hlx.yaml):
//
//	logging:
//	  category: cli
//	  level: debug
//	  logsDir: .hlx/logs
//	  logFile:
//	    - "-"
//	    - .hlx/logs/cli.jsonl
//	clean:
//	  cacheDir: /tmp/hlx-cache
package config
