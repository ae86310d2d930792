// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// hlx is the command-line entry point of the hlx build tool.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/hlx/cmd/hlx@latest
//
// # Usage
//
//	hlx [GLOBAL FLAGS] clean [FLAGS]
//
// # Global Flags
//
//	    --config     Configuration file (JSON or YAML, default: $HLX_CONFIG_FILE)
//	    --log-level  Console log level: debug, info, warn, error
//	    --logs-dir   Directory of the default log file (default: logs)
//	    --log-file   Log output target, repeatable; "-" is standard error
//
// # Clean Flags
//
//	-C, --dir         Working directory (default: current directory)
//	    --target-dir  Build output directory (default: <dir>/.hlx/build)
//	    --cache-dir   Cache directory (default: <dir>/.hlx/cache)
//	    --dry-run     Show what would be removed without removing anything
//
// # Examples
//
// Remove the build output and cache of the current project:
//
//	hlx clean
//
// Inspect what would be removed:
//
//	hlx clean --dry-run
//
// Log to standard error and a JSON-lines file only:
//
//	hlx --log-file - --log-file logs/cli.jsonl clean
package main
