// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the per-category loggers used across hlx.
//
// A [Registry] maps a category name (for example "cli" or "build") to a single
// [CategoryLogger] built on [zerolog]. Each category logger fans out to a
// console sink on standard error and to any number of file sinks:
//
//   - The console sink renders "cli" entries as the bare message at info level
//     and as "<level>: <message>" otherwise; every other category is rendered as
//     "[<category>] <level>: <message>". Level names are coloured when standard
//     error is a terminal.
//   - Entries tagged with the "progress" field are dropped from the "cli"
//     console when it is interactive, and printed without the tag otherwise.
//   - File sinks always record debug entries, as JSON lines when the file name
//     ends in .json, .jsonl or .ndjson, and as plain technical text otherwise.
//     Files are rotated by [lumberjack].
//
// Loggers are created lazily on first request and live until the process exits.
// [Default] is the process-wide registry used by the command line:
//
//	log := logger.GetOrCreate(logger.Config{Category: "build", Level: "debug"})
//	log.Info("compiling", logger.Fields{"target": "linux/amd64"})
//	log.Progress("42% done")
//
// [zerolog]: https://github.com/rs/zerolog
// [lumberjack]: https://github.com/natefinch/lumberjack
package logger
