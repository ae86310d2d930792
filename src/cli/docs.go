// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of hlx.
// It wires the configuration file, the logger registry and the clean command
// together behind a [cobra] root command.
//
// [cobra]: https://github.com/spf13/cobra
package cli
