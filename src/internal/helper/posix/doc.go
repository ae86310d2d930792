// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// The hlx root command uses it so help output matches the binary the user
// actually invoked:
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName(),
//	    Short: "hlx build tool",
//	}
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/local/bin/hlx" → "hlx"
//   - Windows: "C:\bin\hlx.exe" → "hlx"
//   - Fallback: Empty args → "hlx"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
