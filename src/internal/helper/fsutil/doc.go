// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package fsutil groups the filesystem primitives used by the logger and the
// clean command: existence checks, directory creation, recursive removal and
// on-disk size accounting.
package fsutil
