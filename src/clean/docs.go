// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package clean implements the "hlx clean" command, which removes the build
// output directory (.hlx/build) and the cache directory (.hlx/cache) of a
// working directory.
//
// Both directories are removed concurrently. A missing directory is skipped
// silently; a removal failure is logged as an error and never returned, so
// one failing directory does not affect the other:
//
//	clean.New(log).WithDirectory("/src/app").Run()
package clean
