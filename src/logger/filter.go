// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "github.com/buger/jsonparser"

const (
	// FieldProgress marks an entry as transient progress-bar output.
	FieldProgress = "progress"
	// FieldCategory carries the category name of every entry.
	FieldCategory = "category"
)

// entryFilter inspects an encoded zerolog event. It returns the event to pass
// on (possibly rewritten) and whether it should be kept at all.
//
// The input slice is shared by every sink of a logger and must not be modified.
type entryFilter func(event []byte) ([]byte, bool)

// isProgress reports whether event carries "progress": true.
func isProgress(event []byte) bool {
	progress, err := jsonparser.GetBoolean(event, FieldProgress)
	return err == nil && progress
}

// stripProgress removes the progress field and keeps the entry.
func stripProgress(event []byte) ([]byte, bool) {
	if _, _, _, err := jsonparser.Get(event, FieldProgress); err != nil {
		return event, true
	}
	// jsonparser.Delete works in place.
	clone := append([]byte(nil), event...)
	return jsonparser.Delete(clone, FieldProgress), true
}

// suppressProgress drops progress entries on interactive destinations, where
// a progress bar already shows them, and strips the tag everywhere else.
func suppressProgress(interactive bool) entryFilter {
	return func(event []byte) ([]byte, bool) {
		if interactive && isProgress(event) {
			return nil, false
		}
		return stripProgress(event)
	}
}

// filterFor returns the console filter of category.
func filterFor(category string, interactive bool) entryFilter {
	if category == CLICategory {
		return suppressProgress(interactive)
	}
	return stripProgress
}
