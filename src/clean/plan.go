// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package clean

import (
	"strings"

	"github.com/H0llyW00dzZ/hlx/src/internal/helper/fsutil"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Target describes a directory the command would remove.
type Target struct {
	// Name is "build" or "cache".
	Name string
	// Path is the absolute or working-directory-joined path.
	Path string
	// Rel is Path relative to the working directory, as used in log entries.
	Rel string
	// Exists reports whether the directory is present.
	Exists bool
	// Size is the total size of the regular files below Path.
	Size int64
	// Err is the error met while inspecting Path, if any.
	Err error
}

// Plan reports what Run would remove without touching the filesystem.
func (c *Command) Plan() []Target {
	dir, targets := c.resolve()

	plan := []Target{
		{Name: "build", Path: targets[0]},
		{Name: "cache", Path: targets[1]},
	}
	for i := range plan {
		t := &plan[i]
		t.Rel = relPath(dir, t.Path)
		if t.Err = checkTarget(dir, t.Path); t.Err != nil {
			continue
		}
		t.Exists, t.Err = fsutil.Exists(t.Path)
		if t.Exists {
			t.Size, t.Err = fsutil.Size(t.Path)
		}
	}
	return plan
}

// RenderPlan renders targets as a markdown table.
func RenderPlan(targets []Target) string {
	p := message.NewPrinter(language.English)

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Directory", "Path", "Status", "Size"})

	var rows [][]string
	for _, t := range targets {
		status := "absent"
		size := "-"
		switch {
		case t.Err != nil:
			status = "error: " + t.Err.Error()
		case t.Exists:
			status = "will be removed"
			size = p.Sprintf("%d bytes", t.Size)
		}
		rows = append(rows, []string{t.Name, t.Rel, status, size})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
