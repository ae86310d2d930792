// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package clean

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	dir := t.TempDir()
	build := filepath.Join(dir, ".hlx", "build")
	require.NoError(t, os.MkdirAll(filepath.Join(build, "obj"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(build, "app"), make([]byte, 1200), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(build, "obj", "main.o"), make([]byte, 34), 0o644))

	rec := &recorder{}
	plan := New(rec).WithDirectory(dir).Plan()

	require.Len(t, plan, 2)
	assert.Equal(t, Target{Name: "build", Path: build, Rel: filepath.Join(".hlx", "build"), Exists: true, Size: 1234}, plan[0])
	assert.Equal(t, Target{Name: "cache", Path: filepath.Join(dir, ".hlx", "cache"), Rel: filepath.Join(".hlx", "cache")}, plan[1])

	_, err := os.Stat(build)
	assert.NoError(t, err, "planning must not remove anything")
	assert.Empty(t, rec.sorted())
}

func TestPlanRefusesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()

	plan := New(&recorder{}).WithDirectory(dir).WithTargetDir(".").Plan()

	require.Len(t, plan, 2)
	assert.Equal(t, ".", plan[0].Rel)
	assert.ErrorIs(t, plan[0].Err, ErrWorkingDir)
	assert.False(t, plan[0].Exists)
	assert.Contains(t, RenderPlan(plan), "error:")
}

func TestRenderPlan(t *testing.T) {
	out := RenderPlan([]Target{
		{Name: "build", Rel: ".hlx/build", Exists: true, Size: 1234567},
		{Name: "cache", Rel: ".hlx/cache"},
	})

	assert.Contains(t, strings.ToUpper(out), "DIRECTORY")
	assert.Contains(t, out, ".hlx/build")
	assert.Contains(t, out, "will be removed")
	assert.Contains(t, out, "1,234,567 bytes")
	assert.Contains(t, out, "absent")
}
