// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under dir from a map of slash paths to contents.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

type prefixIgnorer string

func (p prefixIgnorer) Ignored(path string, _ bool) bool {
	return strings.Contains(filepath.ToSlash(path), string(p))
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/button.css.ts":         "",
		"src/theme.css.js":          "",
		"src/app.ts":                "",
		"src/nested/deep.css.tsx":   "",
		"node_modules/lib/x.css.ts": "",
		"vendor/y.css.ts":           "",
		".git/z.css.ts":             "",
		"generated/out.css.ts":      "",
		"src/notes.css.md":          "",
	})

	files, err := Collect(context.Background(), dir, nil, prefixIgnorer("/generated"))
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{"src/button.css.ts", "src/nested/deep.css.tsx", "src/theme.css.js"}, rel)
}

func TestCollect_ExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.css.ts": "",
		"b.ts":     "",
	})
	a := filepath.Join(dir, "a.css.ts")
	b := filepath.Join(dir, "b.ts")

	files, err := Collect(context.Background(), dir, []string{a, b, a}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{a}, files)
}

func TestCollect_MissingPath(t *testing.T) {
	_, err := Collect(context.Background(), ".", []string{filepath.Join(t.TempDir(), "nope")}, nil)
	assert.Error(t, err)
}

func TestCollect_Canceled(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.css.ts": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Collect(ctx, dir, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
