// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/vextract/internal/parser"
	"github.com/petar-djukic/vextract/pkg/types"
)

const buttonSource = `import { style } from '@vanilla-extract/css';

export const button = style({ color: 'red' });
`

func TestRunner_TransformSource(t *testing.T) {
	r := NewRunner(Options{PackageName: "ui", Diff: true})

	res := r.TransformSource(context.Background(), "src/button.css.ts", []byte(buttonSource))
	require.NoError(t, res.Err)
	assert.Equal(t, types.StateWrapped, res.State)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"button"}, res.DebugIDs)
	assert.Contains(t, string(res.Output), `__vanilla_filescope__.setFileScope("src/button.css.ts", "ui");`)
	assert.Contains(t, string(res.Output), `style({ color: 'red' }, "button");`)
	assert.Contains(t, res.Diff, "--- a/src/button.css.ts\n")
	assert.Contains(t, res.Diff, `+export const button = style({ color: 'red' }, "button");`)
}

func TestRunner_TransformSource_NotTarget(t *testing.T) {
	r := NewRunner(Options{})

	res := r.TransformSource(context.Background(), "button.ts", []byte(buttonSource))
	require.NoError(t, res.Err)
	assert.Equal(t, types.StateNotTarget, res.State)
	assert.False(t, res.Changed)
	assert.Equal(t, buttonSource, string(res.Output))
}

func TestRunner_TransformSource_SyntaxError(t *testing.T) {
	r := NewRunner(Options{})

	res := r.TransformSource(context.Background(), "bad.css.ts", []byte("export const = style(;\n"))
	require.Error(t, res.Err)
	assert.True(t, errors.Is(res.Err, parser.ErrSyntax))
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/button.css.ts": buttonSource,
		"src/bad.css.ts":    "export const = ;\n",
		"src/done.css.ts":   "import '@vanilla-extract/css/fileScope';\n",
	})
	files, err := Collect(context.Background(), dir, nil, nil)
	require.NoError(t, err)
	require.Len(t, files, 3)

	r := NewRunner(Options{Root: dir, Workers: 2, Write: true, Verify: true})
	results, stats, err := r.Run(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, types.Stats{Processed: 3, Wrapped: 1, Changed: 1, Compiled: 1, Failed: 1}, stats)

	// Results follow the input order: bad, button, done.
	assert.Error(t, results[0].Err)
	assert.Equal(t, types.StateWrapped, results[1].State)
	assert.Equal(t, types.StateAlreadyCompiled, results[2].State)

	written, err := os.ReadFile(filepath.Join(dir, "src", "button.css.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(written), `setFileScope("src/button.css.ts", "swc-plugin-vanilla-extract")`)

	// A second run finds everything compiled and writes nothing.
	results, stats, err = r.Run(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Compiled)
	assert.Zero(t, stats.Changed)
	again, err := os.ReadFile(filepath.Join(dir, "src", "button.css.ts"))
	require.NoError(t, err)
	assert.Equal(t, string(written), string(again))
	assert.False(t, results[1].Changed)
}

func TestRunner_Run_Canceled(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.css.ts": buttonSource})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(Options{Root: dir})
	results, stats, err := r.Run(ctx, []string{filepath.Join(dir, "a.css.ts")})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
	assert.Equal(t, 1, stats.Failed)
}
