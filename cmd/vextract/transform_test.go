// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/vextract/pkg/types"
	"github.com/petar-djukic/vextract/pkg/vextract"
)

func TestTransformStdin(t *testing.T) {
	tr, err := vextract.New(vextract.Config{Root: t.TempDir(), PackageName: "ui"})
	require.NoError(t, err)

	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("import { style } from '@vanilla-extract/css';\nexport const a = style({});\n"))
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, transformStdin(context.Background(), cmd, tr, "a.css.ts"))
	assert.Contains(t, out.String(), `style({}, "a");`)
	assert.Contains(t, out.String(), `__vanilla_filescope__.endFileScope();`)
}

func TestTransformStdin_NotTarget(t *testing.T) {
	tr, err := vextract.New(vextract.Config{})
	require.NoError(t, err)

	src := "export const a = 1;\n"
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(src))
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, transformStdin(context.Background(), cmd, tr, "a.ts"))
	assert.Equal(t, src, out.String())
}

func TestPrintResults(t *testing.T) {
	var out bytes.Buffer
	printResults(&out, []*types.FileResult{
		{FilePath: "a.css.ts", State: types.StateWrapped, DebugIDs: []string{"a"}, ESM: true, Changed: true},
		{FilePath: "b.css.ts", Err: errors.New("boom")},
	})

	var got []jsonResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []jsonResult{
		{File: "a.css.ts", State: "wrapped", DebugIDs: []string{"a"}, ESM: true, Changed: true},
		{File: "b.css.ts", State: "failed", Error: "boom"},
	}, got)
}
