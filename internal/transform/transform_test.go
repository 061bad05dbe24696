// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transform

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/petar-djukic/vextract/internal/ast"
	"github.com/petar-djukic/vextract/internal/parser"
	"github.com/petar-djukic/vextract/pkg/types"
)

// --- Helpers ---

func parseModule(t *testing.T, filename, src string) *ast.Module {
	t.Helper()
	m, err := parser.New().Parse(context.Background(), filename, []byte(src))
	require.NoError(t, err)
	return m
}

// transformSource parses, transforms and reprints src.
func transformSource(t *testing.T, opts Options, src string) (string, *types.FileResult) {
	t.Helper()
	m := parseModule(t, opts.Filename, src)
	res, err := Transform(m, opts)
	require.NoError(t, err)
	out, err := ast.Reprint([]byte(src), m)
	require.NoError(t, err)
	return string(out), res
}

type goldenCase struct {
	filename string
	input    string
	want     string
	state    string
	pkg      string
	ids      []string
}

// loadGolden reads a txtar case: the archive comment holds "key: value"
// settings, the first file is the input and "want" the expected output.
func loadGolden(t *testing.T, path string) goldenCase {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(ar.Files), 2, "%s needs an input and a want section", path)

	c := goldenCase{filename: ar.Files[0].Name, input: string(ar.Files[0].Data)}
	for _, f := range ar.Files[1:] {
		if f.Name == "want" {
			c.want = string(f.Data)
		}
	}
	for _, line := range strings.Split(string(ar.Comment), "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		switch key {
		case "state":
			c.state = value
		case "package":
			c.pkg = value
		case "ids":
			c.ids = strings.Fields(value)
		}
	}
	return c
}

// --- Golden tests ---

func TestTransformGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			c := loadGolden(t, file)
			opts := Options{Filename: c.filename, PackageName: c.pkg}

			out, res := transformSource(t, opts, c.input)
			assert.Equal(t, c.want, out)
			assert.Equal(t, c.state, res.State.String())
			if diff := cmp.Diff(c.ids, res.DebugIDs, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("debug ids mismatch (-want +got):\n%s", diff)
			}

			if res.State != types.StateWrapped {
				return
			}
			again, res2 := transformSource(t, opts, out)
			assert.Equal(t, out, again, "second run must not change the output")
			assert.Equal(t, types.StateAlreadyCompiled, res2.State)
		})
	}
}

// --- Transform ---

const buttonSource = `import { style } from '@vanilla-extract/css';
export const button = style({});
`

func TestTransform_WrapStructure(t *testing.T) {
	m := parseModule(t, "button.css.ts", buttonSource)
	res, err := Transform(m, Options{Filename: "button.css.ts", PackageName: "pkg"})
	require.NoError(t, err)
	assert.Equal(t, types.StateWrapped, res.State)
	assert.True(t, res.Changed)
	assert.True(t, res.ESM)

	require.Len(t, m.Body, 5)
	imp, ok := m.Body[0].(*ast.ImportDecl)
	require.True(t, ok)
	assert.Equal(t, FileScopePackage, imp.Source.Value)
	require.Len(t, imp.Specifiers, 1)
	assert.Equal(t, ast.ImportNamespace, imp.Specifiers[0].Kind)
	assert.Equal(t, FileScopeLocal, imp.Specifiers[0].Local)

	assert.Equal(t, `__vanilla_filescope__.setFileScope("button.css.ts", "pkg");`, ast.Print(m.Body[1]))
	assert.Equal(t, `__vanilla_filescope__.endFileScope();`, ast.Print(m.Body[4]))
}

func TestTransform_Defaults(t *testing.T) {
	m := parseModule(t, "x.js", buttonSource)
	res, err := Transform(m, Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultFilename, res.FilePath)
	assert.Equal(t, types.StateNotTarget, res.State)
	assert.False(t, res.Changed)
	assert.Len(t, m.Body, 2)
}

func TestTransform_ArityRespect(t *testing.T) {
	tests := []struct {
		fn    string
		limit int
	}{
		{"style", 2},
		{"createTheme", 3},
		{"styleVariants", 3},
		{"fontFace", 2},
		{"keyframes", 2},
		{"createVar", 1},
		{"recipe", 2},
		{"createContainer", 1},
	}
	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			for n := 0; n <= tt.limit; n++ {
				args := make([]string, n)
				for i := range args {
					args[i] = "{}"
				}
				call := tt.fn + "(" + strings.Join(args, ", ") + ")"
				src := "import { " + tt.fn + " } from '@vanilla-extract/css';\nexport const x = " + call + ";\n"

				out, res := transformSource(t, Options{Filename: "a.css.js"}, src)
				if n < tt.limit {
					assert.Equal(t, []string{"x"}, res.DebugIDs, "args=%d", n)
					assert.Equal(t, 1, strings.Count(out, `"x"`), "args=%d", n)
				} else {
					assert.Empty(t, res.DebugIDs, "args=%d", n)
					assert.Contains(t, out, "export const x = "+call+";", "args=%d", n)
				}
			}
		})
	}
}

func TestTransform_MalformedLoweredDeclaration(t *testing.T) {
	call := ast.Call(ast.Ident("style"), &ast.EObject{})
	m := &ast.Module{Body: []ast.Item{
		&ast.ImportDecl{
			Specifiers: []ast.ImportSpecifier{{Kind: ast.ImportNamed, Local: "style"}},
			Source:     ast.String("@vanilla-extract/css"),
		},
		&ast.SVar{Kind: ast.VarVar, Decls: []*ast.Declarator{
			{Name: &ast.PIdent{Name: "a"}, Init: call},
			{Name: &ast.PIdent{Name: "b"}},
			nil,
			{Name: &ast.PIdent{Name: "d"}},
		}},
	}}

	res, err := Transform(m, Options{Filename: "bad.css.ts"})
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedDeclaration))

	var diag *types.Diagnostic
	require.True(t, errors.As(err, &diag))
	assert.Equal(t, "bad.css.ts", diag.FilePath)
	assert.Contains(t, err.Error(), "bad.css.ts")
}

// --- ScopePath ---

func TestScopePath(t *testing.T) {
	root := t.TempDir()
	tests := []struct {
		name     string
		filename string
		root     string
		want     string
	}{
		{"relative", "src/button.css.ts", ".", "src/button.css.ts"},
		{"relative unclean", "./src/../src/button.css.ts", ".", "src/button.css.ts"},
		{"absolute inside root", filepath.Join(root, "src", "a.css.ts"), root, "src/a.css.ts"},
		{"absolute outside root", filepath.Join(root, "a.css.ts"), filepath.Join(root, "sub"), filepath.ToSlash(filepath.Join(root, "a.css.ts"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScopePath(tt.filename, tt.root))
		})
	}
}
