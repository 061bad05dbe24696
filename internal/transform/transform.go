// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package transform adds debug ids to vanilla-extract style calls and wraps
// style modules in a file scope.
//
// For a target module that is not already compiled, Transform collects the
// module's style imports, then for each top-level item runs a read-only
// finder that derives a debug id from the enclosing declarations and an
// injector that appends it to the matching call. Finally the module is
// bracketed by setFileScope and endFileScope calls on a namespace import of
// FileScopePackage.
package transform

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/petar-djukic/vextract/internal/ast"
	"github.com/petar-djukic/vextract/pkg/types"
)

// Options carries the per-file context of a transform.
type Options struct {
	Filename    string       // Path of the module; DefaultFilename when empty
	Root        string       // Directory scope paths are relative to; DefaultRoot when empty
	PackageName string       // Package name passed to setFileScope; DefaultPackageName when empty
	Logger      *slog.Logger // Debug logger; slog.Default() when nil
}

func (o Options) withDefaults() Options {
	if o.Filename == "" {
		o.Filename = DefaultFilename
	}
	if o.Root == "" {
		o.Root = DefaultRoot
	}
	if o.PackageName == "" {
		o.PackageName = DefaultPackageName
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Transform rewrites m in place and reports what it did.
//
// Modules whose filename does not match IsTarget, and modules that already
// import or require FileScopePackage, are left unwrapped. The only error is
// a *types.Diagnostic wrapping ErrMalformedDeclaration; m may have been
// partly rewritten when it is returned.
func Transform(m *ast.Module, opts Options) (*types.FileResult, error) {
	opts = opts.withDefaults()
	log := opts.Logger.With(slog.String("file", opts.Filename))
	result := &types.FileResult{FilePath: opts.Filename, State: types.StateNotTarget}

	if !IsTarget(opts.Filename) {
		log.Debug("skipping non-target file")
		return result, nil
	}

	bindings := CollectImports(m.Body)
	result.ESM = bindings.ESM
	if bindings.Compiled {
		result.State = types.StateAlreadyCompiled
		log.Debug("module already imports file scope")
		return result, nil
	}

	inj := &injector{bindings: bindings}
	compiled := false
	for i, it := range m.Body {
		f := newFinder(bindings)
		ast.WalkPath(f, it)
		if f.err != nil {
			return nil, &types.Diagnostic{
				FilePath: opts.Filename,
				Message:  fmt.Sprintf("top-level item %d", i+1),
				Err:      f.err,
			}
		}

		inj.id = f.id
		ast.Walk(inj, it)

		if f.compiled {
			compiled = true
			log.Debug("module already requires file scope", slog.Int("item", i+1))
			break
		}
	}

	result.DebugIDs = inj.injected
	result.Changed = len(inj.injected) > 0
	if compiled {
		result.State = types.StateAlreadyCompiled
		return result, nil
	}

	wrap(m, ScopePath(opts.Filename, opts.Root), opts.PackageName)
	result.State = types.StateWrapped
	result.Changed = true

	log.Debug("wrapped module",
		slog.Int("debug_ids", len(result.DebugIDs)),
		slog.Bool("esm", result.ESM),
	)
	return result, nil
}

// wrap brackets the module body with the file scope calls.
func wrap(m *ast.Module, scopePath, packageName string) {
	scope := func() ast.Expr { return ast.Ident(FileScopeLocal) }
	ast.PrependItems(m,
		ast.NamespaceImport(FileScopeLocal, FileScopePackage),
		ast.ExprStatement(ast.Call(
			ast.Member(scope(), setFileScope),
			ast.String(scopePath),
			ast.String(packageName),
		)),
	)
	ast.AppendItems(m, ast.ExprStatement(ast.Call(ast.Member(scope(), endFileScope))))
}

// ScopePath is the file path passed to setFileScope. Relative filenames are
// cleaned; absolute filenames inside root are made relative to it. The
// result always uses forward slashes.
func ScopePath(filename, root string) string {
	if !filepath.IsAbs(filename) {
		return filepath.ToSlash(filepath.Clean(filename))
	}
	if absRoot, err := filepath.Abs(root); err == nil {
		if rel, err := filepath.Rel(absRoot, filename); err == nil && filepath.IsLocal(rel) {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(filename)
}
