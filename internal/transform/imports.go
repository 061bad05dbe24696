// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transform

import "github.com/petar-djukic/vextract/internal/ast"

// Bindings records how a module refers to the style functions.
type Bindings struct {
	// Named maps a local identifier to the canonical function it imports.
	Named map[string]string
	// Namespace is the local name of a `* as ns` import, or "".
	Namespace string
	// Compiled is set when the module imports FileScopePackage.
	Compiled bool
	// ESM is set when the module has any import or export declaration.
	ESM bool
}

// CollectImports scans the top-level import and export declarations of a
// module. It never descends into statements.
func CollectImports(items []ast.Item) *Bindings {
	b := &Bindings{Named: make(map[string]string)}
	for _, it := range items {
		switch it := it.(type) {
		case *ast.ImportDecl:
			b.ESM = true
			b.collectImport(it)
		case *ast.ExportDecl, *ast.ExportDefaultDecl, *ast.ExportDefaultExpr, *ast.ExportNamed:
			b.ESM = true
		}
	}
	return b
}

func (b *Bindings) collectImport(d *ast.ImportDecl) {
	if b.Compiled || d.Source == nil {
		return
	}

	src := d.Source.Value
	if src == FileScopePackage {
		b.Compiled = true
		return
	}
	if !packageIdentifiers[src] {
		return
	}

	for _, spec := range d.Specifiers {
		switch spec.Kind {
		case ast.ImportNamed:
			imported := spec.Imported
			if imported == "" {
				imported = spec.Local
			}
			if IsStyleFunction(imported) {
				b.Named[spec.Local] = imported
			}
		case ast.ImportNamespace:
			b.Namespace = spec.Local
		case ast.ImportDefault:
		}
	}
}
