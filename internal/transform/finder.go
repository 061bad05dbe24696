// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transform

import "github.com/petar-djukic/vextract/internal/ast"

// finder locates the first annotatable call in one top-level item and
// derives its debug id. It also watches for
// require("@vanilla-extract/css/fileScope"), which marks the module as
// already compiled.
type finder struct {
	bindings *Bindings
	compiled bool

	found bool
	id    debugID
	err   error
}

func newFinder(b *Bindings) *finder {
	return &finder{bindings: b}
}

// VisitCall implements ast.PathVisitor.
func (f *finder) VisitCall(call *ast.ECall, path ast.Path) bool {
	if f.compiled || f.err != nil {
		return false
	}
	if isRequireMarker(call) {
		f.compiled = true
		return false
	}
	if f.found {
		// Keep walking only to spot the require marker.
		return true
	}

	if _, ok := f.bindings.annotatable(call); !ok {
		return true
	}
	f.found = true
	f.id, f.err = deriveDebugID(path)
	// The arguments may still hold the require marker.
	return f.err == nil
}

// isRequireMarker reports whether call is require() of FileScopePackage.
func isRequireMarker(call *ast.ECall) bool {
	if ast.CalleeName(call) != requireCallee || len(call.Args) == 0 {
		return false
	}
	s, ok := call.Args[0].(*ast.EString)
	return ok && s.Value == FileScopePackage
}
