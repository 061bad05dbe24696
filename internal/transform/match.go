// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transform

import "github.com/petar-djukic/vextract/internal/ast"

// Match returns the canonical style function a call invokes.
//
// With a namespace import the callee must be `ns.<name>` for a style
// function name, and named imports are ignored. Otherwise the callee must be
// a bare identifier bound by a named import. Optional calls never match.
func (b *Bindings) Match(call *ast.ECall) (string, bool) {
	if call == nil || call.Optional {
		return "", false
	}

	if b.Namespace != "" {
		member, ok := call.Callee.(*ast.EMember)
		if !ok || member.Optional {
			return "", false
		}
		obj, ok := member.Object.(*ast.EIdent)
		if !ok || obj.Name != b.Namespace || !IsStyleFunction(member.Property) {
			return "", false
		}
		return member.Property, true
	}

	name := ast.CalleeName(call)
	if name == "" {
		return "", false
	}
	canonical, ok := b.Named[name]
	return canonical, ok
}

// annotatable returns the canonical name of a call that should carry a debug
// id: a matched style function with fewer arguments than its limit.
func (b *Bindings) annotatable(call *ast.ECall) (string, bool) {
	name, ok := b.Match(call)
	if !ok {
		return "", false
	}
	limit, ok := ArityLimit(name)
	if !ok || len(call.Args) >= limit {
		return "", false
	}
	return name, true
}
