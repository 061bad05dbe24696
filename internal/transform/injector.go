// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transform

import "github.com/petar-djukic/vextract/internal/ast"

// injector appends the held debug id to the first annotatable call it
// visits. One injector serves a whole module; the id is replaced before
// each item.
type injector struct {
	bindings *Bindings
	id       debugID
	injected []string
}

// VisitCall implements ast.Visitor.
func (in *injector) VisitCall(call *ast.ECall) {
	if _, ok := in.bindings.annotatable(call); !ok {
		return
	}
	name, ok := in.id.take()
	if !ok {
		return
	}
	ast.AppendArg(call, ast.String(name))
	in.injected = append(in.injected, name)
}
