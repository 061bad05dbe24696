// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

// AppendArg adds arg as the last argument of call. The call's SourceArgs is
// left untouched so Reprint can tell appended arguments from parsed ones.
func AppendArg(call *ECall, arg Expr) {
	call.Args = append(call.Args, arg)
}

// PrependItems inserts items at the start of the module body, in order.
func PrependItems(m *Module, items ...Item) {
	body := make([]Item, 0, len(items)+len(m.Body))
	body = append(body, items...)
	m.Body = append(body, m.Body...)
}

// AppendItems adds items at the end of the module body.
func AppendItems(m *Module, items ...Item) {
	m.Body = append(m.Body, items...)
}

// NamespaceImport builds `import * as local from "source"`.
func NamespaceImport(local, source string) *ImportDecl {
	return &ImportDecl{
		Specifiers: []ImportSpecifier{{Kind: ImportNamespace, Local: local}},
		Source:     String(source),
	}
}

// ExprStatement wraps an expression in a statement.
func ExprStatement(e Expr) *SExpr {
	return &SExpr{Expr: e}
}

// CalleeName returns the identifier name of a call's callee, or "" when
// the callee is not a bare identifier.
func CalleeName(call *ECall) string {
	if id, ok := call.Callee.(*EIdent); ok {
		return id.Name
	}
	return ""
}
