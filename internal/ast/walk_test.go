// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathRecorder records the frame kinds leading to each visited call.
type pathRecorder struct {
	paths   [][]FrameKind
	callees []string
	skip    bool
}

func (r *pathRecorder) VisitCall(call *ECall, path Path) bool {
	kinds := make([]FrameKind, len(path))
	for i, f := range path {
		kinds[i] = f.Kind
	}
	r.paths = append(r.paths, kinds)
	r.callees = append(r.callees, CalleeName(call))
	return !r.skip
}

type callCounter struct{ names []string }

func (c *callCounter) VisitCall(call *ECall) { c.names = append(c.names, CalleeName(call)) }

// exportedTheme builds `export const theme = { light: style(inner()) };`.
func exportedTheme() Item {
	inner := Call(Ident("inner"))
	outer := Call(Ident("style"), inner)
	obj := &EObject{Props: []*Property{{Kind: PropKeyValue, Key: Ident("light"), Value: outer}}}
	return &ExportDecl{Decl: &SVar{
		Kind:  VarConst,
		Decls: []*Declarator{{Name: &PIdent{Name: "theme"}, Init: obj}},
	}}
}

func TestWalkPath_Frames(t *testing.T) {
	r := &pathRecorder{}
	WalkPath(r, exportedTheme())

	require.Len(t, r.paths, 2)
	assert.Equal(t, []string{"style", "inner"}, r.callees)
	assert.Equal(t, []FrameKind{
		FrameExport, FrameStmt, FrameVarDecl, FrameDeclarator, FrameExpr, FrameProperty, FrameExpr,
	}, r.paths[0])
	assert.Equal(t, FrameExpr, r.paths[1][len(r.paths[1])-1])
}

func TestWalkPath_SkipArguments(t *testing.T) {
	r := &pathRecorder{skip: true}
	WalkPath(r, exportedTheme())

	assert.Equal(t, []string{"style"}, r.callees)
}

func TestWalkPath_DefaultExportFunction(t *testing.T) {
	item := &ExportDefaultDecl{Decl: &SFunction{Fn: &Function{
		Body: &SBlock{Body: []Stmt{&SReturn{Value: Call(Ident("style"))}}},
	}}}
	r := &pathRecorder{}
	WalkPath(r, item)

	require.Len(t, r.paths, 1)
	assert.Equal(t, []FrameKind{FrameExportDefault, FrameFunctionExpr, FrameStmt, FrameExpr}, r.paths[0])
}

func TestWalkPath_Patterns(t *testing.T) {
	// const { a: { b = make() } } = x;
	item := &SVar{Kind: VarConst, Decls: []*Declarator{{
		Name: &PObject{Props: []*PatternProp{{
			Kind: PatKeyValue,
			Key:  Ident("a"),
			Value: &PObject{Props: []*PatternProp{{
				Kind:    PatAssign,
				Value:   &PIdent{Name: "b"},
				Default: Call(Ident("make")),
			}}},
		}}},
		Init: Ident("x"),
	}}}
	r := &pathRecorder{}
	WalkPath(r, item)

	require.Len(t, r.paths, 1)
	assert.Equal(t, []FrameKind{
		FrameStmt, FrameVarDecl, FrameDeclarator, FramePatternProp, FramePatternProp, FrameExpr,
	}, r.paths[0])
}

func TestWalkPath_NilDeclaratorSkipped(t *testing.T) {
	item := &SVar{Kind: VarVar, Decls: []*Declarator{nil, {Name: &PIdent{Name: "a"}, Init: Call(Ident("f"))}}}
	r := &pathRecorder{}
	WalkPath(r, item)

	assert.Equal(t, []string{"f"}, r.callees)
}

func TestWalk_MatchesWalkPathOrder(t *testing.T) {
	c := &callCounter{}
	Walk(c, exportedTheme())

	r := &pathRecorder{}
	WalkPath(r, exportedTheme())
	assert.Equal(t, r.callees, c.names)
}

func TestFrameKindString(t *testing.T) {
	assert.Equal(t, "var-decl", FrameVarDecl.String())
	assert.Equal(t, "export-default", FrameExportDefault.String())
	assert.Equal(t, "unknown", FrameKind(99).String())
}

func TestPathLast(t *testing.T) {
	_, ok := Path(nil).Last()
	assert.False(t, ok)

	f, ok := Path{{Kind: FrameStmt}, {Kind: FrameExpr}}.Last()
	require.True(t, ok)
	assert.Equal(t, FrameExpr, f.Kind)
}

func exprStmt(name string) Stmt { return &SExpr{Expr: Call(Ident(name))} }

func TestWalkPath_ControlFlow(t *testing.T) {
	item := &SBlock{Body: []Stmt{
		&SFor{
			Init:   &SVar{Kind: VarLet, Decls: []*Declarator{{Name: &PIdent{Name: "i"}, Init: Call(Ident("init"))}}},
			Test:   Call(Ident("test")),
			Update: Call(Ident("update")),
			Body:   exprStmt("forBody"),
		},
		&SForIn{Kind: VarConst, Left: &PIdent{Name: "c"}, Of: true, Right: Call(Ident("list")), Body: exprStmt("ofBody")},
		&SWhile{Test: Call(Ident("cond")), Body: exprStmt("whileBody")},
		&SDoWhile{Body: exprStmt("doBody"), Test: Call(Ident("again"))},
		&STry{
			Block:     &SBlock{Body: []Stmt{exprStmt("attempt")}},
			Param:     &PIdent{Name: "e"},
			Handler:   &SBlock{Body: []Stmt{exprStmt("recover")}},
			Finalizer: &SBlock{Body: []Stmt{exprStmt("cleanup")}},
		},
		&SSwitch{Value: Call(Ident("mode")), Cases: []*SwitchCase{
			{Test: Call(Ident("caseTest")), Body: []Stmt{exprStmt("caseBody")}},
			nil,
			{Body: []Stmt{exprStmt("fallback")}},
		}},
		&SLabeled{Label: "outer", Body: exprStmt("labeled")},
		&SThrow{Value: Call(Ident("fail"))},
	}}

	c := &callCounter{}
	Walk(c, item)
	assert.Equal(t, []string{
		"init", "test", "update", "forBody",
		"list", "ofBody",
		"cond", "whileBody",
		"doBody", "again",
		"attempt", "recover", "cleanup",
		"mode", "caseTest", "caseBody", "fallback",
		"labeled", "fail",
	}, c.names)
}

func TestWalkPath_LoopBodyFrames(t *testing.T) {
	// for (const c of cs) { const s = style(); }
	item := &SForIn{Kind: VarConst, Left: &PIdent{Name: "c"}, Of: true, Right: Ident("cs"), Body: &SBlock{Body: []Stmt{
		&SVar{Kind: VarConst, Decls: []*Declarator{{Name: &PIdent{Name: "s"}, Init: Call(Ident("style"))}}},
	}}}
	r := &pathRecorder{}
	WalkPath(r, item)

	require.Len(t, r.paths, 1)
	assert.Equal(t, []FrameKind{
		FrameStmt, FrameStmt, FrameStmt, FrameVarDecl, FrameDeclarator, FrameExpr,
	}, r.paths[0])
}

func TestWalkPath_ClassMembers(t *testing.T) {
	item := &SClass{Class: &Class{Members: []*ClassMember{
		{Kind: MemberField, Value: Call(Ident("field"))},
		nil,
		{Kind: MemberMethod, Body: &SBlock{Body: []Stmt{&SReturn{Value: Call(Ident("method"))}}}},
		{Kind: MemberRaw, Head: "[key: string]: unknown"},
	}}}
	r := &pathRecorder{}
	WalkPath(r, item)

	assert.Equal(t, []string{"field", "method"}, r.callees)
	assert.Equal(t, []FrameKind{FrameStmt, FrameClass, FrameClassMember, FrameExpr}, r.paths[0])
	assert.Equal(t, []FrameKind{FrameStmt, FrameClass, FrameClassMember, FrameStmt, FrameExpr}, r.paths[1])
}

func TestWalkPath_Expressions(t *testing.T) {
	cls := &EClass{Class: &Class{Members: []*ClassMember{{Kind: MemberField, Value: Call(Ident("inClass"))}}}}
	obj := &EObject{Props: []*Property{{Kind: PropMethod, Body: &SBlock{Body: []Stmt{exprStmt("inMethod")}}}}}
	item := &SExpr{Expr: &ESequence{Exprs: []Expr{
		&ENonNull{Value: Call(Ident("asserted"))},
		&ETemplate{Tag: Call(Ident("tag")), Quasis: []string{"", ""}, Exprs: []Expr{Call(Ident("substituted"))}},
		cls,
		obj,
	}}}

	c := &callCounter{}
	Walk(c, item)
	assert.Equal(t, []string{"asserted", "tag", "substituted", "inClass", "inMethod"}, c.names)
}

func TestWalkPath_RawNested(t *testing.T) {
	item := &SRaw{Text: "<div>{style()}</div>;", Nested: []Node{
		Call(Ident("style")),
		&SVar{Kind: VarConst, Decls: []*Declarator{{Name: &PIdent{Name: "a"}, Init: &ERaw{
			Nested: []Node{Call(Ident("inner"))},
		}}}},
	}}
	r := &pathRecorder{}
	WalkPath(r, item)

	assert.Equal(t, []string{"style", "inner"}, r.callees)
	assert.Equal(t, []FrameKind{FrameStmt, FrameExpr}, r.paths[0])
	assert.Equal(t, []FrameKind{FrameStmt, FrameStmt, FrameVarDecl, FrameDeclarator, FrameExpr, FrameExpr}, r.paths[1])
}
