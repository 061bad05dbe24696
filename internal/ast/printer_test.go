// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "namespace import",
			node: NamespaceImport("__vanilla_filescope__", "@vanilla-extract/css/fileScope"),
			want: `import * as __vanilla_filescope__ from "@vanilla-extract/css/fileScope";`,
		},
		{
			name: "side effect import",
			node: &ImportDecl{Source: String("./reset.css")},
			want: `import "./reset.css";`,
		},
		{
			name: "default and named imports",
			node: &ImportDecl{
				Specifiers: []ImportSpecifier{
					{Kind: ImportDefault, Local: "css"},
					{Kind: ImportNamed, Local: "style"},
					{Kind: ImportNamed, Local: "v", Imported: "styleVariants"},
					{Kind: ImportNamed, Local: "k", Imported: "key-frames", ImportedIsString: true},
				},
				Source: &EString{Value: "@vanilla-extract/css", Raw: "'@vanilla-extract/css'"},
			},
			want: `import css, { style, styleVariants as v, "key-frames" as k } from '@vanilla-extract/css';`,
		},
		{
			name: "method call statement",
			node: ExprStatement(Call(Member(Ident("fs"), "setFileScope"), String("src/a.css.ts"), String("ui"))),
			want: `fs.setFileScope("src/a.css.ts", "ui");`,
		},
		{
			name: "object statement is parenthesised",
			node: ExprStatement(&EObject{Props: []*Property{{Kind: PropKeyValue, Key: Ident("a"), Value: &ENumber{Raw: "1"}}}}),
			want: `({ a: 1 });`,
		},
		{
			name: "array pattern declaration",
			node: &SVar{Kind: VarConst, Decls: []*Declarator{{
				Name: &PArray{Elems: []Pattern{&PIdent{Name: "themeClass"}, &PIdent{Name: "vars"}}},
				Init: Call(Ident("createTheme"), &EObject{}),
			}}},
			want: `const [themeClass, vars] = createTheme({});`,
		},
		{
			name: "array holes",
			node: &EArray{Items: []Expr{Ident("a"), nil}},
			want: `[a, ,]`,
		},
		{
			name: "arrow returning object",
			node: &EArrow{Expr: &EObject{}},
			want: `() => ({})`,
		},
		{
			name: "function declaration",
			node: &SFunction{Fn: &Function{
				Name: "make",
				Body: &SBlock{Body: []Stmt{&SReturn{Value: Call(Ident("style"), &EObject{})}}},
			}},
			want: "function make() {\n  return style({});\n}",
		},
		{
			name: "unary word operator",
			node: &EUnary{Op: "typeof", Value: Ident("x")},
			want: `typeof x`,
		},
		{
			name: "parsed string keeps quoting",
			node: &EString{Value: "a", Raw: "'a'"},
			want: `'a'`,
		},
		{
			name: "raw statement",
			node: &SRaw{Text: "class A {}"},
			want: `class A {}`,
		},
		{
			name: "try catch",
			node: &STry{
				Block:   &SBlock{Body: []Stmt{&SExpr{Expr: Call(Ident("a"))}}},
				Param:   &PIdent{Name: "e"},
				Handler: &SBlock{},
			},
			want: "try {\n  a();\n} catch (e) {}",
		},
		{
			name: "switch",
			node: &SSwitch{Value: Ident("m"), Cases: []*SwitchCase{
				{Test: String("x"), Body: []Stmt{&SExpr{Expr: Call(Ident("f"))}}},
				{},
			}},
			want: "switch (m) {\n  case \"x\":\n    f();\n  default:\n}",
		},
		{
			name: "for of",
			node: &SForIn{Kind: VarConst, Left: &PIdent{Name: "c"}, Of: true, Right: Ident("cs"), Body: &SBlock{}},
			want: `for (const c of cs) {}`,
		},
		{
			name: "for",
			node: &SFor{
				Init:   &SVar{Kind: VarLet, Decls: []*Declarator{{Name: &PIdent{Name: "i"}, Init: &ENumber{Raw: "0"}}}},
				Update: &EUnary{Op: "++", Value: Ident("i")},
				Body:   &SBlock{},
			},
			want: `for (let i = 0;; ++i) {}`,
		},
		{
			name: "tagged template",
			node: &ETemplate{Tag: Ident("css"), Quasis: []string{"a ", ""}, Exprs: []Expr{Ident("b")}},
			want: "css`a ${b}`",
		},
		{
			name: "non-null",
			node: &ENonNull{Value: Call(Ident("f"))},
			want: `f()!`,
		},
		{
			name: "prefix cast",
			node: &ETypeCast{Type: "<T>", Value: Ident("x")},
			want: `<T>x`,
		},
		{
			name: "class",
			node: &SClass{Class: &Class{Head: "class A ", Members: []*ClassMember{
				{Kind: MemberField, Head: "x = ", Value: &ENumber{Raw: "1"}},
				{Kind: MemberMethod, Head: "m() ", Body: &SBlock{}},
			}}},
			want: "class A {\n  x = 1;\n  m() {}\n}",
		},
		{
			name: "object method",
			node: &EObject{Props: []*Property{{Kind: PropMethod, Raw: "m() ", Body: &SBlock{}}}},
			want: `{ m() {} }`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Print(tc.node))
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak\ttab\r", `"line\nbreak\ttab\r"`},
		{"\x01", `"\x01"`},
		{"\u2028", `"\u2028"`},
		{"café", `"café"`},
		{"", `""`},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Quote(tc.in), "Quote(%q)", tc.in)
	}
}
