// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendArg_KeepsSourceArgs(t *testing.T) {
	call := &ECall{Callee: Ident("style"), Args: []Expr{&EObject{}}, SourceArgs: 1}

	AppendArg(call, String("button"))

	require.Len(t, call.Args, 2)
	assert.Equal(t, 1, call.SourceArgs)
	assert.Equal(t, "button", call.Args[1].(*EString).Value)
}

func TestPrependAndAppendItems(t *testing.T) {
	body := &SRaw{Text: "class A {}", Range: Range{Start: 0, End: 10}}
	m := &Module{Body: []Item{body}}

	first := NamespaceImport("ns", "pkg")
	second := ExprStatement(Call(Member(Ident("ns"), "begin")))
	last := ExprStatement(Call(Member(Ident("ns"), "end")))
	PrependItems(m, first, second)
	AppendItems(m, last)

	assert.Equal(t, []Item{first, second, body, last}, m.Body)
}

func TestNamespaceImport(t *testing.T) {
	d := NamespaceImport("__scope__", "@vanilla-extract/css/fileScope")

	require.Len(t, d.Specifiers, 1)
	assert.Equal(t, ImportNamespace, d.Specifiers[0].Kind)
	assert.Equal(t, "__scope__", d.Specifiers[0].Local)
	assert.Equal(t, "@vanilla-extract/css/fileScope", d.Source.Value)
	assert.False(t, d.Span().Valid())
}

func TestCalleeName(t *testing.T) {
	assert.Equal(t, "style", CalleeName(Call(Ident("style"))))
	assert.Equal(t, "", CalleeName(Call(Member(Ident("css"), "style"))))
	assert.Equal(t, "", CalleeName(Call(&EParen{Value: Ident("style")})))
}

func TestRangeValid(t *testing.T) {
	assert.False(t, Range{}.Valid())
	assert.False(t, Range{Start: 4, End: 4}.Valid())
	assert.True(t, Range{Start: 0, End: 1}.Valid())
}
