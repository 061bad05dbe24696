// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package parser builds ast.Module trees from JavaScript and TypeScript
// source using tree-sitter.
package parser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/petar-djukic/vextract/internal/ast"
	"github.com/petar-djukic/vextract/pkg/types"
)

// ErrSyntax is wrapped by the diagnostic returned for source that does not
// parse cleanly.
var ErrSyntax = errors.New("syntax error")

// Grammar identifies the tree-sitter grammar used for a file.
type Grammar string

const (
	GrammarJavaScript Grammar = "javascript"
	GrammarTypeScript Grammar = "typescript"
	GrammarTSX        Grammar = "tsx"
)

// grammars maps file extensions to grammars. Extensions not listed use
// the JavaScript grammar, which also accepts JSX.
var grammars = map[string]Grammar{
	".ts":  GrammarTypeScript,
	".mts": GrammarTypeScript,
	".cts": GrammarTypeScript,
	".tsx": GrammarTSX,
}

// GrammarFor picks the grammar for filename. A trailing query such as
// "?used" is ignored.
func GrammarFor(filename string) Grammar {
	if i := strings.IndexByte(filename, '?'); i >= 0 {
		filename = filename[:i]
	}
	if g, ok := grammars[strings.ToLower(filepath.Ext(filename))]; ok {
		return g
	}
	return GrammarJavaScript
}

func (g Grammar) language() *sitter.Language {
	switch g {
	case GrammarTypeScript:
		return typescript.GetLanguage()
	case GrammarTSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// Parser converts source files into ast.Module trees. It is safe for
// concurrent use; each Parse call creates its own tree-sitter parser.
type Parser struct {
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses src as the module named filename.
//
// Source containing syntax errors is rejected with a *types.Diagnostic
// wrapping ErrSyntax that points at the first error.
func (p *Parser) Parse(ctx context.Context, filename string, src []byte) (*ast.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse of %s canceled before start: %w", filename, err)
	}

	grammar := GrammarFor(filename)
	sp := sitter.NewParser()
	defer sp.Close()
	sp.SetLanguage(grammar.language())

	tree, err := sp.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse of %s failed: %w", filename, err)
	}
	defer tree.Close()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse of %s canceled after tree-sitter: %w", filename, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxDiagnostic(filename, root)
	}

	c := &converter{src: src}
	m := c.program(root)

	p.logger.Debug("parsed module",
		slog.String("file", filename),
		slog.String("grammar", string(grammar)),
		slog.Int("items", len(m.Body)),
		slog.Int("raw", c.raw),
	)
	return m, nil
}

// syntaxDiagnostic locates the first ERROR or MISSING node below root.
func syntaxDiagnostic(filename string, root *sitter.Node) *types.Diagnostic {
	bad := firstError(root)
	if bad == nil {
		bad = root
	}
	pt := bad.StartPoint()
	msg := "unexpected input"
	if bad.IsMissing() {
		msg = fmt.Sprintf("missing %s", bad.Type())
	}
	return &types.Diagnostic{
		FilePath: filename,
		Line:     int(pt.Row) + 1,
		Column:   int(pt.Column) + 1,
		Message:  msg,
		Err:      ErrSyntax,
	}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}
