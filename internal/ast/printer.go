// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const indentUnit = "  "

// Print renders a node as JavaScript source. Raw nodes print their text
// verbatim and parsed string literals keep their original quoting.
//
// Print does not insert parentheses for precedence: parsed trees keep
// their parentheses as EParen nodes, and synthetic trees built by the
// transform never need them.
func Print(n Node) string {
	p := &printer{}
	p.node(n)
	return p.buf.String()
}

type printer struct {
	buf    strings.Builder
	indent int
}

func (p *printer) print(s string) { p.buf.WriteString(s) }

func (p *printer) newline() {
	p.buf.WriteByte('\n')
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(indentUnit)
	}
}

func (p *printer) node(n Node) {
	switch n := n.(type) {
	case nil:
	case *Module:
		for _, it := range n.Body {
			p.item(it)
			p.buf.WriteByte('\n')
		}
	case Item:
		p.item(n)
	case Expr:
		p.expr(n)
	case Pattern:
		p.pattern(n)
	case *Declarator:
		p.declarator(n)
	case *Property:
		p.property(n)
	case *PatternProp:
		p.patternProp(n)
	case *Function:
		p.function(n)
	case *Class:
		p.class(n)
	default:
		panic(fmt.Sprintf("ast: cannot print %T", n))
	}
}

func (p *printer) item(it Item) {
	switch it := it.(type) {
	case *ImportDecl:
		p.importDecl(it)
	case *ExportDecl:
		p.print("export ")
		p.stmt(it.Decl)
	case *ExportDefaultDecl:
		p.print("export default ")
		p.stmt(it.Decl)
	case *ExportDefaultExpr:
		p.print("export default ")
		p.expr(it.Expr)
		p.print(";")
	case *ExportNamed:
		p.print(it.Text)
	case Stmt:
		p.stmt(it)
	}
}

func (p *printer) importDecl(d *ImportDecl) {
	p.print("import ")
	if d.TypeOnly {
		p.print("type ")
	}

	var named []string
	wrote := false
	for _, spec := range d.Specifiers {
		switch spec.Kind {
		case ImportDefault:
			p.print(spec.Local)
			wrote = true
		case ImportNamespace:
			if wrote {
				p.print(", ")
			}
			p.print("* as " + spec.Local)
			wrote = true
		case ImportNamed:
			switch {
			case spec.Imported == "":
				named = append(named, spec.Local)
			case spec.ImportedIsString:
				named = append(named, Quote(spec.Imported)+" as "+spec.Local)
			default:
				named = append(named, spec.Imported+" as "+spec.Local)
			}
		}
	}
	if len(named) > 0 {
		if wrote {
			p.print(", ")
		}
		p.print("{ " + strings.Join(named, ", ") + " }")
		wrote = true
	}
	if wrote {
		p.print(" from ")
	}
	p.expr(d.Source)
	p.print(";")
}

func (p *printer) stmt(s Stmt) {
	switch s := s.(type) {
	case nil:
	case *SExpr:
		switch s.Expr.(type) {
		case *EObject, *EFunction:
			p.print("(")
			p.expr(s.Expr)
			p.print(")")
		default:
			p.expr(s.Expr)
		}
		p.print(";")
	case *SVar:
		p.varDecl(s)
		p.print(";")
	case *SFunction:
		p.function(s.Fn)
	case *SReturn:
		p.print("return")
		if s.Value != nil {
			p.print(" ")
			p.expr(s.Value)
		}
		p.print(";")
	case *SBlock:
		p.block(s)
	case *SIf:
		p.print("if (")
		p.expr(s.Test)
		p.print(") ")
		p.stmt(s.Yes)
		if s.No != nil {
			p.print(" else ")
			p.stmt(s.No)
		}
	case *SFor:
		p.print("for (")
		switch init := s.Init.(type) {
		case *SVar:
			p.varDecl(init)
		case Expr:
			p.expr(init)
		}
		p.print(";")
		if s.Test != nil {
			p.print(" ")
			p.expr(s.Test)
		}
		p.print(";")
		if s.Update != nil {
			p.print(" ")
			p.expr(s.Update)
		}
		p.print(") ")
		p.stmt(s.Body)
	case *SForIn:
		p.print("for ")
		if s.Await {
			p.print("await ")
		}
		p.print("(")
		if s.Kind != "" {
			p.print(string(s.Kind) + " ")
		}
		p.pattern(s.Left)
		if s.Of {
			p.print(" of ")
		} else {
			p.print(" in ")
		}
		p.expr(s.Right)
		p.print(") ")
		p.stmt(s.Body)
	case *SWhile:
		p.print("while (")
		p.expr(s.Test)
		p.print(") ")
		p.stmt(s.Body)
	case *SDoWhile:
		p.print("do ")
		p.stmt(s.Body)
		p.print(" while (")
		p.expr(s.Test)
		p.print(");")
	case *STry:
		p.print("try ")
		p.block(s.Block)
		if s.Handler != nil {
			p.print(" catch ")
			if s.Param != nil {
				p.print("(")
				p.pattern(s.Param)
				p.print(") ")
			}
			p.block(s.Handler)
		}
		if s.Finalizer != nil {
			p.print(" finally ")
			p.block(s.Finalizer)
		}
	case *SSwitch:
		p.switchStmt(s)
	case *SLabeled:
		p.print(s.Label + ": ")
		p.stmt(s.Body)
	case *SThrow:
		p.print("throw ")
		p.expr(s.Value)
		p.print(";")
	case *SClass:
		p.class(s.Class)
	case *SRaw:
		p.print(s.Text)
	}
}

func (p *printer) varDecl(s *SVar) {
	p.print(string(s.Kind) + " ")
	for i, d := range s.Decls {
		if i > 0 {
			p.print(", ")
		}
		p.declarator(d)
	}
}

func (p *printer) switchStmt(s *SSwitch) {
	p.print("switch (")
	p.expr(s.Value)
	p.print(") {")
	for _, c := range s.Cases {
		if c == nil {
			continue
		}
		p.indent++
		p.newline()
		if c.Test != nil {
			p.print("case ")
			p.expr(c.Test)
			p.print(":")
		} else {
			p.print("default:")
		}
		p.indent++
		for _, body := range c.Body {
			p.newline()
			p.stmt(body)
		}
		p.indent -= 2
	}
	p.newline()
	p.print("}")
}

func (p *printer) class(c *Class) {
	if c == nil {
		return
	}
	head := c.Head
	if head == "" {
		head = "class "
	}
	p.print(head)
	if len(c.Members) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.indent++
	for _, m := range c.Members {
		if m == nil {
			continue
		}
		p.newline()
		p.print(m.Head)
		switch m.Kind {
		case MemberMethod, MemberStaticBlock:
			p.block(m.Body)
		default:
			p.expr(m.Value)
			p.print(";")
		}
	}
	p.indent--
	p.newline()
	p.print("}")
}

func (p *printer) block(b *SBlock) {
	if b == nil || len(b.Body) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.indent++
	for _, s := range b.Body {
		p.newline()
		p.stmt(s)
	}
	p.indent--
	p.newline()
	p.print("}")
}

func (p *printer) declarator(d *Declarator) {
	if d == nil {
		return
	}
	p.pattern(d.Name)
	p.print(d.Type)
	if d.Init != nil {
		p.print(" = ")
		p.expr(d.Init)
	}
}

func (p *printer) function(fn *Function) {
	if fn == nil {
		return
	}
	if fn.Async {
		p.print("async ")
	}
	p.print("function")
	if fn.Generator {
		p.print("*")
	}
	if fn.Name != "" {
		p.print(" " + fn.Name)
	}
	p.params(fn.Params)
	p.print(fn.ReturnType + " ")
	p.block(fn.Body)
}

func (p *printer) params(raw string) {
	if raw == "" {
		raw = "()"
	}
	p.print(raw)
}

func (p *printer) exprList(list []Expr) {
	for i, e := range list {
		if i > 0 {
			p.print(", ")
		}
		p.expr(e)
	}
}

func (p *printer) expr(e Expr) {
	switch e := e.(type) {
	case nil:
	case *EIdent:
		p.print(e.Name)
	case *EString:
		if e.Raw != "" {
			p.print(e.Raw)
		} else {
			p.print(Quote(e.Value))
		}
	case *ENumber:
		p.print(e.Raw)
	case *ELiteral:
		p.print(e.Raw)
	case *ECall:
		p.expr(e.Callee)
		if e.Optional {
			p.print("?.")
		}
		p.print(e.TypeArgs)
		p.print("(")
		p.exprList(e.Args)
		p.print(")")
	case *EMember:
		p.expr(e.Object)
		if e.Optional {
			p.print("?.")
		} else {
			p.print(".")
		}
		p.print(e.Property)
	case *EIndex:
		p.expr(e.Object)
		if e.Optional {
			p.print("?.")
		}
		p.print("[")
		p.expr(e.Index)
		p.print("]")
	case *EObject:
		if len(e.Props) == 0 {
			p.print("{}")
			return
		}
		p.print("{ ")
		for i, prop := range e.Props {
			if i > 0 {
				p.print(", ")
			}
			p.property(prop)
		}
		p.print(" }")
	case *EArray:
		p.print("[")
		p.exprList(e.Items)
		if n := len(e.Items); n > 0 && e.Items[n-1] == nil {
			p.print(",")
		}
		p.print("]")
	case *ESpread:
		p.print("...")
		p.expr(e.Value)
	case *EArrow:
		if e.Async {
			p.print("async ")
		}
		p.params(e.Params)
		p.print(e.ReturnType + " => ")
		if e.Block != nil {
			p.block(e.Block)
		} else if _, ok := e.Expr.(*EObject); ok {
			p.print("(")
			p.expr(e.Expr)
			p.print(")")
		} else {
			p.expr(e.Expr)
		}
	case *EFunction:
		p.function(e.Fn)
	case *EParen:
		p.print("(")
		p.expr(e.Value)
		p.print(")")
	case *EBinary:
		p.expr(e.Left)
		p.print(" " + e.Op + " ")
		p.expr(e.Right)
	case *EUnary:
		p.print(e.Op)
		if isWordOperator(e.Op) {
			p.print(" ")
		}
		p.expr(e.Value)
	case *EConditional:
		p.expr(e.Test)
		p.print(" ? ")
		p.expr(e.Yes)
		p.print(" : ")
		p.expr(e.No)
	case *EAssign:
		p.expr(e.Target)
		p.print(" " + e.Op + " ")
		p.expr(e.Value)
	case *ENew:
		p.print("new ")
		p.expr(e.Callee)
		p.print("(")
		p.exprList(e.Args)
		p.print(")")
	case *ETypeCast:
		if e.Op == "" {
			p.print(e.Type)
			p.expr(e.Value)
			return
		}
		p.expr(e.Value)
		p.print(" " + e.Op + " " + e.Type)
	case *ENonNull:
		p.expr(e.Value)
		p.print("!")
	case *ETemplate:
		p.expr(e.Tag)
		p.print("`")
		for i, q := range e.Quasis {
			p.print(q)
			if i < len(e.Exprs) {
				p.print("${")
				p.expr(e.Exprs[i])
				p.print("}")
			}
		}
		p.print("`")
	case *ESequence:
		p.exprList(e.Exprs)
	case *EClass:
		p.class(e.Class)
	case *ERaw:
		p.print(e.Text)
	}
}

func isWordOperator(op string) bool {
	switch op {
	case "await", "typeof", "void", "delete", "yield":
		return true
	}
	return false
}

func (p *printer) property(prop *Property) {
	if prop == nil {
		return
	}
	switch prop.Kind {
	case PropKeyValue:
		p.key(prop.Key, prop.Computed)
		p.print(": ")
		p.expr(prop.Value)
	case PropShorthand:
		p.expr(prop.Value)
	case PropSpread:
		p.print("...")
		p.expr(prop.Value)
	case PropMethod:
		p.print(prop.Raw)
		if prop.Body != nil {
			p.block(prop.Body)
		}
	}
}

func (p *printer) key(k Expr, computed bool) {
	if computed {
		p.print("[")
		p.expr(k)
		p.print("]")
		return
	}
	p.expr(k)
}

func (p *printer) pattern(pat Pattern) {
	switch pat := pat.(type) {
	case nil:
	case *PIdent:
		p.print(pat.Name + pat.Type)
	case *PArray:
		p.print("[")
		for i, el := range pat.Elems {
			if i > 0 {
				p.print(", ")
			}
			p.pattern(el)
		}
		if n := len(pat.Elems); n > 0 && pat.Elems[n-1] == nil {
			p.print(",")
		}
		p.print("]")
	case *PObject:
		if len(pat.Props) == 0 {
			p.print("{}")
			return
		}
		p.print("{ ")
		for i, prop := range pat.Props {
			if i > 0 {
				p.print(", ")
			}
			p.patternProp(prop)
		}
		p.print(" }")
	case *PAssign:
		p.pattern(pat.Left)
		p.print(" = ")
		p.expr(pat.Right)
	case *PRest:
		p.print("...")
		p.pattern(pat.Arg)
	case *PRaw:
		p.print(pat.Text)
	}
}

func (p *printer) patternProp(prop *PatternProp) {
	if prop == nil {
		return
	}
	switch prop.Kind {
	case PatKeyValue:
		p.key(prop.Key, prop.Computed)
		p.print(": ")
		p.pattern(prop.Value)
	case PatAssign:
		p.pattern(prop.Value)
		if prop.Default != nil {
			p.print(" = ")
			p.expr(prop.Default)
		}
	case PatRest:
		p.print("...")
		p.pattern(prop.Value)
	}
	if prop.Kind == PatKeyValue && prop.Default != nil {
		p.print(" = ")
		p.expr(prop.Default)
	}
}

// Quote returns s as a double-quoted JavaScript string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
