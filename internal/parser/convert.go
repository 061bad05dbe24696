// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/vextract/internal/ast"
)

// Tree-sitter node types the converter understands.
const (
	nodeProgram         = "program"
	nodeComment         = "comment"
	nodeImport          = "import_statement"
	nodeImportClause    = "import_clause"
	nodeNamespaceImport = "namespace_import"
	nodeNamedImports    = "named_imports"
	nodeImportSpecifier = "import_specifier"
	nodeExport          = "export_statement"
	nodeExprStatement   = "expression_statement"
	nodeLexicalDecl     = "lexical_declaration"
	nodeVariableDecl    = "variable_declaration"
	nodeDeclarator      = "variable_declarator"
	nodeFunctionDecl    = "function_declaration"
	nodeGeneratorDecl   = "generator_function_declaration"
	nodeReturn          = "return_statement"
	nodeBlock           = "statement_block"
	nodeIf              = "if_statement"
	nodeElse            = "else_clause"
	nodeIdentifier      = "identifier"
	nodePropIdentifier  = "property_identifier"
	nodeString          = "string"
	nodeCall            = "call_expression"
	nodeMember          = "member_expression"
	nodeSubscript       = "subscript_expression"
	nodeObject          = "object"
	nodePair            = "pair"
	nodeSpread          = "spread_element"
	nodeArray           = "array"
	nodeArrow           = "arrow_function"
	nodeParenthesized   = "parenthesized_expression"
	nodeOptionalChain   = "optional_chain"
	nodeComputedKey     = "computed_property_name"
	nodeObjectPattern   = "object_pattern"
	nodeArrayPattern    = "array_pattern"
	nodePairPattern     = "pair_pattern"
	nodeAssignPattern   = "assignment_pattern"
	nodeObjAssignPat    = "object_assignment_pattern"
	nodeRestPattern     = "rest_pattern"
	nodeShorthandPat    = "shorthand_property_identifier_pattern"
	nodeShorthandProp   = "shorthand_property_identifier"
	nodeFor             = "for_statement"
	nodeForIn           = "for_in_statement"
	nodeWhile           = "while_statement"
	nodeDo              = "do_statement"
	nodeTry             = "try_statement"
	nodeSwitch          = "switch_statement"
	nodeSwitchCase      = "switch_case"
	nodeSwitchDefault   = "switch_default"
	nodeLabeled         = "labeled_statement"
	nodeThrow           = "throw_statement"
	nodeEmpty           = "empty_statement"
	nodeClassDecl       = "class_declaration"
	nodeAbstractClass   = "abstract_class_declaration"
	nodeClass           = "class"
	nodeMethod          = "method_definition"
	nodeDecorator       = "decorator"
	nodeTemplate        = "template_string"
	nodeSubstitution    = "template_substitution"
)

// converter turns a tree-sitter concrete syntax tree into an ast.Module.
type converter struct {
	src []byte
	// raw counts nodes kept as source text, for debug logging.
	raw int
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

func (c *converter) span(n *sitter.Node) ast.Range {
	return ast.Range{Start: int(n.StartByte()), End: int(n.EndByte())}
}

// between returns the source from offset start up to node n.
func (c *converter) between(start int, n *sitter.Node) string {
	return string(c.src[start:n.StartByte()])
}

// named returns the named children of n, without comments.
func (c *converter) named(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == nodeComment {
			continue
		}
		out = append(out, child)
	}
	return out
}

// hasToken reports whether n has a direct anonymous child of type tok.
func hasToken(n *sitter.Node, tok string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() && child.Type() == tok {
			return true
		}
	}
	return false
}

func (c *converter) program(root *sitter.Node) *ast.Module {
	m := &ast.Module{Range: c.span(root)}
	count := int(root.NamedChildCount())
	for i := 0; i < count; i++ {
		child := root.NamedChild(i)
		if child.Type() == "hash_bang_line" {
			m.Body = append(m.Body, c.rawStmt(child))
			continue
		}
		m.Body = append(m.Body, c.item(child))
	}
	return m
}

func (c *converter) item(n *sitter.Node) ast.Item {
	switch n.Type() {
	case nodeImport:
		return c.importDecl(n)
	case nodeExport:
		return c.exportDecl(n)
	default:
		return c.stmt(n)
	}
}

func (c *converter) importDecl(n *sitter.Node) ast.Item {
	source := n.ChildByFieldName("source")
	if source == nil || source.Type() != nodeString {
		// import x = require("y") and other TypeScript forms.
		return c.rawStmt(n)
	}

	d := &ast.ImportDecl{
		Source:   c.stringLit(source),
		TypeOnly: hasToken(n, "type"),
		Range:    c.span(n),
	}
	for _, child := range c.named(n) {
		if child.Type() != nodeImportClause {
			continue
		}
		for _, part := range c.named(child) {
			switch part.Type() {
			case nodeIdentifier:
				d.Specifiers = append(d.Specifiers, ast.ImportSpecifier{
					Kind:  ast.ImportDefault,
					Local: c.text(part),
					Range: c.span(part),
				})
			case nodeNamespaceImport:
				for _, id := range c.named(part) {
					if id.Type() == nodeIdentifier {
						d.Specifiers = append(d.Specifiers, ast.ImportSpecifier{
							Kind:  ast.ImportNamespace,
							Local: c.text(id),
							Range: c.span(part),
						})
					}
				}
			case nodeNamedImports:
				for _, spec := range c.named(part) {
					if spec.Type() == nodeImportSpecifier {
						d.Specifiers = append(d.Specifiers, c.importSpecifier(spec))
					}
				}
			}
		}
	}
	return d
}

func (c *converter) importSpecifier(n *sitter.Node) ast.ImportSpecifier {
	spec := ast.ImportSpecifier{Kind: ast.ImportNamed, Range: c.span(n)}
	name := n.ChildByFieldName("name")
	alias := n.ChildByFieldName("alias")

	imported, isString := "", false
	if name != nil {
		if name.Type() == nodeString {
			imported, isString = c.stringLit(name).Value, true
		} else {
			imported = c.text(name)
		}
	}

	if alias != nil {
		spec.Local = c.text(alias)
		spec.Imported = imported
		spec.ImportedIsString = isString
	} else {
		spec.Local = imported
	}
	return spec
}

func (c *converter) exportDecl(n *sitter.Node) ast.Item {
	decl := n.ChildByFieldName("declaration")
	value := n.ChildByFieldName("value")
	isDefault := hasToken(n, "default")

	switch {
	case isDefault && decl != nil:
		return &ast.ExportDefaultDecl{Decl: c.stmt(decl), Range: c.span(n)}
	case isDefault && value != nil:
		return &ast.ExportDefaultExpr{Expr: c.expr(value), Range: c.span(n)}
	case decl != nil:
		return &ast.ExportDecl{Decl: c.stmt(decl), Range: c.span(n)}
	default:
		return &ast.ExportNamed{Text: c.text(n), Range: c.span(n)}
	}
}

func (c *converter) rawStmt(n *sitter.Node) *ast.SRaw {
	c.raw++
	return &ast.SRaw{Text: c.text(n), Nested: c.embedded(n), Range: c.span(n)}
}

// embedded converts the outermost calls, functions, objects and
// declarations below n, so that a node kept as text still exposes them to
// traversal.
func (c *converter) embedded(n *sitter.Node) []ast.Node {
	var out []ast.Node
	var visit func(*sitter.Node)
	visit = func(p *sitter.Node) {
		for i := 0; i < int(p.NamedChildCount()); i++ {
			child := p.NamedChild(i)
			switch child.Type() {
			case nodeCall, nodeArrow, nodeObject, nodeClass, nodeTemplate,
				"function_expression", "function", "generator_function":
				out = append(out, c.expr(child))
			case nodeLexicalDecl, nodeVariableDecl, nodeFunctionDecl, nodeGeneratorDecl,
				nodeClassDecl, nodeAbstractClass:
				out = append(out, c.stmt(child))
			default:
				visit(child)
			}
		}
	}
	visit(n)
	return out
}

func (c *converter) stmt(n *sitter.Node) ast.Stmt {
	switch n.Type() {
	case nodeExprStatement:
		children := c.named(n)
		if len(children) != 1 {
			return c.rawStmt(n)
		}
		return &ast.SExpr{Expr: c.expr(children[0]), Range: c.span(n)}

	case nodeLexicalDecl, nodeVariableDecl:
		return c.varDecl(n)

	case nodeFunctionDecl, nodeGeneratorDecl:
		return &ast.SFunction{Fn: c.function(n), Range: c.span(n)}

	case nodeReturn:
		s := &ast.SReturn{Range: c.span(n)}
		if children := c.named(n); len(children) > 0 {
			s.Value = c.expr(children[0])
		}
		return s

	case nodeBlock:
		return c.block(n)

	case nodeIf:
		cond := n.ChildByFieldName("condition")
		yes := n.ChildByFieldName("consequence")
		if cond == nil || yes == nil {
			return c.rawStmt(n)
		}
		s := &ast.SIf{Test: c.condition(cond), Yes: c.stmt(yes), Range: c.span(n)}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			if alt.Type() == nodeElse {
				if body := c.named(alt); len(body) == 1 {
					s.No = c.stmt(body[0])
				} else {
					return c.rawStmt(n)
				}
			} else {
				s.No = c.stmt(alt)
			}
		}
		return s

	case nodeFor:
		body := n.ChildByFieldName("body")
		if body == nil {
			return c.rawStmt(n)
		}
		s := &ast.SFor{Body: c.stmt(body), Range: c.span(n)}
		if init := n.ChildByFieldName("initializer"); init != nil {
			s.Init = c.forClause(init)
		}
		if cond := n.ChildByFieldName("condition"); cond != nil {
			s.Test, _ = c.forClause(cond).(ast.Expr)
		}
		if update := n.ChildByFieldName("increment"); update != nil {
			s.Update = c.expr(update)
		}
		return s

	case nodeForIn:
		left, right, body := n.ChildByFieldName("left"), n.ChildByFieldName("right"), n.ChildByFieldName("body")
		if left == nil || right == nil || body == nil {
			return c.rawStmt(n)
		}
		s := &ast.SForIn{
			Left:  c.pattern(left),
			Await: hasToken(n, "await"),
			Right: c.expr(right),
			Body:  c.stmt(body),
			Range: c.span(n),
		}
		for _, kind := range []ast.VarKind{ast.VarVar, ast.VarLet, ast.VarConst} {
			if hasToken(n, string(kind)) {
				s.Kind = kind
			}
		}
		if op := n.ChildByFieldName("operator"); op != nil {
			s.Of = c.text(op) == "of"
		} else {
			s.Of = hasToken(n, "of")
		}
		return s

	case nodeWhile:
		cond, body := n.ChildByFieldName("condition"), n.ChildByFieldName("body")
		if cond == nil || body == nil {
			return c.rawStmt(n)
		}
		return &ast.SWhile{Test: c.condition(cond), Body: c.stmt(body), Range: c.span(n)}

	case nodeDo:
		cond, body := n.ChildByFieldName("condition"), n.ChildByFieldName("body")
		if cond == nil || body == nil {
			return c.rawStmt(n)
		}
		return &ast.SDoWhile{Body: c.stmt(body), Test: c.condition(cond), Range: c.span(n)}

	case nodeTry:
		return c.try(n)

	case nodeSwitch:
		return c.switchStmt(n)

	case nodeLabeled:
		label, body := n.ChildByFieldName("label"), n.ChildByFieldName("body")
		if label == nil || body == nil {
			return c.rawStmt(n)
		}
		return &ast.SLabeled{Label: c.text(label), Body: c.stmt(body), Range: c.span(n)}

	case nodeThrow:
		children := c.named(n)
		if len(children) != 1 {
			return c.rawStmt(n)
		}
		return &ast.SThrow{Value: c.expr(children[0]), Range: c.span(n)}

	case nodeClassDecl, nodeAbstractClass:
		cls := c.class(n)
		if cls == nil {
			return c.rawStmt(n)
		}
		return &ast.SClass{Class: cls, Range: c.span(n)}

	default:
		return c.rawStmt(n)
	}
}

// condition converts a statement condition, dropping the parentheses the
// statement syntax requires.
func (c *converter) condition(n *sitter.Node) ast.Expr {
	if n.Type() == nodeParenthesized {
		if inner := c.named(n); len(inner) == 1 {
			return c.expr(inner[0])
		}
	}
	return c.expr(n)
}

// forClause converts the initializer or condition of a for statement. It
// returns nil for an empty clause.
func (c *converter) forClause(n *sitter.Node) ast.Node {
	switch n.Type() {
	case nodeEmpty:
		return nil
	case nodeLexicalDecl, nodeVariableDecl:
		return c.varDecl(n)
	case nodeExprStatement:
		children := c.named(n)
		if len(children) != 1 {
			return nil
		}
		return c.expr(children[0])
	default:
		return c.expr(n)
	}
}

func (c *converter) try(n *sitter.Node) ast.Stmt {
	body := n.ChildByFieldName("body")
	if body == nil || body.Type() != nodeBlock {
		return c.rawStmt(n)
	}
	s := &ast.STry{Block: c.block(body), Range: c.span(n)}
	if handler := n.ChildByFieldName("handler"); handler != nil {
		hb := handler.ChildByFieldName("body")
		if hb == nil {
			return c.rawStmt(n)
		}
		if param := handler.ChildByFieldName("parameter"); param != nil {
			s.Param = c.pattern(param)
		}
		s.Handler = c.block(hb)
	}
	if finalizer := n.ChildByFieldName("finalizer"); finalizer != nil {
		fb := finalizer.ChildByFieldName("body")
		if fb == nil {
			return c.rawStmt(n)
		}
		s.Finalizer = c.block(fb)
	}
	return s
}

func (c *converter) switchStmt(n *sitter.Node) ast.Stmt {
	value, body := n.ChildByFieldName("value"), n.ChildByFieldName("body")
	if value == nil || body == nil {
		return c.rawStmt(n)
	}
	s := &ast.SSwitch{Value: c.condition(value), Range: c.span(n)}
	for _, clause := range c.named(body) {
		sc := &ast.SwitchCase{Range: c.span(clause)}
		bodyStart := clause.StartByte()
		switch clause.Type() {
		case nodeSwitchCase:
			test := clause.ChildByFieldName("value")
			if test == nil {
				return c.rawStmt(n)
			}
			sc.Test = c.expr(test)
			bodyStart = test.EndByte()
		case nodeSwitchDefault:
		default:
			return c.rawStmt(n)
		}
		for _, child := range c.named(clause) {
			if child.StartByte() >= bodyStart {
				sc.Body = append(sc.Body, c.stmt(child))
			}
		}
		s.Cases = append(s.Cases, sc)
	}
	return s
}

// class converts a class declaration or expression. It returns nil when
// the class has no body.
func (c *converter) class(n *sitter.Node) *ast.Class {
	body := n.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	cls := &ast.Class{Head: c.between(int(n.StartByte()), body), Range: c.span(n)}

	// Decorators are siblings of the member they annotate.
	start := -1
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case nodeComment:
			continue
		case nodeDecorator:
			if start < 0 {
				start = int(member.StartByte())
			}
			continue
		}
		from := int(member.StartByte())
		if start >= 0 {
			from, start = start, -1
		}
		cls.Members = append(cls.Members, c.classMember(member, from))
	}
	return cls
}

func (c *converter) classMember(n *sitter.Node, from int) *ast.ClassMember {
	m := &ast.ClassMember{Kind: ast.MemberRaw, Range: ast.Range{Start: from, End: int(n.EndByte())}}
	switch n.Type() {
	case nodeMethod, "class_static_block":
		if body := n.ChildByFieldName("body"); body != nil && body.Type() == nodeBlock {
			m.Kind = ast.MemberMethod
			if n.Type() != nodeMethod {
				m.Kind = ast.MemberStaticBlock
			}
			m.Head = c.between(from, body)
			m.Body = c.block(body)
			return m
		}
	case "field_definition", "public_field_definition":
		m.Kind = ast.MemberField
		if value := n.ChildByFieldName("value"); value != nil {
			m.Head = c.between(from, value)
			m.Value = c.expr(value)
			return m
		}
	}
	if m.Kind == ast.MemberRaw {
		c.raw++
	}
	m.Head = string(c.src[from:n.EndByte()])
	return m
}

func (c *converter) block(n *sitter.Node) *ast.SBlock {
	b := &ast.SBlock{Range: c.span(n)}
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		b.Body = append(b.Body, c.stmt(n.NamedChild(i)))
	}
	return b
}

func (c *converter) varDecl(n *sitter.Node) ast.Stmt {
	kind := ast.VarVar
	if n.Type() == nodeLexicalDecl {
		kind = ast.VarLet
		if hasToken(n, "const") {
			kind = ast.VarConst
		}
	}

	s := &ast.SVar{Kind: kind, Range: c.span(n)}
	for _, child := range c.named(n) {
		if child.Type() != nodeDeclarator {
			continue
		}
		d := &ast.Declarator{Range: c.span(child)}
		if name := child.ChildByFieldName("name"); name != nil {
			d.Name = c.pattern(name)
		}
		if typ := child.ChildByFieldName("type"); typ != nil {
			d.Type = c.text(typ)
		}
		if value := child.ChildByFieldName("value"); value != nil {
			d.Init = c.expr(value)
		}
		s.Decls = append(s.Decls, d)
	}
	return s
}

func (c *converter) function(n *sitter.Node) *ast.Function {
	fn := &ast.Function{
		Async:     hasToken(n, "async"),
		Generator: hasToken(n, "*"),
		Range:     c.span(n),
	}
	if name := n.ChildByFieldName("name"); name != nil {
		fn.Name = c.text(name)
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		fn.Params = c.text(params)
	}
	if ret := n.ChildByFieldName("return_type"); ret != nil {
		fn.ReturnType = c.text(ret)
	}
	if body := n.ChildByFieldName("body"); body != nil && body.Type() == nodeBlock {
		fn.Body = c.block(body)
	} else {
		fn.Body = &ast.SBlock{}
	}
	return fn
}

func (c *converter) rawExpr(n *sitter.Node) *ast.ERaw {
	c.raw++
	return &ast.ERaw{Text: c.text(n), Nested: c.embedded(n), Range: c.span(n)}
}

func (c *converter) exprs(nodes []*sitter.Node) []ast.Expr {
	out := make([]ast.Expr, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, c.expr(n))
	}
	return out
}

func (c *converter) expr(n *sitter.Node) ast.Expr {
	r := c.span(n)
	switch n.Type() {
	case nodeIdentifier, "undefined":
		return &ast.EIdent{Name: c.text(n), Range: r}

	case nodeString:
		return c.stringLit(n)

	case "number":
		return &ast.ENumber{Raw: c.text(n), Range: r}

	case "true", "false", "null", "this", "super", "regex":
		return &ast.ELiteral{Raw: c.text(n), Range: r}

	case nodeTemplate:
		return c.template(nil, n, r)

	case nodeCall:
		return c.call(n)

	case nodeMember:
		obj := n.ChildByFieldName("object")
		prop := n.ChildByFieldName("property")
		if obj == nil || prop == nil {
			return c.rawExpr(n)
		}
		return &ast.EMember{
			Object:   c.expr(obj),
			Property: c.text(prop),
			Optional: c.optional(n),
			Range:    r,
		}

	case nodeSubscript:
		obj := n.ChildByFieldName("object")
		idx := n.ChildByFieldName("index")
		if obj == nil || idx == nil {
			return c.rawExpr(n)
		}
		return &ast.EIndex{Object: c.expr(obj), Index: c.expr(idx), Optional: c.optional(n), Range: r}

	case nodeObject:
		return c.object(n)

	case nodeArray:
		items := c.elements(n, func(el *sitter.Node) any { return c.expr(el) })
		arr := &ast.EArray{Range: r}
		for _, it := range items {
			if it == nil {
				arr.Items = append(arr.Items, nil)
			} else {
				arr.Items = append(arr.Items, it.(ast.Expr))
			}
		}
		return arr

	case nodeSpread:
		children := c.named(n)
		if len(children) != 1 {
			return c.rawExpr(n)
		}
		return &ast.ESpread{Value: c.expr(children[0]), Range: r}

	case nodeArrow:
		return c.arrow(n)

	case "function_expression", "function", "generator_function":
		return &ast.EFunction{Fn: c.function(n), Range: r}

	case nodeParenthesized:
		children := c.named(n)
		if len(children) != 1 {
			return c.rawExpr(n)
		}
		return &ast.EParen{Value: c.expr(children[0]), Range: r}

	case "binary_expression":
		left, op, right := n.ChildByFieldName("left"), n.ChildByFieldName("operator"), n.ChildByFieldName("right")
		if left == nil || op == nil || right == nil {
			return c.rawExpr(n)
		}
		return &ast.EBinary{Op: c.text(op), Left: c.expr(left), Right: c.expr(right), Range: r}

	case "unary_expression":
		op, arg := n.ChildByFieldName("operator"), n.ChildByFieldName("argument")
		if op == nil || arg == nil {
			return c.rawExpr(n)
		}
		return &ast.EUnary{Op: c.text(op), Value: c.expr(arg), Range: r}

	case "await_expression":
		children := c.named(n)
		if len(children) != 1 {
			return c.rawExpr(n)
		}
		return &ast.EUnary{Op: "await", Value: c.expr(children[0]), Range: r}

	case "ternary_expression":
		cond := n.ChildByFieldName("condition")
		yes := n.ChildByFieldName("consequence")
		no := n.ChildByFieldName("alternative")
		if cond == nil || yes == nil || no == nil {
			return c.rawExpr(n)
		}
		return &ast.EConditional{Test: c.expr(cond), Yes: c.expr(yes), No: c.expr(no), Range: r}

	case "assignment_expression", "augmented_assignment_expression":
		left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
		if left == nil || right == nil {
			return c.rawExpr(n)
		}
		op := "="
		if o := n.ChildByFieldName("operator"); o != nil {
			op = c.text(o)
		}
		return &ast.EAssign{Op: op, Target: c.expr(left), Value: c.expr(right), Range: r}

	case "new_expression":
		ctor := n.ChildByFieldName("constructor")
		if ctor == nil {
			return c.rawExpr(n)
		}
		e := &ast.ENew{Callee: c.expr(ctor), Range: r}
		if args := n.ChildByFieldName("arguments"); args != nil {
			e.Args = c.exprs(c.named(args))
		} else {
			// new Foo without parentheses cannot be printed back faithfully.
			return c.rawExpr(n)
		}
		return e

	case "as_expression", "satisfies_expression":
		children := c.named(n)
		if len(children) != 2 {
			return c.rawExpr(n)
		}
		op := "as"
		if n.Type() == "satisfies_expression" {
			op = "satisfies"
		}
		return &ast.ETypeCast{Value: c.expr(children[0]), Op: op, Type: c.text(children[1]), Range: r}

	case "type_assertion":
		children := c.named(n)
		if len(children) != 2 {
			return c.rawExpr(n)
		}
		return &ast.ETypeCast{Value: c.expr(children[1]), Type: c.text(children[0]), Range: r}

	case "non_null_expression":
		children := c.named(n)
		if len(children) != 1 {
			return c.rawExpr(n)
		}
		return &ast.ENonNull{Value: c.expr(children[0]), Range: r}

	case "sequence_expression":
		return &ast.ESequence{Exprs: c.exprs(c.named(n)), Range: r}

	case "yield_expression":
		children := c.named(n)
		if len(children) != 1 {
			return c.rawExpr(n)
		}
		op := "yield"
		if hasToken(n, "*") {
			op = "yield*"
		}
		return &ast.EUnary{Op: op, Value: c.expr(children[0]), Range: r}

	case nodeClass:
		cls := c.class(n)
		if cls == nil {
			return c.rawExpr(n)
		}
		return &ast.EClass{Class: cls, Range: r}

	default:
		return c.rawExpr(n)
	}
}

// optional reports whether a member or call expression uses "?.".
func (c *converter) optional(n *sitter.Node) bool {
	if n.ChildByFieldName(nodeOptionalChain) != nil {
		return true
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if t := n.Child(i).Type(); t == nodeOptionalChain || t == "?." {
			return true
		}
	}
	return false
}

func (c *converter) call(n *sitter.Node) ast.Expr {
	fn := n.ChildByFieldName("function")
	args := n.ChildByFieldName("arguments")
	if fn != nil && args != nil && args.Type() == nodeTemplate {
		return c.template(c.expr(fn), args, c.span(n))
	}
	if fn == nil || args == nil || args.Type() != "arguments" {
		return c.rawExpr(n)
	}

	call := &ast.ECall{
		Callee:    c.expr(fn),
		Args:      c.exprs(c.named(args)),
		Optional:  c.optional(n),
		ArgsRange: c.span(args),
		Range:     c.span(n),
	}
	if targs := n.ChildByFieldName("type_arguments"); targs != nil {
		call.TypeArgs = c.text(targs)
	}
	call.SourceArgs = len(call.Args)
	return call
}

// template converts a template literal. The text between substitutions is
// kept as written, escapes included.
func (c *converter) template(tag ast.Expr, n *sitter.Node, r ast.Range) *ast.ETemplate {
	t := &ast.ETemplate{Tag: tag, Range: r}
	pos := int(n.StartByte()) + 1
	for i := 0; i < int(n.NamedChildCount()); i++ {
		sub := n.NamedChild(i)
		if sub.Type() != nodeSubstitution {
			continue
		}
		t.Quasis = append(t.Quasis, c.between(pos, sub))
		inner := c.named(sub)
		if len(inner) == 1 {
			t.Exprs = append(t.Exprs, c.expr(inner[0]))
		} else {
			t.Exprs = append(t.Exprs, &ast.ESequence{Exprs: c.exprs(inner), Range: c.span(sub)})
		}
		pos = int(sub.EndByte())
	}
	end := int(n.EndByte()) - 1
	if end < pos {
		end = pos
	}
	t.Quasis = append(t.Quasis, string(c.src[pos:end]))
	return t
}

func (c *converter) arrow(n *sitter.Node) ast.Expr {
	e := &ast.EArrow{Async: hasToken(n, "async"), Range: c.span(n)}
	if params := n.ChildByFieldName("parameters"); params != nil {
		e.Params = c.text(params)
	} else if param := n.ChildByFieldName("parameter"); param != nil {
		e.Params = c.text(param)
	}
	if ret := n.ChildByFieldName("return_type"); ret != nil {
		e.ReturnType = c.text(ret)
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		return c.rawExpr(n)
	}
	if body.Type() == nodeBlock {
		e.Block = c.block(body)
	} else {
		e.Expr = c.expr(body)
	}
	return e
}

func (c *converter) object(n *sitter.Node) ast.Expr {
	obj := &ast.EObject{Range: c.span(n)}
	for _, child := range c.named(n) {
		r := c.span(child)
		switch child.Type() {
		case nodePair:
			key, value := child.ChildByFieldName("key"), child.ChildByFieldName("value")
			if key == nil || value == nil {
				return c.rawExpr(n)
			}
			k, computed := c.propertyKey(key)
			obj.Props = append(obj.Props, &ast.Property{
				Kind:     ast.PropKeyValue,
				Key:      k,
				Computed: computed,
				Value:    c.expr(value),
				Range:    r,
			})
		case nodeShorthandProp:
			obj.Props = append(obj.Props, &ast.Property{
				Kind:  ast.PropShorthand,
				Value: &ast.EIdent{Name: c.text(child), Range: r},
				Range: r,
			})
		case nodeSpread:
			inner := c.named(child)
			if len(inner) != 1 {
				return c.rawExpr(n)
			}
			obj.Props = append(obj.Props, &ast.Property{
				Kind:  ast.PropSpread,
				Value: c.expr(inner[0]),
				Range: r,
			})
		case nodeMethod:
			prop := &ast.Property{Kind: ast.PropMethod, Range: r}
			if body := child.ChildByFieldName("body"); body != nil && body.Type() == nodeBlock {
				prop.Raw = c.between(int(child.StartByte()), body)
				prop.Body = c.block(body)
			} else {
				c.raw++
				prop.Raw = c.text(child)
			}
			obj.Props = append(obj.Props, prop)
		default:
			c.raw++
			obj.Props = append(obj.Props, &ast.Property{Kind: ast.PropMethod, Raw: c.text(child), Range: r})
		}
	}
	return obj
}

// propertyKey converts an object or pattern key. Plain identifier keys
// become *ast.EIdent; computed keys report computed=true.
func (c *converter) propertyKey(key *sitter.Node) (ast.Expr, bool) {
	switch key.Type() {
	case nodePropIdentifier, nodeIdentifier, "private_property_identifier":
		return &ast.EIdent{Name: c.text(key), Range: c.span(key)}, false
	case nodeComputedKey:
		inner := c.named(key)
		if len(inner) == 1 {
			return c.expr(inner[0]), true
		}
		return c.rawExpr(key), true
	default:
		return c.expr(key), false
	}
}

// elements converts the children of an array or array pattern, returning
// nil for holes.
func (c *converter) elements(n *sitter.Node, conv func(*sitter.Node) any) []any {
	var out []any
	sawElem := false
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "[", "]", nodeComment:
		case ",":
			if !sawElem {
				out = append(out, nil)
			}
			sawElem = false
		default:
			out = append(out, conv(child))
			sawElem = true
		}
	}
	return out
}

func (c *converter) rawPattern(n *sitter.Node) *ast.PRaw {
	c.raw++
	return &ast.PRaw{Text: c.text(n), Nested: c.embedded(n), Range: c.span(n)}
}

func (c *converter) pattern(n *sitter.Node) ast.Pattern {
	r := c.span(n)
	switch n.Type() {
	case nodeIdentifier, nodeShorthandPat:
		return &ast.PIdent{Name: c.text(n), Range: r}

	case nodeArrayPattern:
		p := &ast.PArray{Range: r}
		for _, el := range c.elements(n, func(el *sitter.Node) any { return c.pattern(el) }) {
			if el == nil {
				p.Elems = append(p.Elems, nil)
			} else {
				p.Elems = append(p.Elems, el.(ast.Pattern))
			}
		}
		return p

	case nodeObjectPattern:
		p := &ast.PObject{Range: r}
		for _, child := range c.named(n) {
			prop, ok := c.patternProp(child)
			if !ok {
				return c.rawPattern(n)
			}
			p.Props = append(p.Props, prop)
		}
		return p

	case nodeAssignPattern:
		left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
		if left == nil || right == nil {
			return c.rawPattern(n)
		}
		return &ast.PAssign{Left: c.pattern(left), Right: c.expr(right), Range: r}

	case nodeRestPattern:
		inner := c.named(n)
		if len(inner) != 1 {
			return c.rawPattern(n)
		}
		return &ast.PRest{Arg: c.pattern(inner[0]), Range: r}

	default:
		return c.rawPattern(n)
	}
}

func (c *converter) patternProp(n *sitter.Node) (*ast.PatternProp, bool) {
	r := c.span(n)
	switch n.Type() {
	case nodePairPattern:
		key, value := n.ChildByFieldName("key"), n.ChildByFieldName("value")
		if key == nil || value == nil {
			return nil, false
		}
		k, computed := c.propertyKey(key)
		return &ast.PatternProp{Kind: ast.PatKeyValue, Key: k, Computed: computed, Value: c.pattern(value), Range: r}, true

	case nodeShorthandPat:
		name := c.text(n)
		return &ast.PatternProp{
			Kind:  ast.PatAssign,
			Key:   &ast.EIdent{Name: name, Range: r},
			Value: &ast.PIdent{Name: name, Range: r},
			Range: r,
		}, true

	case nodeObjAssignPat:
		left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
		if left == nil || right == nil {
			return nil, false
		}
		name := strings.TrimSpace(c.text(left))
		return &ast.PatternProp{
			Kind:    ast.PatAssign,
			Key:     &ast.EIdent{Name: name, Range: c.span(left)},
			Value:   &ast.PIdent{Name: name, Range: c.span(left)},
			Default: c.expr(right),
			Range:   r,
		}, true

	case nodeRestPattern:
		inner := c.named(n)
		if len(inner) != 1 {
			return nil, false
		}
		return &ast.PatternProp{Kind: ast.PatRest, Value: c.pattern(inner[0]), Range: r}, true

	default:
		return nil, false
	}
}

// stringLit converts a string node, decoding escape sequences.
func (c *converter) stringLit(n *sitter.Node) *ast.EString {
	raw := c.text(n)
	return &ast.EString{Value: unquote(raw), Raw: raw, Range: c.span(n)}
}
