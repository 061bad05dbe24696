// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

// FrameKind identifies the construct an ancestor frame stands for.
type FrameKind int

const (
	FrameImport FrameKind = iota
	FrameExport
	FrameExportDefault
	FrameStmt
	FrameVarDecl
	FrameDeclarator
	FrameFunction
	FrameFunctionExpr
	FrameArrow
	FrameExpr
	FrameProperty
	FramePatternProp
	FrameSpread
	FrameClass
	FrameClassMember
)

var frameKindNames = [...]string{
	FrameImport:        "import",
	FrameExport:        "export",
	FrameExportDefault: "export-default",
	FrameStmt:          "stmt",
	FrameVarDecl:       "var-decl",
	FrameDeclarator:    "declarator",
	FrameFunction:      "function",
	FrameFunctionExpr:  "function-expr",
	FrameArrow:         "arrow",
	FrameExpr:          "expr",
	FrameProperty:      "property",
	FramePatternProp:   "pattern-prop",
	FrameSpread:        "spread",
	FrameClass:         "class",
	FrameClassMember:   "class-member",
}

func (k FrameKind) String() string {
	if int(k) < len(frameKindNames) {
		return frameKindNames[k]
	}
	return "unknown"
}

// Frame is one ancestor on the path from a top-level item to a node.
//
// Node holds the construct itself: *SVar for FrameVarDecl, *Declarator for
// FrameDeclarator, *Function for FrameFunction and FrameFunctionExpr,
// *Property for FrameProperty, *PatternProp for FramePatternProp, *Class
// for FrameClass, *ClassMember for FrameClassMember, the item for the
// import/export kinds, and the statement or expression otherwise.
type Frame struct {
	Kind FrameKind
	Node Node
}

// Path lists ancestor frames, outermost first.
type Path []Frame

// Last returns the nearest frame.
func (p Path) Last() (Frame, bool) {
	if len(p) == 0 {
		return Frame{}, false
	}
	return p[len(p)-1], true
}

// PathVisitor observes call expressions together with their ancestors.
// The nearest frame handed to VisitCall is always the FrameExpr wrapping
// the call itself. The path is reused by the traversal and must be copied
// if retained past the call.
type PathVisitor interface {
	// VisitCall returns false to skip the call's callee and arguments.
	VisitCall(call *ECall, path Path) bool
}

// Visitor observes, and may modify, call expressions. Calls are visited in
// the same order as WalkPath visits them; a call's arguments are visited
// after the call itself.
type Visitor interface {
	VisitCall(call *ECall)
}

// WalkPath traverses item depth-first, calling v for every call expression
// with its ancestor path.
func WalkPath(v PathVisitor, item Item) {
	w := &walker{visit: v.VisitCall}
	w.item(item)
}

// Walk traverses item depth-first, calling v for every call expression.
func Walk(v Visitor, item Item) {
	w := &walker{visit: func(call *ECall, _ Path) bool {
		v.VisitCall(call)
		return true
	}}
	w.item(item)
}

// walker is the traversal shared by WalkPath and Walk, so both observe
// calls in one order.
type walker struct {
	path  Path
	visit func(*ECall, Path) bool
}

func (w *walker) push(kind FrameKind, n Node) {
	w.path = append(w.path, Frame{Kind: kind, Node: n})
}

func (w *walker) pop() {
	w.path = w.path[:len(w.path)-1]
}

func (w *walker) item(it Item) {
	switch it := it.(type) {
	case nil:
	case *ImportDecl, *ExportNamed:
	case *ExportDecl:
		w.push(FrameExport, it)
		w.stmt(it.Decl)
		w.pop()
	case *ExportDefaultDecl:
		w.push(FrameExportDefault, it)
		if fn, ok := it.Decl.(*SFunction); ok {
			// A default-exported function is an expression, not a named binding.
			w.function(FrameFunctionExpr, fn.Fn)
		} else {
			w.stmt(it.Decl)
		}
		w.pop()
	case *ExportDefaultExpr:
		w.push(FrameExportDefault, it)
		w.expr(it.Expr)
		w.pop()
	case Stmt:
		w.stmt(it)
	}
}

func (w *walker) stmt(s Stmt) {
	if s == nil {
		return
	}
	w.push(FrameStmt, s)
	defer w.pop()

	switch s := s.(type) {
	case *SExpr:
		w.expr(s.Expr)
	case *SVar:
		w.push(FrameVarDecl, s)
		for _, d := range s.Decls {
			if d == nil {
				continue
			}
			w.push(FrameDeclarator, d)
			w.pattern(d.Name)
			w.expr(d.Init)
			w.pop()
		}
		w.pop()
	case *SFunction:
		w.function(FrameFunction, s.Fn)
	case *SReturn:
		w.expr(s.Value)
	case *SBlock:
		w.block(s)
	case *SIf:
		w.expr(s.Test)
		w.stmt(s.Yes)
		w.stmt(s.No)
	case *SFor:
		switch init := s.Init.(type) {
		case Stmt:
			w.stmt(init)
		case Expr:
			w.expr(init)
		}
		w.expr(s.Test)
		w.expr(s.Update)
		w.stmt(s.Body)
	case *SForIn:
		w.pattern(s.Left)
		w.expr(s.Right)
		w.stmt(s.Body)
	case *SWhile:
		w.expr(s.Test)
		w.stmt(s.Body)
	case *SDoWhile:
		w.stmt(s.Body)
		w.expr(s.Test)
	case *STry:
		w.block(s.Block)
		w.pattern(s.Param)
		w.block(s.Handler)
		w.block(s.Finalizer)
	case *SSwitch:
		w.expr(s.Value)
		for _, c := range s.Cases {
			if c == nil {
				continue
			}
			w.expr(c.Test)
			for _, body := range c.Body {
				w.stmt(body)
			}
		}
	case *SLabeled:
		w.stmt(s.Body)
	case *SThrow:
		w.expr(s.Value)
	case *SClass:
		w.class(s.Class)
	case *SRaw:
		w.nested(s.Nested)
	}
}

func (w *walker) class(c *Class) {
	if c == nil {
		return
	}
	w.push(FrameClass, c)
	for _, m := range c.Members {
		if m == nil {
			continue
		}
		w.push(FrameClassMember, m)
		w.expr(m.Value)
		w.block(m.Body)
		w.pop()
	}
	w.pop()
}

// nested walks the calls and declarations recorded inside a raw node.
func (w *walker) nested(list []Node) {
	for _, n := range list {
		switch n := n.(type) {
		case Stmt:
			w.stmt(n)
		case Expr:
			w.expr(n)
		}
	}
}

func (w *walker) block(b *SBlock) {
	if b == nil {
		return
	}
	for _, s := range b.Body {
		w.stmt(s)
	}
}

func (w *walker) function(kind FrameKind, fn *Function) {
	if fn == nil {
		return
	}
	w.push(kind, fn)
	w.block(fn.Body)
	w.pop()
}

func (w *walker) exprs(list []Expr) {
	for _, e := range list {
		w.expr(e)
	}
}

func (w *walker) expr(e Expr) {
	if e == nil {
		return
	}
	w.push(FrameExpr, e)
	defer w.pop()

	switch e := e.(type) {
	case *ECall:
		if w.visit != nil && !w.visit(e, w.path) {
			return
		}
		w.expr(e.Callee)
		w.exprs(e.Args)
	case *EMember:
		w.expr(e.Object)
	case *EIndex:
		w.expr(e.Object)
		w.expr(e.Index)
	case *EObject:
		for _, p := range e.Props {
			w.property(p)
		}
	case *EArray:
		w.exprs(e.Items)
	case *ESpread:
		w.push(FrameSpread, e)
		w.expr(e.Value)
		w.pop()
	case *EArrow:
		w.push(FrameArrow, e)
		w.expr(e.Expr)
		w.block(e.Block)
		w.pop()
	case *EFunction:
		w.function(FrameFunctionExpr, e.Fn)
	case *EParen:
		w.expr(e.Value)
	case *EBinary:
		w.expr(e.Left)
		w.expr(e.Right)
	case *EUnary:
		w.expr(e.Value)
	case *EConditional:
		w.expr(e.Test)
		w.expr(e.Yes)
		w.expr(e.No)
	case *EAssign:
		w.expr(e.Target)
		w.expr(e.Value)
	case *ENew:
		w.expr(e.Callee)
		w.exprs(e.Args)
	case *ETypeCast:
		w.expr(e.Value)
	case *ENonNull:
		w.expr(e.Value)
	case *ETemplate:
		w.expr(e.Tag)
		w.exprs(e.Exprs)
	case *ESequence:
		w.exprs(e.Exprs)
	case *EClass:
		w.class(e.Class)
	case *ERaw:
		w.nested(e.Nested)
	}
}

func (w *walker) property(p *Property) {
	if p == nil {
		return
	}
	w.push(FrameProperty, p)
	if p.Computed {
		w.expr(p.Key)
	}
	w.expr(p.Value)
	w.block(p.Body)
	w.pop()
}

func (w *walker) pattern(p Pattern) {
	switch p := p.(type) {
	case nil:
	case *PArray:
		for _, el := range p.Elems {
			w.pattern(el)
		}
	case *PObject:
		for _, prop := range p.Props {
			if prop == nil {
				continue
			}
			w.push(FramePatternProp, prop)
			if prop.Computed {
				w.expr(prop.Key)
			}
			w.pattern(prop.Value)
			w.expr(prop.Default)
			w.pop()
		}
	case *PAssign:
		w.pattern(p.Left)
		w.expr(p.Right)
	case *PRest:
		w.pattern(p.Arg)
	case *PRaw:
		w.nested(p.Nested)
	}
}
