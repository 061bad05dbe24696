// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ast defines the JavaScript/TypeScript syntax tree the transform
// operates on, the two traversals over it, and the printers that turn it
// back into source text.
//
// The tree models module declarations, statements, classes, functions and
// the expression forms calls can hide in. Anything else is kept as raw
// source text so it survives a round trip unchanged; raw nodes still carry
// the calls and declarations found inside them in Nested.
package ast

// Range is a half-open byte range into the parsed source. Synthetic nodes
// built by the transform carry the zero Range.
type Range struct {
	Start int
	End   int
}

// Valid reports whether the range refers to parsed source.
func (r Range) Valid() bool { return r.End > r.Start }

// Node is implemented by every tree node.
type Node interface {
	Span() Range
}

// Item is a top-level module item: a module declaration or a statement.
type Item interface {
	Node
	item()
}

// Stmt is a statement. Every statement is also a valid module item.
type Stmt interface {
	Item
	stmt()
}

// Expr is an expression.
type Expr interface {
	Node
	expr()
}

// Pattern is a binding pattern on the left side of a declarator.
type Pattern interface {
	Node
	pattern()
}

// Module is one parsed source file.
type Module struct {
	Body  []Item
	Range Range
}

func (m *Module) Span() Range { return m.Range }

// ---- module declarations ----

// ImportKind distinguishes the three import specifier forms.
type ImportKind int

const (
	ImportNamed     ImportKind = iota // import { a } / import { a as b }
	ImportDefault                     // import a
	ImportNamespace                   // import * as a
)

// ImportSpecifier is one binding introduced by an import declaration.
type ImportSpecifier struct {
	Kind  ImportKind
	Local string
	// Imported is the exported name for named specifiers written with an
	// explicit "as" clause. It is empty when the local name is also the
	// imported name.
	Imported string
	// ImportedIsString marks `import { "a-b" as c }`.
	ImportedIsString bool
	Range            Range
}

// ImportDecl is `import ... from "source"`.
type ImportDecl struct {
	Specifiers []ImportSpecifier
	Source     *EString
	TypeOnly   bool
	Range      Range
}

// ExportDecl is `export <declaration>`.
type ExportDecl struct {
	Decl  Stmt
	Range Range
}

// ExportDefaultDecl is `export default function ...` or `export default class ...`.
type ExportDefaultDecl struct {
	Decl  Stmt
	Range Range
}

// ExportDefaultExpr is `export default <expression>`.
type ExportDefaultExpr struct {
	Expr  Expr
	Range Range
}

// ExportNamed covers export clauses and re-exports, kept as source text.
type ExportNamed struct {
	Text  string
	Range Range
}

func (d *ImportDecl) Span() Range        { return d.Range }
func (d *ExportDecl) Span() Range        { return d.Range }
func (d *ExportDefaultDecl) Span() Range { return d.Range }
func (d *ExportDefaultExpr) Span() Range { return d.Range }
func (d *ExportNamed) Span() Range       { return d.Range }

func (*ImportDecl) item()        {}
func (*ExportDecl) item()        {}
func (*ExportDefaultDecl) item() {}
func (*ExportDefaultExpr) item() {}
func (*ExportNamed) item()       {}

// ---- statements ----

// VarKind is the declaration keyword of a variable declaration.
type VarKind string

const (
	VarVar   VarKind = "var"
	VarLet   VarKind = "let"
	VarConst VarKind = "const"
)

// Declarator is one `name = init` entry of a variable declaration.
type Declarator struct {
	Name Pattern
	// Type is the raw TypeScript annotation including its colon, if any.
	Type  string
	Init  Expr
	Range Range
}

func (d *Declarator) Span() Range { return d.Range }

// Function is shared by function declarations and function expressions.
type Function struct {
	Name      string
	Async     bool
	Generator bool
	// Params is the raw parameter list including parentheses.
	Params string
	// ReturnType is the raw TypeScript return annotation including its colon.
	ReturnType string
	Body       *SBlock
	Range      Range
}

func (f *Function) Span() Range { return f.Range }

type (
	// SExpr is an expression statement.
	SExpr struct {
		Expr  Expr
		Range Range
	}

	// SVar is a var/let/const declaration.
	SVar struct {
		Kind  VarKind
		Decls []*Declarator
		Range Range
	}

	// SFunction is a function declaration.
	SFunction struct {
		Fn    *Function
		Range Range
	}

	// SReturn is a return statement; Value may be nil.
	SReturn struct {
		Value Expr
		Range Range
	}

	// SBlock is a braced statement list.
	SBlock struct {
		Body  []Stmt
		Range Range
	}

	// SIf is an if statement; No may be nil.
	SIf struct {
		Test  Expr
		Yes   Stmt
		No    Stmt
		Range Range
	}

	// SFor is `for (init; test; update) body`. Init is an *SVar, an Expr
	// or nil; Test and Update may be nil.
	SFor struct {
		Init   Node
		Test   Expr
		Update Expr
		Body   Stmt
		Range  Range
	}

	// SForIn is a for-in or for-of loop. Kind is empty when Left assigns
	// to existing bindings.
	SForIn struct {
		Kind  VarKind
		Left  Pattern
		Of    bool
		Await bool
		Right Expr
		Body  Stmt
		Range Range
	}

	SWhile struct {
		Test  Expr
		Body  Stmt
		Range Range
	}

	SDoWhile struct {
		Body  Stmt
		Test  Expr
		Range Range
	}

	// STry is a try statement. Handler or Finalizer may be nil, and Param
	// is nil for a catch clause without a binding.
	STry struct {
		Block     *SBlock
		Param     Pattern
		Handler   *SBlock
		Finalizer *SBlock
		Range     Range
	}

	SSwitch struct {
		Value Expr
		Cases []*SwitchCase
		Range Range
	}

	SLabeled struct {
		Label string
		Body  Stmt
		Range Range
	}

	SThrow struct {
		Value Expr
		Range Range
	}

	// SClass is a class declaration.
	SClass struct {
		Class *Class
		Range Range
	}

	// SRaw is any statement kept verbatim: comments, type declarations and
	// other forms the tree does not model.
	SRaw struct {
		Text   string
		Nested []Node
		Range  Range
	}
)

// SwitchCase is one clause of a switch; Test is nil for default.
type SwitchCase struct {
	Test  Expr
	Body  []Stmt
	Range Range
}

func (c *SwitchCase) Span() Range { return c.Range }

// Class is shared by class declarations and class expressions.
type Class struct {
	// Head is the raw source before the body: keyword, name, type
	// parameters and heritage clauses.
	Head    string
	Members []*ClassMember
	Range   Range
}

func (c *Class) Span() Range { return c.Range }

// MemberKind distinguishes class body members.
type MemberKind int

const (
	MemberMethod      MemberKind = iota // name() {}, accessors and constructors
	MemberField                         // name = value, or a bare declaration
	MemberStaticBlock                   // static {}
	MemberRaw                           // signatures and index declarations
)

// ClassMember is one member of a class body. Head is the raw source in
// front of Body or Value, such as "static get size() " or "count = ".
// Members without a Body or Value keep all of their text in Head.
type ClassMember struct {
	Kind  MemberKind
	Head  string
	Value Expr
	Body  *SBlock
	Range Range
}

func (m *ClassMember) Span() Range { return m.Range }

func (s *SExpr) Span() Range     { return s.Range }
func (s *SVar) Span() Range      { return s.Range }
func (s *SFunction) Span() Range { return s.Range }
func (s *SReturn) Span() Range   { return s.Range }
func (s *SBlock) Span() Range    { return s.Range }
func (s *SIf) Span() Range       { return s.Range }
func (s *SFor) Span() Range      { return s.Range }
func (s *SForIn) Span() Range    { return s.Range }
func (s *SWhile) Span() Range    { return s.Range }
func (s *SDoWhile) Span() Range  { return s.Range }
func (s *STry) Span() Range      { return s.Range }
func (s *SSwitch) Span() Range   { return s.Range }
func (s *SLabeled) Span() Range  { return s.Range }
func (s *SThrow) Span() Range    { return s.Range }
func (s *SClass) Span() Range    { return s.Range }
func (s *SRaw) Span() Range      { return s.Range }

func (*SExpr) item()     {}
func (*SVar) item()      {}
func (*SFunction) item() {}
func (*SReturn) item()   {}
func (*SBlock) item()    {}
func (*SIf) item()       {}
func (*SFor) item()      {}
func (*SForIn) item()    {}
func (*SWhile) item()    {}
func (*SDoWhile) item()  {}
func (*STry) item()      {}
func (*SSwitch) item()   {}
func (*SLabeled) item()  {}
func (*SThrow) item()    {}
func (*SClass) item()    {}
func (*SRaw) item()      {}

func (*SExpr) stmt()     {}
func (*SVar) stmt()      {}
func (*SFunction) stmt() {}
func (*SReturn) stmt()   {}
func (*SBlock) stmt()    {}
func (*SIf) stmt()       {}
func (*SFor) stmt()      {}
func (*SForIn) stmt()    {}
func (*SWhile) stmt()    {}
func (*SDoWhile) stmt()  {}
func (*STry) stmt()      {}
func (*SSwitch) stmt()   {}
func (*SLabeled) stmt()  {}
func (*SThrow) stmt()    {}
func (*SClass) stmt()    {}
func (*SRaw) stmt()      {}

// ---- expressions ----

type (
	EIdent struct {
		Name  string
		Range Range
	}

	// EString is a string literal. Raw holds the quoted source form when
	// the literal was parsed; synthetic literals leave it empty.
	EString struct {
		Value string
		Raw   string
		Range Range
	}

	ENumber struct {
		Raw   string
		Range Range
	}

	// ELiteral is a leaf kept as source text: true, false, null, this
	// and regular expressions.
	ELiteral struct {
		Raw   string
		Range Range
	}

	ECall struct {
		Callee Expr
		Args   []Expr
		// TypeArgs is the raw TypeScript type argument list, if any.
		TypeArgs string
		Optional bool
		// SourceArgs is the number of arguments the call had when parsed.
		SourceArgs int
		// ArgsRange spans the parenthesised argument list in the source.
		ArgsRange Range
		Range     Range
	}

	// EMember is non-computed member access, `object.property`.
	EMember struct {
		Object   Expr
		Property string
		Optional bool
		Range    Range
	}

	// EIndex is computed member access, `object[index]`.
	EIndex struct {
		Object   Expr
		Index    Expr
		Optional bool
		Range    Range
	}

	EObject struct {
		Props []*Property
		Range Range
	}

	// EArray is an array literal; nil entries are holes.
	EArray struct {
		Items []Expr
		Range Range
	}

	ESpread struct {
		Value Expr
		Range Range
	}

	// EArrow is an arrow function. Exactly one of Expr and Block is set.
	EArrow struct {
		Async      bool
		Params     string
		ReturnType string
		Expr       Expr
		Block      *SBlock
		Range      Range
	}

	EFunction struct {
		Fn    *Function
		Range Range
	}

	EParen struct {
		Value Expr
		Range Range
	}

	EBinary struct {
		Op    string
		Left  Expr
		Right Expr
		Range Range
	}

	// EUnary covers prefix operators including await, typeof and void.
	EUnary struct {
		Op    string
		Value Expr
		Range Range
	}

	EConditional struct {
		Test  Expr
		Yes   Expr
		No    Expr
		Range Range
	}

	EAssign struct {
		Op     string
		Target Expr
		Value  Expr
		Range  Range
	}

	ENew struct {
		Callee Expr
		Args   []Expr
		Range  Range
	}

	// ETypeCast is a TypeScript `as` or `satisfies` expression. An empty
	// Op marks the prefix form `<T>value`, with Type holding "<T>".
	ETypeCast struct {
		Value Expr
		Op    string
		Type  string
		Range Range
	}

	// ENonNull is the TypeScript non-null assertion `value!`.
	ENonNull struct {
		Value Expr
		Range Range
	}

	// ETemplate is a template literal, tagged when Tag is set. Quasis
	// holds the raw text around the substitutions, so it always has one
	// more entry than Exprs.
	ETemplate struct {
		Tag    Expr
		Quasis []string
		Exprs  []Expr
		Range  Range
	}

	ESequence struct {
		Exprs []Expr
		Range Range
	}

	EClass struct {
		Class *Class
		Range Range
	}

	// ERaw is any expression kept verbatim.
	ERaw struct {
		Text   string
		Nested []Node
		Range  Range
	}
)

func (e *EIdent) Span() Range       { return e.Range }
func (e *EString) Span() Range      { return e.Range }
func (e *ENumber) Span() Range      { return e.Range }
func (e *ELiteral) Span() Range     { return e.Range }
func (e *ECall) Span() Range        { return e.Range }
func (e *EMember) Span() Range      { return e.Range }
func (e *EIndex) Span() Range       { return e.Range }
func (e *EObject) Span() Range      { return e.Range }
func (e *EArray) Span() Range       { return e.Range }
func (e *ESpread) Span() Range      { return e.Range }
func (e *EArrow) Span() Range       { return e.Range }
func (e *EFunction) Span() Range    { return e.Range }
func (e *EParen) Span() Range       { return e.Range }
func (e *EBinary) Span() Range      { return e.Range }
func (e *EUnary) Span() Range       { return e.Range }
func (e *EConditional) Span() Range { return e.Range }
func (e *EAssign) Span() Range      { return e.Range }
func (e *ENew) Span() Range         { return e.Range }
func (e *ETypeCast) Span() Range    { return e.Range }
func (e *ENonNull) Span() Range     { return e.Range }
func (e *ETemplate) Span() Range    { return e.Range }
func (e *ESequence) Span() Range    { return e.Range }
func (e *EClass) Span() Range       { return e.Range }
func (e *ERaw) Span() Range         { return e.Range }

func (*EIdent) expr()       {}
func (*EString) expr()      {}
func (*ENumber) expr()      {}
func (*ELiteral) expr()     {}
func (*ECall) expr()        {}
func (*EMember) expr()      {}
func (*EIndex) expr()       {}
func (*EObject) expr()      {}
func (*EArray) expr()       {}
func (*ESpread) expr()      {}
func (*EArrow) expr()       {}
func (*EFunction) expr()    {}
func (*EParen) expr()       {}
func (*EBinary) expr()      {}
func (*EUnary) expr()       {}
func (*EConditional) expr() {}
func (*EAssign) expr()      {}
func (*ENew) expr()         {}
func (*ETypeCast) expr()    {}
func (*ENonNull) expr()     {}
func (*ETemplate) expr()    {}
func (*ESequence) expr()    {}
func (*EClass) expr()       {}
func (*ERaw) expr()         {}

// PropertyKind distinguishes object literal members.
type PropertyKind int

const (
	PropKeyValue  PropertyKind = iota // key: value
	PropShorthand                     // key
	PropSpread                        // ...value
	PropMethod                        // key() {} and accessors
)

// Property is one member of an object literal. For PropKeyValue, Key is an
// *EIdent for plain identifier keys, an *EString or *ENumber for literal
// keys, or any expression when Computed is set. PropShorthand and
// PropSpread only use Value. PropMethod keeps the source in front of the
// body in Raw; a method that could not be split keeps all of it there
// and has a nil Body.
type Property struct {
	Kind     PropertyKind
	Key      Expr
	Computed bool
	Value    Expr
	Raw      string
	Body     *SBlock
	Range    Range
}

func (p *Property) Span() Range { return p.Range }

// ---- patterns ----

type (
	PIdent struct {
		Name  string
		Type  string
		Range Range
	}

	// PArray is an array destructuring pattern; nil entries are holes.
	PArray struct {
		Elems []Pattern
		Range Range
	}

	PObject struct {
		Props []*PatternProp
		Range Range
	}

	// PAssign is a pattern with a default value.
	PAssign struct {
		Left  Pattern
		Right Expr
		Range Range
	}

	PRest struct {
		Arg   Pattern
		Range Range
	}

	PRaw struct {
		Text   string
		Nested []Node
		Range  Range
	}
)

func (p *PIdent) Span() Range  { return p.Range }
func (p *PArray) Span() Range  { return p.Range }
func (p *PObject) Span() Range { return p.Range }
func (p *PAssign) Span() Range { return p.Range }
func (p *PRest) Span() Range   { return p.Range }
func (p *PRaw) Span() Range    { return p.Range }

func (*PIdent) pattern()  {}
func (*PArray) pattern()  {}
func (*PObject) pattern() {}
func (*PAssign) pattern() {}
func (*PRest) pattern()   {}
func (*PRaw) pattern()    {}

// PatternPropKind distinguishes object pattern members.
type PatternPropKind int

const (
	PatKeyValue PatternPropKind = iota // key: pattern
	PatAssign                          // name or name = default
	PatRest                            // ...rest
)

// PatternProp is one member of an object destructuring pattern.
type PatternProp struct {
	Kind     PatternPropKind
	Key      Expr
	Computed bool
	// Value is the bound pattern for PatKeyValue and PatRest, and a
	// *PIdent for PatAssign.
	Value   Pattern
	Default Expr
	Range   Range
}

func (p *PatternProp) Span() Range { return p.Range }

// ---- constructors for synthetic nodes ----

// Ident returns a synthetic identifier expression.
func Ident(name string) *EIdent { return &EIdent{Name: name} }

// String returns a synthetic string literal.
func String(value string) *EString { return &EString{Value: value} }

// Member returns a synthetic `object.property` expression.
func Member(object Expr, property string) *EMember {
	return &EMember{Object: object, Property: property}
}

// Call returns a synthetic call expression.
func Call(callee Expr, args ...Expr) *ECall {
	return &ECall{Callee: callee, Args: args}
}
