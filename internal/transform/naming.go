// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/petar-djukic/vextract/internal/ast"
)

// ErrMalformedDeclaration is returned when a declaration has the shape of
// a lowered `const [a, b] = createTheme(...)` but lacks an expected
// declarator.
var ErrMalformedDeclaration = errors.New("malformed lowered createTheme declaration")

// loweredThemeCallee is the callee the lowered destructuring form calls.
const loweredThemeCallee = "createTheme"

// debugID is a debug id handed from the finder to the injector. It is
// consumed by take.
type debugID struct {
	name string
	set  bool
}

func someID(name string) debugID { return debugID{name: name, set: true} }

// take returns the held id and clears it.
func (d *debugID) take() (string, bool) {
	name, ok := d.name, d.set
	*d = debugID{}
	return name, ok
}

// deriveDebugID computes the debug id for a call from its ancestor path,
// outermost frame first.
func deriveDebugID(path ast.Path) (debugID, error) {
	name, ok, err := loweredThemeName(path)
	if err != nil {
		return debugID{}, err
	}
	if ok {
		return someID(name), nil
	}

	last, ok := path.Last()
	if !ok {
		return debugID{}, nil
	}

	switch last.Kind {
	case ast.FrameExpr, ast.FrameStmt, ast.FrameSpread, ast.FramePatternProp:
		var names []string
		for _, f := range path {
			if name, ok := frameName(f); ok {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			return debugID{}, nil
		}
		return someID(strings.Join(names, "_")), nil
	default:
		if name, ok := frameName(last); ok {
			return someID(name), nil
		}
		return debugID{}, nil
	}
}

// loweredThemeName recognises the nearest enclosing variable declaration
// when it is the lowered form of `export const [themeClass, vars] =
// createTheme({})`:
//
//	var _createTheme = createTheme({}),
//	  _createTheme2 = _slicedToArray(_createTheme, 2),
//	  themeClass = _createTheme2[0],
//	  vars = _createTheme2[1];
//
// and returns the third declarator's name.
func loweredThemeName(path ast.Path) (string, bool, error) {
	decl := nearestVarDecl(path)
	if decl == nil || len(decl.Decls) != 4 {
		return "", false, nil
	}

	theme, class := decl.Decls[0], decl.Decls[2]
	if theme == nil || class == nil {
		return "", false, fmt.Errorf("declarator slot %d missing: %w", missingSlot(theme), ErrMalformedDeclaration)
	}

	call, ok := theme.Init.(*ast.ECall)
	if !ok || ast.CalleeName(call) != loweredThemeCallee {
		return "", false, nil
	}
	id, ok := class.Name.(*ast.PIdent)
	if !ok {
		return "", false, nil
	}
	return id.Name, true, nil
}

func missingSlot(theme *ast.Declarator) int {
	if theme == nil {
		return 0
	}
	return 2
}

// nearestVarDecl returns the closest enclosing variable declaration, not
// looking past a function declaration.
func nearestVarDecl(path ast.Path) *ast.SVar {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i].Kind {
		case ast.FrameVarDecl:
			decl, _ := path[i].Node.(*ast.SVar)
			return decl
		case ast.FrameFunction:
			return nil
		}
	}
	return nil
}

// frameName extracts the name a single frame contributes to a debug id.
func frameName(f ast.Frame) (string, bool) {
	switch f.Kind {
	case ast.FrameProperty:
		p, _ := f.Node.(*ast.Property)
		if p == nil || p.Kind != ast.PropKeyValue || p.Computed {
			return "", false
		}
		return identName(p.Key)

	case ast.FramePatternProp:
		p, _ := f.Node.(*ast.PatternProp)
		if p == nil || p.Kind != ast.PatKeyValue || p.Computed {
			return "", false
		}
		return identName(p.Key)

	case ast.FrameDeclarator:
		d, _ := f.Node.(*ast.Declarator)
		if d == nil {
			return "", false
		}
		switch name := d.Name.(type) {
		case *ast.PIdent:
			return name.Name, true
		case *ast.PArray:
			if len(name.Elems) == 0 {
				return "", false
			}
			if first, ok := name.Elems[0].(*ast.PIdent); ok {
				return first.Name, true
			}
		}
		return "", false

	case ast.FrameFunction:
		fn, _ := f.Node.(*ast.Function)
		if fn == nil || fn.Name == "" {
			return "", false
		}
		return fn.Name, true

	case ast.FrameExportDefault:
		return "default", true
	}
	return "", false
}

func identName(e ast.Expr) (string, bool) {
	if id, ok := e.(*ast.EIdent); ok {
		return id.Name, true
	}
	return "", false
}
