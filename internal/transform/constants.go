// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transform

import (
	"regexp"
	"sync"
)

const (
	// FileScopePackage is the package whose import marks a module as
	// already transformed.
	FileScopePackage = "@vanilla-extract/css/fileScope"

	// FileScopeLocal is the local name bound to FileScopePackage by the
	// namespace import the wrapper inserts.
	FileScopeLocal = "__vanilla_filescope__"

	DefaultPackageName = "swc-plugin-vanilla-extract"
	DefaultFilename    = "unknown.js"
	DefaultRoot        = "."

	requireCallee = "require"
	setFileScope  = "setFileScope"
	endFileScope  = "endFileScope"
)

// packageIdentifiers lists the packages whose imports are inspected.
var packageIdentifiers = map[string]bool{
	"@vanilla-extract/css":     true,
	"@vanilla-extract/recipes": true,
}

// styleFunctionNames lists the canonical style-producing functions.
// recipe appears twice; the set collapses it.
var styleFunctionNames = []string{
	"style",
	"createTheme",
	"styleVariants",
	"fontFace",
	"keyframes",
	"createVar",
	"recipe",
	"createContainer",
	"globalStyle",
	"createGlobalTheme",
	"createThemeContract",
	"globalFontFace",
	"globalKeyframes",
	"recipe",
}

var styleFunctions = sync.OnceValue(func() map[string]bool {
	set := make(map[string]bool, len(styleFunctionNames))
	for _, name := range styleFunctionNames {
		set[name] = true
	}
	return set
})

// debuggableArity maps a canonical function name to the argument count at
// which a call no longer receives a debug id.
var debuggableArity = map[string]int{
	"style":           2,
	"createTheme":     3,
	"styleVariants":   3,
	"fontFace":        2,
	"keyframes":       2,
	"createVar":       1,
	"recipe":          2,
	"createContainer": 1,
}

var targetFilter = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`\.css\.(js|mjs|jsx|ts|tsx)(\?used)?$`)
})

// IsStyleFunction reports whether name is a canonical style function.
func IsStyleFunction(name string) bool {
	return styleFunctions()[name]
}

// ArityLimit returns the argument count at which calls to name stop
// receiving a debug id. ok is false for functions that never receive one.
func ArityLimit(name string) (limit int, ok bool) {
	limit, ok = debuggableArity[name]
	return limit, ok
}
