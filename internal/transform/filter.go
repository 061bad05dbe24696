// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transform

// IsTarget reports whether filename names a vanilla-extract style module:
// a ".css." infix, a js, mjs, jsx, ts or tsx extension, and an optional
// "?used" query.
func IsTarget(filename string) bool {
	return targetFilter().MatchString(filename)
}
