// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Diagnostic is an error tied to a position in a source file. Line and
// Column are 1-based; zero means the position is unknown.
type Diagnostic struct {
	FilePath string // File the problem was found in
	Line     int    // Line of the problem (1-based)
	Column   int    // Column of the problem (1-based)
	Message  string // Human-readable description
	Err      error  // Underlying sentinel or cause, if any
}

func (d *Diagnostic) Error() string {
	msg := d.Message
	if msg == "" && d.Err != nil {
		msg = d.Err.Error()
	} else if d.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, d.Err)
	}
	switch {
	case d.Line > 0 && d.Column > 0:
		return fmt.Sprintf("%s:%d:%d: %s", d.FilePath, d.Line, d.Column, msg)
	case d.Line > 0:
		return fmt.Sprintf("%s:%d: %s", d.FilePath, d.Line, msg)
	default:
		return fmt.Sprintf("%s: %s", d.FilePath, msg)
	}
}

// Unwrap returns the underlying error so errors.Is matches sentinels.
func (d *Diagnostic) Unwrap() error { return d.Err }
