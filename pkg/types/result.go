// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across vextract packages.
package types

// FileState is the outcome of transforming one module.
type FileState int

const (
	StateNotTarget       FileState = iota // Filename does not match the target filter
	StateAlreadyCompiled                  // Module already carries the file-scope marker
	StateWrapped                          // Debug ids injected and module wrapped
)

func (s FileState) String() string {
	switch s {
	case StateNotTarget:
		return "not-a-target"
	case StateAlreadyCompiled:
		return "already-compiled"
	case StateWrapped:
		return "wrapped"
	default:
		return "unknown"
	}
}

// FileResult describes what the transform did to one file.
type FileResult struct {
	FilePath string    // File path as given to the transform
	State    FileState // Final state of the module
	DebugIDs []string  // Debug ids injected, in source order
	ESM      bool      // Module contains import or export declarations
	Changed  bool      // Output differs from the input
	Output   []byte    // Transformed source; nil when not printed
	Diff     string    // Unified-style diff of the change, when requested
	Err      error     // Failure for this file, if any
}

// Skipped reports whether the transform left the module untouched.
func (r *FileResult) Skipped() bool {
	return r.State != StateWrapped
}

// Stats summarises a run.
type Stats struct {
	Processed int // Files handled, including failures
	Wrapped   int // Files wrapped in a file scope
	Changed   int // Files whose output differs from the input
	Skipped   int // Files the target filter rejected
	Compiled  int // Files that were already compiled
	Failed    int // Files that failed to read, parse, transform or write
}

// Summarize counts results by outcome.
func Summarize(results []*FileResult) Stats {
	var s Stats
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Processed++
		if r.Err != nil {
			s.Failed++
			continue
		}
		if r.Changed {
			s.Changed++
		}
		switch r.State {
		case StateWrapped:
			s.Wrapped++
		case StateAlreadyCompiled:
			s.Compiled++
		case StateNotTarget:
			s.Skipped++
		}
	}
	return s
}
