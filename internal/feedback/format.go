// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package feedback

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/petar-djukic/vextract/pkg/types"
)

const defaultContextLines = 2

// FormatConfig configures report formatting.
type FormatConfig struct {
	ContextLines int  // Lines of source shown around a diagnostic (default 2)
	ShowSkipped  bool // List files that were not targets or already compiled
	ShowDiffs    bool // Include each file's diff
}

// FormatReport renders a per-file summary of a run followed by totals.
func FormatReport(results []*types.FileResult, cfg FormatConfig) string {
	contextLines := cfg.ContextLines
	if contextLines == 0 {
		contextLines = defaultContextLines
	}

	var buf strings.Builder
	counts := make(map[types.FileState]int)
	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(&buf, "FAIL %s\n", r.FilePath)
			fmt.Fprintf(&buf, "     %v\n", r.Err)
			var diag *types.Diagnostic
			if errors.As(r.Err, &diag) && diag.Line > 0 {
				buf.WriteString(codeContext(diag.FilePath, diag.Line, contextLines))
			}
			continue
		}

		counts[r.State]++
		if r.State != types.StateWrapped && !cfg.ShowSkipped {
			continue
		}
		fmt.Fprintf(&buf, "%-4s %s", stateLabel(r.State), r.FilePath)
		if len(r.DebugIDs) > 0 {
			fmt.Fprintf(&buf, " [%s]", strings.Join(r.DebugIDs, ", "))
		}
		buf.WriteByte('\n')
		if cfg.ShowDiffs && r.Diff != "" {
			buf.WriteString(r.Diff)
		}
	}

	fmt.Fprintf(&buf, "\n%d files: %d wrapped, %d already compiled, %d not targets, %d failed\n",
		len(results),
		counts[types.StateWrapped],
		counts[types.StateAlreadyCompiled],
		counts[types.StateNotTarget],
		failed,
	)
	return buf.String()
}

func stateLabel(s types.FileState) string {
	switch s {
	case types.StateWrapped:
		return "ok"
	case types.StateAlreadyCompiled:
		return "done"
	default:
		return "skip"
	}
}

// codeContext reads a file and returns numbered lines around errorLine,
// marking the error line.
func codeContext(filePath string, errorLine, contextLines int) string {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return ""
	}

	lines := strings.Split(string(data), "\n")
	start := max(errorLine-contextLines-1, 0)
	end := min(errorLine+contextLines, len(lines))

	var buf strings.Builder
	for i := start; i < end; i++ {
		lineNum := i + 1
		marker := "  "
		if lineNum == errorLine {
			marker = "> "
		}
		fmt.Fprintf(&buf, "%s%4d │ %s\n", marker, lineNum, lines[i])
	}
	return buf.String()
}
