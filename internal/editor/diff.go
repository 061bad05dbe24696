// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultContext is the number of unchanged lines shown around a change.
const DefaultContext = 3

type lineOp struct {
	op   diffmatchpatch.Operation
	text string
}

// Diff renders a unified diff between before and after, labelled with path.
// It returns "" when the contents are equal.
func Diff(path, before, after string) string {
	return DiffContext(path, before, after, DefaultContext)
}

// DiffContext is Diff with a configurable number of context lines.
func DiffContext(path, before, after string, context int) string {
	if before == after {
		return ""
	}
	if context < 0 {
		context = 0
	}

	lines := lineDiff(before, after)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- a/%s\n+++ b/%s\n", path, path)

	// oldNo and newNo hold the 1-based line numbers each entry starts at.
	oldNo := make([]int, len(lines)+1)
	newNo := make([]int, len(lines)+1)
	oldNo[0], newNo[0] = 1, 1
	for i, l := range lines {
		oldNo[i+1], newNo[i+1] = oldNo[i], newNo[i]
		if l.op != diffmatchpatch.DiffInsert {
			oldNo[i+1]++
		}
		if l.op != diffmatchpatch.DiffDelete {
			newNo[i+1]++
		}
	}

	for start := 0; start < len(lines); {
		first := nextChange(lines, start)
		if first < 0 {
			break
		}
		last := first
		for {
			next := nextChange(lines, last+1)
			if next < 0 || next-last > 2*context {
				break
			}
			last = next
		}

		from := max(first-context, 0)
		to := min(last+context+1, len(lines))
		oldLen := oldNo[to] - oldNo[from]
		newLen := newNo[to] - newNo[from]
		fmt.Fprintf(&buf, "@@ -%s +%s @@\n", hunkRange(oldNo[from], oldLen), hunkRange(newNo[from], newLen))
		for _, l := range lines[from:to] {
			switch l.op {
			case diffmatchpatch.DiffDelete:
				buf.WriteByte('-')
			case diffmatchpatch.DiffInsert:
				buf.WriteByte('+')
			default:
				buf.WriteByte(' ')
			}
			buf.WriteString(l.text)
			buf.WriteByte('\n')
		}
		start = to
	}
	return buf.String()
}

// lineDiff diffs before and after line by line.
func lineDiff(before, after string) []lineOp {
	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var lines []lineOp
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			lines = append(lines, lineOp{op: d.Type, text: text})
		}
	}
	return lines
}

// splitLines splits s into lines without their terminators.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func nextChange(lines []lineOp, from int) int {
	for i := from; i < len(lines); i++ {
		if lines[i].op != diffmatchpatch.DiffEqual {
			return i
		}
	}
	return -1
}

func hunkRange(start, length int) string {
	if length == 0 {
		start--
	}
	if length == 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, length)
}
