// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
)

// ErrUnprintable is returned by Reprint when a parsed call gained arguments
// but lacks the source positions needed to place them.
var ErrUnprintable = errors.New("cannot place appended argument")

// insertion is a piece of text spliced into the source at Offset.
type insertion struct {
	Offset int
	Text   string
}

// Reprint renders m by copying src and splicing in the changes the
// transform can make: arguments appended to parsed calls, and synthetic
// top-level items. Parsed text, including comments and formatting, is
// reproduced byte for byte.
//
// Synthetic items placed before the last parsed item are written at their
// position; synthetic items after it are written after the remaining
// source, so trailing comments stay attached to the code above them.
func Reprint(src []byte, m *Module) ([]byte, error) {
	edits, err := collectInsertions(m)
	if err != nil {
		return nil, err
	}

	lastParsed := -1
	for i, it := range m.Body {
		if it.Span().Valid() {
			lastParsed = i
		}
	}

	var out bytes.Buffer
	out.Grow(len(src) + 256)
	cursor := 0

	for i, it := range m.Body {
		r := it.Span()
		if !r.Valid() {
			if i > lastParsed {
				continue
			}
			writeSynthetic(&out, it)
			continue
		}
		if r.End < cursor || r.End > len(src) {
			return nil, fmt.Errorf("item range %d-%d outside source: %w", r.Start, r.End, ErrUnprintable)
		}
		writeSpliced(&out, src, cursor, r.End, edits)
		cursor = r.End
	}
	writeSpliced(&out, src, cursor, len(src), edits)

	for _, it := range m.Body[lastParsed+1:] {
		writeSynthetic(&out, it)
	}
	return out.Bytes(), nil
}

func writeSynthetic(out *bytes.Buffer, it Item) {
	if b := out.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		out.WriteByte('\n')
	}
	out.WriteString(Print(it))
	out.WriteByte('\n')
}

// writeSpliced copies src[from:to] and applies the insertions falling
// inside that half-open range. Insertions always land before a closing
// parenthesis, so none sits on an item boundary.
func writeSpliced(out *bytes.Buffer, src []byte, from, to int, edits []insertion) {
	pos := from
	for _, e := range edits {
		if e.Offset < from || e.Offset >= to {
			continue
		}
		out.Write(src[pos:e.Offset])
		out.WriteString(e.Text)
		pos = e.Offset
	}
	out.Write(src[pos:to])
}

// callCollector gathers insertions for every parsed call that gained
// arguments after parsing.
type callCollector struct {
	edits []insertion
	err   error
}

func (c *callCollector) VisitCall(call *ECall) {
	if c.err != nil || len(call.Args) <= call.SourceArgs || !call.Range.Valid() {
		return
	}

	var offset int
	switch {
	case call.SourceArgs > 0:
		last := call.Args[call.SourceArgs-1]
		if last == nil || !last.Span().Valid() {
			c.err = fmt.Errorf("call at %d: last parsed argument has no position: %w", call.Range.Start, ErrUnprintable)
			return
		}
		offset = last.Span().End
	case call.ArgsRange.Valid():
		offset = call.ArgsRange.Start + 1
	default:
		c.err = fmt.Errorf("call at %d: argument list has no position: %w", call.Range.Start, ErrUnprintable)
		return
	}

	var text bytes.Buffer
	for i, arg := range call.Args[call.SourceArgs:] {
		if call.SourceArgs > 0 || i > 0 {
			text.WriteString(", ")
		}
		text.WriteString(Print(arg))
	}
	c.edits = append(c.edits, insertion{Offset: offset, Text: text.String()})
}

func collectInsertions(m *Module) ([]insertion, error) {
	c := &callCollector{}
	for _, it := range m.Body {
		if !it.Span().Valid() {
			continue
		}
		Walk(c, it)
	}
	if c.err != nil {
		return nil, c.err
	}
	sort.SliceStable(c.edits, func(i, j int) bool {
		return c.edits[i].Offset < c.edits[j].Offset
	})
	return c.edits, nil
}
