// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// unquote decodes a JavaScript string literal, quotes included. Malformed
// escapes are kept as written.
func unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); {
		ch := body[i]
		if ch != '\\' || i+1 >= len(body) {
			b.WriteByte(ch)
			i++
			continue
		}

		esc := body[i+1]
		i += 2
		switch esc {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// line continuation
		case '\r':
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case 'x':
			if v, ok := hexValue(body, i, 2); ok {
				b.WriteRune(rune(v))
				i += 2
			} else {
				b.WriteString(`\x`)
			}
		case 'u':
			r, n := unicodeEscape(body, i)
			if n == 0 {
				b.WriteString(`\u`)
				break
			}
			i += n
			// Join a surrogate pair written as two escapes.
			if utf16.IsSurrogate(r) && strings.HasPrefix(body[i:], `\u`) {
				if r2, n2 := unicodeEscape(body, i+2); n2 > 0 {
					if joined := utf16.DecodeRune(r, r2); joined != utf8.RuneError {
						r = joined
						i += 2 + n2
					}
				}
			}
			b.WriteRune(r)
		default:
			b.WriteByte(esc)
		}
	}
	return b.String()
}

// unicodeEscape decodes the digits after "\u", either four hex digits or a
// braced code point. It returns the rune and the bytes consumed.
func unicodeEscape(s string, i int) (rune, int) {
	if i < len(s) && s[i] == '{' {
		end := strings.IndexByte(s[i:], '}')
		if end < 2 {
			return 0, 0
		}
		v, err := strconv.ParseUint(s[i+1:i+end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0
		}
		return rune(v), end + 1
	}
	v, ok := hexValue(s, i, 4)
	if !ok {
		return 0, 0
	}
	return rune(v), 4
}

func hexValue(s string, i, n int) (uint64, bool) {
	if i+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[i:i+n], 16, 32)
	return v, err == nil
}
