// Copyright 2026 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mediatype

import "strings"

// isTchar reports which bytes are RFC 9110 token characters. Everything
// outside the table, including all non-ASCII bytes, ends a token.
var isTchar [256]bool

func init() {
	tchars := "!#$%&'*+-.^_`|~" +
		"0123456789" +
		"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, c := range tchars {
		isTchar[c] = true
	}
}

// skipOWS returns the index of the first byte of s at or after i that is
// not optional whitespace. Obsolete line folding (CRLF followed by a space
// or tab) counts as whitespace, per RFC 9110 Section 5.2.
func skipOWS(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t':
			i++
		case '\r':
			if i+2 < len(s) && s[i+1] == '\n' && (s[i+2] == ' ' || s[i+2] == '\t') {
				i += 3
				continue
			}
			return i
		default:
			return i
		}
	}
	return i
}

// scanToken returns the end of the longest run of token characters
// starting at i. An empty run returns i itself.
func scanToken(s string, i int) int {
	for i < len(s) && isTchar[s[i]] {
		i++
	}
	return i
}

// scanQuoted scans a quoted-string starting at i, where s[i] must be '"'.
// It returns the index just past the closing quote. Backslash escapes any
// tab, space, visible, or obs-text byte; control characters are rejected
// both escaped and bare. An unterminated string is an error.
func scanQuoted(s string, i int) (int, error) {
	j := i + 1
	for j < len(s) {
		switch c := s[j]; {
		case c == '"':
			return j + 1, nil
		case c == '\\':
			if j+1 >= len(s) {
				return j, parseErr(s, j, "unterminated quoted-pair", ErrInvalidQuotedString)
			}
			if !isQuotedPairByte(s[j+1]) {
				return j + 1, parseErr(s, j+1, "invalid escaped character", ErrInvalidQuotedString)
			}
			j += 2
		case isQdtextByte(c):
			j++
		default:
			return j, parseErr(s, j, "invalid character in quoted string", ErrInvalidQuotedString)
		}
	}
	return j, parseErr(s, i, "unterminated quoted string", ErrInvalidQuotedString)
}

// isQdtextByte reports whether b is allowed unescaped inside a
// quoted-string (RFC 9110 Section 5.6.4). obs-text bytes (0x80..0xFF) are
// the one place non-ASCII data is legal in a header value.
func isQdtextByte(b byte) bool {
	switch {
	case b == '\t' || b == ' ':
		return true
	case b == 0x21:
		return true
	case 0x23 <= b && b <= 0x5B:
		return true
	case 0x5D <= b && b <= 0x7E:
		return true
	case b >= 0x80:
		return true
	}
	return false
}

// isQuotedPairByte reports whether b may follow a backslash inside a
// quoted-string.
func isQuotedPairByte(b byte) bool {
	return b == '\t' || b == ' ' || (0x21 <= b && b <= 0x7E) || b >= 0x80
}

// isToken reports whether s is a non-empty RFC 9110 token.
func isToken(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isTchar[s[i]] {
			return false
		}
	}
	return s != ""
}

// isTokenOrQuoted reports whether s is valid as a parameter value: empty
// (a bare parameter), a token, or a complete quoted-string.
func isTokenOrQuoted(s string) bool {
	if s == "" {
		return true
	}
	if s[0] == '"' {
		j, err := scanQuoted(s, 0)
		return err == nil && j == len(s)
	}
	return isToken(s)
}

// unquote strips the surrounding quotes from a quoted-string and undoes
// backslash escapes. Values that are not quoted are returned unchanged.
func unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	inner := s[1 : len(s)-1]
	if !strings.ContainsRune(inner, '\\') {
		return inner
	}
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}
