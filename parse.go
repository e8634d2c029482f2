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

// Parse parses a single media-type value, consuming the entire input.
//
// The grammar is the RFC 9110 media-type field value: optional leading
// whitespace (including obsolete line folds), a type token, "/", a
// subtype token, then zero or more ";"-introduced parameters whose values
// are tokens or quoted-strings. A trailing ";" and trailing whitespace
// are tolerated; any other trailing content is an error. In particular a
// trailing comma is an error: list syntax belongs to [ParseList].
//
// Errors are reported as a [*ParseError] and never as a panic, so Parse
// doubles as the non-throwing try-variant.
func Parse(s string) (MediaType, error) {
	mt, end, err := parseValue(s)
	if err != nil {
		return MediaType{}, err
	}
	if end != len(s) {
		return MediaType{}, parseErr(s, end, "unexpected trailing characters", ErrInvalidMediaType)
	}
	return mt, nil
}

// MustParse is like [Parse] but panics on malformed input. It simplifies
// initialization of media-type constants:
//
//	var jsonAPI = mediatype.MustParse("application/vnd.api+json")
func MustParse(s string) MediaType {
	mt, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return mt
}

// ParseList parses media-type values from a sequence of raw header
// strings, such as all occurrences of an Accept header. Each string may
// itself hold several comma-separated values; a comma inside a quoted
// string does not separate values. Empty segments, produced by leading,
// trailing, or consecutive commas, are skipped silently.
//
// Parsing is atomic: if any segment is malformed, ParseList returns the
// error and no partial result. A nil or empty input, or input holding
// only whitespace and commas, yields an empty result and no error.
func ParseList(values []string) ([]MediaType, error) {
	var out []MediaType
	for _, raw := range values {
		seg := 0
		inQuote, escaped := false, false
		for i := 0; i < len(raw); i++ {
			switch c := raw[i]; {
			case escaped:
				escaped = false
			case c == '\\' && inQuote:
				escaped = true
			case c == '"':
				inQuote = !inQuote
			case c == ',' && !inQuote:
				var err error
				if out, err = appendSegment(out, raw[seg:i]); err != nil {
					return nil, err
				}
				seg = i + 1
			}
		}
		var err error
		if out, err = appendSegment(out, raw[seg:]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// appendSegment parses one comma-delimited segment and appends the result.
// Segments holding only whitespace are skipped.
func appendSegment(out []MediaType, seg string) ([]MediaType, error) {
	if skipOWS(seg, 0) == len(seg) {
		return out, nil
	}
	mt, err := Parse(seg)
	if err != nil {
		return nil, err
	}
	return append(out, mt), nil
}

// parseValue parses one media-type value starting at the beginning of s
// and returns it along with the index of the first unconsumed byte.
func parseValue(s string) (MediaType, int, error) {
	i := skipOWS(s, 0)
	if i == len(s) {
		return MediaType{}, i, parseErr(s, i, "empty input", ErrInvalidMediaType)
	}
	j := scanToken(s, i)
	if j == i {
		return MediaType{}, i, parseErr(s, i, "expected type token", ErrInvalidMediaType)
	}
	typ := s[i:j]
	if j == len(s) || s[j] != '/' {
		return MediaType{}, j, parseErr(s, j, "expected '/' after type", ErrInvalidMediaType)
	}
	j++
	k := scanToken(s, j)
	if k == j {
		return MediaType{}, j, parseErr(s, j, "expected subtype token", ErrInvalidMediaType)
	}
	subtype := s[j:k]
	params, end, err := parseParams(s, k)
	if err != nil {
		return MediaType{}, end, err
	}
	return MediaType{typ: typ, subtype: subtype, params: params}, end, nil
}

// parseParams parses a ";"-delimited parameter sequence starting at i and
// returns the parameters together with the index of the first byte that
// does not belong to the sequence. A trailing ";" is consumed.
func parseParams(s string, i int) ([]Param, int, error) {
	var params []Param
	for {
		j := skipOWS(s, i)
		if j == len(s) || s[j] != ';' {
			return params, j, nil
		}
		j = skipOWS(s, j+1)
		if j == len(s) {
			// Trailing semicolon.
			return params, j, nil
		}
		k := scanToken(s, j)
		if k == j {
			return nil, j, parseErr(s, j, "expected parameter name", ErrInvalidMediaType)
		}
		p := Param{Name: s[j:k]}
		i = k
		if eq := skipOWS(s, k); eq < len(s) && s[eq] == '=' {
			v := skipOWS(s, eq+1)
			if v == len(s) {
				return nil, v, parseErr(s, v, "expected parameter value", ErrInvalidMediaType)
			}
			var end int
			if s[v] == '"' {
				var err error
				if end, err = scanQuoted(s, v); err != nil {
					return nil, end, err
				}
			} else {
				if end = scanToken(s, v); end == v {
					return nil, v, parseErr(s, v, "expected parameter value", ErrInvalidMediaType)
				}
			}
			p.Value = s[v:end]
			i = end
		}
		params = append(params, p)
	}
}
