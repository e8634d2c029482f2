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

import (
	"math"
	"strconv"
	"strings"
)

// A Builder is the mutable shape of a media type. It validates every
// field on assignment, so [Builder.Build] cannot produce a malformed
// value.
//
// A Builder is owned by a single goroutine; it is not synchronized.
// Build returns an independent immutable [MediaType] and leaves the
// builder usable for further derivation.
type Builder struct {
	typ     string
	subtype string
	params  []Param
}

// NewBuilder returns a builder for typ/subtype. Both must be single
// non-empty tokens; in particular neither may contain "/", whitespace, or
// separator characters. The wildcard "*" is permitted.
func NewBuilder(typ, subtype string) (*Builder, error) {
	b := &Builder{}
	if err := b.SetType(typ); err != nil {
		return nil, err
	}
	if err := b.SetSubtype(subtype); err != nil {
		return nil, err
	}
	return b, nil
}

// SetType replaces the primary type. The new value must be a single
// non-empty token.
func (b *Builder) SetType(typ string) error {
	if !isToken(typ) {
		return parseErr(typ, 0, "type is not a valid token", ErrInvalidToken)
	}
	b.typ = typ
	return nil
}

// SetSubtype replaces the subtype. The new value must be a single
// non-empty token.
func (b *Builder) SetSubtype(subtype string) error {
	if !isToken(subtype) {
		return parseErr(subtype, 0, "subtype is not a valid token", ErrInvalidToken)
	}
	b.subtype = subtype
	return nil
}

// SetCharset sets the "charset" parameter. When a charset parameter
// already exists its value is overwritten in place, preserving its
// position; otherwise one is appended. An empty charset removes the
// parameter, which is a no-op when none exists. The value must be a token
// or a complete quoted-string.
func (b *Builder) SetCharset(charset string) error {
	if charset == "" {
		b.RemoveParam("charset")
		return nil
	}
	if !isTokenOrQuoted(charset) {
		return parseErr(charset, 0, "charset is not a token or quoted string", ErrInvalidToken)
	}
	if i := findParam(b.params, "charset"); i >= 0 {
		b.params[i].Value = charset
		return nil
	}
	b.params = append(b.params, Param{Name: "charset", Value: charset})
	return nil
}

// SetQuality sets the "q" parameter. q must be within [0, 1]; it is
// rounded half away from zero to three decimal places and stored as the
// shortest decimal that still round-trips through [Parse], always keeping
// one fractional digit: 1 becomes "1.0", 0.8 stays "0.8", and
// 0.563156454 becomes "0.563". An existing q parameter is overwritten in
// place.
func (b *Builder) SetQuality(q float64) error {
	if q < 0 || q > 1 {
		return parseErr(strconv.FormatFloat(q, 'g', -1, 64), 0, "quality must be within [0, 1]", ErrQualityOutOfRange)
	}
	v := formatQuality(q)
	if i := findParam(b.params, "q"); i >= 0 {
		b.params[i].Value = v
		return nil
	}
	b.params = append(b.params, Param{Name: "q", Value: v})
	return nil
}

// ClearQuality removes the "q" parameter. Removing an absent parameter is
// a no-op, so ClearQuality is idempotent.
func (b *Builder) ClearQuality() {
	b.RemoveParam("q")
}

// AddParam appends a parameter, preserving insertion order. Duplicate
// names are allowed; accessors resolve to the first match. The name must
// be a token; the value must be empty (a bare parameter), a token, or a
// complete quoted-string.
func (b *Builder) AddParam(name, value string) error {
	if !isToken(name) {
		return parseErr(name, 0, "parameter name is not a valid token", ErrInvalidToken)
	}
	if !isTokenOrQuoted(value) {
		return parseErr(value, 0, "parameter value is not a token or quoted string", ErrInvalidToken)
	}
	b.params = append(b.params, Param{Name: name, Value: value})
	return nil
}

// RemoveParam removes the first parameter whose name matches name
// case-insensitively. Removing an absent parameter is a no-op.
func (b *Builder) RemoveParam(name string) {
	if i := findParam(b.params, name); i >= 0 {
		b.params = append(b.params[:i], b.params[i+1:]...)
	}
}

// ClearParams removes all parameters.
func (b *Builder) ClearParams() {
	b.params = nil
}

// Build returns the immutable media type described by the builder. The
// result holds its own copy of the parameters, so later builder mutations
// never affect it.
func (b *Builder) Build() MediaType {
	mt := MediaType{typ: b.typ, subtype: b.subtype}
	if len(b.params) > 0 {
		mt.params = make([]Param, len(b.params))
		copy(mt.params, b.params)
	}
	return mt
}

// formatQuality renders q rounded to three decimal places, trimming
// trailing zeros but keeping at least one fractional digit so the result
// survives a serialize/parse round trip unchanged.
func formatQuality(q float64) string {
	q = math.Round(q*1000) / 1000
	s := strconv.FormatFloat(q, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
