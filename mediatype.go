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
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// A MediaType is an immutable media-type value: a type/subtype pair plus
// an ordered list of parameters.
//
// MediaType values are produced by [Parse], [ParseList], [New], and
// [Builder.Build]. They carry no mutable state and are safe to share
// across any number of goroutines. To derive a modified value, call
// [MediaType.ToBuilder], mutate the builder, and build a new value.
type MediaType struct {
	typ     string
	subtype string
	params  []Param
}

// New returns a media type with the given type and subtype and no
// parameters. Both must be single non-empty tokens; the wildcard "*" is
// permitted for either.
func New(typ, subtype string) (MediaType, error) {
	if !isToken(typ) {
		return MediaType{}, parseErr(typ, 0, "type is not a valid token", ErrInvalidToken)
	}
	if !isToken(subtype) {
		return MediaType{}, parseErr(subtype, 0, "subtype is not a valid token", ErrInvalidToken)
	}
	return MediaType{typ: typ, subtype: subtype}, nil
}

// Type returns the primary type, e.g. "text" in "text/plain".
func (mt MediaType) Type() string { return mt.typ }

// Subtype returns the subtype, e.g. "plain" in "text/plain".
func (mt MediaType) Subtype() string { return mt.subtype }

// IsZero reports whether mt is the zero value, which represents the
// absence of a media type rather than any valid one.
func (mt MediaType) IsZero() bool {
	return mt.typ == "" && mt.subtype == "" && mt.params == nil
}

// MatchesAllTypes reports whether the primary type is the wildcard "*".
func (mt MediaType) MatchesAllTypes() bool { return mt.typ == "*" }

// MatchesAllSubtypes reports whether the subtype is the wildcard "*".
func (mt MediaType) MatchesAllSubtypes() bool { return mt.subtype == "*" }

// Suffix returns the structured-syntax suffix of the subtype: "json" in
// "application/vnd.api+json". It is empty when the subtype carries no
// suffix.
func (mt MediaType) Suffix() string {
	if i := strings.LastIndexByte(mt.subtype, '+'); i >= 0 {
		return mt.subtype[i+1:]
	}
	return ""
}

// SubtypeWithoutSuffix returns the subtype with any structured-syntax
// suffix removed: "vnd.api" in "application/vnd.api+json". Subtypes
// without a suffix are returned whole.
func (mt MediaType) SubtypeWithoutSuffix() string {
	if i := strings.LastIndexByte(mt.subtype, '+'); i >= 0 {
		return mt.subtype[:i]
	}
	return mt.subtype
}

// Params returns a copy of the parameter list in insertion order.
func (mt MediaType) Params() []Param {
	if len(mt.params) == 0 {
		return nil
	}
	out := make([]Param, len(mt.params))
	copy(out, mt.params)
	return out
}

// Param returns the first parameter whose name matches name
// case-insensitively.
func (mt MediaType) Param(name string) (Param, bool) {
	if i := findParam(mt.params, name); i >= 0 {
		return mt.params[i], true
	}
	return Param{}, false
}

// Charset returns the value of the first "charset" parameter, as stored:
// a quoted value keeps its quotes. ok is false when the parameter is
// absent. Use [MediaType.Encoding] to resolve the charset to a text
// encoding.
func (mt MediaType) Charset() (charset string, ok bool) {
	if i := findParam(mt.params, "charset"); i >= 0 {
		return mt.params[i].Value, true
	}
	return "", false
}

// Quality returns the value of the first "q" parameter. ok is false when
// no "q" parameter exists. A "q" parameter whose stored text does not
// parse as a number reports ok true together with an error wrapping
// [ErrInvalidQuality]: quality is stored as text and only validated when
// assigned or read, not while the value is carried around.
func (mt MediaType) Quality() (q float64, ok bool, err error) {
	i := findParam(mt.params, "q")
	if i < 0 {
		return 0, false, nil
	}
	q, perr := strconv.ParseFloat(unquote(mt.params[i].Value), 64)
	if perr != nil {
		return 0, true, parseErr(mt.params[i].Value, 0, "malformed quality value", ErrInvalidQuality)
	}
	return q, true, nil
}

// Equal reports whether mt and other denote the same media type: equal
// type and subtype (case-insensitive) and equal parameter sets
// (case-insensitive names and values, order irrelevant).
func (mt MediaType) Equal(other MediaType) bool {
	return strings.EqualFold(mt.typ, other.typ) &&
		strings.EqualFold(mt.subtype, other.subtype) &&
		paramsEqual(mt.params, other.params)
}

// Hash returns a hash of the media type consistent with [MediaType.Equal]:
// equal values always hash identically, regardless of parameter order or
// letter case. It is suitable for keying caches of negotiated types.
func (mt MediaType) Hash() uint64 {
	h := xxhash.Sum64String(strings.ToLower(mt.typ) + "/" + strings.ToLower(mt.subtype))
	// Parameter hashes are combined with addition so the result does not
	// depend on insertion order.
	for i := range mt.params {
		h += mt.params[i].hash()
	}
	return h
}

// String returns the canonical wire form: "type/subtype" followed by
// "; name=value" for each parameter in insertion order. Whitespace and
// folding present in the parsed input are not reproduced.
func (mt MediaType) String() string {
	var b strings.Builder
	b.Grow(len(mt.typ) + len(mt.subtype) + 1)
	b.WriteString(mt.typ)
	b.WriteByte('/')
	b.WriteString(mt.subtype)
	writeParams(&b, mt.params)
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the canonical wire
// form.
func (mt MediaType) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via [Parse].
func (mt *MediaType) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*mt = parsed
	return nil
}

// ToBuilder returns a mutable deep copy of mt. Changes to the builder
// never affect mt.
func (mt MediaType) ToBuilder() *Builder {
	b := &Builder{typ: mt.typ, subtype: mt.subtype}
	if len(mt.params) > 0 {
		b.params = make([]Param, len(mt.params))
		copy(b.params, mt.params)
	}
	return b
}
