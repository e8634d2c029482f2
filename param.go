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
	"strings"

	"github.com/cespare/xxhash/v2"
)

// A Param is a single media-type parameter.
//
// Value is stored exactly as it appeared on the wire: a quoted value keeps
// its surrounding quotes and escapes, so serialization round-trips.
// An empty Value represents a bare parameter ("text/plain;custom"), which
// serializes as just the name. Use [Param.Unquoted] to read the logical
// value of a quoted parameter.
type Param struct {
	Name  string
	Value string
}

// Equal reports whether p and other carry the same name and value.
// Both comparisons are case-insensitive.
func (p Param) Equal(other Param) bool {
	return strings.EqualFold(p.Name, other.Name) &&
		strings.EqualFold(p.Value, other.Value)
}

// Unquoted returns the parameter value with surrounding quotes removed and
// backslash escapes undone. Unquoted values are returned as-is.
func (p Param) Unquoted() string {
	return unquote(p.Value)
}

// String returns the wire form of the parameter: "name=value", or just
// "name" for a bare parameter.
func (p Param) String() string {
	if p.Value == "" {
		return p.Name
	}
	return p.Name + "=" + p.Value
}

// hash returns a case-folded hash of the parameter. Two parameters that
// are Equal always hash identically.
func (p Param) hash() uint64 {
	return xxhash.Sum64String(strings.ToLower(p.Name) + "=" + strings.ToLower(p.Value))
}

// findParam returns the index of the first parameter whose name matches
// name case-insensitively, or -1.
func findParam(params []Param, name string) int {
	for i := range params {
		if strings.EqualFold(params[i].Name, name) {
			return i
		}
	}
	return -1
}

// containsParam reports whether params holds an entry Equal to p.
func containsParam(params []Param, p Param) bool {
	for i := range params {
		if params[i].Equal(p) {
			return true
		}
	}
	return false
}

// paramsEqual reports whether a and b are equal as sets: same count, and
// every parameter of one has a case-insensitive match in the other.
// Insertion order does not matter.
func paramsEqual(a, b []Param) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !containsParam(b, a[i]) {
			return false
		}
	}
	for i := range b {
		if !containsParam(a, b[i]) {
			return false
		}
	}
	return true
}

// writeParams appends the canonical "; name=value" form of each parameter,
// in insertion order.
func writeParams(b *strings.Builder, params []Param) {
	for i := range params {
		b.WriteString("; ")
		b.WriteString(params[i].String())
	}
}
