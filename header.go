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
	"net/http"
	"strings"
)

// ContentType parses the Content-Type header from h.
//
// If there is no such header in h, ContentType returns the zero MediaType
// and no error; use [MediaType.IsZero] to distinguish absence from a
// parse failure.
func ContentType(h http.Header) (MediaType, error) {
	v := h.Get("Content-Type")
	if v == "" {
		return MediaType{}, nil
	}
	return Parse(v)
}

// SetContentType replaces the Content-Type header in h with the canonical
// form of mt.
func SetContentType(h http.Header, mt MediaType) {
	h.Set("Content-Type", mt.String())
}

// Accept parses the Accept header from h. All occurrences of the header
// are combined, in order, and each may hold several comma-separated
// media ranges. Accept returns nil for an absent header.
func Accept(h http.Header) ([]MediaType, error) {
	return ParseList(h["Accept"])
}

// SetAccept replaces the Accept header in h with the canonical forms of
// mts, comma-separated. See also AddAccept.
func SetAccept(h http.Header, mts []MediaType) {
	h.Set("Accept", joinMediaTypes(mts))
}

// AddAccept is like SetAccept but appends instead of replacing.
func AddAccept(h http.Header, mts []MediaType) {
	h.Add("Accept", joinMediaTypes(mts))
}

func joinMediaTypes(mts []MediaType) string {
	parts := make([]string, len(mts))
	for i := range mts {
		parts[i] = mts[i].String()
	}
	return strings.Join(parts, ", ")
}
