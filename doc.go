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

// Package mediatype parses, compares, and serializes HTTP media-type header
// values such as "text/plain; charset=utf-8; q=0.8" (RFC 9110 Section 8.3).
//
// The package models a media type as two shapes: [MediaType], an immutable
// value that is safe to share across goroutines, and [Builder], a mutable
// shape used to construct or derive values. Parsing always produces a
// MediaType; a Builder is obtained from [NewBuilder] or
// [MediaType.ToBuilder] and converted back with [Builder.Build].
//
// # Quick Start
//
// Parse a Content-Type value and inspect it:
//
//	mt, err := mediatype.Parse("application/json; charset=utf-8")
//	if err != nil {
//	    // malformed header value
//	}
//	mt.Type()    // "application"
//	mt.Subtype() // "json"
//	cs, _ := mt.Charset() // "utf-8"
//
// Parse an Accept header, which may span several header lines and contain
// several comma-separated values per line:
//
//	ranges, err := mediatype.ParseList(r.Header["Accept"])
//
// # Content Negotiation
//
// [MediaType.IsSubsetOf] is the matching primitive used for content
// negotiation. It reports whether a concrete (or partially wildcarded)
// media type is acceptable under an accept-pattern:
//
//	offer, _ := mediatype.Parse("text/plain; charset=utf-8")
//	accept, _ := mediatype.Parse("text/*")
//	offer.IsSubsetOf(accept) // true
//	accept.IsSubsetOf(offer) // false; the relation is asymmetric
//
// Structured-syntax suffixes are understood, so
// "application/vnd.api+json" is a subset of "application/*+json".
//
// Parameters other than "q" must match for a subset to hold; "q" carries
// preference weight, not identity, and is excluded. Selecting the best
// match among many candidates is left to the caller: this package supplies
// the subset test, equality, and quality accessors that a negotiation
// algorithm composes.
//
// # Building Values
//
// Use a Builder when constructing values programmatically:
//
//	b, _ := mediatype.NewBuilder("text", "html")
//	_ = b.SetCharset("utf-8")
//	_ = b.SetQuality(0.8)
//	mt := b.Build()
//	mt.String() // "text/html; charset=utf-8; q=0.8"
//
// # Grammar
//
// Parsing follows the RFC 9110 field grammar: tokens for type, subtype,
// and parameter names; token or quoted-string parameter values (backslash
// escapes supported, quotes preserved in the stored value); optional
// whitespace around separators, including tolerance for obsolete line
// folding; and comma-aware list splitting in which commas inside quoted
// strings do not separate values. Non-ASCII bytes are rejected everywhere
// except inside quoted strings.
package mediatype
