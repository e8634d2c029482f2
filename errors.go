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
	"errors"
	"fmt"
)

// Static errors for media-type operations.
var (
	ErrInvalidMediaType    = errors.New("invalid media type")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidQuotedString = errors.New("invalid quoted string")
	ErrInvalidQuality      = errors.New("invalid quality value")
	ErrQualityOutOfRange   = errors.New("quality out of range [0, 1]")
)

// ParseError reports a malformed media-type value with positional context.
//
// Use [errors.As] to check for ParseError:
//
//	var parseErr *mediatype.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("bad input at offset %d: %s\n", parseErr.Offset, parseErr.Reason)
//	}
//
// Every ParseError wraps one of the package's static errors, so
// errors.Is(err, mediatype.ErrInvalidMediaType) and similar checks work
// through it.
type ParseError struct {
	Input  string // The raw text that failed to parse
	Offset int    // Byte offset at which parsing failed
	Reason string // Human-readable reason for failure
	Err    error  // Wrapped static error
}

// Error returns a formatted error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing media type %q: %s at offset %d", e.Input, e.Reason, e.Offset)
}

// Unwrap returns the underlying static error for errors.Is/As compatibility.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseErr builds a ParseError for input s at offset i.
func parseErr(s string, i int, reason string, sentinel error) error {
	return &ParseError{Input: s, Offset: i, Reason: reason, Err: sentinel}
}
