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
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Encoding resolves the charset parameter to a text encoding via the IANA
// character-set registry. ok is false when no charset parameter exists or
// the registry does not know the name. Quoted charset values are unquoted
// before lookup.
func (mt MediaType) Encoding() (enc encoding.Encoding, ok bool) {
	cs, ok := mt.Charset()
	if !ok {
		return nil, false
	}
	enc, err := ianaindex.IANA.Encoding(unquote(cs))
	if err != nil || enc == nil {
		return nil, false
	}
	return enc, true
}
