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

// IsSubsetOf reports whether mt is acceptable under the accept-pattern
// set. It answers exactly one question: "is this concrete or offered
// media type covered by what the consumer is willing to accept?"
//
// The relation is deliberately asymmetric. A wildcard on the pattern side
// widens what it accepts; a wildcard on mt's side never satisfies a
// concrete pattern:
//
//	text/plain     ⊆ text/*          // true
//	text/*         ⊆ text/plain      // false
//
// Every pattern parameter except "q" must appear in mt with the same
// value (names and values compare case-insensitively); "q" expresses
// preference weight, not identity. mt may carry parameters the pattern
// does not mention.
//
// Structured-syntax suffixes participate in subtype matching: a pattern
// subtype of the form "*+suffix" accepts any subtype carrying that
// suffix, so application/vnd.api+json ⊆ application/*+json.
func (mt MediaType) IsSubsetOf(set MediaType) bool {
	return mt.matchesType(set) &&
		mt.matchesSubtype(set) &&
		mt.matchesParams(set)
}

func (mt MediaType) matchesType(set MediaType) bool {
	return set.MatchesAllTypes() || strings.EqualFold(mt.typ, set.typ)
}

func (mt MediaType) matchesSubtype(set MediaType) bool {
	if set.MatchesAllSubtypes() {
		return true
	}
	if strings.EqualFold(mt.subtype, set.subtype) {
		return true
	}
	if suffix := set.Suffix(); suffix != "" && set.SubtypeWithoutSuffix() == "*" {
		return strings.EqualFold(mt.Suffix(), suffix)
	}
	return false
}

func (mt MediaType) matchesParams(set MediaType) bool {
	for i := range set.params {
		if strings.EqualFold(set.params[i].Name, "q") {
			continue
		}
		if !containsParam(mt.params, set.params[i]) {
			return false
		}
	}
	return true
}
