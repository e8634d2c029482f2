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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaType_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "identical",
			a:    "text/plain",
			b:    "text/plain",
			want: true,
		},
		{
			name: "case-insensitive type and subtype",
			a:    "Text/PLAIN",
			b:    "text/plain",
			want: true,
		},
		{
			name: "case-insensitive parameter names and values",
			a:    "text/plain; Charset=UTF-8",
			b:    "text/plain; charset=utf-8",
			want: true,
		},
		{
			name: "parameter order is irrelevant",
			a:    "text/plain; charset=utf-8; foo=bar",
			b:    "text/plain; foo=bar; charset=utf-8",
			want: true,
		},
		{
			name: "different subtype",
			a:    "text/plain",
			b:    "text/html",
			want: false,
		},
		{
			name: "different parameter value",
			a:    "text/plain; charset=utf-8",
			b:    "text/plain; charset=ascii",
			want: false,
		},
		{
			name: "missing parameter",
			a:    "text/plain; charset=utf-8",
			b:    "text/plain",
			want: false,
		},
		{
			name: "quoted and unquoted values differ",
			a:    `text/plain; charset="utf-8"`,
			b:    "text/plain; charset=utf-8",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := MustParse(tt.a)
			b := MustParse(tt.b)

			assert.Equal(t, tt.want, a.Equal(b), "Equal")
			assert.Equal(t, tt.want, b.Equal(a), "Equal is symmetric")
			if tt.want {
				assert.Equal(t, a.Hash(), b.Hash(), "equal values must hash identically")
			}
		})
	}
}

func TestMediaType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "normalizes whitespace",
			input: "text/plain ;charset = utf-8;  q =0.8",
			want:  "text/plain; charset=utf-8; q=0.8",
		},
		{
			name:  "keeps quotes and escapes",
			input: `text/plain; note="say \"hi\""`,
			want:  `text/plain; note="say \"hi\""`,
		},
		{
			name:  "bare parameter renders as just the name",
			input: "text/plain;custom; charset=utf-8",
			want:  "text/plain; custom; charset=utf-8",
		},
		{
			name:  "casing is preserved",
			input: "Text/HTML; Charset=UTF-8",
			want:  "Text/HTML; Charset=UTF-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MustParse(tt.input).String())
		})
	}
}

func TestMediaType_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"text/plain",
		"*/*; q=0.8",
		"application/vnd.api+json",
		`text/plain; desc="a,b;c"; charset=utf-8`,
		"text/plain;custom",
		"text/plain; v=1; v=2",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			mt := MustParse(input)
			again, err := Parse(mt.String())
			require.NoError(t, err)

			assert.True(t, again.Equal(mt), "serialize/parse round trip")
			assert.Equal(t, mt.Hash(), again.Hash())
		})
	}
}

func TestMediaType_Charset(t *testing.T) {
	t.Parallel()

	cs, ok := MustParse("text/plain; charset=utf-8").Charset()
	assert.True(t, ok)
	assert.Equal(t, "utf-8", cs)

	// The first charset parameter wins, and quotes are preserved.
	cs, ok = MustParse(`text/plain; CharSet="utf-8"; charset=ascii`).Charset()
	assert.True(t, ok)
	assert.Equal(t, `"utf-8"`, cs)

	_, ok = MustParse("text/plain").Charset()
	assert.False(t, ok)
}

func TestMediaType_Quality(t *testing.T) {
	t.Parallel()

	q, ok, err := MustParse("text/plain; q=0.8").Quality()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 0.8, q, 1e-9)

	_, ok, err = MustParse("text/plain").Quality()
	require.NoError(t, err)
	assert.False(t, ok, "no q parameter")

	// Quality is stored as text; malformed text surfaces on read.
	_, ok, err = MustParse(`text/plain; q="not-a-number"`).Quality()
	assert.True(t, ok)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuality)
}

func TestMediaType_Suffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input             string
		wantSuffix        string
		wantWithoutSuffix string
	}{
		{input: "application/vnd.api+json", wantSuffix: "json", wantWithoutSuffix: "vnd.api"},
		{input: "application/ld+json", wantSuffix: "json", wantWithoutSuffix: "ld"},
		{input: "application/a+b+c", wantSuffix: "c", wantWithoutSuffix: "a+b"},
		{input: "application/*+json", wantSuffix: "json", wantWithoutSuffix: "*"},
		{input: "application/json", wantSuffix: "", wantWithoutSuffix: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			mt := MustParse(tt.input)
			assert.Equal(t, tt.wantSuffix, mt.Suffix(), "Suffix")
			assert.Equal(t, tt.wantWithoutSuffix, mt.SubtypeWithoutSuffix(), "SubtypeWithoutSuffix")
		})
	}
}

func TestMediaType_Wildcards(t *testing.T) {
	t.Parallel()

	all := MustParse("*/*")
	assert.True(t, all.MatchesAllTypes())
	assert.True(t, all.MatchesAllSubtypes())

	sub := MustParse("text/*")
	assert.False(t, sub.MatchesAllTypes())
	assert.True(t, sub.MatchesAllSubtypes())

	concrete := MustParse("text/plain")
	assert.False(t, concrete.MatchesAllTypes())
	assert.False(t, concrete.MatchesAllSubtypes())
}

func TestMediaType_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, MediaType{}.IsZero())
	assert.False(t, MustParse("text/plain").IsZero())
}

func TestMediaType_ParamsIsACopy(t *testing.T) {
	t.Parallel()

	mt := MustParse("text/plain; charset=utf-8")
	params := mt.Params()
	params[0].Value = "mutated"

	cs, ok := mt.Charset()
	require.True(t, ok)
	assert.Equal(t, "utf-8", cs, "mutating the returned slice must not affect the value")
}

func TestMediaType_TextMarshaling(t *testing.T) {
	t.Parallel()

	mt := MustParse("application/json; charset=utf-8")
	data, err := mt.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "application/json; charset=utf-8", string(data))

	var decoded MediaType
	require.NoError(t, decoded.UnmarshalText(data))
	assert.True(t, decoded.Equal(mt))

	assert.Error(t, decoded.UnmarshalText([]byte("bogus")))
}

func TestNew(t *testing.T) {
	t.Parallel()

	mt, err := New("text", "plain")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", mt.String())

	_, err = New("text/html", "plain")
	require.Error(t, err, "type must be a single token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = New("text", "")
	require.Error(t, err)
}

func TestMediaType_Encoding(t *testing.T) {
	t.Parallel()

	enc, ok := MustParse("text/plain; charset=utf-8").Encoding()
	assert.True(t, ok)
	assert.NotNil(t, enc)

	enc, ok = MustParse(`text/plain; charset="iso-8859-1"`).Encoding()
	assert.True(t, ok, "quoted charsets are unquoted before lookup")
	assert.NotNil(t, enc)

	_, ok = MustParse("text/plain").Encoding()
	assert.False(t, ok, "no charset parameter")

	_, ok = MustParse("text/plain; charset=no-such-charset").Encoding()
	assert.False(t, ok, "unknown charset name")
}
