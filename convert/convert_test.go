// Copyright 2026 The HIME Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package convert

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestSimpToTradScenario(t *testing.T) {
	// §8 scenario 5: convert_simp_to_trad("国家", ...) -> "國家".
	if got := SimpToTrad("国家"); got != "國家" {
		t.Fatalf("SimpToTrad(国家) = %q, want 國家", got)
	}
}

func TestRoundtripOnBijectiveSubset(t *testing.T) {
	// P7: TradToSimp(SimpToTrad(x)) is the identity on the mapped subset.
	for s := range simpToTrad {
		trad := SimpToTrad(string(s))
		back := TradToSimp(trad)
		if back != string(s) {
			t.Fatalf("roundtrip %q -> %q -> %q, want %q", s, trad, back, s)
		}
	}
}

func TestUnmappedRunesPassThrough(t *testing.T) {
	if got := SimpToTrad("abc123"); got != "abc123" {
		t.Fatalf("SimpToTrad(abc123) = %q, want unchanged", got)
	}
}

func TestPunctuationPairingTogglesSides(t *testing.T) {
	var p PunctuationState
	r1, ok := p.Punctuate('"')
	if !ok || r1 != '“' {
		t.Fatalf("first '\"' = (%q, %v), want (“, true)", r1, ok)
	}
	r2, ok := p.Punctuate('"')
	if !ok || r2 != '”' {
		t.Fatalf("second '\"' = (%q, %v), want (”, true)", r2, ok)
	}
	r3, ok := p.Punctuate('"')
	if !ok || r3 != '“' {
		t.Fatalf("third '\"' = (%q, %v), want (“, true) again", r3, ok)
	}
}

func TestPunctuationClassesAreIndependent(t *testing.T) {
	var p PunctuationState
	p.Punctuate('"') // advances " to close
	r, ok := p.Punctuate('\'')
	if !ok || r != '‘' {
		t.Fatalf("unrelated class '\\'' = (%q, %v), want (‘, true)", r, ok)
	}
}

func TestUnpairedMarksMapUnconditionally(t *testing.T) {
	for _, ch := range []rune{'.', ',', '!', '?'} {
		var p PunctuationState
		r1, ok1 := p.Punctuate(ch)
		r2, ok2 := p.Punctuate(ch)
		if !ok1 || !ok2 || r1 != r2 {
			t.Fatalf("unpaired %q should map identically every time: %q,%v %q,%v", ch, r1, ok1, r2, ok2)
		}
	}
}

func TestPunctuateUnmappedKeyFails(t *testing.T) {
	var p PunctuationState
	if _, ok := p.Punctuate('x'); ok {
		t.Fatal("'x' has no punctuation mapping")
	}
}

func TestResetReturnsToOpeningSide(t *testing.T) {
	var p PunctuationState
	p.Punctuate('"')
	p.Reset()
	r, _ := p.Punctuate('"')
	if r != '“' {
		t.Fatalf("after Reset, '\"' = %q, want “", r)
	}
}

func TestCharsetRegistryRoundtrip(t *testing.T) {
	RegisterCharset("test-big5-surrogate", charmap.ISO8859_1)
	defer RegisterCharset("test-big5-surrogate", nil)

	out, err := ToCharset("test-big5-surrogate", "cafe")
	if err != nil {
		t.Fatalf("ToCharset: %v", err)
	}
	if out != "cafe" {
		t.Fatalf("ToCharset(ascii subset) = %q, want unchanged", out)
	}
}

func TestToCharsetUnregisteredNameIsIdentity(t *testing.T) {
	out, err := ToCharset("does-not-exist", "hello")
	if err != nil || out != "hello" {
		t.Fatalf("ToCharset(unregistered) = (%q, %v), want (hello, nil)", out, err)
	}
}
