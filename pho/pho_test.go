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

package pho

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestStandardLayoutMaScenario(t *testing.T) {
	var s State
	if got := Feed(&s, LayoutStandard, 'a', false, false, false); got != OutcomePreedit {
		t.Fatalf("'a' -> %v, want OutcomePreedit", got)
	}
	if got := Feed(&s, LayoutStandard, '8', false, false, false); got != OutcomePreedit {
		t.Fatalf("'8' -> %v, want OutcomePreedit", got)
	}
	if s.Preedit() != "ㄇㄚ" {
		t.Fatalf("preedit = %q, want ㄇㄚ", s.Preedit())
	}
	if got := Feed(&s, LayoutStandard, ' ', true, false, false); got != OutcomeFinalized {
		t.Fatalf("Space -> %v, want OutcomeFinalized", got)
	}
	// Space commits tone 1, which carries no mark (§4.3).
	if s.Preedit() != "ㄇㄚ" {
		t.Fatalf("preedit after tone1 = %q, want ㄇㄚ (no mark)", s.Preedit())
	}
}

func TestToneKeysMatchSpecList(t *testing.T) {
	// §8 scenario 1 grounds 'a'=initial, '8'=final, space=tone1; the
	// redesign flags list the remaining tone keys explicitly.
	cases := map[rune]int{'6': 2, '3': 3, '4': 4, '7': 5}
	for key, tone := range cases {
		var s State
		s.AssignSymbol('ㄇ')
		if got := Feed(&s, LayoutStandard, key, false, false, false); got != OutcomeFinalized {
			t.Fatalf("key %q -> %v, want OutcomeFinalized", key, got)
		}
		if s.PhoKey()&0x7 != uint16(tone) {
			t.Fatalf("key %q assigned tone %d, want %d", key, s.PhoKey()&0x7, tone)
		}
	}
}

func TestSpaceWithEmptySyllableIgnored(t *testing.T) {
	// B3: Space with empty syllable in PHO returns IGNORED.
	var s State
	if got := Feed(&s, LayoutStandard, ' ', true, false, false); got != OutcomeIgnored {
		t.Fatalf("Space on empty syllable -> %v, want OutcomeIgnored", got)
	}
}

func TestEscapeClearsNonEmptySyllable(t *testing.T) {
	var s State
	Feed(&s, LayoutStandard, 'j', false, false, false)
	if s.Empty() {
		t.Fatal("syllable should be non-empty after 'j'")
	}
	if got := Feed(&s, LayoutStandard, 0, false, false, true); got != OutcomeCleared {
		t.Fatalf("Escape -> %v, want OutcomeCleared", got)
	}
	if !s.Empty() {
		t.Fatal("syllable should be empty after Escape")
	}
}

func TestEscapeOnEmptySyllableIgnored(t *testing.T) {
	var s State
	if got := Feed(&s, LayoutStandard, 0, false, false, true); got != OutcomeIgnored {
		t.Fatalf("Escape on empty syllable -> %v, want OutcomeIgnored", got)
	}
}

func TestBackspaceOrderToneFinalMedialInitial(t *testing.T) {
	var s State
	s.AssignSymbol('ㄐ')
	s.AssignSymbol('ㄧ')
	s.AssignSymbol('ㄚ')
	s.AssignTone(2)

	order := []struct {
		field *int
	}{{&s.tone}, {&s.final}, {&s.medial}, {&s.initial}}
	for i, want := range order {
		if !s.Backspace() {
			t.Fatalf("Backspace #%d reported nothing cleared", i)
		}
		if *want.field != 0 {
			t.Fatalf("Backspace #%d did not clear the expected slot", i)
		}
	}
	if !s.Empty() {
		t.Fatal("syllable should be empty after 4 backspaces")
	}
	if s.Backspace() {
		t.Fatal("Backspace on empty syllable should report false")
	}
}

func TestAssignSymbolReplacesSameSlot(t *testing.T) {
	var s State
	s.AssignSymbol('ㄅ')
	s.AssignSymbol('ㄆ')
	if s.Preedit() != "ㄆ" {
		t.Fatalf("preedit = %q, want ㄆ (second initial replaces first)", s.Preedit())
	}
}

func TestAssignToneRequiresNonEmptySyllable(t *testing.T) {
	var s State
	if s.AssignTone(2) {
		t.Fatal("AssignTone should fail on an empty syllable")
	}
}

func TestPhoKeyRoundtripsThroughSlots(t *testing.T) {
	var s State
	s.AssignSymbol('ㄇ')
	s.AssignSymbol('ㄚ')
	s.AssignTone(1)
	key := s.PhoKey()

	var decoded State
	decoded.initial = int((key >> 11) & 0x1F)
	decoded.medial = int((key >> 9) & 0x3)
	decoded.final = int((key >> 5) & 0xF)
	decoded.tone = int(key & 0x7)
	if decoded.Preedit() != s.Preedit() {
		t.Fatalf("decoded preedit %q != original %q", decoded.Preedit(), s.Preedit())
	}
}

func buildPhoTable(t *testing.T, phokey uint16, words []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, phokey)
	binary.Write(&buf, binary.LittleEndian, uint16(len(words)))
	for _, w := range words {
		buf.WriteByte(byte(len(w)))
		buf.WriteString(w)
	}
	return buf.Bytes()
}

func TestTableLoadAndLookup(t *testing.T) {
	var s State
	s.AssignSymbol('ㄇ')
	s.AssignSymbol('ㄚ')
	s.AssignTone(1)
	data := buildPhoTable(t, s.PhoKey(), []string{"媽", "麻"})

	tbl, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := tbl.Lookup(s.PhoKey())
	if len(got) != 2 || got[0] != "媽" || got[1] != "麻" {
		t.Fatalf("Lookup = %v, want [媽 麻]", got)
	}
	if got := tbl.Lookup(0xFFFF); got != nil {
		t.Fatalf("Lookup of missing key = %v, want nil", got)
	}
}

func TestTableLoadRejectsTruncated(t *testing.T) {
	data := buildPhoTable(t, 1, []string{"x"})
	if _, err := Load(data[:len(data)-1]); err == nil {
		t.Fatal("Load should reject a truncated table")
	}
}

func TestNilTableLookupIsSafe(t *testing.T) {
	var tbl *Table
	if got := tbl.Lookup(1); got != nil {
		t.Fatalf("nil table Lookup = %v, want nil", got)
	}
}

func TestLookupUnknownLayoutFallsBackToStandard(t *testing.T) {
	sym, _, ok := Lookup(Layout(99), 'a')
	if !ok || sym != 'ㄇ' {
		t.Fatalf("Lookup(unknown layout, 'a') = (%q, %v), want (ㄇ, true)", sym, ok)
	}
}

func TestLookupUnmappedKeyFails(t *testing.T) {
	if _, _, ok := Lookup(LayoutStandard, '~'); ok {
		t.Fatal("'~' should have no phonetic meaning")
	}
}
