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

package intcode

import "testing"

func TestFeedAccumulatesFourDigitsThenCommits(t *testing.T) {
	s := &State{Mode: ModeUnicode}
	for _, ch := range "4e0" {
		outcome, text := Feed(s, ch, false, false)
		if outcome != OutcomePreedit || text != "" {
			t.Fatalf("digit %q -> (%v, %q), want (Preedit, \"\")", ch, outcome, text)
		}
	}
	outcome, text := Feed(s, '0', false, false)
	if outcome != OutcomeCommitted {
		t.Fatalf("4th digit -> %v, want OutcomeCommitted", outcome)
	}
	if text != "一" {
		t.Fatalf("decoded text = %q, want 一 (U+4E00)", text)
	}
	if s.Buffer() != "" {
		t.Fatal("buffer should reset after a successful commit")
	}
}

func TestFeedRejectsNonHexDigit(t *testing.T) {
	var s State
	outcome, _ := Feed(&s, 'z', false, false)
	if outcome != OutcomeIgnored {
		t.Fatalf("'z' -> %v, want OutcomeIgnored", outcome)
	}
}

func TestFeedBackspaceRemovesLastDigit(t *testing.T) {
	var s State
	Feed(&s, '4', false, false)
	Feed(&s, 'e', false, false)
	outcome, _ := Feed(&s, 0, true, false)
	if outcome != OutcomeAbsorbed {
		t.Fatalf("Backspace -> %v, want OutcomeAbsorbed", outcome)
	}
	if s.Buffer() != "4" {
		t.Fatalf("buffer after backspace = %q, want \"4\"", s.Buffer())
	}
}

func TestFeedBackspaceOnEmptyIsIgnored(t *testing.T) {
	var s State
	outcome, _ := Feed(&s, 0, true, false)
	if outcome != OutcomeIgnored {
		t.Fatalf("Backspace on empty -> %v, want OutcomeIgnored", outcome)
	}
}

func TestFeedEscapeClearsBuffer(t *testing.T) {
	var s State
	Feed(&s, '4', false, false)
	outcome, _ := Feed(&s, 0, false, true)
	if outcome != OutcomeAbsorbed {
		t.Fatalf("Escape -> %v, want OutcomeAbsorbed", outcome)
	}
	if s.Buffer() != "" {
		t.Fatal("buffer should be empty after Escape")
	}
}

func TestFeedRetainsBufferOnDecodeError(t *testing.T) {
	// U+0000 is rejected by decodeUnicode (§4.5 soft input error: buffer
	// retained for correction).
	s := &State{Mode: ModeUnicode}
	for _, ch := range "000" {
		Feed(s, ch, false, false)
	}
	outcome, text := Feed(s, '0', false, false)
	if outcome != OutcomeError {
		t.Fatalf("0000 -> %v, want OutcomeError", outcome)
	}
	if text != "" {
		t.Fatalf("error outcome returned text %q, want empty", text)
	}
	if s.Buffer() != "0000" {
		t.Fatalf("buffer after error = %q, want retained 0000", s.Buffer())
	}
}

func TestFeedStartsFreshAfterErrorInsteadOfOverflowing(t *testing.T) {
	// A rejected 4-digit buffer is retained for correction (§4.5); typing
	// another hex digit without backspacing first must start a new
	// 4-digit buffer, not silently decode a 5-digit value.
	s := &State{Mode: ModeUnicode}
	for _, ch := range "0000" {
		Feed(s, ch, false, false)
	}
	outcome, _ := Feed(s, '4', false, false)
	if outcome != OutcomePreedit {
		t.Fatalf("digit after error -> %v, want OutcomePreedit", outcome)
	}
	if s.Buffer() != "4" {
		t.Fatalf("buffer after restart = %q, want 4", s.Buffer())
	}
}

func TestDecodeUnicodeRejectsSurrogates(t *testing.T) {
	if _, err := Decode(ModeUnicode, "d800"); err == nil {
		t.Fatal("surrogate codepoint should be rejected")
	}
}

func TestDecodeUnicodeAcceptsFFFF(t *testing.T) {
	if _, err := Decode(ModeUnicode, "ffff"); err != nil {
		t.Fatalf("U+FFFF should decode fine, got %v", err)
	}
}

func TestDecodeBig5KnownCodepoint(t *testing.T) {
	text, err := Decode(ModeBig5, "a440")
	if err != nil {
		t.Fatalf("Decode(Big5, a440): %v", err)
	}
	if text != "一" {
		t.Fatalf("Big5 a440 = %q, want 一", text)
	}
}

func TestDecodeBig5RejectsInvalidLeadByte(t *testing.T) {
	if _, err := Decode(ModeBig5, "0041"); err == nil {
		t.Fatal("Big5 lead byte 0x00 should be rejected")
	}
}

func TestDecodeRejectsNonHex(t *testing.T) {
	if _, err := Decode(ModeUnicode, "zzzz"); err == nil {
		t.Fatal("non-hex input should error")
	}
}
