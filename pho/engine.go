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

// Outcome reports what a key did to a syllable in progress. The
// dispatcher (hime.Context) turns this into its own Result type and
// drives the candidate model; pho stays free of any dependency on it.
type Outcome int

const (
	// OutcomeIgnored: the key has no meaning for this engine.
	OutcomeIgnored Outcome = iota
	// OutcomeAbsorbed: Backspace cleared one slot of the syllable;
	// the caller re-reads Preedit for the shortened display.
	OutcomeAbsorbed
	// OutcomePreedit: the syllable display changed.
	OutcomePreedit
	// OutcomeFinalized: a tone completed the syllable; call PhoKey and
	// look it up in the Table to publish candidates.
	OutcomeFinalized
	// OutcomeCleared: Escape discarded the syllable.
	OutcomeCleared
)

// Feed applies one typed rune to the syllable state per §4.3's
// algorithm and reports what happened. Backspace and Escape are
// signalled through isBackspace/isEscape since pho has no Keycode of
// its own; ch is ignored when either is set.
func Feed(s *State, layout Layout, ch rune, isSpace, isBackspace, isEscape bool) Outcome {
	switch {
	case isEscape:
		if s.Empty() {
			return OutcomeIgnored
		}
		s.Reset()
		return OutcomeCleared
	case isBackspace:
		if s.Backspace() {
			return OutcomeAbsorbed
		}
		return OutcomeIgnored
	case isSpace:
		// Tone-on-Space nuance (§4.3): no syllable buffered means the
		// frontend should insert a literal space instead.
		if s.Empty() {
			return OutcomeIgnored
		}
		if s.AssignTone(1) {
			return OutcomeFinalized
		}
		return OutcomeIgnored
	}

	sym, tone, ok := Lookup(layout, ch)
	if !ok {
		return OutcomeIgnored
	}
	if tone != 0 {
		if s.AssignTone(tone) {
			return OutcomeFinalized
		}
		return OutcomeIgnored
	}
	if s.AssignSymbol(sym) {
		return OutcomePreedit
	}
	return OutcomeIgnored
}
