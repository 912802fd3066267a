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

package tsin

import "sort"

// Buffer accumulates finalized syllables and tracks how much of it has
// already been committed (§3 "TSIN phrase buffer", §4.4).
type Buffer struct {
	syllables []uint16
	cursor    int
}

// Reset clears the buffer.
func (b *Buffer) Reset() {
	b.syllables = nil
	b.cursor = 0
}

// Empty reports whether there is nothing left to look up.
func (b *Buffer) Empty() bool {
	return b.cursor >= len(b.syllables)
}

// AddSyllable appends a finalized PHO syllable to the buffer.
func (b *Buffer) AddSyllable(phokey uint16) {
	b.syllables = append(b.syllables, phokey)
}

// Match is one ranked phrase candidate spanning `Length` syllables
// starting at the buffer's cursor.
type Match struct {
	Phrase Phrase
	Length int
}

// Matches queries db for every phrase starting at the buffer's cursor,
// ranked by (length, frequency) descending, per §4.4: longer, more
// frequent phrases lead.
func (b *Buffer) Matches(db *Database) []Match {
	if db == nil || b.Empty() {
		return nil
	}
	remaining := b.syllables[b.cursor:]
	var matches []Match
	for n := len(remaining); n >= 1; n-- {
		key := phraseKey(remaining[:n])
		for _, p := range db.phrases[key] {
			matches = append(matches, Match{Phrase: p, Length: n})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Length != matches[j].Length {
			return matches[i].Length > matches[j].Length
		}
		return matches[i].Phrase.Freq > matches[j].Phrase.Freq
	})
	return matches
}

// Select commits a chosen match's text and advances the cursor past
// the syllables it covered; the buffered tail remains for further
// lookup (§4.4).
func (b *Buffer) Select(m Match) string {
	b.cursor += m.Length
	return m.Phrase.Text
}

// Enter commits the single-character default assigned to every
// remaining syllable and clears the buffer (§4.4).
func (b *Buffer) Enter(db *Database) string {
	var out []byte
	for _, k := range b.syllables[b.cursor:] {
		if s, ok := db.Default(k); ok {
			out = append(out, s...)
		}
	}
	b.Reset()
	return string(out)
}
