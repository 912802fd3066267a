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

// pairSide tracks which half of a paired punctuation mark comes next.
type pairSide int

const (
	nextOpen pairSide = iota
	nextClose
)

// pair describes one paired punctuation class: the ASCII trigger and
// the Chinese glyph for each side.
type pair struct {
	open, close rune
}

var pairedMarks = map[rune]pair{
	'"':  {open: '“', close: '”'},
	'\'': {open: '‘', close: '’'},
}

// unpaired maps single-sided ASCII punctuation to its fullwidth
// Chinese equivalent, applied unconditionally (§4.8).
var unpaired = map[rune]rune{
	'.': '。',
	',': '，',
	'!': '！',
	'?': '？',
	':': '：',
	';': '；',
	'(': '（',
	')': '）',
	'[': '［',
	']': '］',
	'{': '｛',
	'}': '｝',
}

// PunctuationState holds the open/close toggle for every paired mark
// class (§3 "Smart-punctuation pairing state"). The zero value starts
// every class at its opening side.
type PunctuationState struct {
	sides map[rune]pairSide
}

// Reset returns every paired class to its opening side, per a
// frontend's reset_punctuation_state on focus change (§9).
func (p *PunctuationState) Reset() {
	p.sides = nil
}

// Punctuate maps one typed ASCII punctuation character to its smart
// Chinese equivalent. ok is false if ch has no punctuation mapping at
// all, in which case the caller should treat the key as unhandled.
func (p *PunctuationState) Punctuate(ch rune) (rune, bool) {
	if pr, ok := pairedMarks[ch]; ok {
		if p.sides == nil {
			p.sides = make(map[rune]pairSide)
		}
		side := p.sides[ch]
		if side == nextOpen {
			p.sides[ch] = nextClose
			return pr.open, true
		}
		p.sides[ch] = nextOpen
		return pr.close, true
	}
	if r, ok := unpaired[ch]; ok {
		return r, true
	}
	return 0, false
}
