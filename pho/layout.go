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

// Package pho implements the phonetic (Bopomofo/Zhuyin) composition
// engine (C3, §4.3): a per-layout key table, a four-slot syllable
// assembler, and lookup against a frequency-ordered phonetic table.
package pho

// Slot names the four ordered positions of a Bopomofo syllable.
type Slot int

const (
	SlotNone Slot = iota
	SlotInitial
	SlotMedial
	SlotFinal
	SlotTone
)

// Layout identifies a keyboard-to-Bopomofo mapping. It mirrors
// hime.Layout's ordinal values but stays free of the root package so
// this engine has no import cycle back to it.
type Layout int

const (
	LayoutStandard Layout = iota
	LayoutHsu
	LayoutEten
	LayoutEten26
	LayoutIBM
	LayoutPinyin
	LayoutDvorak
)

// initials, medials and finals list every Bopomofo symbol in each
// slot, in the canonical order used to derive PhoKey indices: index 0
// is reserved to mean "slot empty", so a symbol's 1-based position in
// these tables is its encoded index.
var initials = []rune{
	'ㄅ', 'ㄆ', 'ㄇ', 'ㄈ', 'ㄉ', 'ㄊ', 'ㄋ', 'ㄌ', 'ㄍ', 'ㄎ',
	'ㄏ', 'ㄐ', 'ㄑ', 'ㄒ', 'ㄓ', 'ㄔ', 'ㄕ', 'ㄖ', 'ㄗ', 'ㄘ', 'ㄙ',
}

var medials = []rune{'ㄧ', 'ㄨ', 'ㄩ'}

var finals = []rune{
	'ㄚ', 'ㄛ', 'ㄜ', 'ㄝ', 'ㄞ', 'ㄟ', 'ㄠ', 'ㄡ', 'ㄢ', 'ㄣ', 'ㄤ', 'ㄥ', 'ㄦ',
}

func indexOf(symbols []rune, r rune) int {
	for i, s := range symbols {
		if s == r {
			return i + 1
		}
	}
	return 0
}

// SlotOf reports which syllable slot a Bopomofo symbol belongs to.
func SlotOf(r rune) (Slot, int) {
	if i := indexOf(initials, r); i != 0 {
		return SlotInitial, i
	}
	if i := indexOf(medials, r); i != 0 {
		return SlotMedial, i
	}
	if i := indexOf(finals, r); i != 0 {
		return SlotFinal, i
	}
	return SlotNone, 0
}

func initialSymbol(i int) rune {
	if i <= 0 || i > len(initials) {
		return 0
	}
	return initials[i-1]
}

func medialSymbol(i int) rune {
	if i <= 0 || i > len(medials) {
		return 0
	}
	return medials[i-1]
}

func finalSymbol(i int) rune {
	if i <= 0 || i > len(finals) {
		return 0
	}
	return finals[i-1]
}

var toneMarks = map[int]rune{
	1: 0, // tone 1 carries no mark
	2: 'ˊ',
	3: 'ˇ',
	4: 'ˋ',
	5: '˙',
}

// keyEntry is one mapping target: either a Bopomofo symbol (sym != 0)
// or a tone number (tone != 0).
type keyEntry struct {
	sym  rune
	tone int
}

// standardTable is the classic Zhuyin "standard" keyboard layout
// (§4.3): number row carries three initials, four finals and the four
// non-default tone keys; qwerty/asdf/zxcv rows carry the rest. This
// grounds the literal scenario in §8 ("keys 'a' '8' ' ' '1'"): 'a' is
// the initial ㄇ and '8' is the final ㄚ, Space commits tone 1.
var standardTable = map[rune]keyEntry{
	'1': {sym: 'ㄅ'}, '2': {sym: 'ㄉ'}, '3': {tone: 3}, '4': {tone: 4},
	'5': {sym: 'ㄓ'}, '6': {tone: 2}, '7': {tone: 5}, '8': {sym: 'ㄚ'},
	'9': {sym: 'ㄞ'}, '0': {sym: 'ㄢ'}, '-': {sym: 'ㄦ'},

	'q': {sym: 'ㄆ'}, 'w': {sym: 'ㄊ'}, 'e': {sym: 'ㄍ'}, 'r': {sym: 'ㄐ'},
	't': {sym: 'ㄔ'}, 'y': {sym: 'ㄗ'}, 'u': {sym: 'ㄧ'}, 'i': {sym: 'ㄛ'},
	'o': {sym: 'ㄟ'}, 'p': {sym: 'ㄣ'},

	'a': {sym: 'ㄇ'}, 's': {sym: 'ㄋ'}, 'd': {sym: 'ㄎ'}, 'f': {sym: 'ㄑ'},
	'g': {sym: 'ㄕ'}, 'h': {sym: 'ㄘ'}, 'j': {sym: 'ㄩ'}, 'k': {sym: 'ㄜ'},
	'l': {sym: 'ㄝ'}, ';': {sym: 'ㄤ'},

	'z': {sym: 'ㄈ'}, 'x': {sym: 'ㄌ'}, 'c': {sym: 'ㄏ'}, 'v': {sym: 'ㄒ'},
	'b': {sym: 'ㄖ'}, 'n': {sym: 'ㄙ'}, 'm': {sym: 'ㄥ'}, ',': {sym: 'ㄨ'},
	'.': {sym: 'ㄡ'}, '/': {sym: 'ㄠ'},
}

// tablesByLayout holds the per-layout key map. Only STANDARD is fully
// populated; the rest alias it until a concrete HSU/ETEN/IBM mapping
// is supplied, matching IsAvailable-style "enumerable but degraded"
// treatment used for the reserved engine slots (§9).
var tablesByLayout = map[Layout]map[rune]keyEntry{
	LayoutStandard: standardTable,
}

// Lookup resolves a typed key character through a layout's key table.
// ok is false if the key has no phonetic meaning in this layout.
func Lookup(layout Layout, ch rune) (sym rune, tone int, ok bool) {
	table, known := tablesByLayout[layout]
	if !known {
		table = standardTable
	}
	e, found := table[ch]
	if !found {
		return 0, 0, false
	}
	return e.sym, e.tone, true
}
