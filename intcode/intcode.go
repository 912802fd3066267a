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

// Package intcode implements the hexadecimal codepoint entry engine
// (C5, §4.5): a 4-digit hex accumulator that decodes to either a raw
// Unicode code point or a Big5-encoded character.
package intcode

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
)

// Mode selects how the finished 4-digit buffer is interpreted.
type Mode int

const (
	ModeUnicode Mode = iota
	ModeBig5
)

// State is the hex digit accumulator (§3 "intcode hex buffer and mode").
type State struct {
	Mode   Mode
	digits []rune
}

// Reset clears the buffer without changing Mode.
func (s *State) Reset() {
	s.digits = nil
}

// Buffer returns the digits typed so far, for preedit display.
func (s *State) Buffer() string {
	return string(s.digits)
}

func hexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// Outcome reports what a key did to the accumulator.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeAbsorbed
	OutcomePreedit
	OutcomeCommitted
	OutcomeError
)

// Feed appends one hex digit, decoding and resetting the buffer once
// four digits have been typed (§4.5). isBackspace/isEscape are
// signalled explicitly since this engine has no Keycode of its own.
func Feed(s *State, ch rune, isBackspace, isEscape bool) (Outcome, string) {
	switch {
	case isEscape:
		if len(s.digits) == 0 {
			return OutcomeIgnored, ""
		}
		s.Reset()
		return OutcomeAbsorbed, ""
	case isBackspace:
		if len(s.digits) == 0 {
			return OutcomeIgnored, ""
		}
		s.digits = s.digits[:len(s.digits)-1]
		return OutcomeAbsorbed, ""
	}

	if !hexDigit(ch) {
		return OutcomeIgnored, ""
	}
	if len(s.digits) >= 4 {
		// A prior 4-digit buffer is only ever retained here after
		// OutcomeError (§4.5); typing another digit instead of
		// backspacing means the user is starting over, not extending
		// the rejected codepoint past 4 digits.
		s.digits = nil
	}
	s.digits = append(s.digits, ch)
	if len(s.digits) < 4 {
		return OutcomePreedit, ""
	}

	text, err := Decode(s.Mode, string(s.digits))
	if err != nil {
		// Invalid codepoint or conversion failure: feedback(ERROR),
		// ABSORBED, buffer retained for correction (§4.5).
		return OutcomeError, ""
	}
	s.Reset()
	return OutcomeCommitted, text
}

// Decode interprets a 4-hex-digit string per mode and returns the
// resulting UTF-8 text.
func Decode(mode Mode, hex string) (string, error) {
	var code uint32
	for _, c := range hex {
		code <<= 4
		switch {
		case c >= '0' && c <= '9':
			code |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			code |= uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			code |= uint32(c-'A') + 10
		default:
			return "", errInvalidHex
		}
	}

	switch mode {
	case ModeUnicode:
		return decodeUnicode(code)
	case ModeBig5:
		return decodeBig5(code)
	default:
		return "", errInvalidHex
	}
}

func decodeUnicode(code uint32) (string, error) {
	r := rune(code)
	if r == 0 || r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
		return "", errInvalidCodepoint
	}
	return string(r), nil
}

func decodeBig5(code uint32) (string, error) {
	b := []byte{byte(code >> 8), byte(code)}
	out, err := traditionalchinese.Big5.NewDecoder().Bytes(b)
	// A valid double-byte Big5 character decodes both bytes together
	// into exactly one rune. A lead byte below 0x80 makes the decoder
	// pass each byte through as its own ASCII rune instead of erroring,
	// so two bytes in means two runes out; reject that case too.
	if err != nil || utf8.RuneCountInString(string(out)) != 1 {
		return "", errInvalidCodepoint
	}
	return string(out), nil
}
