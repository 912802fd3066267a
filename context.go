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

package hime

import (
	"github.com/mattn/go-runewidth"

	"github.com/oouyang/hime-sub002/candidate"
	"github.com/oouyang/hime-sub002/convert"
	"github.com/oouyang/hime-sub002/gtab"
	"github.com/oouyang/hime-sub002/intcode"
	"github.com/oouyang/hime-sub002/pho"
	"github.com/oouyang/hime-sub002/tsin"
)

// Mode is the per-context state machine position (§4.1 "State machine
// (mode)"). It is derived from the engine substate, never stored
// redundantly: ModeIdle iff every engine's substate is empty.
type Mode int

const (
	ModeIdle Mode = iota
	ModeComposing
	ModeChoosing
	ModeEnglish
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeComposing:
		return "Composing"
	case ModeChoosing:
		return "Choosing"
	case ModeEnglish:
		return "English"
	default:
		return "Mode(?)"
	}
}

// Context owns all mutable per-session state (§3). It has exclusive
// ownership of everything it points to; nothing here is shared between
// contexts except the process-wide *Library (tables and registry),
// which is immutable after load (§5).
type Context struct {
	lib *Library

	method     Method
	chineseMod bool
	layout     Layout

	preedit       string
	preeditCursor int
	commit        string

	cand *candidate.Model

	charset          Charset
	outputVariant    OutputVariant
	smartPunctuation bool
	pinyinAnnotation bool
	candidateStyle   string
	colorScheme      ColorScheme
	systemDark       bool
	soundEnabled     bool
	vibrationEnabled bool

	phoState      pho.State
	tsinBuffer    tsin.Buffer
	tsinMatches   []tsin.Match
	tsinSpellings []string
	gtabAccum     []int
	gtabTable     *gtab.Table
	intState      intcode.State

	punct convert.PunctuationState

	feedback FeedbackFunc
}

// NewContext creates an independent context. lib may be nil: a
// context is capable of operation without any tables loaded (§3
// Lifecycles), producing empty preedit and no candidates for methods
// that need data.
func NewContext(lib *Library) *Context {
	return &Context{
		lib:              lib,
		method:           MethodPho,
		chineseMod:       true,
		layout:           LayoutStandard,
		cand:             candidate.New(),
		smartPunctuation: true,
	}
}

// Reset clears all engine substate but preserves configuration (§4.1
// "reset: clears all engine substate; preserves config"). Calling it
// twice is equivalent to calling it once (P9).
func (c *Context) Reset() {
	if c == nil {
		return
	}
	c.setPreedit("")
	c.commit = ""
	c.cand.Clear()
	c.phoState.Reset()
	c.tsinBuffer.Reset()
	c.tsinMatches = nil
	c.tsinSpellings = nil
	c.gtabAccum = nil
	c.intState.Reset()
	c.punct.Reset()
}

// setPreedit replaces the composition string and places the cursor at
// its end (I3), which is where it belongs for every engine in this
// module: none of PHO/TSIN/GTAB/intcode support moving the cursor
// back into an in-progress composition, so new input always extends
// the string at the tail. The cursor is a terminal-cell display
// column rather than a byte offset, since it exists for a frontend to
// place a caret glyph next to the composition, and wide runes (CJK
// text, fullwidth punctuation) occupy two cells.
func (c *Context) setPreedit(s string) {
	c.preedit = s
	c.preeditCursor = runewidth.StringWidth(s)
}

// mode derives the context's current state machine position from its
// engine substate (§4.1). Exposed publicly as GetMode in abi.go.
func (c *Context) mode() Mode {
	if !c.chineseMod {
		return ModeEnglish
	}
	if c.cand.HasCandidates() {
		return ModeChoosing
	}
	if c.preedit != "" || len(c.gtabAccum) > 0 {
		return ModeComposing
	}
	return ModeIdle
}
