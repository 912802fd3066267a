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
	"strings"

	"github.com/oouyang/hime-sub002/candidate"
	"github.com/oouyang/hime-sub002/gtab"
	"github.com/oouyang/hime-sub002/intcode"
	"github.com/oouyang/hime-sub002/pho"
)

// ProcessKey feeds one keystroke to the context and returns what
// happened (§4.1). It never fails: an internal engine error resets
// that engine's substate and is reported as IGNORED (§4.9).
func (c *Context) ProcessKey(code Keycode, ch rune, mods Modifier) Result {
	if c == nil {
		return IGNORED
	}
	k := key{code: code, ch: ch, mods: mods}

	if code == KeyShift && mods == 0 {
		return c.toggleModeKey()
	}

	if !c.chineseMod {
		return IGNORED
	}

	// In TSIN, a phrase match can stay on screen while the next syllable
	// is composed on top of it (§4.4: TSIN keeps buffering while a match
	// is displayed), unlike PHO/GTAB where candidates and the pending
	// syllable are the same thing. feedTsin resets phoState on every
	// finalize, so phoState.Empty() tells TSIN apart from "still typing
	// the next syllable" — without this, Space finalizing that syllable
	// would be swallowed as a select of the stale candidate window.
	candidateWindowActive := c.cand.HasCandidates()
	if c.method == MethodTsin {
		candidateWindowActive = candidateWindowActive && c.phoState.Empty()
	}
	if candidateWindowActive {
		if r, handled := c.feedCandidateWindow(k); handled {
			return r
		}
	}

	if c.smartPunctuation && c.mode() == ModeIdle && k.isPrintable() {
		if r, handled := c.feedSmartPunctuation(k.ch); handled {
			return r
		}
	}

	return c.feedEngine(k)
}

// toggleModeKey implements the mode-toggle shortcut (§4.1 step 2):
// any pending preedit is committed as-is before the mode flips.
func (c *Context) toggleModeKey() Result {
	c.chineseMod = !c.chineseMod
	c.notify(FeedbackModeChange)
	if c.preedit != "" {
		c.commit = c.preedit
		c.setPreedit("")
		return COMMIT
	}
	return PREEDIT
}

// feedCandidateWindow routes digit selection, paging and Space to the
// candidate model (§4.1 step 4, §4.6).
func (c *Context) feedCandidateWindow(k key) (Result, bool) {
	switch k.code {
	case KeyPageUp:
		c.cand.PageUp()
		return PREEDIT, true
	case KeyPageDown:
		c.cand.PageDown()
		return PREEDIT, true
	case KeyEscape:
		c.cand.Clear()
		c.clearEngineSubstate()
		c.setPreedit("")
		return PREEDIT, true
	case KeySpace:
		if c.method == MethodGtab && c.gtabTable != nil && c.gtabTable.SpaceStyle == gtab.SpaceOpensWindow {
			// SpaceOpensWindow: Space just (re)confirms the window is
			// open; the window is already open, so this is a no-op.
			return ABSORBED, true
		}
		// Space picks the first slot on the *current* page, not the
		// globally-first candidate (§4.6), matching IndexForKey's
		// page-aware digit-selection formula just below.
		return c.selectByIndex(c.cand.Page()*c.cand.PerPage()), true
	}
	if k.isPrintable() {
		if idx := c.cand.IndexForKey(k.ch); idx >= 0 {
			return c.selectByIndex(idx), true
		}
	}
	return IGNORED, false
}

// selectByIndex implements select_candidate (§4.1 "select_candidate",
// §4.6 "Selection"). Out-of-range indexes leave everything unchanged
// (B2).
func (c *Context) selectByIndex(idx int) Result {
	if c.method == MethodTsin {
		return c.selectTsinMatch(idx)
	}
	entry, ok := c.cand.At(idx)
	if !ok {
		return IGNORED
	}
	c.notify(FeedbackCandidate)
	text := c.convertOutput(entry.Text)
	c.commit = text
	c.cand.Clear()
	c.clearEngineSubstate()
	c.setPreedit("")
	return COMMIT
}

// selectTsinMatch implements §4.4's phrase selection: "selecting a
// candidate commits the matched prefix and advances the cursor;
// buffered tail remains for further lookup". A commit is produced
// immediately; if syllables remain in the buffer, they're requeried
// into a fresh candidate list instead of clearing engine substate.
func (c *Context) selectTsinMatch(idx int) Result {
	if idx < 0 || idx >= len(c.tsinMatches) {
		return IGNORED
	}
	c.notify(FeedbackCandidate)
	matched := c.tsinMatches[idx]
	text := c.tsinBuffer.Select(matched)
	c.commit = c.convertOutput(text)
	c.tsinSpellings = c.tsinSpellings[matched.Length:]
	if c.tsinBuffer.Empty() {
		c.cand.Clear()
		c.tsinMatches = nil
		c.setPreedit("")
	} else {
		c.refreshTsinCandidates()
		c.setPreedit(c.tsinPreeditPrefix())
	}
	return COMMIT
}

func (c *Context) clearEngineSubstate() {
	c.phoState.Reset()
	c.tsinBuffer.Reset()
	c.tsinMatches = nil
	c.tsinSpellings = nil
	c.gtabAccum = nil
}

// feedSmartPunctuation implements step 7: interception when the
// active engine is idle and the key is a mapped ASCII punctuation
// (§4.8).
func (c *Context) feedSmartPunctuation(ch rune) (Result, bool) {
	mapped, ok := c.punct.Punctuate(ch)
	if !ok {
		return IGNORED, false
	}
	c.commit = string(mapped)
	return COMMIT, true
}

// feedEngine routes to the active method's state machine (§4.1 step 5).
func (c *Context) feedEngine(k key) Result {
	switch c.method {
	case MethodPho:
		return c.feedPho(k)
	case MethodTsin:
		return c.feedTsin(k)
	case MethodGtab:
		return c.feedGtab(k)
	case MethodIntcode:
		return c.feedIntcode(k)
	default:
		return IGNORED
	}
}

func (c *Context) feedPho(k key) Result {
	isSpace := k.code == KeySpace
	isBackspace := k.code == KeyBackspace
	isEscape := k.code == KeyEscape
	ch := k.ch
	if !k.isPrintable() && !isSpace && !isBackspace && !isEscape {
		return IGNORED
	}

	outcome := pho.Feed(&c.phoState, pho.Layout(c.layout), ch, isSpace, isBackspace, isEscape)
	switch outcome {
	case pho.OutcomeIgnored:
		return IGNORED
	case pho.OutcomeAbsorbed:
		c.setPreedit(c.phoState.Preedit())
		c.notify(FeedbackDelete)
		return ABSORBED
	case pho.OutcomePreedit:
		c.setPreedit(c.phoState.Preedit())
		c.notify(FeedbackKeyPress)
		return PREEDIT
	case pho.OutcomeCleared:
		c.setPreedit("")
		return ABSORBED
	case pho.OutcomeFinalized:
		phokey := c.phoState.PhoKey()
		words := c.lib.PhoTable().Lookup(phokey)
		spelling := c.phoState.Preedit()
		entries := make([]candidate.Entry, len(words))
		for i, w := range words {
			entries[i] = candidate.Entry{Text: w}
			if c.pinyinAnnotation {
				entries[i].Annotation = spelling
			}
		}
		c.cand.Set(entries)
		c.setPreedit(spelling)
		c.notify(FeedbackSpace)
		return PREEDIT
	}
	return IGNORED
}

func (c *Context) feedTsin(k key) Result {
	if k.code == KeyEnter {
		if c.tsinBuffer.Empty() {
			return IGNORED
		}
		text := c.tsinBuffer.Enter(c.lib.TsinDatabase())
		c.commit = c.convertOutput(text)
		c.cand.Clear()
		c.tsinMatches = nil
		c.tsinSpellings = nil
		c.setPreedit("")
		return COMMIT
	}
	// Everything else composes via the phonetic engine; a finalized
	// syllable is appended to the phrase buffer instead of published
	// directly as PHO candidates.
	isSpace := k.code == KeySpace
	isBackspace := k.code == KeyBackspace
	isEscape := k.code == KeyEscape
	if !k.isPrintable() && !isSpace && !isBackspace && !isEscape {
		return IGNORED
	}
	outcome := pho.Feed(&c.phoState, pho.Layout(c.layout), k.ch, isSpace, isBackspace, isEscape)
	switch outcome {
	case pho.OutcomeIgnored:
		return IGNORED
	case pho.OutcomeAbsorbed:
		c.setPreedit(c.tsinPreeditPrefix() + c.phoState.Preedit())
		return ABSORBED
	case pho.OutcomePreedit:
		c.setPreedit(c.tsinPreeditPrefix() + c.phoState.Preedit())
		return PREEDIT
	case pho.OutcomeCleared:
		c.setPreedit(c.tsinPreeditPrefix())
		return ABSORBED
	case pho.OutcomeFinalized:
		c.tsinSpellings = append(c.tsinSpellings, c.phoState.Preedit())
		c.tsinBuffer.AddSyllable(c.phoState.PhoKey())
		c.phoState.Reset()
		c.refreshTsinCandidates()
		c.setPreedit(c.tsinPreeditPrefix())
		return PREEDIT
	}
	return IGNORED
}

// refreshTsinCandidates requeries the phrase database at the buffer's
// current cursor and keeps tsinMatches aligned 1:1 with c.cand's
// entries so selectByIndex can recover each entry's syllable span.
func (c *Context) refreshTsinCandidates() {
	c.tsinMatches = c.tsinBuffer.Matches(c.lib.TsinDatabase())
	entries := make([]candidate.Entry, len(c.tsinMatches))
	for i, m := range c.tsinMatches {
		entries[i] = candidate.Entry{Text: m.Phrase.Text}
	}
	c.cand.Set(entries)
}

// tsinPreeditPrefix renders the already-finalized, not-yet-selected
// portion of the phrase buffer: every buffered syllable's spelling
// that a prior selection hasn't already committed. The current
// syllable being composed is appended by the caller from c.phoState.
func (c *Context) tsinPreeditPrefix() string {
	return strings.Join(c.tsinSpellings, "")
}

func (c *Context) feedGtab(k key) Result {
	if c.gtabTable == nil {
		return IGNORED
	}
	switch {
	case k.code == KeyEscape:
		if c.gtabAccum == nil {
			return IGNORED
		}
		c.gtabAccum = nil
		c.cand.Clear()
		c.setPreedit("")
		return PREEDIT
	case k.code == KeyBackspace:
		if len(c.gtabAccum) == 0 {
			return IGNORED
		}
		c.gtabAccum = c.gtabAccum[:len(c.gtabAccum)-1]
		c.refreshGtabCandidates()
		return ABSORBED
	}
	if !k.isPrintable() {
		return IGNORED
	}
	radical, ok := c.gtabTable.RadicalIndex(byte(k.ch))
	if !ok || len(c.gtabAccum) >= c.gtabTable.MaxKeystrokes {
		return IGNORED
	}
	c.gtabAccum = append(c.gtabAccum, radical)
	c.refreshGtabCandidates()
	return PREEDIT
}

func (c *Context) refreshGtabCandidates() {
	matches := c.gtabTable.Search(c.gtabAccum)
	// §4.2 step 5: a DupSelectFirstOnly table never exposes paging over
	// its own match list, however many exact matches there are.
	if c.gtabTable.DupSel == gtab.DupSelectFirstOnly && len(matches) > c.cand.PerPage() {
		matches = matches[:c.cand.PerPage()]
	}
	entries := make([]candidate.Entry, len(matches))
	for i, m := range matches {
		entries[i] = candidate.Entry{Text: m.Entry.Text}
	}
	c.cand.Set(entries)
	var b strings.Builder
	for _, r := range c.gtabAccum {
		// Keymap[i] is the key character for radical number i+1
		// (gtab/decode.go), so this is a direct index, not a search.
		b.WriteByte(c.gtabTable.Keymap[r-1])
	}
	c.setPreedit(b.String())
}

func (c *Context) feedIntcode(k key) Result {
	isBackspace := k.code == KeyBackspace
	isEscape := k.code == KeyEscape
	if !k.isPrintable() && !isBackspace && !isEscape {
		return IGNORED
	}
	outcome, text := intcode.Feed(&c.intState, k.ch, isBackspace, isEscape)
	switch outcome {
	case intcode.OutcomeIgnored:
		return IGNORED
	case intcode.OutcomeAbsorbed:
		c.setPreedit(c.intState.Buffer())
		return ABSORBED
	case intcode.OutcomePreedit:
		c.setPreedit(c.intState.Buffer())
		return PREEDIT
	case intcode.OutcomeError:
		c.notify(FeedbackError)
		return ABSORBED
	case intcode.OutcomeCommitted:
		c.commit = c.convertOutput(text)
		c.setPreedit("")
		return COMMIT
	}
	return IGNORED
}
