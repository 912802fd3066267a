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

// This file is the stable external surface every frontend binds to
// (C10, §6): every operation accepts a context handle and tolerates a
// nil one (I5). Go frontends call these methods directly; a cgo
// frontend wraps each one behind a C function with the literal
// signature §6 lists, since the opaque-handle discipline here already
// matches what a C caller expects from *Context.
package hime

import (
	"github.com/oouyang/hime-sub002/candidate"
	"github.com/oouyang/hime-sub002/registry"
)

// SetInputMethod changes the active engine. It returns false for an
// unavailable method (ANTHY/CHEWING stubs, §9) and leaves the context
// unchanged.
func (c *Context) SetInputMethod(m Method) bool {
	if c == nil || !m.IsAvailable() {
		return false
	}
	c.method = m
	c.clearEngineSubstate()
	c.cand.Clear()
	c.setPreedit("")
	return true
}

// GetInputMethod returns the active method, or PHO for a nil context
// (I5: "get_input_method -> PHO").
func (c *Context) GetInputMethod() Method {
	if c == nil {
		return MethodPho
	}
	return c.method
}

// GetMode reports the context's current state machine position (§4.1
// "State machine (mode)").
func (c *Context) GetMode() Mode {
	if c == nil {
		return ModeIdle
	}
	return c.mode()
}

// IsChineseMode reports whether the context is composing Chinese text.
func (c *Context) IsChineseMode() bool {
	if c == nil {
		return false
	}
	return c.chineseMod
}

// SetChineseMode forces the Chinese/English mode.
func (c *Context) SetChineseMode(on bool) {
	if c == nil {
		return
	}
	c.chineseMod = on
}

// ToggleChineseMode flips the mode and returns the new state. Two
// calls restore the prior state (P6).
func (c *Context) ToggleChineseMode() bool {
	if c == nil {
		return false
	}
	c.chineseMod = !c.chineseMod
	return c.chineseMod
}

// GetPreedit returns the current composition display string.
func (c *Context) GetPreedit() string {
	if c == nil {
		return ""
	}
	return c.preedit
}

// GetPreeditCursor returns the display-column offset of the
// composition cursor, for a frontend placing a caret next to the
// preedit text (I3: always <= the preedit string's display width).
func (c *Context) GetPreeditCursor() int {
	if c == nil {
		return 0
	}
	return c.preeditCursor
}

// GetCommit returns the pending commit text.
func (c *Context) GetCommit() string {
	if c == nil {
		return ""
	}
	return c.commit
}

// ClearCommit empties the commit buffer (I1).
func (c *Context) ClearCommit() {
	if c == nil {
		return
	}
	c.commit = ""
}

// HasCandidates reports whether the candidate window has any entries.
func (c *Context) HasCandidates() bool {
	if c == nil {
		return false
	}
	return c.cand.HasCandidates()
}

// GetCandidateCount returns the total candidate count across all pages.
func (c *Context) GetCandidateCount() int {
	if c == nil {
		return 0
	}
	return c.cand.Len()
}

// GetCandidate returns the candidate text at an absolute index, or
// ("", false) if idx is out of range (§6 "-1 if NULL/out-of-range").
func (c *Context) GetCandidate(idx int) (string, bool) {
	if c == nil {
		return "", false
	}
	e, ok := c.cand.At(idx)
	if !ok {
		return "", false
	}
	return e.Text, true
}

// SelectCandidate selects a candidate by absolute index (§4.1
// "select_candidate"). Out-of-range leaves state unchanged (B2).
func (c *Context) SelectCandidate(idx int) Result {
	if c == nil {
		return IGNORED
	}
	return c.selectByIndex(idx)
}

// CandidatePageUp moves to the previous candidate page, reporting
// whether the page changed.
func (c *Context) CandidatePageUp() bool {
	if c == nil {
		return false
	}
	return c.cand.PageUp()
}

// CandidatePageDown moves to the next candidate page, reporting
// whether the page changed.
func (c *Context) CandidatePageDown() bool {
	if c == nil {
		return false
	}
	return c.cand.PageDown()
}

// SetKeyboardLayout changes the PHO key table.
func (c *Context) SetKeyboardLayout(l Layout) bool {
	if c == nil {
		return false
	}
	c.layout = l
	return true
}

// SetKeyboardLayoutByName resolves a layout by its case-insensitive
// name (§6 "set_keyboard_layout_by_name").
func (c *Context) SetKeyboardLayoutByName(name string) bool {
	if c == nil {
		return false
	}
	l, ok := layoutByName(name)
	if !ok {
		return false
	}
	c.layout = l
	return true
}

// SetSelectionKeys installs the candidate selection-key string (I6).
func (c *Context) SetSelectionKeys(keys string) {
	if c == nil {
		return
	}
	c.cand.SetSelectionKeys(keys)
}

// SetCandidatesPerPage clamps n into [1,10] and applies it (P5).
func (c *Context) SetCandidatesPerPage(n int) {
	if c == nil {
		return
	}
	c.cand.SetPerPage(n)
}

// LoadGtabTableByID loads a well-known GTAB table into this context as
// the active GTAB alphabet, switching the active method to GTAB.
func (c *Context) LoadGtabTableByID(id int) bool {
	if c == nil || c.lib == nil {
		return false
	}
	t, err := c.lib.GtabTable(id)
	if err != nil {
		return false
	}
	c.gtabTable = t
	c.method = MethodGtab
	c.clearEngineSubstate()
	c.cand.Clear()
	c.setPreedit("")
	return true
}

// LoadGtabTable loads a GTAB table by data-directory filename.
func (c *Context) LoadGtabTable(filename string) bool {
	if c == nil || c.lib == nil {
		return false
	}
	t, err := c.lib.GtabTableByFilename(filename)
	if err != nil {
		return false
	}
	c.gtabTable = t
	c.method = MethodGtab
	c.clearEngineSubstate()
	c.cand.Clear()
	c.setPreedit("")
	return true
}

// SearchMethods searches the process-wide method/table catalog (C8,
// §4.7). A nil context still searches the built-in catalog (registry
// search has no per-context state).
func (c *Context) SearchMethods(query string, methodType registry.Type, max int) []registry.Result {
	var entries []registry.Entry
	if c != nil {
		entries = c.lib.Entries()
	} else {
		entries = registry.Builtins()
	}
	return registry.Search(entries, registry.Filter{Query: query, Type: methodType}, max)
}

// PageEntries returns the candidates visible on the current page,
// for frontends rendering the candidate window directly.
func (c *Context) PageEntries() []candidate.Entry {
	if c == nil {
		return nil
	}
	return c.cand.PageEntries()
}

// ColumnWidths returns each current-page candidate's terminal-cell
// display width, aligned 1:1 with PageEntries, for frontends laying
// out the candidate window in fixed columns.
func (c *Context) ColumnWidths() []int {
	if c == nil {
		return nil
	}
	return c.cand.ColumnWidths()
}
