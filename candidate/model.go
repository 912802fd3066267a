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

// Package candidate implements the ranked candidate list and paging
// state shared by every input method (C6, §4.6). It is a pure view
// over whatever order an engine emits: paging never reorders, and
// selection is the only operation that turns a candidate into commit
// text.
package candidate

import "github.com/mattn/go-runewidth"

// Max is the hard cap on the number of candidates a Model holds (§3).
const Max = 100

// Entry is one ranked candidate: its committable text and an optional
// annotation (e.g. pinyin romanization or a GTAB key-sequence hint).
type Entry struct {
	Text       string
	Annotation string
}

// Model holds an ordered candidate list plus paging and selection-key
// state for one Context. The zero value is a usable, empty model with
// the documented defaults (§3: per_page=10, selection_keys="1234567890").
type Model struct {
	entries       []Entry
	page          int
	perPage       int
	selectionKeys string
}

// New returns a Model with the documented defaults.
func New() *Model {
	return &Model{
		perPage:       10,
		selectionKeys: "1234567890",
	}
}

// Set replaces the candidate list and resets paging to page 0. Entries
// beyond Max are dropped.
func (m *Model) Set(entries []Entry) {
	if len(entries) > Max {
		entries = entries[:Max]
	}
	m.entries = entries
	m.page = 0
}

// Clear empties the candidate list.
func (m *Model) Clear() {
	m.entries = nil
	m.page = 0
}

// Len returns the number of candidates currently held.
func (m *Model) Len() int { return len(m.entries) }

// HasCandidates reports whether any candidate is present.
func (m *Model) HasCandidates() bool { return len(m.entries) > 0 }

// PerPage returns the configured page size, always in [1,10] (I6).
func (m *Model) PerPage() int {
	if m.perPage <= 0 {
		return 10
	}
	return m.perPage
}

// SetPerPage clamps n into [1,10] (P5) and re-clamps the current page.
func (m *Model) SetPerPage(n int) {
	switch {
	case n <= 0:
		n = 1
	case n > 10:
		n = 10
	}
	m.perPage = n
	m.clampPage()
}

// SelectionKeys returns the characters that pick a candidate by
// position within the current page.
func (m *Model) SelectionKeys() string {
	if m.selectionKeys == "" {
		return "1234567890"
	}
	return m.selectionKeys
}

// SetSelectionKeys installs a new selection-key string. If it is
// shorter than PerPage, PerPage is reduced to match (I6).
func (m *Model) SetSelectionKeys(keys string) {
	if keys == "" {
		keys = "1234567890"
	}
	m.selectionKeys = keys
	if len([]rune(keys)) < m.PerPage() {
		m.perPage = len([]rune(keys))
		if m.perPage <= 0 {
			m.perPage = 1
		}
	}
}

// Page returns the current 0-based page number.
func (m *Model) Page() int { return m.page }

func (m *Model) pageCount() int {
	if len(m.entries) == 0 {
		return 1
	}
	n := (len(m.entries) + m.PerPage() - 1) / m.PerPage()
	if n == 0 {
		n = 1
	}
	return n
}

func (m *Model) clampPage() {
	max := m.pageCount() - 1
	if m.page > max {
		m.page = max
	}
	if m.page < 0 {
		m.page = 0
	}
}

// PageUp moves to the previous page. It reports whether the page
// actually changed (§4.6).
func (m *Model) PageUp() bool {
	if m.page <= 0 {
		return false
	}
	m.page--
	return true
}

// PageDown moves to the next page, reporting whether it changed.
func (m *Model) PageDown() bool {
	if m.page >= m.pageCount()-1 {
		return false
	}
	m.page++
	return true
}

// PageEntries returns the slice of entries visible on the current page.
func (m *Model) PageEntries() []Entry {
	start := m.page * m.PerPage()
	if start >= len(m.entries) {
		return nil
	}
	end := start + m.PerPage()
	if end > len(m.entries) {
		end = len(m.entries)
	}
	return m.entries[start:end]
}

// At returns the candidate at an absolute index across the whole list
// (not just the current page), and whether idx was in range.
func (m *Model) At(idx int) (Entry, bool) {
	if idx < 0 || idx >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[idx], true
}

// IndexForKey maps a selection-key rune typed while on the current
// page to an absolute candidate index, or -1 if the key does not
// correspond to a filled slot on this page.
func (m *Model) IndexForKey(r rune) int {
	keys := []rune(m.SelectionKeys())
	slot := -1
	for i, k := range keys {
		if k == r {
			slot = i
			break
		}
	}
	if slot < 0 || slot >= m.PerPage() {
		return -1
	}
	idx := m.page*m.PerPage() + slot
	if idx >= len(m.entries) {
		return -1
	}
	return idx
}

// ColumnWidths returns the terminal-cell display width of each entry
// on the current page, for frontends that lay out the candidate
// window in fixed columns. This is additive beyond spec.md's operation
// list (SPEC_FULL.md "Supplemented features").
func (m *Model) ColumnWidths() []int {
	page := m.PageEntries()
	widths := make([]int, len(page))
	for i, e := range page {
		widths[i] = runewidth.StringWidth(e.Text)
	}
	return widths
}
