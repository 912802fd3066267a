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

package candidate

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func entries(n int) []Entry {
	e := make([]Entry, n)
	for i := range e {
		e[i] = Entry{Text: string(rune('A' + i))}
	}
	return e
}

func TestDefaults(t *testing.T) {
	m := New()
	if m.PerPage() != 10 {
		t.Fatalf("default per_page = %d, want 10", m.PerPage())
	}
	if m.SelectionKeys() != "1234567890" {
		t.Fatalf("default selection keys = %q", m.SelectionKeys())
	}
	if m.HasCandidates() {
		t.Fatal("empty model reports HasCandidates")
	}
}

func TestSetPerPageClamps(t *testing.T) {
	m := New()
	cases := map[int]int{-5: 1, 0: 1, 1: 1, 10: 10, 11: 10, 999: 10}
	for in, want := range cases {
		m.SetPerPage(in)
		if got := m.PerPage(); got != want {
			t.Errorf("SetPerPage(%d) -> %d, want %d", in, got, want)
		}
	}
}

func TestPagingNeverOutOfRange(t *testing.T) {
	m := New()
	m.SetPerPage(3)
	m.Set(entries(10)) // 4 pages: 0..3

	// drive page down past the end
	for i := 0; i < 20; i++ {
		m.PageDown()
		if p := m.Page(); p < 0 || p > 3 {
			t.Fatalf("page out of range after PageDown: %d\n%s", p, spew.Sdump(m))
		}
	}
	for i := 0; i < 20; i++ {
		m.PageUp()
		if p := m.Page(); p < 0 || p > 3 {
			t.Fatalf("page out of range after PageUp: %d", p)
		}
	}
}

func TestPageDownReportsChange(t *testing.T) {
	m := New()
	m.SetPerPage(2)
	m.Set(entries(3)) // pages: [A B] [C]
	if !m.PageDown() {
		t.Fatal("expected PageDown to change page")
	}
	if m.PageDown() {
		t.Fatal("expected PageDown at last page to report no change")
	}
	if !m.PageUp() {
		t.Fatal("expected PageUp to change page")
	}
	if m.PageUp() {
		t.Fatal("expected PageUp at first page to report no change")
	}
}

func TestIndexForKeyOutOfRangeSlotIsMinusOne(t *testing.T) {
	m := New()
	m.SetPerPage(3)
	m.Set(entries(2)) // only slots 0,1 filled on page 0
	if idx := m.IndexForKey('1'); idx != 0 {
		t.Fatalf("IndexForKey('1') = %d, want 0", idx)
	}
	if idx := m.IndexForKey('3'); idx != -1 {
		t.Fatalf("IndexForKey('3') = %d, want -1 (unfilled slot)", idx)
	}
	if idx := m.IndexForKey('x'); idx != -1 {
		t.Fatalf("IndexForKey('x') = %d, want -1 (not a selection key)", idx)
	}
}

func TestSetSelectionKeysShrinksPerPage(t *testing.T) {
	m := New()
	m.SetSelectionKeys("abc")
	if m.PerPage() != 3 {
		t.Fatalf("PerPage() = %d, want 3 after 3-key selection string", m.PerPage())
	}
}

func TestAtBoundsChecked(t *testing.T) {
	m := New()
	m.Set(entries(2))
	if _, ok := m.At(-1); ok {
		t.Fatal("At(-1) should fail")
	}
	if _, ok := m.At(2); ok {
		t.Fatal("At(2) should fail for a 2-entry model")
	}
	if e, ok := m.At(1); !ok || e.Text != "B" {
		t.Fatalf("At(1) = %+v, %v", e, ok)
	}
}
