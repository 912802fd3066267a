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

// Package gtab implements the binary GTAB table-based input method
// format (C2, §3, §4.2): header parsing, the variable-bit packed key
// encoding, and exact/prefix/wildcard lookup over the decoded entries.
//
// A Table is immutable once Load returns successfully and is safe to
// share, unsynchronized, across any number of contexts (§5).
package gtab

import (
	"fmt"
)

// SpaceStyle controls what the Space key does while composing (§4.2).
type SpaceStyle int32

const (
	// SpaceAutoSelect: Space commits the first candidate immediately.
	SpaceAutoSelect SpaceStyle = iota
	// SpaceOpensWindow: Space only opens/advances the candidate window.
	SpaceOpensWindow
)

// DupSelect controls whether more than PerPage exact matches expose
// paging, or only ever present the first page (§4.2).
type DupSelect int32

const (
	DupSelectPaged DupSelect = iota
	DupSelectFirstOnly
)

// quickKeysSize is the fixed size, in bytes, of the on-disk two-radical
// prefix acceleration block (§3). Tables carry it for compatibility
// with the original format; this implementation skips over the bytes
// without reading them, since the leading-radical index table already
// gives O(log n) range lookup.
const quickKeysSize = 86480

// headerTailSize is the size, in bytes, of the block following
// QUICK_KEYS whose byte 99 carries keybits (§3).
const headerTailSize = 128

// keybitsOffset is the offset of the keybits field within headerTail.
const keybitsOffset = 99

// header is the fixed-layout portion of a GTAB file (§4.2), in the
// order spec.md lists the fields. The original implementation packs
// a quirkier legacy header at a fixed 64-byte offset for QUICK_KEYS;
// this implementation instead computes every offset from the struct
// layout below (decode.go's Load validates the computed layout against
// the file size), which keeps the loader self-consistent without
// depending on an undocumented magic constant (see DESIGN.md).
type header struct {
	Version    int32
	Flag       uint32
	CName      [32]byte
	SelKey     [12]byte
	SpaceStyle int32
	KeyCount   int32
	MaxPress   int32
	DupSel     int32
	DefChars   int32
}

const headerSize = 4 + 4 + 32 + 12 + 4 + 4 + 4 + 4 + 4 // 72

// Entry is one decoded GTAB record: a packed radical key and its
// committable UTF-8 text (up to 4 bytes on disk, §3).
type Entry struct {
	Key  uint64
	Text string
}

// Table is a fully decoded, immutable GTAB table.
type Table struct {
	Name          string
	Filename      string
	KeyCount      int
	MaxKeystrokes int
	DupSel        DupSelect
	SelectionKeys string
	SpaceStyle    SpaceStyle
	Keybits       uint

	// Keymap maps radical index -> ASCII key character, and KeyIndex is
	// its inverse.
	Keymap   []byte
	KeyIndex map[byte]int

	// Entries is sorted by Key ascending, exactly as stored on disk.
	Entries []Entry

	// leadingIndex[i] is the half-open range [start,end) of indices into
	// Entries whose leading radical is i+1, built from the on-disk
	// index table (§3: "index table ... entry offsets by leading
	// radical").
	leadingIndex [][2]int

	key64 bool
}

// Key64 reports whether this table's packed keys need more than 32
// bits (max_press*keybits > 32, §3).
func (t *Table) Key64() bool { return t.key64 }

func bitsFor(n int32) uint {
	var bits uint
	v := n
	for v > 0 {
		bits++
		v >>= 1
	}
	return bits
}

func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func (t *Table) String() string {
	return fmt.Sprintf("gtab.Table{Name:%q, KeyCount:%d, MaxKeystrokes:%d, Entries:%d}",
		t.Name, t.KeyCount, t.MaxKeystrokes, len(t.Entries))
}
