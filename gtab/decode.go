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

package gtab

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"
)

// Load decodes a GTAB file already read fully into memory. Filename is
// recorded on the Table for diagnostics and is not otherwise used.
func Load(data []byte, filename string) (*Table, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: file too short for header (%d bytes)", ErrCorrupt, len(data))
	}
	var h header
	r := bytes.NewReader(data[:headerSize])
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if h.KeyCount <= 0 || h.KeyCount > 64 {
		return nil, fmt.Errorf("%w: impossible key_count %d", ErrCorrupt, h.KeyCount)
	}
	if h.MaxPress <= 0 || h.MaxPress > 64 {
		return nil, fmt.Errorf("%w: impossible max_press %d", ErrCorrupt, h.MaxPress)
	}
	if h.DefChars < 0 {
		return nil, fmt.Errorf("%w: negative def_chars %d", ErrCorrupt, h.DefChars)
	}

	off := headerSize + quickKeysSize
	if len(data) < off+headerTailSize {
		return nil, fmt.Errorf("%w: file too short for header tail", ErrCorrupt)
	}
	headerTail := data[off : off+headerTailSize]
	keybits := uint(headerTail[keybitsOffset])
	off += headerTailSize

	// Packed keys store radical numbers 0..KeyCount (0 reserved for
	// "no radical"), so the widest value ever stored is KeyCount
	// itself, not KeyCount+1 distinct values interpreted as a count.
	wantKeybits := bitsFor(h.KeyCount)
	if keybits == 0 {
		keybits = wantKeybits
	} else if keybits != wantKeybits {
		// The file's declared keybits disagrees with what key_count
		// implies. §9's open question says key32 vs key64 variants
		// must be inferred rather than guessed blindly; we trust the
		// explicit on-disk field over our own derivation, but reject
		// values that could not possibly encode key_count+1 symbols.
		if (uint64(1) << keybits) < uint64(h.KeyCount+1) {
			return nil, fmt.Errorf("%w: keybits %d too small for key_count %d", ErrCorrupt, keybits, h.KeyCount)
		}
	}

	keyWidth := uint(h.MaxPress) * keybits
	if keyWidth > 64 {
		return nil, fmt.Errorf("%w: max_press %d * keybits %d = %d bits, too wide to pack", ErrCorrupt, h.MaxPress, keybits, keyWidth)
	}
	key64 := keyWidth > 32
	keyBytes := 4
	if key64 {
		keyBytes = 8
	}

	if len(data) < off+int(h.KeyCount) {
		return nil, fmt.Errorf("%w: file too short for keymap", ErrCorrupt)
	}
	keymap := make([]byte, h.KeyCount)
	copy(keymap, data[off:off+int(h.KeyCount)])
	off += int(h.KeyCount)

	// keynames: key_count * 4 bytes, display names. Parsed for layout
	// accounting but not otherwise surfaced by this package.
	off += int(h.KeyCount) * 4
	if len(data) < off {
		return nil, fmt.Errorf("%w: file too short for keynames", ErrCorrupt)
	}

	indexCount := int(h.KeyCount) + 1
	if len(data) < off+indexCount*4 {
		return nil, fmt.Errorf("%w: file too short for index table", ErrCorrupt)
	}
	leadOffsets := make([]int32, indexCount)
	ir := bytes.NewReader(data[off : off+indexCount*4])
	if err := binary.Read(ir, binary.LittleEndian, &leadOffsets); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	off += indexCount * 4

	entrySize := keyBytes + 4
	entriesBytes := int(h.DefChars) * entrySize
	if len(data) < off+entriesBytes {
		return nil, fmt.Errorf("%w: file too short for %d entries", ErrCorrupt, h.DefChars)
	}

	entries := make([]Entry, h.DefChars)
	p := off
	for i := range entries {
		var k uint64
		if key64 {
			k = binary.LittleEndian.Uint64(data[p : p+8])
		} else {
			k = uint64(binary.LittleEndian.Uint32(data[p : p+4]))
		}
		p += keyBytes
		entries[i] = Entry{Key: k, Text: trimNul(data[p : p+4])}
		p += 4
	}

	// Radical index 0 is reserved to mean "no radical" (trailing pad in
	// a shorter-than-MaxKeystrokes entry, §4.2's exact/prefix split);
	// keymap[i] is the key character for radical number i+1. This is
	// exactly why keybits is sized for key_count+1 distinct values.
	keyIndex := make(map[byte]int, len(keymap))
	for i, c := range keymap {
		keyIndex[c] = i + 1
	}

	t := &Table{
		Name:          cstring(h.CName[:]),
		Filename:      filename,
		KeyCount:      int(h.KeyCount),
		MaxKeystrokes: int(h.MaxPress),
		DupSel:        DupSelect(h.DupSel),
		SelectionKeys: cstring(h.SelKey[:]),
		SpaceStyle:    SpaceStyle(h.SpaceStyle),
		Keybits:       keybits,
		Keymap:        keymap,
		KeyIndex:      keyIndex,
		Entries:       entries,
		key64:         key64,
	}
	t.buildLeadingIndex(leadOffsets)
	return t, nil
}

func trimNul(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// buildLeadingIndex turns the on-disk leading-radical offset table
// (one entry offset per possible leading radical 1..KeyCount, plus a
// trailing sentinel) into half-open ranges over t.Entries. Slot i
// (0-based) holds the range for radical number i+1, since radical 0
// is reserved to mean "no radical" and never leads a real entry.
func (t *Table) buildLeadingIndex(leadOffsets []int32) {
	t.leadingIndex = make([][2]int, t.KeyCount)
	for i := 0; i < t.KeyCount; i++ {
		start := int(leadOffsets[i])
		end := int(leadOffsets[i+1])
		if start < 0 || end < start || end > len(t.Entries) {
			// Fall back to a verified scan of the sorted entries; a
			// malformed index table must not crash lookups.
			start, end = t.scanLeadingRange(i + 1)
		}
		t.leadingIndex[i] = [2]int{start, end}
	}
}

// scanLeadingRange binary-searches the sorted entries for the range
// whose leading (highest-order) radical equals the given 1-based
// radical number.
func (t *Table) scanLeadingRange(radical int) (int, int) {
	shift := uint(t.MaxKeystrokes-1) * t.Keybits
	lo := sort.Search(len(t.Entries), func(i int) bool {
		return (t.Entries[i].Key >> shift) >= uint64(radical)
	})
	hi := sort.Search(len(t.Entries), func(i int) bool {
		return (t.Entries[i].Key >> shift) >= uint64(radical)+1
	})
	return lo, hi
}

// LoadFile reads and decodes a GTAB file from disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return Load(data, path)
}
