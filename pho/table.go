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

package pho

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrCorrupt reports a structurally invalid pho.tab2 file.
var ErrCorrupt = errors.New("pho: corrupt phonetic table")

// Table is a loaded phonetic table: phokey -> frequency-ordered
// candidate characters (§4.3 "Phonetic table (pho.tab2)").
type Table struct {
	entries map[uint16][]string
}

// Lookup returns the frequency-ordered candidates for a finalized
// syllable, or nil if the syllable has no entry.
func (t *Table) Lookup(phokey uint16) []string {
	if t == nil {
		return nil
	}
	return t.entries[phokey]
}

// Load decodes a pho.tab2 image: a sequence of records, each a
// little-endian uint16 phokey, a little-endian uint16 candidate count,
// then that many length-prefixed (1-byte length) UTF-8 strings. This
// on-disk shape is this implementation's own choice (§9: the original
// binary layout is undocumented); it is simple to stream-decode and
// keeps each record self-describing.
func Load(data []byte) (*Table, error) {
	r := bytes.NewReader(data)
	t := &Table{entries: make(map[uint16][]string)}
	for r.Len() > 0 {
		var phokey, count uint16
		if err := binary.Read(r, binary.LittleEndian, &phokey); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		words := make([]string, 0, count)
		for i := uint16(0); i < count; i++ {
			n, err := r.ReadByte()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
			buf := make([]byte, n)
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
			words = append(words, string(buf))
		}
		t.entries[phokey] = words
	}
	return t, nil
}

// LoadFile reads and decodes a pho.tab2 file from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return Load(data)
}
