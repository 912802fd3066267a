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

// Package tsin implements the phrase (TSIN) composition engine (C4,
// §4.4): a multi-syllable buffer queried against a phrase database,
// ranked by (length, frequency), with a per-syllable default fallback
// for Enter.
package tsin

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrCorrupt reports a structurally invalid phrase database file.
var ErrCorrupt = errors.New("tsin: corrupt phrase database")

// Phrase is one ranked phrase candidate.
type Phrase struct {
	Text string
	Freq uint32
}

// Database is a loaded phrase database: keyed by the exact sequence of
// syllable phokeys it spans, plus a one-syllable default table for
// Enter's fallback commit. Like pho.Table, the on-disk record shape
// below is this implementation's own choice (§9 leaves the original
// tsin* layout undocumented): a self-terminating stream of
// variable-length records is easy to grow without a fixed header.
type Database struct {
	phrases  map[string][]Phrase
	defaults map[uint16]string
}

func phraseKey(phokeys []uint16) string {
	b := make([]byte, len(phokeys)*2)
	for i, k := range phokeys {
		binary.BigEndian.PutUint16(b[i*2:], k)
	}
	return string(b)
}

// Load decodes a tsin phrase database image:
//
//	phrase records: length:uint16, phokeys[length]:uint16 each,
//	  count:uint16, count*(freq:uint32, textlen:byte, text:[textlen]byte)
//	terminated by a length of 0xFFFF, followed by:
//	default records: count:uint32, count*(phokey:uint16, textlen:byte, text)
func Load(data []byte) (*Database, error) {
	r := bytes.NewReader(data)
	db := &Database{phrases: make(map[string][]Phrase), defaults: make(map[uint16]string)}

	for {
		var length uint16
		if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if length == 0xFFFF {
			break
		}
		phokeys := make([]uint16, length)
		if err := binary.Read(r, binary.LittleEndian, &phokeys); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		var count uint16
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		phrases := make([]Phrase, 0, count)
		for i := uint16(0); i < count; i++ {
			var freq uint32
			if err := binary.Read(r, binary.LittleEndian, &freq); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
			n, err := r.ReadByte()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
			buf := make([]byte, n)
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
			phrases = append(phrases, Phrase{Text: string(buf), Freq: freq})
		}
		db.phrases[phraseKey(phokeys)] = phrases
	}

	var defCount uint32
	if err := binary.Read(r, binary.LittleEndian, &defCount); err != nil {
		if err == io.EOF {
			return db, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	for i := uint32(0); i < defCount; i++ {
		var phokey uint16
		if err := binary.Read(r, binary.LittleEndian, &phokey); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		n, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		db.defaults[phokey] = string(buf)
	}
	return db, nil
}

// LoadFile reads and decodes a phrase database file from disk.
func LoadFile(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return Load(data)
}

// Default returns the single-character fallback assigned to a
// syllable, used by Buffer.Enter.
func (db *Database) Default(phokey uint16) (string, bool) {
	if db == nil {
		return "", false
	}
	s, ok := db.defaults[phokey]
	return s, ok
}
