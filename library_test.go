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
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/oouyang/hime-sub002/mock"
)

func buildMinimalPhoTable(t *testing.T, phokey uint16, word string) []byte {
	t.Helper()
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, phokey)
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	buf.WriteByte(byte(len(word)))
	buf.WriteString(word)
	return buf.Bytes()
}

func TestInitFromOpenerLoadsMockDataDir(t *testing.T) {
	dd := mock.NewDataDir()
	dd.Put("pho.tab2", buildMinimalPhoTable(t, 0x1234, "媽"))

	lib, err := InitFromOpener(dd)
	if err != nil {
		t.Fatalf("InitFromOpener: %v", err)
	}
	if got := lib.PhoTable().Lookup(0x1234); len(got) != 1 || got[0] != "媽" {
		t.Fatalf("PhoTable().Lookup(0x1234) = %v, want [媽]", got)
	}
	// tsin.dat was never registered in the mock directory.
	if lib.TsinDatabase() != nil {
		t.Fatal("TsinDatabase() should be nil when tsin.dat was never provided")
	}
}

func TestInitFromOpenerMissingFilesIsNotFatal(t *testing.T) {
	dd := mock.NewDataDir()
	lib, err := InitFromOpener(dd)
	if err == nil {
		t.Fatal("expected a diagnostic error for a completely empty data directory")
	}
	if lib == nil {
		t.Fatal("InitFromOpener must always return a usable Library")
	}
	if lib.PhoTable() != nil || lib.TsinDatabase() != nil {
		t.Fatal("both tables should be nil")
	}
}

func TestInitEmptyDataDirReturnsErrNoDataDir(t *testing.T) {
	lib, err := Init("")
	if err != ErrNoDataDir {
		t.Fatalf("Init(\"\") err = %v, want ErrNoDataDir", err)
	}
	if lib == nil {
		t.Fatal("Init must return a usable Library even without a data directory")
	}
}

func TestPutGtabTableRejectsCorruptImage(t *testing.T) {
	lib, _ := Init("")
	if err := lib.PutGtabTable("broken.gtab", []byte{1, 2, 3}); err == nil {
		t.Fatal("PutGtabTable should reject a truncated image")
	}
}

func TestPhoTableAndTsinDatabaseNilSafe(t *testing.T) {
	var lib *Library
	if lib.PhoTable() != nil {
		t.Fatal("nil Library.PhoTable() should be nil")
	}
	if lib.TsinDatabase() != nil {
		t.Fatal("nil Library.TsinDatabase() should be nil")
	}
	if lib.Entries() == nil {
		t.Fatal("nil Library.Entries() should still return the builtin catalog")
	}
}

func TestGtabTableUnknownIDFails(t *testing.T) {
	lib, _ := Init("")
	if _, err := lib.GtabTable(12345); err != ErrTableNotFound {
		t.Fatalf("GtabTable(unknown) err = %v, want ErrTableNotFound", err)
	}
}

func TestCleanupIsNilSafeAndIdempotent(t *testing.T) {
	var lib *Library
	lib.Cleanup()
	lib.Cleanup()

	lib, _ = Init("")
	lib.Cleanup()
	lib.Cleanup()
	if lib.PhoTable() != nil {
		t.Fatal("Cleanup should drop the phonetic table")
	}
}
