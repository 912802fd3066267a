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
	"os"
	"path/filepath"

	"github.com/oouyang/hime-sub002/gtab"
	"github.com/oouyang/hime-sub002/pho"
	"github.com/oouyang/hime-sub002/registry"
	"github.com/oouyang/hime-sub002/tsin"
)

// Version is the stable build-time version string returned by the C
// ABI's version() (§9 "Platform wrappers defining only HIME_VERSION").
const Version = "hime-core/2.0"

// Library is the process-wide singleton of immutable, shared resources
// (§9 "Opaque C handle with global registry"): the loaded default
// tables and the method catalog. It is safe to share across any number
// of Contexts without synchronization once Init returns (§5).
type Library struct {
	dataDir string
	tables  *gtab.Cache
	pho     *pho.Table
	tsin    *tsin.Database
	entries []registry.Entry
}

// Opener resolves a data-file name to its raw bytes. It is satisfied
// both by a real on-disk data directory and by mock.DataDir, so tests
// can exercise Init's loader path without touching the filesystem.
type Opener interface {
	Open(name string) ([]byte, error)
}

type fsOpener struct{ dir string }

func (o fsOpener) Open(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(o.dir, name))
}

// Init loads the global registry and default tables from dataDir
// (§3 Lifecycles "init(data_dir)"). A missing or unreadable pho.tab2 is
// not fatal: PHO and INTCODE work without any data file, so Init
// always returns a usable Library and reports loadErr only as
// diagnostic information (§4.9, §7 "Resource error").
func Init(dataDir string) (lib *Library, loadErr error) {
	if dataDir == "" {
		lib = &Library{tables: gtab.NewCache(), entries: registry.Builtins()}
		return lib, ErrNoDataDir
	}
	lib, loadErr = InitFromOpener(fsOpener{dir: dataDir})
	lib.dataDir = dataDir
	return lib, loadErr
}

// InitFromOpener loads the global registry and default tables from any
// Opener, e.g. a mock.DataDir in tests (§3 "Library: init(data_dir)").
func InitFromOpener(o Opener) (lib *Library, loadErr error) {
	lib = &Library{
		tables:  gtab.NewCache(),
		entries: registry.Builtins(),
	}
	if data, err := o.Open("pho.tab2"); err == nil {
		if t, err := pho.Load(data); err == nil {
			lib.pho = t
		} else {
			loadErr = err
		}
	} else {
		loadErr = err
	}
	// tsin.dat is optional (TSIN is not the default method, §3); its
	// absence is silent, unlike pho.tab2's. A tsin.dat that exists but
	// fails to parse is still diagnostic-worthy.
	if data, err := o.Open("tsin.dat"); err == nil {
		if t, err := tsin.Load(data); err == nil {
			lib.tsin = t
		} else if loadErr == nil {
			loadErr = err
		}
	}
	return lib, loadErr
}

// Cleanup releases the library's resources. Go's garbage collector
// does the actual reclaiming; Cleanup exists to mirror the C ABI's
// init/cleanup lifecycle pairing and to make "no contexts may outlive
// cleanup" an explicit, checkable call site (§5 Lifetime).
func (lib *Library) Cleanup() {
	if lib == nil {
		return
	}
	lib.pho = nil
	lib.tsin = nil
	lib.tables = gtab.NewCache()
}

// GtabTable returns the table registered under a well-known GTAB id,
// loading it from the data directory on first use (§3 "GTAB table
// objects: loaded lazily ... cached per process").
func (lib *Library) GtabTable(id int) (*gtab.Table, error) {
	if lib == nil {
		return nil, ErrNoDataDir
	}
	for _, e := range lib.entries {
		if e.Type == registry.TypeGtab && e.GtabID == id {
			return lib.GtabTableByFilename(e.Filename)
		}
	}
	return nil, ErrTableNotFound
}

// GtabTableByFilename loads (or returns the cached copy of) a GTAB
// table by its data-directory filename.
func (lib *Library) GtabTableByFilename(filename string) (*gtab.Table, error) {
	if lib == nil {
		return nil, ErrNoDataDir
	}
	if t, ok := lib.tables.Get(filename); ok {
		return t, nil
	}
	return lib.tables.LoadFile(filepath.Join(lib.dataDir, filename))
}

// PutGtabTable decodes a GTAB image already held in memory (e.g. from
// a mock.DataDir in tests) and registers it under filename, bypassing
// the disk-backed cache's lazy load.
func (lib *Library) PutGtabTable(filename string, data []byte) error {
	if lib == nil {
		return ErrNoDataDir
	}
	t, err := gtab.Load(data, filename)
	if err != nil {
		return err
	}
	lib.tables.Put(filename, t)
	return nil
}

// PhoTable returns the loaded phonetic table, or nil if none was
// loaded (a nil *pho.Table answers every lookup with no candidates).
func (lib *Library) PhoTable() *pho.Table {
	if lib == nil {
		return nil
	}
	return lib.pho
}

// TsinDatabase returns the loaded phrase database, or nil.
func (lib *Library) TsinDatabase() *tsin.Database {
	if lib == nil {
		return nil
	}
	return lib.tsin
}

// Entries returns the static method/table catalog for registry search.
func (lib *Library) Entries() []registry.Entry {
	if lib == nil {
		return registry.Builtins()
	}
	return lib.entries
}
