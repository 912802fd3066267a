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

// Package mock implements an in-memory data directory (C1) for
// exercising the loader path in tests without real files on disk: it
// holds raw GTAB/pho.tab2/tsin images keyed by filename, the same
// shape a frontend's real data directory presents.
package mock

import "fmt"

// DataDir is an in-memory stand-in for the on-disk data directory
// init(data_dir) would otherwise read from (§3 "Library: init(data_dir)
// loads the global registry and default tables").
type DataDir struct {
	files map[string][]byte
}

// NewDataDir returns an empty in-memory data directory.
func NewDataDir() *DataDir {
	return &DataDir{files: make(map[string][]byte)}
}

// Put registers the raw bytes of one data file under name (e.g.
// "cj.gtab", "pho.tab2").
func (d *DataDir) Put(name string, data []byte) {
	d.files[name] = data
}

// Open returns the bytes previously registered under name.
func (d *DataDir) Open(name string) ([]byte, error) {
	data, ok := d.files[name]
	if !ok {
		return nil, fmt.Errorf("mock: no such file %q", name)
	}
	return data, nil
}

// Has reports whether name was registered.
func (d *DataDir) Has(name string) bool {
	_, ok := d.files[name]
	return ok
}
