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

import "sync"

// Cache loads GTAB tables lazily and memoizes them by filename,
// process-wide (§3 "GTAB table objects: loaded lazily ... cached per
// process"). It is grounded on the find-or-load-then-memoize shape of
// the teacher's Terminfo database (terminfo.go's LookupTerminfo):
// check the map under a lock, load outside any lock-held I/O, then
// store. A *Cache is safe for concurrent use; the *Table values it
// returns are immutable and safe to share without synchronization
// once loaded (§5).
type Cache struct {
	mu     sync.Mutex
	tables map[string]*Table
}

// NewCache returns an empty table cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[string]*Table)}
}

// Get returns the cached table for filename if present.
func (c *Cache) Get(filename string) (*Table, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.tables[filename]
	return t, ok
}

// LoadFile loads filename if not already cached, memoizes it on
// success, and returns the table. A failed load leaves any previously
// cached table for this filename untouched (§4.9).
func (c *Cache) LoadFile(filename string) (*Table, error) {
	if t, ok := c.Get(filename); ok {
		return t, nil
	}
	t, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.tables[filename] = t
	c.mu.Unlock()
	return t, nil
}

// Put registers an already-decoded table under filename, for callers
// (such as the mock data directory) that construct Tables in memory
// rather than reading them from disk.
func (c *Cache) Put(filename string, t *Table) {
	c.mu.Lock()
	c.tables[filename] = t
	c.mu.Unlock()
}
