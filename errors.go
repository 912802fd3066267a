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

import "errors"

var (
	// ErrNoDataDir indicates that Init was called with an empty data
	// directory path, or that a table method was called on a nil
	// *Library. After Init("") the library remains usable: contexts can
	// still be created, but methods backed by missing data files will
	// produce no candidates. A non-empty path that does not exist is
	// reported by Init as the error from opening pho.tab2 instead.
	ErrNoDataDir = errors.New("hime: data directory not found")

	// ErrTableNotFound indicates that no catalog entry carries the
	// requested well-known GTAB id. A filename that cannot be read is
	// reported with the gtab loader's error instead.
	ErrTableNotFound = errors.New("hime: gtab table not found")

	// ErrTableCorrupt names the condition of a GTAB file whose header or
	// structural fields are inconsistent with the on-disk layout
	// (§3/§4.2): wrong size, impossible key_count, etc. No function in
	// this package returns it; the library passes such failures through
	// as the gtab package's errors, which wrap gtab.ErrCorrupt.
	ErrTableCorrupt = errors.New("hime: gtab table corrupt")
)
