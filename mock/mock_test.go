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

package mock

import "testing"

func TestPutThenOpen(t *testing.T) {
	dd := NewDataDir()
	dd.Put("pho.tab2", []byte{1, 2, 3})
	data, err := dd.Open("pho.tab2")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(data) != 3 {
		t.Fatalf("Open returned %d bytes, want 3", len(data))
	}
}

func TestOpenMissingFileErrors(t *testing.T) {
	dd := NewDataDir()
	if _, err := dd.Open("missing.dat"); err == nil {
		t.Fatal("Open of an unregistered name should fail")
	}
}

func TestHasReflectsRegistration(t *testing.T) {
	dd := NewDataDir()
	if dd.Has("cj.gtab") {
		t.Fatal("Has should be false before Put")
	}
	dd.Put("cj.gtab", nil)
	if !dd.Has("cj.gtab") {
		t.Fatal("Has should be true after Put")
	}
}
