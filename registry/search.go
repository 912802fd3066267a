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

package registry

import (
	"sort"
	"strings"
)

// Filter selects which entries a Search call considers.
type Filter struct {
	Query string
	Type  Type // AnyType to match every type
}

// Result pairs a matched entry with its relevance score.
type Result struct {
	Entry Entry
	Score int
}

// Search scores every enabled entry matching filter.Type against
// filter.Query and returns up to max results sorted by score
// descending, stable within ties (§4.7).
func Search(entries []Entry, filter Filter, max int) []Result {
	var results []Result
	for _, e := range entries {
		if !e.Enabled {
			continue
		}
		if filter.Type != AnyType && e.Type != filter.Type {
			continue
		}
		if score, ok := score(e.Name, filter.Query); ok {
			results = append(results, Result{Entry: e, Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if max > 0 && len(results) > max {
		results = results[:max]
	}
	return results
}

// score matches query against name: ASCII characters compare case-
// insensitively, non-ASCII (CJK) characters require an exact substring
// match. A name that starts with query earns a prefix bonus (§4.7).
func score(name, query string) (int, bool) {
	if query == "" {
		return 1, true
	}
	loName := foldASCII(name)
	loQuery := foldASCII(query)
	idx := strings.Index(loName, loQuery)
	if idx < 0 {
		return 0, false
	}
	s := 10
	if idx == 0 {
		s += 5
		// Among equally-prefixed names, the shorter one is the closer
		// match (e.g. "倉頡" over "倉頡五代" for query "倉頡"); without
		// this, two prefix matches tie and only sort.SliceStable's
		// input order (coincidentally) keeps the shorter one first.
		// Clamped at 0 so a long name's tiebreak can never eat into the
		// +5 prefix bonus itself and drop a prefix match to or below a
		// non-prefix substring match's flat score of 10.
		if tiebreak := 64 - len([]rune(name)); tiebreak > 0 {
			s += tiebreak
		}
	}
	return s, true
}

func foldASCII(s string) string {
	out := make([]byte, 0, len(s))
	for _, c := range []byte(s) {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
