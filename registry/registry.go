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

// Package registry implements the method/table discovery layer (C8,
// §4.7): a static catalog of built-in engines and GTAB tables, with
// name search and match scoring.
package registry

// Type identifies which engine family a registry entry belongs to.
type Type int

const (
	TypePho Type = iota
	TypeTsin
	TypeGtab
	TypeIntcode
)

// AnyType matches every entry in a search filter.
const AnyType Type = -1

// Entry is one immutable, process-global catalog row (§3 "Method
// registry entry").
type Entry struct {
	Name     string
	Type     Type
	GtabID   int // meaningful only when Type == TypeGtab
	Filename string
	Enabled  bool
}

// Builtins returns the static catalog: the three always-available
// engines plus twelve well-known GTAB tables, the last of which (自訂)
// is disabled. No other GTAB table is catalogued.
func Builtins() []Entry {
	return []Entry{
		{Name: "注音", Type: TypePho, Enabled: true},
		{Name: "詞音", Type: TypeTsin, Enabled: true},
		{Name: "內碼", Type: TypeIntcode, Enabled: true},

		{Name: "倉頡", Type: TypeGtab, GtabID: 0, Filename: "cj.gtab", Enabled: true},
		{Name: "倉頡五代", Type: TypeGtab, GtabID: 1, Filename: "cj5.gtab", Enabled: true},
		{Name: "簡易", Type: TypeGtab, GtabID: 10, Filename: "simplex.gtab", Enabled: true},
		{Name: "大易", Type: TypeGtab, GtabID: 20, Filename: "dayi.gtab", Enabled: true},
		{Name: "行列30", Type: TypeGtab, GtabID: 30, Filename: "array30.gtab", Enabled: true},
		{Name: "嘸蝦米", Type: TypeGtab, GtabID: 40, Filename: "boshiamy.gtab", Enabled: true},
		{Name: "拼音", Type: TypeGtab, GtabID: 50, Filename: "pinyin.gtab", Enabled: true},
		{Name: "粵拼", Type: TypeGtab, GtabID: 51, Filename: "jyutping.gtab", Enabled: true},
		{Name: "諺文", Type: TypeGtab, GtabID: 60, Filename: "hangul.gtab", Enabled: true},
		{Name: "威妥瑪", Type: TypeGtab, GtabID: 70, Filename: "vims.gtab", Enabled: true},
		{Name: "特殊符號", Type: TypeGtab, GtabID: 80, Filename: "symbols.gtab", Enabled: true},
		{Name: "自訂", Type: TypeGtab, GtabID: 99, Filename: "custom.gtab", Enabled: false},
	}
}
