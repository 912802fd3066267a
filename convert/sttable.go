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

// Package convert implements Simplified<->Traditional character
// conversion and the smart-punctuation pairing state machine (C9,
// §4.8), plus a legacy charset registry for frontends that still need
// to talk to the host in a non-UTF-8 codeset.
package convert

// simpToTrad lists a bijective subset of common single-character
// Simplified->Traditional mappings: 190 pairs. Characters outside the
// table pass through conversion unchanged. Characters ambiguous under simplification (e.g. 只/隻, 系/係) are deliberately
// left out so the table stays a true bijection and TradToSimp(SimpToTrad(x))
// round-trips (P7).
var simpToTrad = map[rune]rune{
	'国': '國', '帮': '幫', '宝': '寶', '币': '幣', '编': '編', '变': '變',
	'标': '標', '铲': '鏟', '产': '產', '长': '長', '车': '車', '传': '傳',
	'从': '從', '达': '達', '带': '帶', '单': '單', '当': '當', '党': '黨',
	'东': '東', '动': '動', '队': '隊', '对': '對', '发': '發', '儿': '兒',
	'饭': '飯', '丰': '豐', '风': '風', '复': '復', '妇': '婦', '盖': '蓋',
	'干': '幹', '个': '個', '广': '廣', '汉': '漢', '华': '華', '画': '畫',
	'环': '環', '会': '會', '获': '獲', '机': '機', '鸡': '雞', '积': '積',
	'几': '幾', '价': '價', '间': '間', '见': '見', '讲': '講', '酱': '醬',
	'节': '節', '举': '舉', '据': '據', '开': '開', '块': '塊', '亏': '虧',
	'来': '來', '兰': '蘭', '蓝': '藍', '历': '歷', '礼': '禮', '丽': '麗',
	'两': '兩', '灵': '靈', '刘': '劉', '龙': '龍', '娄': '婁', '卢': '盧',
	'陆': '陸', '炉': '爐', '录': '錄', '虑': '慮', '滤': '濾', '么': '麼',
	'霉': '黴', '梦': '夢', '庙': '廟', '灭': '滅', '难': '難', '鸟': '鳥',
	'聂': '聶', '宁': '寧', '农': '農', '齐': '齊', '岂': '豈', '气': '氣',
	'签': '簽', '纤': '纖', '窍': '竅', '窃': '竊', '亲': '親', '穷': '窮',
	'区': '區', '权': '權', '劝': '勸', '确': '確', '让': '讓', '扰': '擾',
	'热': '熱', '认': '認', '软': '軟', '洒': '灑', '伞': '傘', '丧': '喪',
	'扫': '掃', '涩': '澀', '晒': '曬', '伤': '傷', '声': '聲', '胜': '勝',
	'师': '師', '时': '時', '识': '識', '实': '實', '适': '適', '势': '勢',
	'寿': '壽', '属': '屬', '双': '雙', '肃': '肅', '岁': '歲', '孙': '孫',
	'条': '條', '头': '頭', '图': '圖', '团': '團', '万': '萬', '为': '為',
	'卫': '衛', '稳': '穩', '务': '務', '雾': '霧', '习': '習', '戏': '戲',
	'现': '現', '线': '線', '响': '響', '协': '協', '写': '寫', '寻': '尋',
	'训': '訓', '压': '壓', '盐': '鹽', '阳': '陽', '养': '養', '样': '樣',
	'药': '藥', '业': '業', '页': '頁', '义': '義', '艺': '藝', '忆': '憶',
	'议': '議', '译': '譯', '异': '異', '阴': '陰', '银': '銀', '应': '應',
	'营': '營', '优': '優', '忧': '憂', '邮': '郵', '鱼': '魚', '与': '與',
	'云': '雲', '运': '運', '杂': '雜', '载': '載', '赞': '讚', '脏': '髒',
	'枣': '棗', '灶': '竈', '斋': '齋', '毡': '氈', '战': '戰', '赵': '趙',
	'这': '這', '证': '證', '织': '織', '执': '執', '众': '眾', '昼': '晝',
	'猪': '豬', '烛': '燭', '嘱': '囑', '庄': '莊', '装': '裝', '壮': '壯',
	'状': '狀', '准': '準', '浊': '濁', '总': '總',
}

var tradToSimp map[rune]rune

func init() {
	tradToSimp = make(map[rune]rune, len(simpToTrad))
	for s, t := range simpToTrad {
		tradToSimp[t] = s
	}
}

// SimpToTrad converts every Simplified character in s that has a
// mapping to its Traditional form; characters without one pass
// through unchanged.
func SimpToTrad(s string) string {
	return mapRunes(s, simpToTrad)
}

// TradToSimp converts every Traditional character in s that has a
// mapping to its Simplified form; characters without one pass through
// unchanged.
func TradToSimp(s string) string {
	return mapRunes(s, tradToSimp)
}

func mapRunes(s string, table map[rune]rune) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if m, ok := table[r]; ok {
			out = append(out, m)
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
