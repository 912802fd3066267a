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

import "github.com/oouyang/hime-sub002/convert"

// convertOutput applies the configured S<->T variant to text about to
// be committed (C9, §4.8, dispatch step 6). OutputBoth concatenates
// both renderings so a frontend that understands the separator can
// offer either; most frontends simply want OutputTraditional or
// OutputSimplified and get exactly that back.
func (c *Context) convertOutput(text string) string {
	switch c.outputVariant {
	case OutputSimplified:
		return convert.TradToSimp(text)
	case OutputBoth:
		return convert.TradToSimp(text) + "\x00" + text
	default:
		// Engine tables are already Traditional; nothing to convert.
		return text
	}
}
