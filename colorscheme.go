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

import "github.com/lucasb-eyer/go-colorful"

// ColorScheme names the accent color the frontend paints the preedit
// underline and candidate-window highlight with (§3 Config
// "color_scheme"). It is a plain value; GetColorScheme hands back the
// stored scheme adapted to the system dark-mode flag (see Adapted),
// and rendering is entirely a frontend concern.
type ColorScheme struct {
	accent colorful.Color
}

// NewColorScheme builds a scheme from an accent color expressed as
// 0xRRGGBB.
func NewColorScheme(rgbHex uint32) ColorScheme {
	r := float64((rgbHex>>16)&0xFF) / 255
	g := float64((rgbHex>>8)&0xFF) / 255
	b := float64(rgbHex&0xFF) / 255
	return ColorScheme{accent: colorful.Color{R: r, G: g, B: b}}
}

// Hex returns the accent color as 0xRRGGBB.
func (c ColorScheme) Hex() uint32 {
	r, g, b := c.accent.RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Adapted blends the accent color toward black (system_dark=true) or
// white (system_dark=false) so candidate windows stay legible against
// either a dark or light host theme, without the frontend needing its
// own color math (§3 "system_dark: bool").
func (c ColorScheme) Adapted(systemDark bool) ColorScheme {
	target := colorful.Color{R: 1, G: 1, B: 1}
	if systemDark {
		target = colorful.Color{R: 0, G: 0, B: 0}
	}
	return ColorScheme{accent: c.accent.BlendRgb(target, 0.15)}
}
