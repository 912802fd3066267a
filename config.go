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

import "github.com/oouyang/hime-sub002/intcode"

// This file covers the remaining per-context config knobs (§3 Config)
// that are plain stored values rather than dispatch behavior: the
// frontend sets them once and later reads them back, the same way it
// does with the keyboard layout or selection keys elsewhere in the ABI.

// SetCharset stores the glyph repertoire setting for GetCharset to
// report; no engine table lookup consults it.
func (c *Context) SetCharset(cs Charset) {
	if c == nil {
		return
	}
	c.charset = cs
}

// GetCharset returns the configured charset.
func (c *Context) GetCharset() Charset {
	if c == nil {
		return CharsetTraditional
	}
	return c.charset
}

// SetOutputVariant selects the S<->T conversion applied on commit (C9).
func (c *Context) SetOutputVariant(v OutputVariant) {
	if c == nil {
		return
	}
	c.outputVariant = v
}

// GetOutputVariant returns the configured output variant.
func (c *Context) GetOutputVariant() OutputVariant {
	if c == nil {
		return OutputTraditional
	}
	return c.outputVariant
}

// SetSmartPunctuation enables or disables the punctuation-pairing
// intercept (§4.8).
func (c *Context) SetSmartPunctuation(on bool) {
	if c == nil {
		return
	}
	c.smartPunctuation = on
}

// SmartPunctuationEnabled reports the current setting.
func (c *Context) SmartPunctuationEnabled() bool {
	if c == nil {
		return false
	}
	return c.smartPunctuation
}

// SetPinyinAnnotation enables attaching each PHO candidate's spelling
// as its Entry.Annotation; TSIN phrase candidates carry no annotation
// (SPEC_FULL.md supplemented feature:
// the shared implementation this core is modeled on shows phonetic
// spelling alongside candidates).
func (c *Context) SetPinyinAnnotation(on bool) {
	if c == nil {
		return
	}
	c.pinyinAnnotation = on
}

// PinyinAnnotationEnabled reports the current setting.
func (c *Context) PinyinAnnotationEnabled() bool {
	if c == nil {
		return false
	}
	return c.pinyinAnnotation
}

// SetIntcodeMode selects how the intcode engine's finished 4-digit
// buffer is decoded: a raw Unicode code point or a Big5-encoded
// character (§3 "intcode hex buffer and mode", §4.5).
func (c *Context) SetIntcodeMode(m intcode.Mode) {
	if c == nil {
		return
	}
	c.intState.Mode = m
}

// GetIntcodeMode returns the configured intcode decode mode.
func (c *Context) GetIntcodeMode() intcode.Mode {
	if c == nil {
		return intcode.ModeUnicode
	}
	return c.intState.Mode
}

// SetCandidateStyle stores a frontend-defined rendering hint (e.g.
// "horizontal", "vertical") for the candidate window. The core never
// interprets it.
func (c *Context) SetCandidateStyle(style string) {
	if c == nil {
		return
	}
	c.candidateStyle = style
}

// GetCandidateStyle returns the configured rendering hint.
func (c *Context) GetCandidateStyle() string {
	if c == nil {
		return ""
	}
	return c.candidateStyle
}

// SetColorScheme stores the frontend's accent color.
func (c *Context) SetColorScheme(cs ColorScheme) {
	if c == nil {
		return
	}
	c.colorScheme = cs
}

// GetColorScheme returns the accent color, adapted for the configured
// system theme (§3 "system_dark").
func (c *Context) GetColorScheme() ColorScheme {
	if c == nil {
		return ColorScheme{}
	}
	return c.colorScheme.Adapted(c.systemDark)
}

// SetSystemDark records whether the host is currently in dark mode.
func (c *Context) SetSystemDark(dark bool) {
	if c == nil {
		return
	}
	c.systemDark = dark
}

// SetSoundEnabled toggles the feedback(KEY_PRESS/...) sound hint.
func (c *Context) SetSoundEnabled(on bool) {
	if c == nil {
		return
	}
	c.soundEnabled = on
}

// SoundEnabled reports whether sound feedback is enabled.
func (c *Context) SoundEnabled() bool {
	if c == nil {
		return false
	}
	return c.soundEnabled
}

// SetVibrationEnabled toggles the feedback(...) haptic hint.
func (c *Context) SetVibrationEnabled(on bool) {
	if c == nil {
		return
	}
	c.vibrationEnabled = on
}

// VibrationEnabled reports whether haptic feedback is enabled.
func (c *Context) VibrationEnabled() bool {
	if c == nil {
		return false
	}
	return c.vibrationEnabled
}
