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

// Modifier is a bitmask of modifier keys held during a keystroke,
// matching the C ABI's Modifier flags (§6).
type Modifier uint32

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModCapsLock
)

// Keycode identifies non-printable keys the dispatcher cares about.
// Frontends translate host virtual key codes into these before calling
// ProcessKey; ordinary printable keys are carried in the charcode
// argument instead and Keycode is KeyNone.
type Keycode uint32

const (
	KeyNone Keycode = iota
	KeyBackspace
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyPageUp
	KeyPageDown
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyDelete
	KeyShift // bare modifier release, used for the mode-toggle shortcut
)

// Result is the outcome of feeding one keystroke to a Context, per §4.1.
type Result int

const (
	// IGNORED: key unused; the frontend must forward it to the host
	// application.
	IGNORED Result = iota
	// ABSORBED: key consumed; no user-visible text change yet.
	ABSORBED
	// COMMIT: a commit string is ready to be read with GetCommit.
	COMMIT
	// PREEDIT: the preedit string changed; redraw composition display.
	PREEDIT
)

func (r Result) String() string {
	switch r {
	case IGNORED:
		return "IGNORED"
	case ABSORBED:
		return "ABSORBED"
	case COMMIT:
		return "COMMIT"
	case PREEDIT:
		return "PREEDIT"
	default:
		return "Result(?)"
	}
}

// key is the internal, parsed representation of one keystroke that the
// per-method engines consume. It is built once by Context.ProcessKey
// from the raw (keycode, charcode, mods) triple and handed down to
// whichever engine is active.
type key struct {
	code Keycode
	ch   rune // printable character, valid when code == KeyNone
	mods Modifier
}

func (k key) isPrintable() bool {
	return k.code == KeyNone && k.ch != 0
}
