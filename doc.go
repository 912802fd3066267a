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

// Package hime provides a portable, platform-independent Chinese/CJK
// input method engine core. It turns a stream of Latin-keyboard
// keystrokes into a composition buffer and a ranked list of candidate
// characters or phrases, for phonetic (Bopomofo), table-based radical
// (Cangjie, Array, Boshiamy, DaYi), romanization (Pinyin, Jyutping)
// and raw hex codepoint entry.
//
// The package exposes opaque *Context handles. A process calls Init
// once against a data directory, creates one or more independent
// contexts with NewContext, and drives each by feeding keystrokes to
// (*Context).ProcessKey. Frontends (TSF, IMK, IBus, JNI bindings,
// UIKit input controllers) are expected to translate host key events
// into calls against this API and render the preedit/candidate state
// it exposes; none of that rendering is this package's concern.
package hime
