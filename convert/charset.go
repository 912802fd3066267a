// Copyright 2026 The HIME Authors
// Copyright 2015 The TCell Authors
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

package convert

import (
	"sync"

	"golang.org/x/text/encoding"
)

var charsets map[string]encoding.Encoding
var charsetLk sync.Mutex

// RegisterCharset lets a frontend register a legacy, non-UTF-8 charset
// the host environment needs committed text converted to (e.g. a
// console codepage), adapted from the common golang.org/x/text/encoding
// registration idiom. Most frontends never call this: the core always
// produces UTF-8 and registration only matters for hosts that cannot
// consume it directly.
func RegisterCharset(name string, enc encoding.Encoding) {
	charsetLk.Lock()
	if charsets == nil {
		charsets = make(map[string]encoding.Encoding)
	}
	charsets[name] = enc
	charsetLk.Unlock()
}

// Charset looks up a previously registered legacy charset by name. It
// returns nil for UTF-8/ASCII, which need no conversion.
func Charset(name string) encoding.Encoding {
	charsetLk.Lock()
	defer charsetLk.Unlock()
	return charsets[name]
}

// ToCharset re-encodes UTF-8 text into a registered legacy charset. If
// name is unregistered, s is returned unchanged.
func ToCharset(name, s string) (string, error) {
	enc := Charset(name)
	if enc == nil {
		return s, nil
	}
	out, err := enc.NewEncoder().String(s)
	if err != nil {
		return "", err
	}
	return out, nil
}
