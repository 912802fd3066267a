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

// FeedbackKind names the UI hints a Context can emit through its
// feedback callback (§3, §5 "Callback discipline").
type FeedbackKind int

const (
	FeedbackKeyPress FeedbackKind = iota
	FeedbackDelete
	FeedbackEnter
	FeedbackSpace
	FeedbackCandidate
	FeedbackModeChange
	FeedbackError
)

// FeedbackFunc is invoked synchronously on the calling goroutine from
// inside ProcessKey. It must not block and must not re-enter the
// Context that invoked it (§5).
type FeedbackFunc func(kind FeedbackKind)

// SetFeedback installs (or, with nil, removes) the feedback callback.
func (c *Context) SetFeedback(fn FeedbackFunc) {
	if c == nil {
		return
	}
	c.feedback = fn
}

func (c *Context) notify(kind FeedbackKind) {
	if c.feedback != nil {
		c.feedback(kind)
	}
}
