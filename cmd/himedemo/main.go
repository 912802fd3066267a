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

// himedemo drives a Context from a terminal without any IME framework
// underneath it: it reads one line at a time, feeds it keystroke by
// keystroke, and prints whatever preedit/commit/candidate state comes
// out. It is a line-mode harness for exercising the engine, not a
// usable input method.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	hime "github.com/oouyang/hime-sub002"
)

var (
	dataDir = flag.String("data", "", "data directory containing pho.tab2 and tsin.dat")
	method  = flag.String("method", "pho", "input method: pho, tsin, gtab, intcode")
	gtabID  = flag.Int("gtab", hime.GtabCJ, "gtab table id, used when -method=gtab")
)

func main() {
	flag.Parse()

	lib, err := hime.Init(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "himedemo: init(%q): %v (continuing with reduced functionality)\n", *dataDir, err)
	}
	defer lib.Cleanup()

	ctx := hime.NewContext(lib)
	ctx.SetFeedback(func(kind hime.FeedbackKind) {
		if kind == hime.FeedbackError {
			fmt.Fprintln(os.Stderr, "himedemo: engine reported an error")
		}
	})

	switch strings.ToLower(*method) {
	case "pho":
		ctx.SetInputMethod(hime.MethodPho)
	case "tsin":
		ctx.SetInputMethod(hime.MethodTsin)
	case "gtab":
		if !ctx.LoadGtabTableByID(*gtabID) {
			fmt.Fprintf(os.Stderr, "himedemo: could not load gtab table %d from %q\n", *gtabID, *dataDir)
		}
	case "intcode":
		ctx.SetInputMethod(hime.MethodIntcode)
	default:
		fmt.Fprintf(os.Stderr, "himedemo: unknown -method %q\n", *method)
		os.Exit(2)
	}

	fmt.Printf("%s, method=%s\n", hime.Version, ctx.GetInputMethod())
	fmt.Println("type characters; <sp>=Space <bs>=Backspace <esc>=Escape <cr>=Enter <pu>/<pd>=paging, blank line to quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		for _, tok := range tokenize(line) {
			report(ctx, tok, ctx.ProcessKey(tok.code, tok.ch, 0))
		}
	}
}

type token struct {
	code hime.Keycode
	ch   rune
	text string
}

// tokenize splits a line into keystroke tokens, recognizing the
// bracketed control-key names documented in the banner and treating
// every other rune as a printable keystroke.
func tokenize(line string) []token {
	var toks []token
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '<' {
			if j := indexRune(runes[i:], '>'); j > 0 {
				name := string(runes[i+1 : i+j])
				if code, ok := controlKey(name); ok {
					toks = append(toks, token{code: code, text: "<" + name + ">"})
					i += j
					continue
				}
			}
		}
		toks = append(toks, token{ch: runes[i], text: string(runes[i])})
	}
	return toks
}

func indexRune(r []rune, target rune) int {
	for i, c := range r {
		if c == target {
			return i
		}
	}
	return -1
}

func controlKey(name string) (hime.Keycode, bool) {
	switch strings.ToLower(name) {
	case "sp", "space":
		return hime.KeySpace, true
	case "bs", "backspace":
		return hime.KeyBackspace, true
	case "esc", "escape":
		return hime.KeyEscape, true
	case "cr", "enter":
		return hime.KeyEnter, true
	case "pu", "pageup":
		return hime.KeyPageUp, true
	case "pd", "pagedown":
		return hime.KeyPageDown, true
	default:
		return hime.KeyNone, false
	}
}

func report(ctx *hime.Context, tok token, r hime.Result) {
	fmt.Printf("  key %-6s -> %-8s preedit=%q", tok.text, r, ctx.GetPreedit())
	if ctx.HasCandidates() {
		var cands []string
		for i, e := range ctx.PageEntries() {
			cands = append(cands, fmt.Sprintf("%d:%s", i+1, e.Text))
		}
		fmt.Printf(" candidates=[%s]", strings.Join(cands, " "))
	}
	if r == hime.COMMIT {
		fmt.Printf(" commit=%q", ctx.GetCommit())
		ctx.ClearCommit()
	}
	fmt.Println()
}
