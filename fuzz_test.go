// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/tools/txtar"
)

func Fuzz(f *testing.F) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for i := 0; i+2 <= len(a.Files); i += 2 {
			f.Add(decode(string(a.Files[i].Data)))
		}
	}
	f.Fuzz(func(t *testing.T, s string) {
		var p Parser
		toks, err := p.Tokenize(s)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", s, err)
		}
		var last Position
		for _, tok := range toks {
			if tok.Kind < Heading1 || tok.Kind > Newline {
				t.Fatalf("Tokenize(%q): bad kind %v", s, tok.Kind)
			}
			if !tok.Kind.HasValue() && tok.Value != "" {
				t.Fatalf("Tokenize(%q): %v has value %q", s, tok.Kind, tok.Value)
			}
			if tok.Pos.Offset < last.Offset || tok.Pos.Line < last.Line {
				t.Fatalf("Tokenize(%q): %v at %v after %v", s, tok, tok.Pos, last)
			}
			last = tok.Pos
		}

		doc, err := p.Convert(s, nil)
		if err != nil {
			t.Fatalf("Convert(%q): %v", s, err)
		}
		out := ToHTML(doc)
		if _, err := html.Parse(strings.NewReader(out)); err != nil {
			t.Fatalf("Convert(%q): output does not parse: %v\n%s", s, err, out)
		}

		// Strict mode either agrees or reports an unterminated construct.
		sp := Parser{Strict: true}
		if stoks, err := sp.Tokenize(s); err == nil && fmtTokens(stoks) != fmtTokens(toks) {
			t.Fatalf("Tokenize(%q): strict and tolerant disagree:\n%s\n%s", s, fmtTokens(stoks), fmtTokens(toks))
		}
	})
}
