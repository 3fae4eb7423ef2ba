// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import (
	"strings"
	"testing"
)

func TestAssembleLang(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"", "en-CA"},
		{"en-CA", "en-CA"},
		{"EN-ca", "en-CA"},
		{"fr", "fr"},
	}
	for _, tt := range tests {
		doc, err := Assemble(nil, &Head{Lang: tt.lang})
		if err != nil {
			t.Errorf("Assemble(lang=%q): %v", tt.lang, err)
			continue
		}
		if lang, _ := doc.Attr.Get("lang"); lang != tt.want {
			t.Errorf("Assemble(lang=%q) lang = %q, want %q", tt.lang, lang, tt.want)
		}
	}
}

func TestAssembleBadLang(t *testing.T) {
	_, err := Assemble(nil, &Head{Lang: "not a language"})
	if err == nil || !strings.Contains(err.Error(), `invalid lang "not a language"`) {
		t.Errorf("Assemble with bad lang = %v, want invalid lang error", err)
	}
}

func TestAssembleHead(t *testing.T) {
	h := &Head{
		Title:       "Notes & Things",
		Stylesheets: []string{"a.css", "b.css"},
		Style:       "p > i { color: red }",
	}
	doc, err := Assemble(nil, h)
	if err != nil {
		t.Fatal(err)
	}
	out := ToHTML(doc.Children[0])
	want := `<head>
    <meta content="text/html" charset="utf-8" />
    <title>Notes &amp; Things</title>
    <link rel="stylesheet" href="a.css" />
    <link rel="stylesheet" href="b.css" />
    <style type="text/css">p > i { color: red }</style>
</head>
`
	if out != want {
		t.Errorf("head:\nhave:\n%s\nwant:\n%s", out, want)
	}
}

func TestAssembleDefaults(t *testing.T) {
	doc, err := Assemble(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	def, err := Assemble(nil, DefaultHead())
	if err != nil {
		t.Fatal(err)
	}
	if ToHTML(doc) != ToHTML(def) {
		t.Errorf("nil Head differs from DefaultHead:\n%s\n%s", ToHTML(doc), ToHTML(def))
	}
	if DefaultHead() == DefaultHead() {
		t.Errorf("DefaultHead returned a shared Head")
	}
}

func TestAssembleOwnsBlocks(t *testing.T) {
	var p Parser
	blocks, err := p.Parse("# a\n\nb\n---")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := Assemble(blocks, nil)
	if err != nil {
		t.Fatal(err)
	}
	body := doc.Children[1].(*Element)
	div := body.Children[0].(*Element)
	if class, _ := div.Attr.Get("class"); div.Tag != "div" || class != "main container" {
		t.Fatalf("container = <%s class=%q>", div.Tag, class)
	}
	if len(div.Children) != len(blocks) {
		t.Fatalf("container has %d children, want %d", len(div.Children), len(blocks))
	}
	for i := range blocks {
		if div.Children[i] != blocks[i] {
			t.Errorf("child %d is not block %d", i, i)
		}
	}
}
