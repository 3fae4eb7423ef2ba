// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import "bytes"

type printer struct {
	buf   bytes.Buffer
	depth int // indentation level
}

// ToHTML returns the HTML text for the tree rooted at n.
// Elements holding only text and inline elements print on one line;
// others print their content and children on separate lines,
// indented four spaces per level.
// An <html> root is preceded by a doctype.
//
// Text and attribute values are escaped here; the tree holds them unescaped.
func ToHTML(n Node) string {
	var p printer
	if e, ok := n.(*Element); ok && e.Tag == "html" {
		p.html("<!DOCTYPE html>\n")
	}
	n.printHTML(&p)
	return p.buf.String()
}

func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

func (p *printer) text(list ...string) {
	for _, s := range list {
		htmlEscaper.WriteString(&p.buf, s)
	}
}

func (p *printer) indent() {
	for range p.depth {
		p.buf.WriteString("    ")
	}
}

// startTag prints the start tag for tag and attr, without the closing >.
func (p *printer) startTag(tag string, attr Attrs) {
	p.html("<", tag)
	for _, a := range attr {
		p.html(" ", a.Key, `="`)
		p.text(a.Value)
		p.html(`"`)
	}
}

// content prints the content of a tag element.
// The content of raw text elements like <style> is not escaped.
func (p *printer) content(tag, s string) {
	if rawTags[tag] {
		p.html(s)
		return
	}
	p.text(s)
}
