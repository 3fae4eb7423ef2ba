// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import "strings"

var htmlEscaper = strings.NewReplacer(
	`"`, "&quot;",
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
)

// inlineTags are the elements that print inside a line of text.
var inlineTags = map[string]bool{
	"a":    true,
	"b":    true,
	"code": true,
	"i":    true,
	"img":  true,
	"span": true,
}

// rawTags are the elements whose content is raw text.
var rawTags = map[string]bool{
	"script": true,
	"style":  true,
}

// isInline reports whether n prints inside a line of text.
func isInline(n Node) bool {
	switch n := n.(type) {
	case *Text:
		return true
	case *Element:
		return inlineTags[n.Tag]
	case *Void:
		return inlineTags[n.Tag]
	}
	return false
}

// flat reports whether e prints on a single line.
func (e *Element) flat() bool {
	for _, c := range e.Children {
		if !isInline(c) {
			return false
		}
	}
	return true
}

func (e *Element) printHTML(p *printer) {
	p.indent()
	if e.flat() {
		e.printInline(p)
		p.html("\n")
		return
	}
	p.startTag(e.Tag, e.Attr)
	p.html(">\n")
	p.depth++
	if e.Content != "" {
		p.indent()
		p.content(e.Tag, e.Content)
		p.html("\n")
	}
	for _, c := range e.Children {
		c.printHTML(p)
	}
	p.depth--
	p.indent()
	p.html("</", e.Tag, ">\n")
}

func (e *Element) printInline(p *printer) {
	p.startTag(e.Tag, e.Attr)
	p.html(">")
	p.content(e.Tag, e.Content)
	for _, c := range e.Children {
		c.printInline(p)
	}
	p.html("</", e.Tag, ">")
}

func (v *Void) printHTML(p *printer) {
	p.indent()
	v.printInline(p)
	p.html("\n")
}

func (v *Void) printInline(p *printer) {
	p.startTag(v.Tag, v.Attr)
	p.html(" />")
}

func (t *Text) printHTML(p *printer) {
	p.indent()
	p.text(t.Text)
	p.html("\n")
}

func (t *Text) printInline(p *printer) {
	p.text(t.Text)
}
