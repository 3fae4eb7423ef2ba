// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import "strings"

// A Parser converts Markdown text into a tree of HTML nodes.
// The exported fields in the struct can be filled in before calling
// [Parser.Parse] in order to customize the details of the parsing process.
// A Parser holds no parsing state and can be used by
// multiple goroutines at once.
//
// The dialect is small: ATX headings, emphasis with *,
// code spans, links, images, horizontal rules, and paragraphs.
type Parser struct {
	// Strict makes unterminated links, images, and code spans
	// errors instead of plain text.
	Strict bool
}

// Parse parses text and returns its block-level nodes in document order:
// headings, paragraphs, and horizontal rules.
// Empty text returns no nodes and no error.
func (p *Parser) Parse(text string) ([]Node, error) {
	toks, err := p.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return Build(toks), nil
}

// Convert parses text and assembles a complete document using h.
// A nil h means [DefaultHead].
func (p *Parser) Convert(text string, h *Head) (*Element, error) {
	blocks, err := p.Parse(text)
	if err != nil {
		return nil, err
	}
	return Assemble(blocks, h)
}

// Convert converts text to a complete document
// using a Parser with default settings.
// A nil h means [DefaultHead].
func Convert(text string, h *Head) (*Element, error) {
	var p Parser
	return p.Convert(text, h)
}

// A builder holds the state of a single [Build] call.
type builder struct {
	toks   []Token
	i      int // next token
	blocks []Node

	open bool            // a paragraph is open
	para []Node          // finished inline nodes of the open paragraph
	text strings.Builder // pending text of the open paragraph
	brk  bool            // line break since the last inline node
	nl   int             // consecutive newline tokens
}

// Build converts tokens into block-level nodes in document order.
//
// Headings and horizontal rules are blocks of their own.
// Any other tokens on consecutive lines form one <p> paragraph,
// with the lines joined by a space. A blank line, heading,
// or horizontal rule ends a paragraph.
func Build(toks []Token) []Node {
	b := &builder{toks: toks}
	for b.i < len(b.toks) {
		t := b.toks[b.i]
		if t.Kind != Newline {
			b.nl = 0
		}
		switch {
		case t.Kind == Newline:
			b.nl++
			if b.nl >= 2 {
				b.closePara()
			}
			b.brk = true
			b.i++
		case t.Kind.Level() > 0:
			b.closePara()
			b.blocks = append(b.blocks, newHeading(t.Kind.Level(), t.Value))
			b.i++
		case t.Kind == HorizontalRule:
			b.closePara()
			b.blocks = append(b.blocks, newRule())
			b.i++
		default:
			b.inline()
		}
	}
	b.closePara()
	return b.blocks
}
