// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import (
	"fmt"
	"strconv"
)

//go:generate stringer -type=Kind -linecomment

// A Kind is the kind of a [Token].
type Kind int

const (
	Heading1       Kind = 1 + iota // heading-1
	Heading2                       // heading-2
	Heading3                       // heading-3
	Heading4                       // heading-4
	Heading5                       // heading-5
	Heading6                       // heading-6
	PlainText                      // text
	LinkText                       // link-text
	LinkHref                       // link-href
	ImageAlt                       // image-alt
	ImageSrc                       // image-src
	InlineCode                     // inline-code
	HorizontalRule                 // horizontal-rule
	Asterisk                       // asterisk
	Newline                        // newline
)

// HasValue reports whether tokens of kind k carry a value.
func (k Kind) HasValue() bool {
	switch k {
	case HorizontalRule, Asterisk, Newline:
		return false
	}
	return Heading1 <= k && k <= Newline
}

// Level returns the heading level of k, 1 through 6,
// or 0 if k is not a heading kind.
func (k Kind) Level() int {
	if Heading1 <= k && k <= Heading6 {
		return int(k-Heading1) + 1
	}
	return 0
}

// headingKind returns the token kind for a heading of level n.
// Levels past 6 saturate at 6.
func headingKind(n int) Kind {
	return Heading1 + Kind(max(1, min(6, n))-1)
}

// A Position is a location in the input text.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Col    int // column number in bytes, starting at 1
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// A Token is a lexical token of Markdown input.
type Token struct {
	Kind  Kind
	Value string // for kinds with HasValue
	Pos   Position

	// Space reports whether spaces or tabs separated this token
	// from the previous token on the same line.
	Space bool
}

func (t Token) String() string {
	if !t.Kind.HasValue() {
		return t.Kind.String()
	}
	return t.Kind.String() + ":" + strconv.Quote(t.Value)
}
