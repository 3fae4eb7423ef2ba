// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import "strconv"

// lexHeading scans a heading: a run of #s at the start of a line
// followed by the heading text, which runs to the end of the line.
//
// Levels past 6 saturate: "####### x" is a level 6 heading
// with text "x". All the #s are consumed.
func (l *lexer) lexHeading() {
	start := l.pos
	n := 0
	for l.peek() == '#' {
		n++
		l.next()
	}
	i := l.pos.Offset
	for c := l.peek(); c != '\n' && c != 0; c = l.peek() {
		l.next()
	}
	l.emit(headingKind(n), trimSpaceTab(l.text[i:l.pos.Offset]), start)
}

// newHeading returns the <h1> through <h6> element for a heading.
// The tag name doubles as the class, for style sheets.
// Levels outside [1, 6] are clamped.
func newHeading(level int, text string) *Element {
	tag := "h" + strconv.Itoa(max(1, min(6, level)))
	return NewElement(tag, text, Attr{"class", tag})
}
