// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

// lexRule scans a run of dashes at the start of a line.
// Three or more dashes ending the line, apart from trailing spaces,
// are a horizontal rule. Any other run is dropped.
func (l *lexer) lexRule() {
	start := l.pos
	n := 0
	for l.peek() == '-' {
		n++
		l.next()
	}
	i := l.pos.Offset
	for i < len(l.text) && isSpaceTab(l.text[i]) {
		i++
	}
	if n >= 3 && (i == len(l.text) || l.text[i] == '\n') {
		l.skip(i - l.pos.Offset)
		l.emit(HorizontalRule, "", start)
		return
	}
	l.bol = false
}

// newRule returns the <hr> element for a horizontal rule.
func newRule() *Void {
	return NewVoid("hr")
}
