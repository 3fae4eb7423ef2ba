// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

// lexCode scans a code span: the text between a pair of backticks.
// Unlike links, a code span may continue onto later lines.
func (l *lexer) lexCode() error {
	start := l.pos
	end := l.find('`', start.Offset+1, len(l.text))
	if end < 0 {
		return l.unterminated(start, "`", "code span")
	}
	l.next() // `
	i := l.pos.Offset
	l.skip(end - i)
	code := l.text[i:l.pos.Offset]
	l.next() // `
	l.emit(InlineCode, code, start)
	return nil
}

// newCode returns the <code> element for a code span.
func newCode(text string) *Element {
	return NewElement("code", text)
}
