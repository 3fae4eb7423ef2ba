// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import (
	"strings"
	"unicode/utf8"
)

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isSpaceTab reports whether c is a space or tab.
func isSpaceTab(c byte) bool {
	return c == ' ' || c == '\t'
}

// isText reports whether c can continue a plain text run.
// Bytes outside this set either start a construct
// or become single-rune text tokens.
func isText(c byte) bool {
	return isLetter(c) || isDigit(c) || isSpaceTab(c) ||
		c == '"' || c == ':' || c == '/' || c == '.' || c == '?' || c == '='
}

// trimRightSpaceTab returns s with trailing spaces and tabs removed.
func trimRightSpaceTab(s string) string {
	for len(s) > 0 && isSpaceTab(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

// trimSpaceTab returns s with leading and trailing spaces and tabs removed.
func trimSpaceTab(s string) string {
	for len(s) > 0 && isSpaceTab(s[0]) {
		s = s[1:]
	}
	return trimRightSpaceTab(s)
}

// normalize converts line endings to \n, replaces NUL bytes,
// and trims trailing space so that non-empty text ends
// in exactly one newline.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\x00", "\uFFFD")
	text = strings.TrimRight(text, " \t\n")
	if text == "" {
		return ""
	}
	return text + "\n"
}

// A lexer holds the scanning state of a single [Parser.Tokenize] call.
type lexer struct {
	text   string
	pos    Position // position of text[pos.Offset]
	strict bool
	bol    bool // nothing but spaces and tabs so far on this line
	space  bool // spaces or tabs since the last token
	toks   []Token

	lineEnd int             // offset of the end of the current line, once known
	miss    map[byte][2]int // c is not in text[miss[c][0]:miss[c][1]]
}

// Tokenize splits text into tokens.
// Line endings are normalized first, so token positions
// refer to the text with \r\n and \r replaced by \n.
//
// Tokenize returns an [*Error] only if p.Strict is set.
func (p *Parser) Tokenize(text string) ([]Token, error) {
	l := &lexer{
		text:   normalize(text),
		pos:    Position{Offset: 0, Line: 1, Col: 1},
		strict: p.Strict,
		bol:    true,

		lineEnd: -1,
	}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

func (l *lexer) run() error {
	for l.pos.Offset < len(l.text) {
		var err error
		switch c := l.peek(); {
		case c == '\n':
			l.emit(Newline, "", l.pos)
			l.next()
			l.bol = true
		case isSpaceTab(c):
			l.next()
			l.space = true
		case c == '#' && l.bol:
			l.lexHeading()
		case c == '[':
			err = l.lexLink(false)
		case c == '!' && l.peekAt(1) == '[':
			err = l.lexLink(true)
		case c == '`':
			err = l.lexCode()
		case c == '-' && l.bol:
			l.lexRule()
		case isText(c):
			l.lexText()
		case c == '*':
			l.emit(Asterisk, "", l.pos)
			l.next()
		default:
			l.lexRune()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// peek returns the current byte, or 0 at end of text.
func (l *lexer) peek() byte {
	return l.peekAt(0)
}

// peekAt returns the byte n bytes past the current one, or 0 past end of text.
func (l *lexer) peekAt(n int) byte {
	if i := l.pos.Offset + n; i < len(l.text) {
		return l.text[i]
	}
	return 0
}

// next advances past the current byte.
func (l *lexer) next() {
	if l.pos.Offset >= len(l.text) {
		return
	}
	if l.text[l.pos.Offset] == '\n' {
		l.pos.Line++
		l.pos.Col = 0
	}
	l.pos.Offset++
	l.pos.Col++
}

// skip advances past n bytes.
func (l *lexer) skip(n int) {
	for range n {
		l.next()
	}
}

// rest returns the unscanned text.
func (l *lexer) rest() string {
	return l.text[l.pos.Offset:]
}

// eol returns the offset of the newline ending the current line,
// or len(l.text) if there is none.
func (l *lexer) eol() int {
	if l.lineEnd < l.pos.Offset {
		l.lineEnd = len(l.text)
		if i := strings.IndexByte(l.rest(), '\n'); i >= 0 {
			l.lineEnd = l.pos.Offset + i
		}
	}
	return l.lineEnd
}

// find returns the offset of the first c in l.text[i:end], or -1.
// Failed searches are remembered, so that repeated searches for
// a missing closing delimiter take linear time overall.
func (l *lexer) find(c byte, i, end int) int {
	if m, ok := l.miss[c]; ok && m[0] <= i && end <= m[1] {
		return -1
	}
	j := strings.IndexByte(l.text[i:end], c)
	if j < 0 {
		if l.miss == nil {
			l.miss = make(map[byte][2]int)
		}
		l.miss[c] = [2]int{i, end}
		return -1
	}
	return i + j
}

func (l *lexer) emit(k Kind, value string, pos Position) {
	l.toks = append(l.toks, Token{Kind: k, Value: value, Pos: pos, Space: l.space})
	l.space = false
	l.bol = false
}

// lexText scans a maximal plain text run.
// Trailing spaces and tabs count as spacing before the next token.
func (l *lexer) lexText() {
	start := l.pos
	for isText(l.peek()) {
		l.next()
	}
	s := l.text[start.Offset:l.pos.Offset]
	t := trimRightSpaceTab(s)
	l.emit(PlainText, t, start)
	if len(t) < len(s) {
		l.space = true
	}
}

// lexRune emits the current rune, which matched no other rule, as text.
func (l *lexer) lexRune() {
	start := l.pos
	_, size := utf8.DecodeRuneInString(l.rest())
	l.skip(size)
	l.emit(PlainText, l.text[start.Offset:l.pos.Offset], start)
}

// unterminated handles a construct opened by open at start
// that has no closing delimiter.
// A strict lexer fails; otherwise the opening delimiter becomes text
// and scanning resumes just past it.
func (l *lexer) unterminated(start Position, open, what string) error {
	if l.strict {
		return &Error{Pos: start, Construct: what, Err: ErrUnterminated}
	}
	l.skip(len(open))
	l.emit(PlainText, open, start)
	return nil
}
