// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

// lexLink scans a link "[text](target)" or, if image is set,
// an image "![alt](source)", emitting two tokens:
// the text and the target.
// The "(target)" part is optional; without it the target is empty.
// Both parts must be closed on the line where they start.
func (l *lexer) lexLink(image bool) error {
	start := l.pos
	open, textKind, targetKind, what := "[", LinkText, LinkHref, "link"
	if image {
		open, textKind, targetKind, what = "![", ImageAlt, ImageSrc, "image"
	}

	eol := l.eol()
	i := l.pos.Offset + len(open)
	end := l.find(']', i, eol)
	if end < 0 {
		return l.unterminated(start, open, what)
	}
	text := l.text[i:end]

	var target string
	hasTarget := end+1 < eol && l.text[end+1] == '('
	if hasTarget {
		j := l.find(')', end+2, eol)
		if j < 0 {
			return l.unterminated(start, open, what)
		}
		target = l.text[end+2 : j]
	}

	l.skip(len(open) + len(text) + 1)
	targetPos := l.pos
	if hasTarget {
		l.next() // (
		targetPos = l.pos
		l.skip(len(target) + 1)
	}
	l.emit(textKind, text, start)
	l.emit(targetKind, target, targetPos)
	return nil
}

// newLink returns the <a> element for a link.
func newLink(text, href string) *Element {
	return NewElement("a", text, Attr{"href", href})
}

// newImage returns the <img> element for an image.
func newImage(alt, src string) *Void {
	return NewVoid("img", Attr{"alt", alt}, Attr{"src", src})
}
