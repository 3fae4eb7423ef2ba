// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

// addText adds text to the open paragraph, opening one if needed.
// If space is set and the paragraph already has content,
// a single space separates the two.
func (b *builder) addText(s string, space bool) {
	if space && b.open {
		b.text.WriteByte(' ')
	}
	b.text.WriteString(s)
	b.open = true
}

// addNode adds an inline element to the open paragraph, opening one if needed.
func (b *builder) addNode(n Node, space bool) {
	if space && b.open {
		b.text.WriteByte(' ')
	}
	b.flushText()
	b.para = append(b.para, n)
	b.open = true
}

// flushText moves pending paragraph text into a [Text] node.
func (b *builder) flushText() {
	if b.text.Len() > 0 {
		b.para = append(b.para, &Text{b.text.String()})
		b.text.Reset()
	}
}

// closePara ends the open paragraph, if any,
// and adds it to the block list as a <p> element.
// Text before the first inline element becomes the
// paragraph's content; later text becomes [Text] children.
func (b *builder) closePara() {
	if !b.open {
		return
	}
	b.flushText()
	p := NewElement("p", "")
	inl := b.para
	if len(inl) > 0 {
		if t, ok := inl[0].(*Text); ok {
			p.Content = t.Text
			inl = inl[1:]
		}
	}
	p.Add(inl...)
	b.blocks = append(b.blocks, p)
	b.para = nil
	b.open = false
	b.brk = false
}
