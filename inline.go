// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import "strings"

// inline converts the inline construct starting at b.toks[b.i]
// and adds it to the open paragraph.
func (b *builder) inline() {
	t := b.toks[b.i]
	space := t.Space || b.brk
	b.brk = false
	switch t.Kind {
	case PlainText:
		b.addText(t.Value, space)
		b.i++
	case LinkText, LinkHref:
		text, href := b.pair(LinkText, LinkHref)
		b.addNode(newLink(text, href), space)
	case ImageAlt, ImageSrc:
		alt, src := b.pair(ImageAlt, ImageSrc)
		b.addNode(newImage(alt, src), space)
	case InlineCode:
		b.addNode(newCode(t.Value), space)
		b.i++
	case Asterisk:
		b.emphasis(space)
	default:
		b.i++
	}
}

// pair consumes a token of kind first, a token of kind second, or both,
// returning their values.
// The lexer always emits both, but a hand-built token list may not.
func (b *builder) pair(first, second Kind) (x, y string) {
	if b.toks[b.i].Kind == first {
		x = b.toks[b.i].Value
		b.i++
	}
	if b.i < len(b.toks) && b.toks[b.i].Kind == second {
		y = b.toks[b.i].Value
		b.i++
	}
	return x, y
}

// emphasis converts an emphasis run starting at b.toks[b.i]:
// a run of asterisks, plain text, and a closing run of asterisks,
// all on one line.
// If there is no closing run, or anything other than plain text
// comes before it, the opening run is literal text.
func (b *builder) emphasis(space bool) {
	left := b.run(b.i)
	j := b.i + left

	var text strings.Builder
	k := j
	for k < len(b.toks) && b.toks[k].Kind == PlainText {
		if k > j && b.toks[k].Space {
			text.WriteByte(' ')
		}
		text.WriteString(b.toks[k].Value)
		k++
	}
	if k == len(b.toks) || b.toks[k].Kind != Asterisk {
		b.addText(strings.Repeat("*", left), space)
		b.i = j
		return
	}

	right := b.run(k)
	b.addNode(emphasize(left, right, text.String()), space)
	b.i = k + right
}

// run returns the length of the run of asterisks starting at b.toks[i].
// Spacing ends a run.
func (b *builder) run(i int) int {
	n := 1
	for i+n < len(b.toks) && b.toks[i+n].Kind == Asterisk && !b.toks[i+n].Space {
		n++
	}
	return n
}

// emphasize returns the node for text between a run of left asterisks
// and a run of right asterisks.
//
// Matched runs give <i> for 1, <b> for 2, and past that <b> for even
// lengths and <i><b>text</b></i> for odd lengths.
//
// Mismatched runs are recovered, not rejected: the surplus asterisks
// from the longer run are kept as text on that side, and the shorter
// run decides the tag, <b> if even and <i> if odd.
func emphasize(left, right int, text string) Node {
	if left != right {
		if left > right {
			text = strings.Repeat("*", left-right) + text
		} else {
			text += strings.Repeat("*", right-left)
		}
		if min(left, right)%2 == 0 {
			return NewElement("b", text)
		}
		return NewElement("i", text)
	}

	switch {
	case left == 1:
		return NewElement("i", text)
	case left%2 == 0:
		return NewElement("b", text)
	default:
		return NewElement("i", "").Add(NewElement("b", text))
	}
}
