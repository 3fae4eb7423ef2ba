// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A Node is a node in an HTML document tree,
// one of [*Element], [*Void], and [*Text].
//
// Every node in a tree is owned by exactly one parent;
// the same node must not be added to a tree twice.
type Node interface {
	Node()

	printHTML(*printer)
	printInline(*printer)
}

// An Attr is a single attribute of an element.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list.
// Attributes print in list order.
type Attrs []Attr

// Get returns the value of the attribute with the given key
// and reports whether it was present.
func (a Attrs) Get(key string) (string, bool) {
	for _, x := range a {
		if x.Key == key {
			return x.Value, true
		}
	}
	return "", false
}

// Set sets the attribute key to value.
// An existing attribute keeps its position in the list;
// a new attribute is appended.
func (a *Attrs) Set(key, value string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{key, value})
}

// An Element is a [Node] with a start tag, an end tag,
// text content, and child nodes.
// Content prints before the children.
type Element struct {
	Tag      string
	Content  string
	Attr     Attrs
	Children []Node
}

func (*Element) Node() {}

// NewElement returns a new element with the given tag, content, and attributes.
// The tag is converted to lower case.
func NewElement(tag, content string, attr ...Attr) *Element {
	return &Element{Tag: lowerTag(tag), Content: content, Attr: attr}
}

// Add appends children to e and returns e.
// The children become owned by e.
func (e *Element) Add(children ...Node) *Element {
	for _, c := range children {
		if c == Node(e) {
			panic("mdhtml: element added to itself")
		}
	}
	e.Children = append(e.Children, children...)
	return e
}

// A Void is a [Node] for a void element such as <img> or <hr>,
// which has attributes but no content, no children, and no end tag.
type Void struct {
	Tag  string
	Attr Attrs
}

func (*Void) Node() {}

// NewVoid returns a new void element with the given tag and attributes.
// The tag is converted to lower case.
func NewVoid(tag string, attr ...Attr) *Void {
	return &Void{Tag: lowerTag(tag), Attr: attr}
}

// A Text is a [Node] holding plain text that follows
// an inline element inside a paragraph.
type Text struct {
	Text string
}

func (*Text) Node() {}

// lowerTag returns tag in lower case.
func lowerTag(tag string) string {
	for i := 0; i < len(tag); i++ {
		if c := tag[i]; 'A' <= c && c <= 'Z' || c >= 0x80 {
			// A Caser is not safe for concurrent use; make a new one.
			return cases.Lower(language.Und).String(tag)
		}
	}
	return tag
}
