// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import (
	"fmt"

	"golang.org/x/text/language"
)

// A Head holds the settings for the <head> of an assembled document.
// Lang is a BCP 47 language tag, Stylesheets lists style sheet URLs,
// and Style is inline CSS.
// Empty fields are left out, except Lang and Charset, which have defaults.
type Head struct {
	Lang        string   `toml:"lang" yaml:"lang"`
	Title       string   `toml:"title" yaml:"title"`
	Charset     string   `toml:"charset" yaml:"charset"`
	Author      string   `toml:"author" yaml:"author"`
	Viewport    string   `toml:"viewport" yaml:"viewport"`
	Stylesheets []string `toml:"stylesheets" yaml:"stylesheets"`
	Style       string   `toml:"style" yaml:"style"`
}

const (
	defaultLang    = "en-CA"
	defaultCharset = "utf-8"
)

// DefaultHead returns a new Head with the default settings.
func DefaultHead() *Head {
	return &Head{
		Lang:     defaultLang,
		Charset:  defaultCharset,
		Author:   "MD2HTML",
		Viewport: "width=device-width, initial-scale=1.0",
		Stylesheets: []string{
			"https://cdn.jsdelivr.net/npm/bootstrap@5.0.0-beta3/dist/css/bootstrap.min.css",
		},
	}
}

// Assemble returns a complete document for blocks:
//
//	<html lang="...">
//	    <head>...</head>
//	    <body>
//	        <div class="main container">blocks</div>
//	    </body>
//	</html>
//
// The blocks become owned by the container <div>.
// A nil h means [DefaultHead]. Assemble returns an error only
// if h.Lang is not a well-formed language tag.
func Assemble(blocks []Node, h *Head) (*Element, error) {
	if h == nil {
		h = DefaultHead()
	}
	lang := h.Lang
	if lang == "" {
		lang = defaultLang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("mdhtml: invalid lang %q: %w", lang, err)
	}

	main := NewElement("div", "", Attr{"class", "main container"}).Add(blocks...)
	return NewElement("html", "", Attr{"lang", tag.String()}).Add(
		newHead(h),
		NewElement("body", "").Add(main),
	), nil
}

func newHead(h *Head) *Element {
	head := NewElement("head", "")

	charset := h.Charset
	if charset == "" {
		charset = defaultCharset
	}
	head.Add(NewVoid("meta", Attr{"content", "text/html"}, Attr{"charset", charset}))
	if h.Author != "" {
		head.Add(NewVoid("meta", Attr{"name", "author"}, Attr{"content", h.Author}))
	}
	if h.Viewport != "" {
		head.Add(NewVoid("meta", Attr{"name", "viewport"}, Attr{"content", h.Viewport}))
	}
	if h.Title != "" {
		head.Add(NewElement("title", h.Title))
	}
	for _, href := range h.Stylesheets {
		head.Add(NewVoid("link", Attr{"rel", "stylesheet"}, Attr{"href", href}))
	}
	if h.Style != "" {
		head.Add(NewElement("style", h.Style, Attr{"type", "text/css"}))
	}
	return head
}
