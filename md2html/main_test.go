// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"rsc.io/mdhtml"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestLoadHeadDefault(t *testing.T) {
	h, err := loadHead("")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(h, mdhtml.DefaultHead()) {
		t.Errorf("loadHead(\"\") = %+v, want defaults", h)
	}
}

func TestLoadHeadTOML(t *testing.T) {
	file := writeFile(t, "head.toml", `
lang = "fr-CA"
title = "Notes"
stylesheets = ["a.css", "b.css"]
style = "p { margin: 0 }"
`)
	h, err := loadHead(file)
	if err != nil {
		t.Fatal(err)
	}
	want := mdhtml.DefaultHead()
	want.Lang = "fr-CA"
	want.Title = "Notes"
	want.Stylesheets = []string{"a.css", "b.css"}
	want.Style = "p { margin: 0 }"
	if !reflect.DeepEqual(h, want) {
		t.Errorf("loadHead:\nhave %+v\nwant %+v", h, want)
	}
}

func TestLoadHeadYAML(t *testing.T) {
	for _, name := range []string{"head.yaml", "head.yml"} {
		file := writeFile(t, name, "title: Notes\nauthor: Gopher\nstylesheets:\n  - a.css\n")
		h, err := loadHead(file)
		if err != nil {
			t.Fatal(err)
		}
		want := mdhtml.DefaultHead()
		want.Title = "Notes"
		want.Author = "Gopher"
		want.Stylesheets = []string{"a.css"}
		if !reflect.DeepEqual(h, want) {
			t.Errorf("loadHead(%s):\nhave %+v\nwant %+v", name, h, want)
		}
	}
}

func TestLoadHeadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  string
	}{
		{"head.json", `{"title": "x"}`, `unknown config format ".json"`},
		{"head.toml", `color = "red"`, `unknown setting "color"`},
		{"head.toml", `title = `, "head.toml: "},
		{"head.yaml", "title: [", "head.yaml: "},
	}
	for _, tt := range tests {
		_, err := loadHead(writeFile(t, tt.name, tt.data))
		if err == nil || !strings.Contains(err.Error(), tt.err) {
			t.Errorf("loadHead(%s %q) = %v, want error containing %q", tt.name, tt.data, err, tt.err)
		}
	}
	if _, err := loadHead(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("loadHead(missing) = %v, want ErrNotExist", err)
	}
}

func TestConvert(t *testing.T) {
	var p mdhtml.Parser
	out, ntok, err := convert(&p, mdhtml.DefaultHead(), []byte("# Hi\n\n*there*"))
	if err != nil {
		t.Fatal(err)
	}
	if ntok != 7 {
		t.Errorf("convert: %d tokens, want 7", ntok)
	}
	for _, want := range []string{
		"<!DOCTYPE html>\n",
		`<html lang="en-CA">`,
		`<h1 class="h1">Hi</h1>`,
		"<p><i>there</i></p>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("convert output missing %q:\n%s", want, out)
		}
	}

	p.Strict = true
	if _, _, err := convert(&p, nil, []byte("[x")); !errors.Is(err, mdhtml.ErrUnterminated) {
		t.Errorf("strict convert = %v, want ErrUnterminated", err)
	}
	if _, _, err := convert(&p, &mdhtml.Head{Lang: "?"}, []byte("x")); err == nil {
		t.Errorf("convert with bad lang succeeded")
	}
}

func TestHTMLName(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"doc.md", "doc.html"},
		{"dir/README.markdown", "dir/README.html"},
		{"notes", "notes.html"},
		{"a.b/c.md", "a.b/c.html"},
	}
	for _, tt := range tests {
		if out := htmlName(tt.in); out != tt.out {
			t.Errorf("htmlName(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}
