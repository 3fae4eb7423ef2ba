// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2html converts Markdown to HTML documents.
//
// Usage:
//
//	md2html [-config file] [-strict] [-v] [-w] [file...]
//
// Md2html reads the named files, or else standard input, as Markdown documents
// and then prints the corresponding HTML documents to standard output.
//
// The -config flag names a TOML (.toml) or YAML (.yaml, .yml) file
// of document head settings: lang, title, charset, author, viewport,
// stylesheets, and style. Settings it leaves out keep their defaults.
//
// The -strict flag reports unterminated links, images, and code spans
// as errors instead of converting them to plain text.
//
// The -w flag writes each name.md to name.html instead of standard output.
//
// The -v flag logs the size of each conversion.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"rsc.io/mdhtml"
)

var (
	configFlag = flag.String("config", "", "read document head settings from `file`")
	strictFlag = flag.Bool("strict", false, "report unterminated constructs as errors")
	vflag      = flag.Bool("v", false, "log conversion sizes")
	wflag      = flag.Bool("w", false, "write name.html files instead of standard output")
	exit       = 0
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: md2html [-config file] [-strict] [-v] [-w] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("md2html: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	head, err := loadHead(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	p := &mdhtml.Parser{Strict: *strictFlag}

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		do(p, head, data, "")
	} else {
		for _, file := range flag.Args() {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			do(p, head, data, file)
		}
	}
	os.Exit(exit)
}

func do(p *mdhtml.Parser, head *mdhtml.Head, data []byte, file string) {
	name := file
	if name == "" {
		name = "<stdin>"
	}
	out, ntok, err := convert(p, head, data)
	if err != nil {
		var perr *mdhtml.Error
		if errors.As(err, &perr) {
			log.Printf("%s:%v", name, err) // position follows the name
		} else {
			log.Printf("%s: %v", name, err)
		}
		exit = 1
		return
	}
	if *vflag {
		log.Printf("%s: %s in, %s tokens, %s out", name,
			humanize.Bytes(uint64(len(data))), humanize.Comma(int64(ntok)), humanize.Bytes(uint64(len(out))))
	}
	if *wflag && file != "" {
		if err := os.WriteFile(htmlName(file), []byte(out), 0666); err != nil {
			log.Print(err)
			exit = 1
		}
		return
	}
	os.Stdout.WriteString(out)
}

// convert converts Markdown to an HTML document,
// also returning the number of tokens in the Markdown.
func convert(p *mdhtml.Parser, head *mdhtml.Head, md []byte) (string, int, error) {
	toks, err := p.Tokenize(string(md))
	if err != nil {
		return "", 0, err
	}
	doc, err := mdhtml.Assemble(mdhtml.Build(toks), head)
	if err != nil {
		return "", 0, err
	}
	return mdhtml.ToHTML(doc), len(toks), nil
}

// htmlName returns the name of the HTML file written for file.
func htmlName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + ".html"
}
