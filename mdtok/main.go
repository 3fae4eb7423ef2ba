// Copyright 2021 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mdtok prints the tokens of Markdown data.
//
// Usage:
//
//	mdtok [-strict] [file...]
//
// Mdtok reads the named files, or else standard input, as Markdown documents
// and prints one token per line: its position, its kind, and its value, if any.
// Tokens preceded by spacing are marked with a +.
//
// The -strict flag reports unterminated links, images, and code spans
// as errors instead of tokenizing them as plain text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"rsc.io/mdhtml"
)

var (
	strictFlag = flag.Bool("strict", false, "report unterminated constructs as errors")
	exit       = 0
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mdtok [-strict] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("mdtok: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	p := &mdhtml.Parser{Strict: *strictFlag}
	w := bufio.NewWriter(os.Stdout)

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		tokenize(w, p, data, "<stdin>")
	} else {
		for _, file := range flag.Args() {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			tokenize(w, p, data, file)
		}
	}
	w.Flush()
	os.Exit(exit)
}

func tokenize(w io.Writer, p *mdhtml.Parser, data []byte, file string) {
	toks, err := p.Tokenize(string(data))
	if err != nil {
		log.Printf("%s:%v", file, err)
		exit = 1
		return
	}
	printTokens(w, toks)
}

// printTokens prints toks to w, one per line.
func printTokens(w io.Writer, toks []mdhtml.Token) {
	for _, t := range toks {
		space := ""
		if t.Space {
			space = "+"
		}
		fmt.Fprintf(w, "%s\t%s%v\n", t.Pos, space, t)
	}
}
