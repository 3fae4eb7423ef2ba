// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"rsc.io/mdhtml"
)

// loadHead returns the head settings in file,
// layered over [mdhtml.DefaultHead].
// An empty file name means the defaults.
func loadHead(file string) (*mdhtml.Head, error) {
	h := mdhtml.DefaultHead()
	if file == "" {
		return h, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), h)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, fmt.Errorf("%s: unknown setting %q", file, keys[0].String())
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, h); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	default:
		return nil, fmt.Errorf("%s: unknown config format %q", file, ext)
	}
	return h, nil
}
