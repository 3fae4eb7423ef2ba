// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhtml

import (
	"errors"
	"fmt"
)

// ErrUnterminated is the cause of an [*Error] for a link, image,
// or code span that is opened but never closed.
var ErrUnterminated = errors.New("unterminated")

// An Error reports a construct the [Parser] refused to convert.
// Only a strict parser returns errors.
type Error struct {
	Pos       Position // position of the opening delimiter
	Construct string   // "link", "image", or "code span"
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v %s", e.Pos, e.Err, e.Construct)
}

func (e *Error) Unwrap() error { return e.Err }
