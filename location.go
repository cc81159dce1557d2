// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jval

import "fmt"

// A LineCol describes the position of a character in source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // column offset within the line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
