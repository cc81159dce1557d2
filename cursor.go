// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"bufio"
	"io"
)

// A Cursor reads runes one at a time from an input stream, tracking the
// line and column position of the next unread rune. It provides a
// single rune of lookahead via Peek.
type Cursor struct {
	r         *bufio.Reader
	line, col int
}

// NewCursor constructs a cursor that consumes input from r, positioned
// at line 1, column 1.
func NewCursor(r io.Reader) *Cursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Cursor{r: br, line: 1, col: 1}
}

// Location returns the position of the next unread rune.
func (c *Cursor) Location() LineCol { return LineCol{Line: c.line, Column: c.col} }

// Peek reports the next rune of the input without consuming it.
// It returns false if no input remains.
func (c *Cursor) Peek() (rune, bool) {
	ch, _, err := c.r.ReadRune()
	if err != nil {
		return 0, false
	}
	c.r.UnreadRune()
	return ch, true
}

// Next consumes and returns the next rune of the input. A newline
// advances the line and resets the column to 1; any other rune advances
// the column. When no input remains, Next returns io.EOF.
func (c *Cursor) Next() (rune, error) {
	ch, _, err := c.r.ReadRune()
	if err != nil {
		return 0, err
	}
	if ch == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return ch, nil
}

// SkipSpace consumes runes until the next rune of the input is not
// whitespace, or until the input is exhausted.
func (c *Cursor) SkipSpace() {
	for {
		ch, ok := c.Peek()
		if !ok || !IsSpace(ch) {
			return
		}
		c.Next()
	}
}

// IsSpace reports whether ch is JSON whitespace: space, tab, newline,
// or carriage return. All whitespace skipping is defined in terms of
// this predicate.
func IsSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}
