// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package jval provides the character-level machinery for parsing JSON
// text: a position-tracking input cursor with one rune of lookahead, and
// the positioned syntax error type shared by the parser.
//
// # Cursors
//
// The Cursor type reads runes one at a time from an io.Reader, tracking
// the line and column of the next unread rune. Peek reports the next
// rune without consuming it; Next consumes it and advances the position:
//
//	c := jval.NewCursor(input)
//	for {
//	   ch, err := c.Next()
//	   if err == io.EOF {
//	      break
//	   }
//	   log.Printf("%v: %q", c.Location(), ch)
//	}
//
// A cursor is exclusively owned by one parse in flight; it is not safe
// for concurrent use without external synchronization.
//
// # Errors
//
// Parse failures are reported as *jval.SyntaxError values carrying a
// human-readable message, a Kind tag classifying the cause, and the
// line/column location of the offending or missing character.
//
// The parser itself lives in the ast subpackage, which builds document
// trees from the runes a Cursor delivers and renders them back to text.
package jval
