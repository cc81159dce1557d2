// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jval

import "fmt"

// A Kind classifies the cause of a SyntaxError.
type Kind byte

// Constants defining the valid Kind values.
const (
	Unknown          Kind = iota // unclassified failure
	UnexpectedChar               // a character no production can begin with
	EndOfInput                   // input exhausted where a character was required
	BadLiteral                   // mismatched character inside true, false, or null
	BadNumber                    // numeric text failed conversion
	NonStringKey                 // object key is not a string
	MissingSeparator             // "," ":" "]" or "}" missing where required
)

var kindStr = [...]string{
	Unknown:          "unknown",
	UnexpectedChar:   "unexpected character",
	EndOfInput:       "end of input",
	BadLiteral:       "bad literal",
	BadNumber:        "bad number",
	NonStringKey:     "non-string key",
	MissingSeparator: "missing separator",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Unknown]
	}
	return kindStr[v]
}

// SyntaxError is the concrete type of errors reported by the parser.
// Location records the cursor position at the point of failure.
type SyntaxError struct {
	Kind     Kind
	Location LineCol
	Message  string
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}
