// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/creachadair/jval"

	"go4.org/mem"
)

// A Parser reads JSON values from a stream of characters. Each call to
// Parse consumes exactly one value beginning at the current cursor
// position; any input following the value is left unconsumed for the
// caller. A Parser is exclusively owned by one parse in flight and must
// not be shared among goroutines.
type Parser struct {
	c *jval.Cursor
}

// NewParser constructs a parser that consumes input from r.
func NewParser(r io.Reader) *Parser { return &Parser{c: jval.NewCursor(r)} }

// Parse parses a single JSON value from r. In case of error, the
// returned error has concrete type *jval.SyntaxError.
func Parse(r io.Reader) (Value, error) { return NewParser(r).Parse() }

// ParseString parses a single JSON value from s.
func ParseString(s string) (Value, error) { return Parse(strings.NewReader(s)) }

// Parse parses a single value beginning at the cursor position. The
// first character of the input selects the production: "t", "f", and
// "n" begin the keyword literals, "{" an object, "[" an array, a
// quotation mark a string, and a digit or minus sign a number. Any
// other character, including whitespace, is an error.
func (p *Parser) Parse() (Value, error) {
	ch, ok := p.c.Peek()
	if !ok {
		return nil, p.eof()
	}
	switch {
	case ch == 't':
		return p.parseLiteral(litTrue, Bool(true))
	case ch == 'f':
		return p.parseLiteral(litFalse, Bool(false))
	case ch == 'n':
		return p.parseLiteral(litNull, Null{})
	case ch == '{':
		return p.parseObject()
	case ch == '[':
		return p.parseArray()
	case ch == '"':
		return p.parseString()
	case ch == '-' || isDigit(ch):
		return p.parseNumber()
	default:
		return nil, p.errorf(jval.UnexpectedChar, "unexpected character %q", ch)
	}
}

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// parseLiteral consumes the characters of word one at a time and
// reports v if all of them match.
func (p *Parser) parseLiteral(word mem.RO, v Value) (Value, error) {
	name := word.StringCopy()
	for i := 0; i < word.Len(); i++ {
		want := rune(word.At(i))
		ch, err := p.c.Next()
		if err != nil {
			return nil, p.errorf(jval.EndOfInput,
				"failed parsing %s - unexpected end of input, expected character %q", name, want)
		}
		if ch != want {
			return nil, p.errorf(jval.BadLiteral,
				"failed parsing %s - expected character %q but received %q", name, want, ch)
		}
	}
	return v, nil
}

// parseNumber consumes an optional minus sign, one or more digits, and
// an optional fractional part introduced by a decimal point. Exponent
// notation is not part of the grammar.
func (p *Parser) parseNumber() (Value, error) {
	var buf strings.Builder
	if ch, ok := p.c.Peek(); ok && ch == '-' {
		p.c.Next()
		buf.WriteRune(ch)
	}
	if err := p.digits(&buf); err != nil {
		return nil, err
	}
	if ch, ok := p.c.Peek(); ok && ch == '.' {
		p.c.Next()
		buf.WriteRune(ch)
		if err := p.digits(&buf); err != nil {
			return nil, err
		}
	}

	// The grammar above should not admit text ParseFloat rejects;
	// a failure here reports the conversion error as-is.
	v, err := strconv.ParseFloat(buf.String(), 64)
	if err != nil {
		return nil, p.errorf(jval.BadNumber, "%v", err)
	}
	return Number(v), nil
}

// digits consumes one or more decimal digits into buf.
func (p *Parser) digits(buf *strings.Builder) error {
	ch, err := p.c.Next()
	if err != nil {
		return p.eof()
	}
	if !isDigit(ch) {
		return p.errorf(jval.UnexpectedChar, "expected a digit but received character %q", ch)
	}
	buf.WriteRune(ch)
	for {
		ch, ok := p.c.Peek()
		if !ok || !isDigit(ch) {
			return nil
		}
		p.c.Next()
		buf.WriteRune(ch)
	}
}

// parseString consumes characters through the next quotation mark.
// Escape sequences are not decoded; a backslash is an ordinary
// character of the payload.
func (p *Parser) parseString() (Value, error) {
	p.c.Next() // opening quote, established by dispatch
	var buf strings.Builder
	for {
		ch, err := p.c.Next()
		if err != nil {
			return nil, p.eof()
		}
		if ch == '"' {
			return String(buf.String()), nil
		}
		buf.WriteRune(ch)
	}
}

func (p *Parser) parseArray() (Value, error) {
	p.c.Next() // opening bracket, established by dispatch

	vs := Array{}
	p.c.SkipSpace()
	if ch, ok := p.c.Peek(); ok && ch == ']' {
		p.c.Next()
		return vs, nil
	}
	for {
		v, err := p.Parse()
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)

		p.c.SkipSpace()
		ch, err := p.c.Next()
		if err != nil {
			return nil, p.eof()
		}
		switch ch {
		case ',':
			// A comma commits the array to another value; a close
			// bracket next fails in the value dispatch.
			p.c.SkipSpace()
		case ']':
			return vs, nil
		default:
			return nil, p.errorf(jval.MissingSeparator,
				"expected array separator ',' or close ']' but received %q", ch)
		}
	}
}

func (p *Parser) parseObject() (Value, error) {
	p.c.Next() // opening brace, established by dispatch

	obj := Object{}
	p.c.SkipSpace()
	if ch, ok := p.c.Peek(); ok && ch == '}' {
		p.c.Next()
		return obj, nil
	}
	for {
		kv, err := p.Parse()
		if err != nil {
			return nil, err
		}
		key, ok := kv.(String)
		if !ok {
			return nil, p.errorf(jval.NonStringKey, "object key must be a string")
		}

		p.c.SkipSpace()
		ch, err := p.c.Next()
		if err != nil {
			return nil, p.eof()
		}
		if ch != ':' {
			return nil, p.errorf(jval.MissingSeparator,
				"expected ':' after object key but received %q", ch)
		}

		p.c.SkipSpace()
		v, err := p.Parse()
		if err != nil {
			return nil, err
		}
		if m := obj.Find(string(key)); m != nil {
			m.Value = v // duplicate key, last write wins
		} else {
			obj = append(obj, &Member{Key: string(key), Value: v})
		}

		p.c.SkipSpace()
		ch, err = p.c.Next()
		if err != nil {
			return nil, p.eof()
		}
		switch ch {
		case ',':
			p.c.SkipSpace()
		case '}':
			return obj, nil
		default:
			return nil, p.errorf(jval.MissingSeparator,
				"expected member separator ',' or close '}' but received %q", ch)
		}
	}
}

func (p *Parser) eof() error {
	return p.errorf(jval.EndOfInput, "unexpected end of input")
}

func (p *Parser) errorf(kind jval.Kind, msg string, args ...any) error {
	return &jval.SyntaxError{
		Kind:     kind,
		Location: p.c.Location(),
		Message:  fmt.Sprintf(msg, args...),
	}
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
