// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jval"
	"github.com/creachadair/jval/ast"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
	}{
		// Keyword literals.
		{`null`, ast.Null{}},
		{`true`, ast.Bool(true)},
		{`false`, ast.Bool(false)},

		// Numbers.
		{`0`, ast.Number(0)},
		{`123`, ast.Number(123)},
		{`-12.5`, ast.Number(-12.5)},
		{`1234.1234`, ast.Number(1234.1234)},
		{`-0`, ast.Number(0)},

		// Strings; note escape sequences are not decoded.
		{`"abc"`, ast.String("abc")},
		{`""`, ast.String("")},
		{`"a b c"`, ast.String("a b c")},
		{`"a\nb"`, ast.String(`a\nb`)},

		// Arrays.
		{`[]`, ast.Array{}},
		{`[ ]`, ast.Array{}},
		{`[1,2,3]`, ast.Array{ast.Number(1), ast.Number(2), ast.Number(3)}},
		{`[[true]]`, ast.Array{ast.Array{ast.Bool(true)}}},
		{`[1, 1.0, true, null, "ok"]`, ast.Array{
			ast.Number(1), ast.Number(1), ast.Bool(true), ast.Null{}, ast.String("ok"),
		}},

		// Objects.
		{`{}`, ast.Object{}},
		{`{ }`, ast.Object{}},
		{`{"a":1}`, ast.Object{{Key: "a", Value: ast.Number(1)}}},
		{`{"a":{"b":[]}}`, ast.Object{
			{Key: "a", Value: ast.Object{{Key: "b", Value: ast.Array{}}}},
		}},

		// Duplicate keys: the last write wins.
		{`{"a":1,"a":2}`, ast.Object{{Key: "a", Value: ast.Number(2)}}},
	}
	for _, test := range tests {
		got, err := ast.ParseString(test.input)
		if err != nil {
			t.Errorf("Parse %#q: unexpected error: %v", test.input, err)
			continue
		}
		if !ast.Equal(got, test.want) {
			t.Errorf("Parse %#q: got %s, want %s", test.input, got.JSON(), test.want.JSON())
		}
	}
}

func TestParseWhitespace(t *testing.T) {
	// Whitespace between structural tokens must not affect the value.
	pairs := [][2]string{
		{`[1,2,3]`, `[ 1 , 2 , 3 ]`},
		{`[1,2,3]`, "[\n  1,\n  2,\n  3]"},
		{`{"a":1}`, `{ "a" : 1 }`},
		{`{"a":1,"b":[true]}`, "{\r\n\t\"a\": 1,\r\n\t\"b\": [ true ]\r\n}"},
	}
	for _, pair := range pairs {
		a, err := ast.ParseString(pair[0])
		if err != nil {
			t.Fatalf("Parse %#q: unexpected error: %v", pair[0], err)
		}
		b, err := ast.ParseString(pair[1])
		if err != nil {
			t.Fatalf("Parse %#q: unexpected error: %v", pair[1], err)
		}
		if !ast.Equal(a, b) {
			t.Errorf("Values differ: %s vs %s", a.JSON(), b.JSON())
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		kind    jval.Kind
		loc     jval.LineCol
		message string // must be a substring of the error message
	}{
		{``, jval.EndOfInput, jval.LineCol{Line: 1, Column: 1}, "unexpected end of input"},

		// Leading whitespace is not skipped at the value dispatch.
		{` 1`, jval.UnexpectedChar, jval.LineCol{Line: 1, Column: 1}, "unexpected character ' '"},
		{`@`, jval.UnexpectedChar, jval.LineCol{Line: 1, Column: 1}, "unexpected character '@'"},

		// Truncated and misspelled keyword literals.
		{`tru`, jval.EndOfInput, jval.LineCol{Line: 1, Column: 4}, "failed parsing true"},
		{`tru`, jval.EndOfInput, jval.LineCol{Line: 1, Column: 4}, "'e'"},
		{`falze`, jval.BadLiteral, jval.LineCol{Line: 1, Column: 5},
			"failed parsing false - expected character 's' but received 'z'"},
		{`nul`, jval.EndOfInput, jval.LineCol{Line: 1, Column: 4}, "failed parsing null"},

		// Malformed numbers: a digit is required after the sign and
		// after the decimal point.
		{`-`, jval.EndOfInput, jval.LineCol{Line: 1, Column: 2}, "unexpected end of input"},
		{`-x`, jval.UnexpectedChar, jval.LineCol{Line: 1, Column: 3}, "expected a digit but received character 'x'"},
		{`5.`, jval.EndOfInput, jval.LineCol{Line: 1, Column: 3}, "unexpected end of input"},
		{`5.x`, jval.UnexpectedChar, jval.LineCol{Line: 1, Column: 4}, "expected a digit"},

		// Unterminated string.
		{`"abc`, jval.EndOfInput, jval.LineCol{Line: 1, Column: 5}, "unexpected end of input"},

		// Arrays.
		{`[`, jval.EndOfInput, jval.LineCol{Line: 1, Column: 2}, "unexpected end of input"},
		{`[1`, jval.EndOfInput, jval.LineCol{Line: 1, Column: 3}, "unexpected end of input"},
		{`[1,]`, jval.UnexpectedChar, jval.LineCol{Line: 1, Column: 4}, "unexpected character ']'"},
		{`[1 2]`, jval.MissingSeparator, jval.LineCol{Line: 1, Column: 5}, "',' or close ']'"},

		// Objects.
		{`{1:2}`, jval.NonStringKey, jval.LineCol{Line: 1, Column: 3}, "object key must be a string"},
		{`{"a" 1}`, jval.MissingSeparator, jval.LineCol{Line: 1, Column: 7}, "expected ':' after object key"},
		{`{"a":1,}`, jval.UnexpectedChar, jval.LineCol{Line: 1, Column: 8}, "unexpected character '}'"},
		{`{"a":1 "b":2}`, jval.MissingSeparator, jval.LineCol{Line: 1, Column: 9}, "',' or close '}'"},
		{`{"a"}`, jval.MissingSeparator, jval.LineCol{Line: 1, Column: 6}, "expected ':'"},

		// Positions track newlines through skipped whitespace.
		{"[\n1,\n]", jval.UnexpectedChar, jval.LineCol{Line: 3, Column: 1}, "unexpected character ']'"},
		{"{\n  \"a\": tru\n}", jval.BadLiteral, jval.LineCol{Line: 3, Column: 1},
			"expected character 'e' but received '\\n'"},
	}
	for _, test := range tests {
		v, err := ast.ParseString(test.input)
		if err == nil {
			t.Errorf("Parse %#q: got %s, want error", test.input, v.JSON())
			continue
		}
		var serr *jval.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse %#q: error %v is not a *jval.SyntaxError", test.input, err)
			continue
		}
		if serr.Kind != test.kind {
			t.Errorf("Parse %#q: got kind %v, want %v", test.input, serr.Kind, test.kind)
		}
		if diff := cmp.Diff(test.loc, serr.Location); diff != "" {
			t.Errorf("Parse %#q: location (-want, +got)\n%s", test.input, diff)
		}
		if !strings.Contains(serr.Message, test.message) {
			t.Errorf("Parse %#q: message %q does not contain %q", test.input, serr.Message, test.message)
		}
	}
}

func TestParseTrailing(t *testing.T) {
	// Parse consumes exactly one value; what follows is not its concern.
	v, err := ast.ParseString(`123abc`)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if !ast.Equal(v, ast.Number(123)) {
		t.Errorf("Parse: got %s, want 123", v.JSON())
	}

	// Successive calls on one parser resume at the cursor.
	p := ast.NewParser(strings.NewReader(`[1][2]`))
	for _, want := range []ast.Value{
		ast.Array{ast.Number(1)},
		ast.Array{ast.Number(2)},
	} {
		got, err := p.Parse()
		if err != nil {
			t.Fatalf("Parse: unexpected error: %v", err)
		}
		if !ast.Equal(got, want) {
			t.Errorf("Parse: got %s, want %s", got.JSON(), want.JSON())
		}
	}
	if _, err := p.Parse(); err == nil {
		t.Error("Parse after end of input: got nil, want error")
	}
}

func TestParseDocument(t *testing.T) {
	input := `{
  "name": "test",
  "wife": null,
  "age": 23,
  "happy": false,
  "weight": 56.50,
  "traits": ["male", "nerd"],
  "pets": {
    "name": "nina"
  }
}`
	v, err := ast.ParseString(input)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}

	tests := []struct {
		path []any
		want ast.Value
	}{
		{[]any{"name"}, ast.String("test")},
		{[]any{"wife"}, ast.Null{}},
		{[]any{"age"}, ast.Number(23)},
		{[]any{"happy"}, ast.Bool(false)},
		{[]any{"weight"}, ast.Number(56.5)},
		{[]any{"traits", 0}, ast.String("male")},
		{[]any{"traits", -1}, ast.String("nerd")},
		{[]any{"pets", "name"}, ast.String("nina")},
	}
	for _, test := range tests {
		got, err := ast.Path(v, test.path...)
		if err != nil {
			t.Errorf("Path %v: unexpected error: %v", test.path, err)
			continue
		}
		if !ast.Equal(got, test.want) {
			t.Errorf("Path %v: got %s, want %s", test.path, got.JSON(), test.want.JSON())
		}
	}
}
