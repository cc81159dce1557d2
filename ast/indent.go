// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bufio"
	"io"
	"strings"
)

// A Formatter carries the layout settings for rendering values as text.
// The zero value renders compact output.
type Formatter struct {
	// Indent is the number of spaces of indentation added per nesting
	// level. If Indent is 0 the output is compact: no newlines and no
	// padding anywhere. If Indent > 0, each array element and object
	// member begins on a new line, and a space follows each object
	// key's colon.
	Indent int
}

// Standard configurations.
var (
	Compact  = Formatter{Indent: 0}
	Standard = Formatter{Indent: 2}
)

// Format renders v to w using the standard two-space layout.
func Format(w io.Writer, v Value) error { return Standard.Format(w, v) }

// FormatToString renders v to a string using the standard layout.
func FormatToString(v Value) string { return Standard.String(v) }

// Format renders v to w using the settings from f. Formatting itself
// cannot fail; the only errors are those reported by w.
func (f Formatter) Format(w io.Writer, v Value) error {
	bw := bufio.NewWriter(w)
	f.formatValue(bw, v, "")
	return bw.Flush()
}

// String renders v to a string using the settings from f.
func (f Formatter) String(v Value) string {
	var sb strings.Builder
	f.formatValue(&sb, v, "")
	return sb.String()
}

type stringWriter interface {
	io.Writer
	WriteString(s string) (int, error)
}

func (f Formatter) pad() string { return strings.Repeat(" ", f.Indent) }

// formatValue writes a representation of v to w with enclosing
// indentation indent. Leaves render as their compact JSON text under
// every layout.
func (f Formatter) formatValue(w stringWriter, v Value, indent string) {
	switch t := v.(type) {
	case Array:
		f.formatArray(w, t, indent)
	case Object:
		f.formatObject(w, t, indent)
	default:
		w.WriteString(v.JSON())
	}
}

// formatArray writes a. Under an indented layout a newline and one more
// level of indentation precede each element; the closing bracket
// follows the last element directly, with no newline before it.
func (f Formatter) formatArray(w stringWriter, a Array, indent string) {
	if len(a) == 0 {
		w.WriteString("[]")
		return
	}
	if f.Indent == 0 {
		w.WriteString("[")
		for i, v := range a {
			if i > 0 {
				w.WriteString(",")
			}
			f.formatValue(w, v, "")
		}
		w.WriteString("]")
		return
	}

	adent := indent + f.pad()
	w.WriteString("[")
	for i, v := range a {
		if i > 0 {
			w.WriteString(",")
		}
		w.WriteString("\n")
		w.WriteString(adent)
		f.formatValue(w, v, adent)
	}
	w.WriteString("]")
}

// formatObject writes o in ascending order by key. Unlike an array, the
// closing brace of an indented object is placed on its own line at the
// enclosing indentation.
func (f Formatter) formatObject(w stringWriter, o Object, indent string) {
	if len(o) == 0 {
		w.WriteString("{}")
		return
	}
	ms := o.sorted()
	if f.Indent == 0 {
		w.WriteString("{")
		for i, m := range ms {
			if i > 0 {
				w.WriteString(",")
			}
			w.WriteString(String(m.Key).JSON())
			w.WriteString(":")
			f.formatValue(w, m.Value, "")
		}
		w.WriteString("}")
		return
	}

	mdent := indent + f.pad()
	w.WriteString("{")
	for i, m := range ms {
		if i > 0 {
			w.WriteString(",")
		}
		w.WriteString("\n")
		w.WriteString(mdent)
		w.WriteString(String(m.Key).JSON())
		w.WriteString(": ")
		f.formatValue(w, m.Value, mdent)
	}
	w.WriteString("\n")
	w.WriteString(indent)
	w.WriteString("}")
}
