// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for JSON values, a parser that
// constructs syntax trees from JSON source, and a formatter that
// renders trees back to text.
package ast

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// A Value is an arbitrary JSON value. The JSON method renders the value
// as compact JSON text.
type Value interface{ JSON() string }

// Null represents the null constant.
type Null struct{}

func (Null) JSON() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// A Number is a floating-point value.
type Number float64

// JSON renders n as the shortest uniquely round-trippable decimal text,
// with no exponent. An integral value has no fractional part.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

// A String is a string value. The payload is held verbatim: escape
// sequences are neither decoded during parsing nor introduced during
// formatting.
type String string

func (s String) JSON() string { return `"` + string(s) + `"` }

// An Array is a sequence of values. Order is significant.
type Array []Value

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a[0].JSON())
	for _, v := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) Len() int { return len(a) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (m Member) JSON() string { return String(m.Key).JSON() + ":" + m.Value.JSON() }

// An Object is a collection of key-value members. Members keep the
// order in which their keys were first inserted, but all formatted
// output is in ascending order by key.
type Object []*Member

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

func (o Object) Len() int { return len(o) }

// Sort sorts the members of o in ascending order by key.
func (o Object) Sort() {
	sort.Slice(o, func(i, j int) bool { return o[i].Key < o[j].Key })
}

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	ms := o.sorted()
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(ms[0].JSON())
	for _, m := range ms[1:] {
		sb.WriteByte(',')
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// sorted returns the members of o in ascending order by key, leaving o
// unmodified.
func (o Object) sorted() Object {
	ms := make(Object, len(o))
	copy(ms, o)
	ms.Sort()
	return ms
}

// Equal reports whether a and b are structurally equal: the same kind
// of value with equal payloads, recursively. Numbers compare by exact
// floating-point equality, arrays are order-sensitive, and objects
// compare by key set and per-key value independent of member order.
func Equal(a, b Value) bool {
	switch t := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		u, ok := b.(Bool)
		return ok && t == u
	case Number:
		u, ok := b.(Number)
		return ok && t == u
	case String:
		u, ok := b.(String)
		return ok && t == u
	case Array:
		u, ok := b.(Array)
		if !ok || len(t) != len(u) {
			return false
		}
		for i, v := range t {
			if !Equal(v, u[i]) {
				return false
			}
		}
		return true
	case Object:
		u, ok := b.(Object)
		if !ok || len(t) != len(u) {
			return false
		}
		for _, m := range t {
			um := u.Find(m.Key)
			if um == nil || !Equal(m.Value, um.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ToValue converts a string, int, float, bool, nil, []any,
// map[string]any, or Value into a Value. It panics if v does not have
// one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null{}
	case bool:
		return Bool(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case string:
		return String(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		out := make(Object, 0, len(t))
		for key, elt := range t {
			out = append(out, &Member{Key: key, Value: ToValue(elt)})
		}
		out.Sort()
		return out
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
