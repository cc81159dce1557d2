// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequence of keys from v. Each key must be a string
// (an object member key), an int (an array offset, negative values
// indexing from the end), or a func(Value) (Value, error) that is
// applied to the value reached so far. Path returns the value at the
// end of the path, or v along with an error describing the first key
// that did not apply.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, key := range path {
		switch t := key.(type) {
		case string:
			obj, ok := cur.(Object)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T by key %q", cur, t)
			}
			m := obj.Find(t)
			if m == nil {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = m.Value
		case int:
			arr, ok := cur.(Array)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T by offset", cur)
			}
			idx := t
			if idx < 0 {
				idx += len(arr)
			}
			if idx < 0 || idx >= len(arr) {
				return v, fmt.Errorf("offset %d out of range (0..%d)", t, len(arr))
			}
			cur = arr[idx]
		case func(Value) (Value, error):
			next, err := t(cur)
			if err != nil {
				return v, err
			}
			cur = next
		default:
			return v, fmt.Errorf("invalid path element %T", key)
		}
	}
	return cur, nil
}
