// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tree

import (
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the type of a Value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	ListKind
	MapKind
)

var kindNames = [...]string{"null", "bool", "int", "float", "string", "list", "map"}

func (k Kind) String() string {
	if k < NullKind || k > MapKind {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is a node of a decoded document. The zero Value is null.
// Lists and maps share their storage between copies.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	text    string
	list    []Value
	entries *orderedmap.OrderedMap[string, Value]
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: BoolKind, boolean: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: IntKind, integer: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: FloatKind, float: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: StringKind, text: s} }

// List returns a list holding items.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: ListKind, list: items}
}

// NewMap returns an empty map value.
func NewMap() Value {
	return Value{kind: MapKind, entries: orderedmap.New[string, Value]()}
}

// Kind returns the type of v.
func (v Value) Kind() Kind { return v.kind }

// IsContainer reports whether v is a list or a map.
func (v Value) IsContainer() bool { return v.kind == ListKind || v.kind == MapKind }

// Len returns the number of list items or map entries, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case ListKind:
		return len(v.list)
	case MapKind:
		return v.entries.Len()
	}
	return 0
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.kind == BoolKind }

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) { return v.integer, v.kind == IntKind }

// AsFloat returns the float held by v.
func (v Value) AsFloat() (float64, bool) { return v.float, v.kind == FloatKind }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.text, v.kind == StringKind }

// Items returns the items of a list, or nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != ListKind {
		return nil
	}
	return v.list
}

// Entries returns the entries of a map in insertion order, or nil for any
// other kind.
func (v Value) Entries() *orderedmap.OrderedMap[string, Value] {
	if v.kind != MapKind {
		return nil
	}
	return v.entries
}

// Append adds items to the end of a list and returns the grown list.
func (v Value) Append(items ...Value) Value {
	if v.kind != ListKind {
		panic("tree: Append on " + v.kind.String())
	}
	v.list = append(v.list, items...)
	return v
}

// Set stores val under key. A new key goes last; an existing key keeps its
// position. Set panics if v is not a map.
func (v Value) Set(key string, val Value) {
	if v.kind != MapKind {
		panic("tree: Set on " + v.kind.String())
	}
	v.entries.Set(key, val)
}

// Get returns the value stored under key in a map.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != MapKind {
		return Value{}, false
	}
	return v.entries.Get(key)
}

// GoString renders v in a compact single-line form for debugging.
func (v Value) GoString() string {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.boolean)
	case IntKind:
		return strconv.FormatInt(v.integer, 10)
	case FloatKind:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case StringKind:
		return strconv.Quote(v.text)
	case ListKind:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.GoString()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case MapKind:
		parts := make([]string, 0, v.entries.Len())
		for p := v.entries.Oldest(); p != nil; p = p.Next() {
			parts = append(parts, strconv.Quote(p.Key)+": "+p.Value.GoString())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "null"
}
