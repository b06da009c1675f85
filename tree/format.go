// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tree

import (
	"io"
	"strings"

	"github.com/jongio/colorfmt/display"
)

// Layout defaults.
const (
	DefaultKeyValueSeparator = ":"
	DefaultListMarker        = "- "
)

// position is where a value starts relative to the line it is rendered on.
type position uint8

const (
	// block values start a line of their own.
	block position = iota
	// inline values follow a map key on the key's line.
	inline
	// item values are list elements and start with the list marker.
	item
)

// Format renders a Value. Entries of lists and maps go one per line, and
// a non-empty container nested in another one is rendered one indentation
// level deeper than the line that introduces it.
//
// Format owns the Indent and Prefix of the leaf formats it holds: both are
// replaced at render time to place each scalar in the layout. Their
// delimiters and styles are used as configured.
type Format struct {
	Indent              uint16
	IntersperseNewlines uint16
	KeyValueSeparator   string
	ListMarker          string

	Key    display.StringFormat
	String display.StringFormat
	Int    display.NumFormat[int64]
	Float  display.NumFormat[float64]
	Bool   display.BoolFormat
	// Symbol renders null and empty containers.
	Symbol display.StringFormat

	pos position
}

// Render implements display.Format.
func (f Format) Render(w io.Writer, v Value) error {
	if !v.IsContainer() || v.Len() == 0 {
		return f.renderScalar(w, v)
	}

	var lead uint16
	body := f.Indent
	switch f.pos {
	case inline:
		lead, body = 1, f.Indent+1
	case item:
		if err := display.WriteIndentation(w, f.Indent); err != nil {
			return err
		}
		if err := display.WriteString(w, strings.TrimRight(f.ListMarker, " ")); err != nil {
			return err
		}
		lead, body = 1, f.Indent+1
	}

	if v.Kind() == ListKind {
		items := display.SliceFormat[Value, Format]{
			PrefixNewlines:      lead,
			IntersperseNewlines: f.IntersperseNewlines,
			Item:                f.at(body, item),
		}
		return items.Render(w, v.list)
	}

	key := f.Key
	key.Indent, key.Prefix = body, ""
	entries := display.LinkedMapFormat[string, Value, display.StringFormat, Format]{
		PrefixNewlines:      lead,
		IntersperseNewlines: f.IntersperseNewlines,
		KeyValueSeparator:   f.KeyValueSeparator,
		Key:                 key,
		Value:               f.at(body, inline),
	}
	return entries.Render(w, v.entries)
}

func (f Format) at(indent uint16, pos position) Format {
	f.Indent, f.pos = indent, pos
	return f
}

func (f Format) renderScalar(w io.Writer, v Value) error {
	indent, prefix := f.Indent, ""
	switch f.pos {
	case inline:
		indent, prefix = 0, " "
	case item:
		prefix = f.ListMarker
	}

	switch v.kind {
	case BoolKind:
		l := f.Bool
		l.Indent, l.Prefix = indent, prefix
		return l.Render(w, v.boolean)
	case IntKind:
		l := f.Int
		l.Indent, l.Prefix = indent, prefix
		return l.Render(w, v.integer)
	case FloatKind:
		l := f.Float
		l.Indent, l.Prefix = indent, prefix
		return l.Render(w, v.float)
	case StringKind:
		l := f.String
		l.Indent, l.Prefix = indent, prefix
		return l.Render(w, v.text)
	}

	l := f.Symbol
	l.Indent, l.Prefix = indent, prefix
	switch v.kind {
	case ListKind:
		return l.Render(w, "[]")
	case MapKind:
		return l.Render(w, "{}")
	}
	return l.Render(w, "null")
}

// Colored implements display.Preset: cyan keys, quoted green strings, and
// the display defaults for numbers and booleans.
func (Format) Colored(indent uint16) Format {
	return Format{
		Indent:              indent,
		IntersperseNewlines: 1,
		KeyValueSeparator:   DefaultKeyValueSeparator,
		ListMarker:          DefaultListMarker,
		Key:                 display.StringFormat{Style: display.Cyan.Normal()},
		String:              display.StringFormat{Delimiters: display.Quotes, Style: display.Green.Normal()},
		Int:                 display.Colored[display.NumFormat[int64]](0),
		Float:               display.Colored[display.NumFormat[float64]](0),
		Bool:                display.Colored[display.BoolFormat](0),
		Symbol:              display.StringFormat{Style: &display.Style{Color: display.White, Dimmed: true}},
	}
}

// Monochrome implements display.Preset.
func (Format) Monochrome(indent uint16) Format {
	return Format{
		Indent:              indent,
		IntersperseNewlines: 1,
		KeyValueSeparator:   DefaultKeyValueSeparator,
		ListMarker:          DefaultListMarker,
		String:              display.StringFormat{Delimiters: display.Quotes},
	}
}
