// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package display

import (
	"io"
	"strconv"
)

// Delimiters wrap a leaf's payload, outside of its style.
type Delimiters struct {
	Open  string `yaml:"open,omitempty"`
	Close string `yaml:"close,omitempty"`
}

// Common delimiter pairs.
var (
	Quotes       = Delimiters{Open: `"`, Close: `"`}
	SingleQuotes = Delimiters{Open: "'", Close: "'"}
)

// Leaf is the descriptor shape shared by every leaf format. A leaf renders
// as indentation, prefix, opening delimiter, styled payload, closing
// delimiter. IndentToken replaces Indentation when set.
type Leaf struct {
	Indent      uint16
	IndentToken string
	Prefix      string
	Delimiters  Delimiters
	Style       *Style
}

func (l Leaf) write(w io.Writer, text string) error {
	token := l.IndentToken
	if token == "" {
		token = Indentation
	}
	if err := WriteRepeat(w, token, l.Indent); err != nil {
		return err
	}
	if err := writeString(w, l.Prefix); err != nil {
		return err
	}
	if err := writeString(w, l.Delimiters.Open); err != nil {
		return err
	}
	if err := writeString(w, Paint(l.Style, text)); err != nil {
		return err
	}
	return writeString(w, l.Delimiters.Close)
}

// BoolFormat renders bool values as "true" or "false".
type BoolFormat Leaf

// Render implements Format.
func (f BoolFormat) Render(w io.Writer, v bool) error {
	return Leaf(f).write(w, strconv.FormatBool(v))
}

// Colored implements Preset: bold purple.
func (BoolFormat) Colored(indent uint16) BoolFormat {
	return BoolFormat{Indent: indent, Style: Purple.Bold()}
}

// Monochrome implements Preset.
func (BoolFormat) Monochrome(indent uint16) BoolFormat {
	return BoolFormat{Indent: indent}
}

// CharFormat renders a single rune.
type CharFormat Leaf

// Render implements Format.
func (f CharFormat) Render(w io.Writer, v rune) error {
	return Leaf(f).write(w, string(v))
}

// Colored implements Preset: green.
func (CharFormat) Colored(indent uint16) CharFormat {
	return CharFormat{Indent: indent, Style: Green.Normal()}
}

// Monochrome implements Preset.
func (CharFormat) Monochrome(indent uint16) CharFormat {
	return CharFormat{Indent: indent}
}

// StringFormat renders strings verbatim.
type StringFormat Leaf

// Render implements Format.
func (f StringFormat) Render(w io.Writer, v string) error {
	return Leaf(f).write(w, v)
}

// Colored implements Preset: green.
func (StringFormat) Colored(indent uint16) StringFormat {
	return StringFormat{Indent: indent, Style: Green.Normal()}
}

// Monochrome implements Preset.
func (StringFormat) Monochrome(indent uint16) StringFormat {
	return StringFormat{Indent: indent}
}

// Integer is the set of integer types NumFormat accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point types NumFormat accepts.
type Float interface {
	~float32 | ~float64
}

// Number is every type NumFormat accepts.
type Number interface {
	Integer | Float
}

// NumFormat renders any integer or floating-point type. Integers print in
// base 10; floats print in their shortest exact decimal form, without an
// exponent.
type NumFormat[N Number] Leaf

// Render implements Format.
func (f NumFormat[N]) Render(w io.Writer, v N) error {
	return Leaf(f).write(w, numberText(v))
}

// Colored implements Preset: bold blue.
func (NumFormat[N]) Colored(indent uint16) NumFormat[N] {
	return NumFormat[N]{Indent: indent, Style: Blue.Bold()}
}

// Monochrome implements Preset.
func (NumFormat[N]) Monochrome(indent uint16) NumFormat[N] {
	return NumFormat[N]{Indent: indent}
}

func numberText[N Number](v N) string {
	half, third := 0.5, 1.0/3
	if N(half) != 0 {
		bits := 64
		if float64(N(third)) != third {
			bits = 32
		}
		return strconv.FormatFloat(float64(v), 'f', -1, bits)
	}
	var zero N
	if zero-1 < zero {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
