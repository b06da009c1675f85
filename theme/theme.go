// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jongio/colorfmt/display"
	"github.com/jongio/colorfmt/tree"
)

// ErrInvalidColor indicates a style names a color outside the eight
// standard terminal colors.
var ErrInvalidColor = errors.New("invalid color")

// StyleSpec is the file form of a display.Style.
type StyleSpec struct {
	Color     string `yaml:"color"`
	Bold      bool   `yaml:"bold,omitempty"`
	Italic    bool   `yaml:"italic,omitempty"`
	Underline bool   `yaml:"underline,omitempty"`
	Dimmed    bool   `yaml:"dimmed,omitempty"`
}

// Style converts the spec. A nil spec converts to a nil style.
func (s *StyleSpec) Style() (*display.Style, error) {
	if s == nil {
		return nil, nil
	}
	c, err := display.ParseColor(s.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return &display.Style{Color: c, Bold: s.Bold, Italic: s.Italic, Underline: s.Underline, Dimmed: s.Dimmed}, nil
}

// Styles holds one optional style per rendered element.
type Styles struct {
	Key    *StyleSpec `yaml:"key"`
	String *StyleSpec `yaml:"string"`
	Int    *StyleSpec `yaml:"int"`
	Float  *StyleSpec `yaml:"float"`
	Bool   *StyleSpec `yaml:"bool"`
	Symbol *StyleSpec `yaml:"symbol"`
}

// Theme is the configuration of the document renderer.
type Theme struct {
	Indent              uint16             `yaml:"indent"`
	IntersperseNewlines uint16             `yaml:"intersperse_newlines"`
	KeyValueSeparator   string             `yaml:"key_value_separator"`
	ListMarker          string             `yaml:"list_marker"`
	Quotes              display.Delimiters `yaml:"quotes"`
	Styles              Styles             `yaml:"styles"`
}

// Default returns the built-in theme. Its colored format is
// display.Colored[tree.Format](0).
func Default() *Theme {
	return &Theme{
		IntersperseNewlines: 1,
		KeyValueSeparator:   tree.DefaultKeyValueSeparator,
		ListMarker:          tree.DefaultListMarker,
		Quotes:              display.Quotes,
		Styles: Styles{
			Key:    &StyleSpec{Color: "cyan"},
			String: &StyleSpec{Color: "green"},
			Int:    &StyleSpec{Color: "blue", Bold: true},
			Float:  &StyleSpec{Color: "blue", Bold: true},
			Bool:   &StyleSpec{Color: "purple", Bold: true},
			Symbol: &StyleSpec{Color: "white", Dimmed: true},
		},
	}
}

// Parse reads a theme from YAML, on top of Default. Empty input yields
// the default theme.
func Parse(data []byte) (*Theme, error) {
	t := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks every style of t.
func (t *Theme) Validate() error {
	_, err := t.styles()
	return err
}

// Marshal encodes t as YAML.
func (t *Theme) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("encoding theme: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding theme: %w", err)
	}
	return buf.Bytes(), nil
}

// Format builds the document format described by t. Without color every
// style is dropped, so the output holds no escape sequences.
func (t *Theme) Format(colored bool) (tree.Format, error) {
	f := tree.Format{
		Indent:              t.Indent,
		IntersperseNewlines: t.IntersperseNewlines,
		KeyValueSeparator:   t.KeyValueSeparator,
		ListMarker:          t.ListMarker,
	}
	f.String.Delimiters = t.Quotes
	if !colored {
		return f, nil
	}

	s, err := t.styles()
	if err != nil {
		return tree.Format{}, err
	}
	f.Key.Style = s[0]
	f.String.Style = s[1]
	f.Int.Style = s[2]
	f.Float.Style = s[3]
	f.Bool.Style = s[4]
	f.Symbol.Style = s[5]
	return f, nil
}

// styles resolves the styles of t, in Styles field order.
func (t *Theme) styles() ([6]*display.Style, error) {
	var out [6]*display.Style
	specs := []struct {
		name string
		spec *StyleSpec
	}{
		{"key", t.Styles.Key},
		{"string", t.Styles.String},
		{"int", t.Styles.Int},
		{"float", t.Styles.Float},
		{"bool", t.Styles.Bool},
		{"symbol", t.Styles.Symbol},
	}
	for i, s := range specs {
		style, err := s.spec.Style()
		if err != nil {
			return out, fmt.Errorf("styles.%s: %w", s.name, err)
		}
		out[i] = style
	}
	return out, nil
}
