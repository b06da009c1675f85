// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package display

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Color is one of the eight standard terminal colors.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	White
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "purple", "cyan", "white"}

// String returns the lowercase color name.
func (c Color) String() string {
	if c < Black || c > White {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor parses a color name, case-insensitively. "magenta" is accepted
// as an alias for purple.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "magenta" {
		return Purple, nil
	}
	for i, cn := range colorNames {
		if cn == n {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q (valid: %s)", name, strings.Join(colorNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if c < Black || c > White {
		return nil, fmt.Errorf("invalid color %d", int(c))
	}
	return []byte(colorNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Normal returns a style with only the color set.
func (c Color) Normal() *Style {
	return &Style{Color: c}
}

// Bold returns a bold style in the color.
func (c Color) Bold() *Style {
	return &Style{Color: c, Bold: true}
}

func (c Color) ansi() termenv.ANSIColor {
	switch c {
	case Red:
		return termenv.ANSIRed
	case Green:
		return termenv.ANSIGreen
	case Yellow:
		return termenv.ANSIYellow
	case Blue:
		return termenv.ANSIBlue
	case Purple:
		return termenv.ANSIMagenta
	case Cyan:
		return termenv.ANSICyan
	case White:
		return termenv.ANSIWhite
	default:
		return termenv.ANSIBlack
	}
}

// Style is a color plus four independent text attributes.
type Style struct {
	Color     Color
	Bold      bool
	Italic    bool
	Underline bool
	Dimmed    bool
}

// ResolveStyle converts an optional style into a terminal style.
// A nil style resolves to the identity style, which adds no escape codes.
// Otherwise the color is applied first, then bold, italic, underline and
// dimmed, each only when set.
func ResolveStyle(s *Style) termenv.Style {
	style := termenv.String()
	if s == nil {
		return style
	}
	style = style.Foreground(s.Color.ansi())
	if s.Bold {
		style = style.Bold()
	}
	if s.Italic {
		style = style.Italic()
	}
	if s.Underline {
		style = style.Underline()
	}
	if s.Dimmed {
		style = style.Faint()
	}
	return style
}

// Paint wraps text in the escape sequences of s.
func Paint(s *Style, text string) string {
	return ResolveStyle(s).Styled(text)
}
