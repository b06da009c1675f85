// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package display

import (
	"io"
	"iter"
	"strings"
)

// Tokens written by the indentation and newline helpers.
const (
	Indentation = "    "
	Newline     = "\n"
)

// Format is implemented by descriptors that render values of type V.
// A leaf Render writes its indentation before anything else; a container
// leaves indentation to the descriptors of its elements. Render must not
// mutate the descriptor or the value, and may only fail when w fails.
type Format[V any] interface {
	Render(w io.Writer, v V) error
}

// Preset is implemented by descriptors that can build their own defaults.
// Colored fills in the standard styles; Monochrome leaves every style nil.
type Preset[F any] interface {
	Colored(indent uint16) F
	Monochrome(indent uint16) F
}

// Element is the constraint container descriptors place on the descriptors
// they hold for their elements, keys and values.
type Element[V, F any] interface {
	Format[V]
	Preset[F]
}

// Render writes v to w as described by f.
func Render[V any, F Format[V]](w io.Writer, v V, f F) error {
	return f.Render(w, v)
}

// Sprint renders v into a string.
func Sprint[V any, F Format[V]](v V, f F) string {
	var sb strings.Builder
	// strings.Builder never fails a write
	_ = f.Render(&sb, v)
	return sb.String()
}

// Standard returns the default descriptor of type F at the given indent.
// It is the same as Colored.
func Standard[F Preset[F]](indent uint16) F {
	return Colored[F](indent)
}

// Colored returns the styled default descriptor of type F.
func Colored[F Preset[F]](indent uint16) F {
	var zero F
	return zero.Colored(indent)
}

// Monochrome returns the unstyled default descriptor of type F.
// Output rendered with it never contains escape sequences.
func Monochrome[F Preset[F]](indent uint16) F {
	var zero F
	return zero.Monochrome(indent)
}

// WriteIndentation writes count copies of Indentation.
func WriteIndentation(w io.Writer, count uint16) error {
	return WriteRepeat(w, Indentation, count)
}

// WriteNewlines writes count copies of Newline.
func WriteNewlines(w io.Writer, count uint16) error {
	return WriteRepeat(w, Newline, count)
}

// WriteRepeat writes token count times.
func WriteRepeat(w io.Writer, token string, count uint16) error {
	if count == 0 || token == "" {
		return nil
	}
	return writeString(w, strings.Repeat(token, int(count)))
}

// WriteString writes s verbatim, reporting failures as *WriteError.
// Custom Format implementations should use it for literal tokens.
func WriteString(w io.Writer, s string) error {
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(w, s); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// spacing holds the blank-line counts shared by every container descriptor.
type spacing struct {
	prefix, intersperse, suffix uint16
}

// renderItems renders each element of seq, separated by intersperse newlines.
func renderItems[T any](w io.Writer, seq iter.Seq[T], intersperse uint16, item Format[T]) error {
	first := true
	for v := range seq {
		if !first {
			if err := WriteNewlines(w, intersperse); err != nil {
				return err
			}
		}
		first = false
		if err := item.Render(w, v); err != nil {
			return err
		}
	}
	return nil
}

func renderSequence[T any](w io.Writer, seq iter.Seq[T], s spacing, item Format[T]) error {
	if err := WriteNewlines(w, s.prefix); err != nil {
		return err
	}
	if err := renderItems[T](w, seq, s.intersperse, item); err != nil {
		return err
	}
	return WriteNewlines(w, s.suffix)
}

// renderPairs renders key, separator and value for each entry of seq.
func renderPairs[K, V any](w io.Writer, seq iter.Seq2[K, V], s spacing, sep string, key Format[K], value Format[V]) error {
	if err := WriteNewlines(w, s.prefix); err != nil {
		return err
	}
	first := true
	for k, v := range seq {
		if !first {
			if err := WriteNewlines(w, s.intersperse); err != nil {
				return err
			}
		}
		first = false
		if err := key.Render(w, k); err != nil {
			return err
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
		if err := value.Render(w, v); err != nil {
			return err
		}
	}
	return WriteNewlines(w, s.suffix)
}
