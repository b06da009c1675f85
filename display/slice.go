// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package display

import (
	"io"
	"slices"
)

// SliceFormat renders slices and arrays (via arr[:]) element by element.
// Elements are separated only by IntersperseNewlines blank lines.
type SliceFormat[T any, F Element[T, F]] struct {
	PrefixNewlines      uint16
	IntersperseNewlines uint16
	SuffixNewlines      uint16
	Item                F
}

// Render implements Format.
func (f SliceFormat[T, F]) Render(w io.Writer, items []T) error {
	return renderSequence[T](w, slices.Values(items), f.spacing(), f.Item)
}

// Colored implements Preset.
func (SliceFormat[T, F]) Colored(indent uint16) SliceFormat[T, F] {
	return SliceFormat[T, F]{IntersperseNewlines: 1, Item: Colored[F](indent)}
}

// Monochrome implements Preset.
func (SliceFormat[T, F]) Monochrome(indent uint16) SliceFormat[T, F] {
	return SliceFormat[T, F]{IntersperseNewlines: 1, Item: Monochrome[F](indent)}
}

func (f SliceFormat[T, F]) spacing() spacing {
	return spacing{prefix: f.PrefixNewlines, intersperse: f.IntersperseNewlines, suffix: f.SuffixNewlines}
}
