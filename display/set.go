// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package display

import (
	"cmp"
	"io"
	"iter"
	"maps"
	"slices"
)

// Set is an unordered collection of unique elements.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	s.Add(items...)
	return s
}

// Add inserts items.
func (s Set[T]) Add(items ...T) {
	for _, v := range items {
		s[v] = struct{}{}
	}
}

// Delete removes v.
func (s Set[T]) Delete(v T) {
	delete(s, v)
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s)
}

// All iterates the elements in unspecified order.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

// SetFormat renders a Set in Go's map iteration order, which is unspecified.
type SetFormat[T comparable, F Element[T, F]] struct {
	PrefixNewlines      uint16
	IntersperseNewlines uint16
	SuffixNewlines      uint16
	Item                F
}

// Render implements Format.
func (f SetFormat[T, F]) Render(w io.Writer, s Set[T]) error {
	sp := spacing{prefix: f.PrefixNewlines, intersperse: f.IntersperseNewlines, suffix: f.SuffixNewlines}
	return renderSequence[T](w, s.All(), sp, f.Item)
}

// Colored implements Preset.
func (SetFormat[T, F]) Colored(indent uint16) SetFormat[T, F] {
	return SetFormat[T, F]{IntersperseNewlines: 1, Item: Colored[F](indent)}
}

// Monochrome implements Preset.
func (SetFormat[T, F]) Monochrome(indent uint16) SetFormat[T, F] {
	return SetFormat[T, F]{IntersperseNewlines: 1, Item: Monochrome[F](indent)}
}

// SortedSetFormat renders a Set in ascending order.
type SortedSetFormat[T cmp.Ordered, F Element[T, F]] struct {
	PrefixNewlines      uint16
	IntersperseNewlines uint16
	SuffixNewlines      uint16
	Item                F
}

// Render implements Format.
func (f SortedSetFormat[T, F]) Render(w io.Writer, s Set[T]) error {
	sp := spacing{prefix: f.PrefixNewlines, intersperse: f.IntersperseNewlines, suffix: f.SuffixNewlines}
	return renderSequence[T](w, slices.Values(slices.Sorted(s.All())), sp, f.Item)
}

// Colored implements Preset.
func (SortedSetFormat[T, F]) Colored(indent uint16) SortedSetFormat[T, F] {
	return SortedSetFormat[T, F]{IntersperseNewlines: 1, Item: Colored[F](indent)}
}

// Monochrome implements Preset.
func (SortedSetFormat[T, F]) Monochrome(indent uint16) SortedSetFormat[T, F] {
	return SortedSetFormat[T, F]{IntersperseNewlines: 1, Item: Monochrome[F](indent)}
}
