// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package display

import (
	"cmp"
	"io"
	"iter"
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultKeyValueSeparator is written between each key and its value.
const DefaultKeyValueSeparator = ": "

// MapFormat renders a built-in map. Entries come in Go's map iteration
// order, which is unspecified and may differ between two renders of the same
// map. Use SortedMapFormat or LinkedMapFormat for a stable order.
type MapFormat[K comparable, V any, KF Element[K, KF], VF Element[V, VF]] struct {
	PrefixNewlines      uint16
	IntersperseNewlines uint16
	SuffixNewlines      uint16
	KeyValueSeparator   string
	Key                 KF
	Value               VF
}

// Render implements Format.
func (f MapFormat[K, V, KF, VF]) Render(w io.Writer, m map[K]V) error {
	s := spacing{prefix: f.PrefixNewlines, intersperse: f.IntersperseNewlines, suffix: f.SuffixNewlines}
	return renderPairs[K, V](w, maps.All(m), s, f.KeyValueSeparator, f.Key, f.Value)
}

// Colored implements Preset.
func (MapFormat[K, V, KF, VF]) Colored(indent uint16) MapFormat[K, V, KF, VF] {
	return MapFormat[K, V, KF, VF]{
		IntersperseNewlines: 1,
		KeyValueSeparator:   DefaultKeyValueSeparator,
		Key:                 Colored[KF](indent),
		Value:               Colored[VF](indent),
	}
}

// Monochrome implements Preset.
func (MapFormat[K, V, KF, VF]) Monochrome(indent uint16) MapFormat[K, V, KF, VF] {
	return MapFormat[K, V, KF, VF]{
		IntersperseNewlines: 1,
		KeyValueSeparator:   DefaultKeyValueSeparator,
		Key:                 Monochrome[KF](indent),
		Value:               Monochrome[VF](indent),
	}
}

// SortedMapFormat renders a built-in map in ascending key order.
type SortedMapFormat[K cmp.Ordered, V any, KF Element[K, KF], VF Element[V, VF]] struct {
	PrefixNewlines      uint16
	IntersperseNewlines uint16
	SuffixNewlines      uint16
	KeyValueSeparator   string
	Key                 KF
	Value               VF
}

// Render implements Format.
func (f SortedMapFormat[K, V, KF, VF]) Render(w io.Writer, m map[K]V) error {
	// Values travel with their keys: a NaN key cannot be looked up again.
	sorted := make([]mapEntry[K, V], 0, len(m))
	for k, v := range m {
		sorted = append(sorted, mapEntry[K, V]{k, v})
	}
	slices.SortFunc(sorted, func(a, b mapEntry[K, V]) int { return cmp.Compare(a.k, b.k) })
	entries := func(yield func(K, V) bool) {
		for _, e := range sorted {
			if !yield(e.k, e.v) {
				return
			}
		}
	}
	s := spacing{prefix: f.PrefixNewlines, intersperse: f.IntersperseNewlines, suffix: f.SuffixNewlines}
	return renderPairs[K, V](w, entries, s, f.KeyValueSeparator, f.Key, f.Value)
}

type mapEntry[K, V any] struct {
	k K
	v V
}

// Colored implements Preset.
func (SortedMapFormat[K, V, KF, VF]) Colored(indent uint16) SortedMapFormat[K, V, KF, VF] {
	return SortedMapFormat[K, V, KF, VF](MapFormat[K, V, KF, VF]{}.Colored(indent))
}

// Monochrome implements Preset.
func (SortedMapFormat[K, V, KF, VF]) Monochrome(indent uint16) SortedMapFormat[K, V, KF, VF] {
	return SortedMapFormat[K, V, KF, VF](MapFormat[K, V, KF, VF]{}.Monochrome(indent))
}

// LinkedMapFormat renders an insertion-ordered map from
// github.com/wk8/go-ordered-map, oldest entry first. A nil map renders like an
// empty one.
type LinkedMapFormat[K comparable, V any, KF Element[K, KF], VF Element[V, VF]] struct {
	PrefixNewlines      uint16
	IntersperseNewlines uint16
	SuffixNewlines      uint16
	KeyValueSeparator   string
	Key                 KF
	Value               VF
}

// Render implements Format.
func (f LinkedMapFormat[K, V, KF, VF]) Render(w io.Writer, m *orderedmap.OrderedMap[K, V]) error {
	s := spacing{prefix: f.PrefixNewlines, intersperse: f.IntersperseNewlines, suffix: f.SuffixNewlines}
	return renderPairs[K, V](w, linkedEntries(m), s, f.KeyValueSeparator, f.Key, f.Value)
}

// Colored implements Preset.
func (LinkedMapFormat[K, V, KF, VF]) Colored(indent uint16) LinkedMapFormat[K, V, KF, VF] {
	return LinkedMapFormat[K, V, KF, VF](MapFormat[K, V, KF, VF]{}.Colored(indent))
}

// Monochrome implements Preset.
func (LinkedMapFormat[K, V, KF, VF]) Monochrome(indent uint16) LinkedMapFormat[K, V, KF, VF] {
	return LinkedMapFormat[K, V, KF, VF](MapFormat[K, V, KF, VF]{}.Monochrome(indent))
}

func linkedEntries[K comparable, V any](m *orderedmap.OrderedMap[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}
