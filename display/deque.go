// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package display

import (
	"io"
	"iter"
)

// Deque is a double-ended queue kept as two segments: elements that entered
// through the front and elements that entered through the back. Popping from
// an empty side takes from the far end of the other segment.
type Deque[T any] struct {
	front []T // reversed: the last element is the first in the queue
	back  []T
}

// NewDeque returns a deque holding items, pushed to the back in order.
func NewDeque[T any](items ...T) *Deque[T] {
	return &Deque[T]{back: append([]T(nil), items...)}
}

// PushFront inserts v at the front.
func (d *Deque[T]) PushFront(v T) {
	d.front = append(d.front, v)
}

// PushBack appends v at the back.
func (d *Deque[T]) PushBack(v T) {
	d.back = append(d.back, v)
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if n := len(d.front); n > 0 {
		v := d.front[n-1]
		d.front[n-1] = zero
		d.front = d.front[:n-1]
		return v, true
	}
	if len(d.back) > 0 {
		v := d.back[0]
		d.back[0] = zero
		d.back = d.back[1:]
		return v, true
	}
	return zero, false
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if n := len(d.back); n > 0 {
		v := d.back[n-1]
		d.back[n-1] = zero
		d.back = d.back[:n-1]
		return v, true
	}
	if len(d.front) > 0 {
		v := d.front[0]
		d.front[0] = zero
		d.front = d.front[1:]
		return v, true
	}
	return zero, false
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.front) + len(d.back)
}

// At returns the i-th element in queue order. It panics if i is out of range.
func (d *Deque[T]) At(i int) T {
	if i < len(d.front) {
		return d.front[len(d.front)-1-i]
	}
	return d.back[i-len(d.front)]
}

// Front iterates the front segment in queue order.
func (d *Deque[T]) Front() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d == nil {
			return
		}
		for i := len(d.front) - 1; i >= 0; i-- {
			if !yield(d.front[i]) {
				return
			}
		}
	}
}

// Back iterates the back segment in queue order.
func (d *Deque[T]) Back() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d == nil {
			return
		}
		for _, v := range d.back {
			if !yield(v) {
				return
			}
		}
	}
}

// All iterates every element in queue order.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range d.Front() {
			if !yield(v) {
				return
			}
		}
		for v := range d.Back() {
			if !yield(v) {
				return
			}
		}
	}
}

// Segments returns copies of the front and back segments.
func (d *Deque[T]) Segments() (front, back []T) {
	for v := range d.Front() {
		front = append(front, v)
	}
	for v := range d.Back() {
		back = append(back, v)
	}
	return front, back
}

// DequeFormat renders a Deque's front segment, a divider line, then its back
// segment. The divider is written once even when a segment is empty.
type DequeFormat[T any, F Element[T, F]] struct {
	PrefixNewlines      uint16
	IntersperseNewlines uint16
	SuffixNewlines      uint16
	DividerToken        string
	DividerCount        uint16
	Item                F
}

// Render implements Format. A nil deque renders as two empty segments.
func (f DequeFormat[T, F]) Render(w io.Writer, d *Deque[T]) error {
	if err := WriteNewlines(w, f.PrefixNewlines); err != nil {
		return err
	}
	if err := renderItems[T](w, d.Front(), f.IntersperseNewlines, f.Item); err != nil {
		return err
	}
	if err := WriteNewlines(w, 1); err != nil {
		return err
	}
	if err := WriteRepeat(w, f.DividerToken, f.DividerCount); err != nil {
		return err
	}
	if err := WriteNewlines(w, 1); err != nil {
		return err
	}
	if err := renderItems[T](w, d.Back(), f.IntersperseNewlines, f.Item); err != nil {
		return err
	}
	return WriteNewlines(w, f.SuffixNewlines)
}

// Colored implements Preset: a divider of 40 dashes.
func (DequeFormat[T, F]) Colored(indent uint16) DequeFormat[T, F] {
	return DequeFormat[T, F]{
		IntersperseNewlines: 1,
		DividerToken:        "-",
		DividerCount:        40,
		Item:                Colored[F](indent),
	}
}

// Monochrome implements Preset.
func (DequeFormat[T, F]) Monochrome(indent uint16) DequeFormat[T, F] {
	f := DequeFormat[T, F]{}.Colored(indent)
	f.Item = Monochrome[F](indent)
	return f
}
