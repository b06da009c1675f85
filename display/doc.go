// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package display renders nested Go values into styled terminal text.
//
// Every value type is paired with a format descriptor: a plain struct holding
// the indentation level, blank-line counts, literal tokens and an optional
// style for that type. Container descriptors embed fully formed descriptors
// for their elements, so a map's keys can use a different indent, prefix or
// color than its values, at any nesting depth.
//
// # Basic Usage
//
//	scores := map[string]int{"alice": 3, "bob": 5}
//	f := display.Colored[display.SortedMapFormat[string, int, display.StringFormat, display.NumFormat[int]]](0)
//	if err := display.Render(os.Stdout, scores, f); err != nil {
//	    return err
//	}
//
// Presets fill in defaults; override single fields afterwards:
//
//	f := display.Monochrome[display.SliceFormat[string, display.StringFormat]](1)
//	f.Item.Delimiters = display.Quotes
//	f.IntersperseNewlines = 2
//
// # Format Capability
//
// Go cannot attach methods to bool, []T or map[K]V, so rendering lives on the
// descriptor: a descriptor for values of type V implements [Format] for V.
// The type parameter ties each descriptor to its value type at compile time;
// there is no reflection and no any-typed dispatch.
//
// # Styles
//
// A nil *[Style] means plain text. A non-nil style starts from its color and
// applies bold, italic, underline and dimmed in that order. Escape sequences
// come from github.com/muesli/termenv. [Monochrome] presets carry no styles
// and therefore never emit escape sequences.
//
// # Errors
//
// Rendering only fails when the sink fails to accept a write. The first
// failure is returned as a *[WriteError] and aborts the whole render; text
// already written stays in the sink. Use [Sprint] or render into a buffer
// first when the destination must receive all or nothing.
//
// # Adapters
//
//   - Leaves: [BoolFormat], [CharFormat], [StringFormat], [NumFormat]
//   - Sequences: [SliceFormat], [DequeFormat] for [Deque]
//   - Maps: [MapFormat], [SortedMapFormat], [LinkedMapFormat]
//   - Sets: [SetFormat], [SortedSetFormat] for [Set]
//   - Sum type: [ResultFormat] for [Result]
package display
