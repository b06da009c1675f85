// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package tree renders dynamically typed documents with the display package.
//
// A Value is a decoded document node: null, bool, integer, float, string,
// list, or a map whose keys keep their document order. Values come from
// DecodeYAML, DecodeJSON, DecodeTOML or Decode, or are built directly:
//
//	doc := tree.NewMap()
//	doc.Set("name", tree.String("colorfmt"))
//	doc.Set("tags", tree.List(tree.String("cli"), tree.String("ansi")))
//
// Format is a display.Format[Value]. It lays a document out one entry per
// line, nesting containers one indentation level deeper than their key:
//
//	name: "colorfmt"
//	tags:
//	    - "cli"
//	    - "ansi"
//
// Scalars are rendered with the display leaf formats held by Format, lists
// with display.SliceFormat and maps with display.LinkedMapFormat, so a
// document renders exactly like the equivalent statically typed values.
package tree
