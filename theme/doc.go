// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package theme loads the YAML theme that configures how colorfmt renders
// documents.
//
// A theme sets the layout knobs of tree.Format and the style of each scalar
// kind, within the fixed attribute set of display.Style:
//
//	indent: 0
//	intersperse_newlines: 1
//	key_value_separator: ":"
//	list_marker: "- "
//	quotes:
//	  open: '"'
//	  close: '"'
//	styles:
//	  key: {color: cyan}
//	  string: {color: green}
//	  int: {color: blue, bold: true}
//	  float: {color: blue, bold: true}
//	  bool: {color: purple, bold: true}
//	  symbol: {color: white, dimmed: true}
//
// Fields missing from a file keep their default value, and a style set to
// null renders unstyled. Unknown fields are rejected, as are unknown color
// names (ErrInvalidColor).
//
// Resolve picks the theme for a run: an explicit path, else
// $XDG_CONFIG_HOME/colorfmt/theme.yaml (or the XDG config directories),
// else Default.
package theme
