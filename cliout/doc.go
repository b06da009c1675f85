// Package cliout provides structured output formatting for the colorfmt
// commands.
//
// # Basic Usage
//
//	cliout.Success("wrote %s", path)
//	cliout.Error("render failed: %v", err)
//	cliout.Info("using theme %s", source)
//
// Status lines go to the writer set with SetOutput (os.Stdout by default);
// Error writes to the writer set with SetErrorOutput (os.Stderr by default).
//
// # Output Formats
//
// The package supports two output formats:
//   - default: Human-readable text with colors and Unicode symbols
//   - json: Structured JSON output for automation and scripting
//
// Print takes both the JSON data and a formatter for the default format:
//
//	err := cliout.Print(info, func() {
//	    cliout.Label("Version", info.Version)
//	})
//
// # Color
//
// ColorMode decides whether styles are applied. ColorAuto styles output
// only when the output writer is a terminal and neither NO_COLOR nor
// CLICOLOR=0 is set. ColorEnabled reports the current decision, and the
// render command uses it to pick a colored or monochrome theme.
//
// # Unicode Symbols
//
// Status symbols fall back to ASCII on legacy Windows consoles:
//   - SymbolCheck (✓) / ASCIICheck ([+])
//   - SymbolCross (✗) / ASCIICross ([-])
//   - SymbolWarning (⚠) / ASCIIWarning ([!])
//   - SymbolInfo (ℹ) / ASCIIInfo ([i])
//   - SymbolArrow (→) / ASCIIArrow (->)
//   - SymbolDot (•) / ASCIIDot (*)
package cliout
