package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jongio/colorfmt/display"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ColorMode selects when output is styled.
type ColorMode string

const (
	// ColorAuto styles output written to a terminal, unless NO_COLOR is set.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

// Unicode symbols for status lines
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
	SymbolDot     = "•"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIArrow   = "->"
	ASCIIDot     = "*"
)

// Styles of the status lines.
var (
	styleSuccess = display.Green.Bold()
	styleError   = display.Red.Bold()
	styleWarning = display.Yellow.Bold()
	styleInfo    = display.Blue.Bold()
	styleSection = display.Cyan.Normal()
	styleHeader  = &display.Style{Color: display.White, Bold: true}
	styleMuted   = &display.Style{Color: display.White, Dimmed: true}
)

var (
	// mu protects the variables below
	mu           sync.RWMutex
	out          io.Writer = os.Stdout
	errOut       io.Writer = os.Stderr
	globalFormat           = FormatDefault
	colorMode              = ColorAuto
)

// supportsUnicode detects if the terminal supports Unicode
var supportsUnicode = detectUnicodeSupport()

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	// Windows Terminal, VS Code, ConEmu and PowerShell all render Unicode;
	// the legacy console does not.
	for _, key := range []string{"WT_SESSION", "ConEmuPID", "PSModulePath", "POWERSHELL_DISTRIBUTION_CHANNEL", "TERM"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return os.Getenv("TERM_PROGRAM") == "vscode"
}

// getIcon returns the appropriate icon based on Unicode support
func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// SetOutput redirects standard output. A nil writer restores os.Stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	mu.Lock()
	out = w
	mu.Unlock()
}

// SetErrorOutput redirects error output. A nil writer restores os.Stderr.
func SetErrorOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	mu.Lock()
	errOut = w
	mu.Unlock()
}

// Output returns the writer standard output goes to.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

// ErrorOutput returns the writer error output goes to.
func ErrorOutput() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return errOut
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	var f Format
	switch format {
	case "default", "":
		f = FormatDefault
	case "json":
		f = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	mu.Lock()
	globalFormat = f
	mu.Unlock()
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// ParseColorMode parses "auto", "always" or "never". An empty string is auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode: %s (valid options: auto, always, never)", s)
}

// SetColorMode sets when output is styled.
func SetColorMode(m ColorMode) {
	mu.Lock()
	colorMode = m
	mu.Unlock()
}

// GetColorMode returns the current color mode.
func GetColorMode() ColorMode {
	mu.RLock()
	defer mu.RUnlock()
	return colorMode
}

// ColorEnabled reports whether output to the standard writer is styled.
func ColorEnabled() bool {
	mu.RLock()
	mode, w := colorMode, out
	mu.RUnlock()
	return colorEnabledFor(mode, w)
}

func colorEnabledFor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// paint styles text when color is enabled for w.
func paint(w io.Writer, s *display.Style, text string) string {
	if !colorEnabledFor(GetColorMode(), w) {
		return text
	}
	return display.Paint(s, text)
}

func printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(Output(), format, args...)
}

// PrintJSON prints data as indented JSON.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(Output())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
// For JSON format, marshals the data object.
func Print(data interface{}, formatter func()) error {
	if IsJSON() {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider
func Header(text string) {
	w := Output()
	printf("\n%s\n%s\n", paint(w, styleHeader, text), strings.Repeat("=", len([]rune(text))))
}

// Section prints a section title
func Section(text string) {
	w := Output()
	printf("\n%s\n", paint(w, styleSection, getIcon(SymbolArrow, ASCIIArrow)+" "+text))
}

// Success prints a success message with green checkmark
func Success(format string, args ...interface{}) {
	w := Output()
	printf("%s %s\n", paint(w, styleSuccess, getIcon(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Error prints an error message with red X to the error writer
func Error(format string, args ...interface{}) {
	w := ErrorOutput()
	_, _ = fmt.Fprintf(w, "%s %s\n", paint(w, styleError, getIcon(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...interface{}) {
	w := Output()
	printf("%s  %s\n", paint(w, styleWarning, getIcon(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Info prints an info message with blue info icon
func Info(format string, args ...interface{}) {
	w := Output()
	printf("%s  %s\n", paint(w, styleInfo, getIcon(SymbolInfo, ASCIIInfo)), fmt.Sprintf(format, args...))
}

// Bullet prints a bulleted list item
func Bullet(format string, args ...interface{}) {
	printf("  %s %s\n", getIcon(SymbolDot, ASCIIDot), fmt.Sprintf(format, args...))
}

// Label prints a label and value pair
func Label(label, value string) {
	w := Output()
	printf("   %s %s\n", paint(w, styleMuted, fmt.Sprintf("%-12s", label+":")), value)
}

// Hint prints compact hints on a single line with bullet separators.
func Hint(hints ...string) {
	if len(hints) == 0 {
		return
	}
	w := Output()
	printf("%s\n", paint(w, styleMuted, strings.Join(hints, " "+getIcon(SymbolDot, ASCIIDot)+" ")))
}

// Divider prints a horizontal divider
func Divider() {
	w := Output()
	printf("\n%s\n", paint(w, styleMuted, strings.Repeat(getIcon("─", "-"), 50)))
}

// Newline prints a blank line
func Newline() {
	printf("\n")
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...interface{}) {
	printf(format+"\n", args...)
}

// Muted returns dimmed text.
func Muted(format string, args ...interface{}) string {
	return paint(Output(), styleMuted, fmt.Sprintf(format, args...))
}

// Emphasize returns bold text.
func Emphasize(format string, args ...interface{}) string {
	return paint(Output(), &display.Style{Color: display.White, Bold: true}, fmt.Sprintf(format, args...))
}
