package ui

import "runtime"

// ANSI Color codes
const (
	colorReset = "\033[0m"

	colorRed   = "\033[31m"
	colorGreen = "\033[32m"

	colorBrightRed   = "\033[91m"
	colorBrightGreen = "\033[92m"
)

// Colorize wraps text in an ANSI color, skipping it on Windows where
// the codes are not reliably supported.
func Colorize(text, color string) string {
	if runtime.GOOS == "windows" {
		return text
	}

	return color + text + colorReset
}

func Red(text string) string   { return Colorize(text, colorRed) }
func Green(text string) string { return Colorize(text, colorGreen) }

func BrightRed(text string) string   { return Colorize(text, colorBrightRed) }
func BrightGreen(text string) string { return Colorize(text, colorBrightGreen) }

// Shortcuts for common message types
func Success(text string) string { return BrightGreen(text) }
func Error(text string) string   { return BrightRed("Error: " + text) }
