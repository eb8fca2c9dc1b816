package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	URL   *color.Color
	Error *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		URL:   color.New(color.FgCyan, color.Underline),
		Error: color.New(color.FgRed, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	// Disable all colors
	scheme.URL.DisableColor()
	scheme.Error.DisableColor()

	return scheme
}

// ForcedColorScheme returns the default colors even when fatih/color
// decided os.Stdout cannot show them
func ForcedColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.URL.EnableColor()
	scheme.Error.EnableColor()

	return scheme
}
