package console

import "strings"

// Color is one of the 16 fixed palette entries, or ColorDefault.
//
// The encoding is stable: the 8 base colors occupy 0-7 and their light
// variants 8-15, in the order the underlying console libraries expect.
type Color int8

const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorPink
	ColorYellow
	ColorWhite
	ColorLightBlack
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightPink
	ColorLightYellow
	ColorLightWhite

	// ColorDefault selects the terminal's own default rendering.
	// Black on most Unix terminals, the native default attribute
	// elsewhere; the choice is delegated to the device.
	ColorDefault Color = -1
)

var colorNames = [...]string{
	"black", "blue", "green", "cyan", "red", "pink", "yellow", "white",
	"lightblack", "lightblue", "lightgreen", "lightcyan",
	"lightred", "lightpink", "lightyellow", "lightwhite",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if c == ColorDefault {
		return "default"
	}
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColor parses a color name as produced by String.
// Matching is case-insensitive. The second return value is false for
// unrecognized names.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "default" {
		return ColorDefault, true
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}
