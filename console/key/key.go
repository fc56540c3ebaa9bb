package key

import (
	"fmt"
	"unicode"
)

// Code identifies a single key input event.
// Values at or below 127 are ASCII; named keys live above the ASCII range.
type Code uint16

// Printable ASCII keys. The value is the ASCII byte itself.
const (
	KeySpace       Code = ' '
	KeyExclamation Code = '!'
	KeyDoubleQuote Code = '"'
	KeyHash        Code = '#'
	KeyDollar      Code = '$'
	KeyPercent     Code = '%'
	KeyAmpersand   Code = '&'
	KeyApostrophe  Code = '\''
	KeyLeftParen   Code = '('
	KeyRightParen  Code = ')'
	KeyAsterisk    Code = '*'
	KeyPlus        Code = '+'
	KeyComma       Code = ','
	KeyMinus       Code = '-'
	KeyDot         Code = '.'
	KeySlash       Code = '/'

	KeyColon        Code = ':'
	KeySemicolon    Code = ';'
	KeyLess         Code = '<'
	KeyEquals       Code = '='
	KeyGreater      Code = '>'
	KeyQuestion     Code = '?'
	KeyAt           Code = '@'
	KeyLeftBracket  Code = '['
	KeyBackslash    Code = '\\'
	KeyRightBracket Code = ']'
	KeyCaret        Code = '^'
	KeyUnderscore   Code = '_'
	KeyBacktick     Code = '`'
	KeyLeftBrace    Code = '{'
	KeyPipe         Code = '|'
	KeyRightBrace   Code = '}'
	KeyTilde        Code = '~'
)

// Digit keys.
const (
	Key0 Code = '0'
	Key1 Code = '1'
	Key2 Code = '2'
	Key3 Code = '3'
	Key4 Code = '4'
	Key5 Code = '5'
	Key6 Code = '6'
	Key7 Code = '7'
	Key8 Code = '8'
	Key9 Code = '9'
)

// Letter keys. The named constants use the lowercase codes; uppercase
// letters arrive as their own ASCII values.
const (
	KeyA Code = 'a'
	KeyB Code = 'b'
	KeyC Code = 'c'
	KeyD Code = 'd'
	KeyE Code = 'e'
	KeyF Code = 'f'
	KeyG Code = 'g'
	KeyH Code = 'h'
	KeyI Code = 'i'
	KeyJ Code = 'j'
	KeyK Code = 'k'
	KeyL Code = 'l'
	KeyM Code = 'm'
	KeyN Code = 'n'
	KeyO Code = 'o'
	KeyP Code = 'p'
	KeyQ Code = 'q'
	KeyR Code = 'r'
	KeyS Code = 's'
	KeyT Code = 't'
	KeyU Code = 'u'
	KeyV Code = 'v'
	KeyW Code = 'w'
	KeyX Code = 'x'
	KeyY Code = 'y'
	KeyZ Code = 'z'
)

// Arrow keys. The band is contiguous; IsArrow relies on the order
// Left, Up, Right, Down.
const (
	KeyLeft Code = 5000 + iota
	KeyUp
	KeyRight
	KeyDown
)

// Function keys.
const (
	KeyF1 Code = 5004 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Other named keys.
const (
	KeyEscape Code = 5016 + iota
	KeyDelete
	KeyEnter
	KeyTab
)

// IsArrow reports whether the code is one of the four arrow keys.
func (c Code) IsArrow() bool {
	return c >= KeyLeft && c <= KeyDown
}

// IsASCII reports whether the code is an ASCII value (0-127).
func (c Code) IsASCII() bool {
	return c <= 127
}

// ASCII returns the code as an ASCII byte. The second return value is
// false for named keys and any other value outside the ASCII range.
func (c Code) ASCII() (byte, bool) {
	if !c.IsASCII() {
		return 0, false
	}
	return byte(c), true
}

// IsNumeric reports whether the code is an ASCII decimal digit.
// Always false for non-ASCII codes.
func (c Code) IsNumeric() bool {
	return c.IsASCII() && unicode.IsDigit(rune(c))
}

// IsAlphanumeric reports whether the code is an ASCII letter or digit.
// Always false for non-ASCII codes.
func (c Code) IsAlphanumeric() bool {
	return c.IsASCII() && (unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c)))
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch {
	case c.IsArrow():
		return [...]string{"Left", "Up", "Right", "Down"}[c-KeyLeft]
	case c >= KeyF1 && c <= KeyF12:
		return fmt.Sprintf("F%d", c-KeyF1+1)
	}

	switch c {
	case KeyEscape:
		return "Escape"
	case KeyDelete:
		return "Delete"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeySpace:
		return "Space"
	}

	if c.IsASCII() && unicode.IsPrint(rune(c)) {
		return string(rune(c))
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
