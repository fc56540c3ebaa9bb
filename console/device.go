package console

// Device is the low-level console-control surface a Session drives.
// Implementations switch the terminal in and out of raw/application mode
// and perform the actual drawing, key reading and mouse reporting.
//
// The interface keeps the raw integer sentinel convention of classic
// console libraries: negative values mean "no event". Sessions normalize
// those sentinels; callers above the Session never see them.
type Device interface {
	// Init switches the terminal into raw/application mode.
	// A Session calls Init at most once per successful acquisition.
	Init() error

	// Reset restores the terminal mode captured by Init.
	// A Session guarantees at most one Reset per session lifetime.
	Reset()

	// Size returns the character-grid dimensions at call time.
	Size() (width, height int)

	// HasInput reports whether key input is pending without blocking.
	HasInput() bool

	// ReadKey returns the pending key code, or a negative value when no
	// key is pending.
	ReadKey() int

	// MouseClick returns the cell coordinates of a pending left click.
	// Negative coordinates mean no click occurred.
	MouseClick() (x, y int)

	// DrawText renders text at the current cursor position.
	// The text must not contain NUL bytes.
	DrawText(text string)

	// SetColor sets the foreground and background palette codes.
	// A negative code selects the platform default rendering.
	SetColor(fg, bg int)

	// ResetColor restores the default foreground and background.
	ResetColor()

	// SetUnderline toggles underlined output.
	SetUnderline(on bool)

	// SetCursorPos moves the cursor. Coordinates are non-negative.
	SetCursorPos(x, y int)

	// Clear erases the visible screen.
	Clear()
}
