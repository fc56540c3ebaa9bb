package console

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/dshills/consolekit/console/key"
)

// slot is the process-wide exclusivity token. Held exactly while a
// Session is active.
var slot atomic.Bool

// active points at the Session holding the slot so the fault paths can
// find the device to restore. Nil between sessions.
var active atomic.Pointer[Session]

// Session is the sole live handle granting console access.
//
// A Session is created by Acquire, which switches the terminal into
// raw/application mode, and destroyed by Release, which restores the
// prior mode. At most one Session exists per process at any time.
//
// I/O methods are meaningful only while the Session is active; after
// Release they become no-ops and probes report "absent".
type Session struct {
	dev      Device
	released atomic.Bool // Release already ran
	restored atomic.Bool // terminal restoration already happened (any path)
}

// Acquire attempts to take the process-wide console slot without
// blocking. If another Session is alive it fails immediately with
// ErrSessionActive; it never waits for release.
//
// On success the device's Init has run exactly once and the terminal is
// in raw/application mode.
func Acquire(dev Device, opts Options) (*Session, error) {
	if !slot.CompareAndSwap(false, true) {
		return nil, ErrSessionActive
	}

	if err := dev.Init(); err != nil {
		slot.Store(false)
		return nil, fmt.Errorf("init console device: %w", err)
	}

	s := &Session{dev: dev}
	active.Store(s)

	if opts.RestoreOnFault {
		installFaultObserver()
	}

	return s, nil
}

// Release restores the terminal to its prior mode and frees the console
// slot. Safe to call multiple times; restoration runs exactly once per
// acquisition regardless of how many release triggers fire. If a fault
// path already restored the terminal, Release only frees the slot.
func (s *Session) Release() {
	if !s.released.CompareAndSwap(false, true) {
		return
	}

	if s.restored.CompareAndSwap(false, true) {
		s.dev.Reset()
	}

	active.CompareAndSwap(s, nil)
	slot.Store(false)
}

// Size returns the terminal's character-grid dimensions, sampled at call
// time. There is no live resize tracking; callers that need up-to-date
// dimensions must re-query.
func (s *Session) Size() (width, height int) {
	if s.released.Load() {
		return 0, 0
	}
	width, height = s.dev.Size()
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return width, height
}

// HasInput reports whether key input is pending, without blocking.
//
// Polling callers must also call MouseClick every cycle even when mouse
// data is unused; on some platforms an undrained mouse report starves
// keyboard input delivery.
func (s *Session) HasInput() bool {
	if s.released.Load() {
		return false
	}
	return s.dev.HasInput()
}

// ReadKey returns the pending key, without blocking. The second return
// value is false when no key is pending.
func (s *Session) ReadKey() (key.Code, bool) {
	if s.released.Load() {
		return 0, false
	}
	raw := s.dev.ReadKey()
	if raw < 0 {
		return 0, false
	}
	return key.Code(raw), true
}

// MouseClick returns the cell position of a pending left click, without
// blocking. The third return value is false when no click occurred.
func (s *Session) MouseClick() (x, y int, ok bool) {
	if s.released.Load() {
		return 0, 0, false
	}
	x, y = s.dev.MouseClick()
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	return x, y, true
}

// DrawText renders text at the current cursor position. Text containing
// an embedded NUL byte fails fast with ErrTextContainsNUL rather than
// drawing a truncated prefix. Display of non-ASCII bytes and of text
// extending past the right edge is terminal-dependent.
func (s *Session) DrawText(text string) error {
	if strings.IndexByte(text, 0) >= 0 {
		return ErrTextContainsNUL
	}
	if s.released.Load() {
		return nil
	}
	s.dev.DrawText(text)
	return nil
}

// SetColor sets the foreground and background colors. The change is an
// immediate, unbuffered mutation of the shared terminal.
func (s *Session) SetColor(fg, bg Color) {
	if s.released.Load() {
		return
	}
	s.dev.SetColor(int(fg), int(bg))
}

// SetColorInverted sets the foreground and background colors, swapping
// the two when inverted is true.
func (s *Session) SetColorInverted(fg, bg Color, inverted bool) {
	if inverted {
		s.SetColor(bg, fg)
		return
	}
	s.SetColor(fg, bg)
}

// ResetColor restores the default foreground and background colors.
func (s *Session) ResetColor() {
	if s.released.Load() {
		return
	}
	s.dev.ResetColor()
}

// SetUnderline toggles underlined output.
func (s *Session) SetUnderline(on bool) {
	if s.released.Load() {
		return
	}
	s.dev.SetUnderline(on)
}

// SetCursorPos moves the cursor. Silently ignored when either
// coordinate is negative.
func (s *Session) SetCursorPos(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	if s.released.Load() {
		return
	}
	s.dev.SetCursorPos(x, y)
}

// Repaint clears the visible screen.
func (s *Session) Repaint() {
	if s.released.Load() {
		return
	}
	s.dev.Clear()
}
