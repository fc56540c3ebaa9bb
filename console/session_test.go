package console

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/consolekit/console/key"
)

// fakeDevice records every primitive call for verification.
type fakeDevice struct {
	calls   []string
	initErr error

	width, height  int
	hasInput       bool
	nextKey        int
	clickX, clickY int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		width:   80,
		height:  24,
		nextKey: -1,
		clickX:  -1,
		clickY:  -1,
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

// count returns the number of recorded calls starting with prefix.
func (d *fakeDevice) count(prefix string) int {
	n := 0
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (d *fakeDevice) Init() error {
	if d.initErr != nil {
		return d.initErr
	}
	d.record("Init")
	return nil
}

func (d *fakeDevice) Reset()           { d.record("Reset") }
func (d *fakeDevice) Size() (int, int) { d.record("Size"); return d.width, d.height }
func (d *fakeDevice) HasInput() bool   { d.record("HasInput"); return d.hasInput }
func (d *fakeDevice) ReadKey() int     { d.record("ReadKey"); return d.nextKey }

func (d *fakeDevice) MouseClick() (int, int) {
	d.record("MouseClick")
	return d.clickX, d.clickY
}

func (d *fakeDevice) DrawText(text string)  { d.record("DrawText(%s)", text) }
func (d *fakeDevice) SetColor(fg, bg int)   { d.record("SetColor(%d,%d)", fg, bg) }
func (d *fakeDevice) ResetColor()           { d.record("ResetColor") }
func (d *fakeDevice) SetUnderline(on bool)  { d.record("SetUnderline(%v)", on) }
func (d *fakeDevice) SetCursorPos(x, y int) { d.record("SetCursorPos(%d,%d)", x, y) }
func (d *fakeDevice) Clear()                { d.record("Clear") }

// acquire takes the session for a test and guarantees the process-wide
// slot is freed on cleanup.
func acquire(t *testing.T, dev Device, opts Options) *Session {
	t.Helper()
	s, err := Acquire(dev, opts)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	t.Cleanup(s.Release)
	return s
}

func TestAcquireExclusive(t *testing.T) {
	dev1 := newFakeDevice()
	s1, err := Acquire(dev1, Options{})
	if err != nil {
		t.Fatalf("first Acquire failed: %v", err)
	}
	defer s1.Release()

	// A second acquisition must fail immediately while s1 is active.
	dev2 := newFakeDevice()
	if _, err := Acquire(dev2, Options{}); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("second Acquire error = %v, want ErrSessionActive", err)
	}
	if dev2.count("Init") != 0 {
		t.Error("failed acquisition must not touch the device")
	}

	// The original session is unaffected by the failed attempt.
	if err := s1.DrawText("still mine"); err != nil {
		t.Errorf("DrawText on original session failed: %v", err)
	}

	// After release the slot is free again, not leaked.
	s1.Release()
	s2, err := Acquire(dev2, Options{})
	if err != nil {
		t.Fatalf("Acquire after release failed: %v", err)
	}
	s2.Release()
}

func TestAcquireInitError(t *testing.T) {
	dev := newFakeDevice()
	dev.initErr = errors.New("no tty")

	if _, err := Acquire(dev, Options{}); err == nil {
		t.Fatal("Acquire succeeded despite Init failure")
	}

	// The slot must have been freed on the failure path.
	dev2 := newFakeDevice()
	s, err := Acquire(dev2, Options{})
	if err != nil {
		t.Fatalf("Acquire after failed Init: %v", err)
	}
	s.Release()
}

func TestReleaseExactlyOnce(t *testing.T) {
	dev := newFakeDevice()
	s := acquire(t, dev, Options{})

	s.Release()
	s.Release()
	s.Release()

	if got := dev.count("Reset"); got != 1 {
		t.Errorf("Reset called %d times, want 1", got)
	}
}

func TestSize(t *testing.T) {
	dev := newFakeDevice()
	dev.width, dev.height = 120, 40
	s := acquire(t, dev, Options{})

	w, h := s.Size()
	if w != 120 || h != 40 {
		t.Errorf("Size() = (%d, %d), want (120, 40)", w, h)
	}

	// Negative sentinels from the device clamp to zero.
	dev.width, dev.height = -1, -1
	w, h = s.Size()
	if w != 0 || h != 0 {
		t.Errorf("Size() with sentinels = (%d, %d), want (0, 0)", w, h)
	}
}

func TestReadKey(t *testing.T) {
	dev := newFakeDevice()
	s := acquire(t, dev, Options{})

	// Negative raw code means no key, not an error.
	dev.nextKey = -1
	if _, ok := s.ReadKey(); ok {
		t.Error("ReadKey reported a key for raw code -1")
	}

	dev.nextKey = int('a')
	got, ok := s.ReadKey()
	if !ok || got != key.KeyA {
		t.Errorf("ReadKey() = (%v, %v), want (KeyA, true)", got, ok)
	}
}

func TestMouseClick(t *testing.T) {
	dev := newFakeDevice()
	s := acquire(t, dev, Options{})

	// Negative raw coordinates mean no click occurred.
	if _, _, ok := s.MouseClick(); ok {
		t.Error("MouseClick reported a click for raw coords -1/-1")
	}

	dev.clickX, dev.clickY = 12, 3
	x, y, ok := s.MouseClick()
	if !ok || x != 12 || y != 3 {
		t.Errorf("MouseClick() = (%d, %d, %v), want (12, 3, true)", x, y, ok)
	}
}

func TestDrawTextRejectsNUL(t *testing.T) {
	dev := newFakeDevice()
	s := acquire(t, dev, Options{})

	if err := s.DrawText("abc\x00def"); !errors.Is(err, ErrTextContainsNUL) {
		t.Fatalf("DrawText error = %v, want ErrTextContainsNUL", err)
	}
	if dev.count("DrawText") != 0 {
		t.Error("DrawText must fail fast, not draw a truncated prefix")
	}

	if err := s.DrawText("abcdef"); err != nil {
		t.Errorf("DrawText without NUL failed: %v", err)
	}
	if dev.count("DrawText") != 1 {
		t.Error("DrawText without NUL did not reach the device")
	}
}

func TestSetColorInverted(t *testing.T) {
	tests := []struct {
		name     string
		fg, bg   Color
		inverted bool
		want     string
	}{
		{"normal", ColorRed, ColorBlack, false, "SetColor(4,0)"},
		{"inverted", ColorRed, ColorBlack, true, "SetColor(0,4)"},
		{"default fg", ColorDefault, ColorWhite, false, "SetColor(-1,7)"},
		{"default inverted", ColorDefault, ColorWhite, true, "SetColor(7,-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice()
			s := acquire(t, dev, Options{})

			s.SetColorInverted(tt.fg, tt.bg, tt.inverted)
			if got := dev.calls[len(dev.calls)-1]; got != tt.want {
				t.Errorf("device saw %s, want %s", got, tt.want)
			}
			s.Release()
		})
	}
}

func TestSetCursorPosNegative(t *testing.T) {
	dev := newFakeDevice()
	s := acquire(t, dev, Options{})

	s.SetCursorPos(-1, 5)
	s.SetCursorPos(5, -1)
	s.SetCursorPos(-1, -1)
	if dev.count("SetCursorPos") != 0 {
		t.Error("negative coordinates must not reach the device")
	}

	s.SetCursorPos(0, 0)
	s.SetCursorPos(7, 9)
	if got := dev.count("SetCursorPos"); got != 2 {
		t.Errorf("SetCursorPos reached the device %d times, want 2", got)
	}
}

func TestStylingPassThrough(t *testing.T) {
	dev := newFakeDevice()
	s := acquire(t, dev, Options{})

	s.SetColor(ColorYellow, ColorBlue)
	s.SetUnderline(true)
	s.SetUnderline(false)
	s.ResetColor()
	s.Repaint()

	want := []string{
		"Init",
		"SetColor(6,1)",
		"SetUnderline(true)",
		"SetUnderline(false)",
		"ResetColor",
		"Clear",
	}
	if len(dev.calls) != len(want) {
		t.Fatalf("device saw %v, want %v", dev.calls, want)
	}
	for i, w := range want {
		if dev.calls[i] != w {
			t.Errorf("call %d = %s, want %s", i, dev.calls[i], w)
		}
	}
}

func TestOpsAfterRelease(t *testing.T) {
	dev := newFakeDevice()
	s := acquire(t, dev, Options{})
	s.Release()
	before := len(dev.calls)

	if s.HasInput() {
		t.Error("HasInput true after release")
	}
	if _, ok := s.ReadKey(); ok {
		t.Error("ReadKey reported a key after release")
	}
	if _, _, ok := s.MouseClick(); ok {
		t.Error("MouseClick reported a click after release")
	}
	if err := s.DrawText("late"); err != nil {
		t.Errorf("DrawText after release returned %v", err)
	}
	s.SetColor(ColorRed, ColorBlack)
	s.SetCursorPos(1, 1)
	s.Repaint()

	if len(dev.calls) != before {
		t.Errorf("device saw calls after release: %v", dev.calls[before:])
	}
}
