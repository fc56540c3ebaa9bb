//go:build unix

package backend

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/dshills/consolekit/console"
)

// Control sequences emitted by the ANSI driver. The driver bypasses
// terminfo entirely; target environments are xterm-compatible
// terminals on Linux, macOS and the BSDs.
const (
	seqEnter = "\x1b[?1049h" + // alternate screen
		"\x1b[?25l" + // hide cursor
		"\x1b[2J\x1b[H" + // clear, home
		"\x1b[?1000h\x1b[?1006h" // click reporting, SGR encoding

	seqLeave = "\x1b[?1000l\x1b[?1006l" + // mouse reporting off
		"\x1b[0m" + // reset attributes
		"\x1b[?25h" + // show cursor
		"\x1b[?1049l" // main screen
)

// ANSI implements console.Device with direct escape-sequence output and
// raw stdin parsing. It exists for environments where tcell's terminfo
// handling is unwanted; behavior matches Terminal for the operations a
// Session performs.
type ANSI struct {
	mu    sync.Mutex
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	saved *term.State

	dec *decoder
	buf []byte
}

var _ console.Device = (*ANSI)(nil)

// NewANSI creates a direct-ANSI device for the process terminal.
func NewANSI() (*ANSI, error) {
	return &ANSI{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
		dec:   newDecoder(),
		buf:   make([]byte, 256),
	}, nil
}

func (a *ANSI) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !term.IsTerminal(a.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	saved, err := term.MakeRaw(a.inFd)
	if err != nil {
		return err
	}
	a.saved = saved

	a.write(seqEnter)
	return nil
}

func (a *ANSI) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.saved == nil {
		return
	}
	a.write(seqLeave)
	_ = term.Restore(a.inFd, a.saved)
	a.saved = nil
	resetTTY()
}

func (a *ANSI) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(a.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

func (a *ANSI) HasInput() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.poll()
	return len(a.dec.keys) > 0
}

func (a *ANSI) ReadKey() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.poll()
	if len(a.dec.keys) == 0 {
		return -1
	}
	code := a.dec.keys[0]
	a.dec.keys = a.dec.keys[1:]
	return code
}

func (a *ANSI) MouseClick() (int, int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.poll()
	if !a.dec.haveClick {
		return -1, -1
	}
	a.dec.haveClick = false
	return a.dec.clickX, a.dec.clickY
}

func (a *ANSI) DrawText(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.write(text)
}

func (a *ANSI) SetColor(fg, bg int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.write(fmt.Sprintf("\x1b[%d;%dm", sgrForeground(fg), sgrBackground(bg)))
}

func (a *ANSI) ResetColor() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.write("\x1b[39;49m")
}

func (a *ANSI) SetUnderline(on bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if on {
		a.write("\x1b[4m")
	} else {
		a.write("\x1b[24m")
	}
}

func (a *ANSI) SetCursorPos(x, y int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.write(fmt.Sprintf("\x1b[%d;%dH", y+1, x+1))
}

func (a *ANSI) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.write("\x1b[2J\x1b[H")
}

func (a *ANSI) write(s string) {
	_, _ = a.out.WriteString(s)
}

// poll drains all immediately available stdin bytes into the decoder.
// Callers must hold a.mu.
func (a *ANSI) poll() {
	for {
		fds := []unix.PollFd{{Fd: int32(a.inFd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 0)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if n == 0 {
			return
		}

		rn, err := unix.Read(a.inFd, a.buf)
		if err != nil || rn <= 0 {
			return
		}
		a.dec.feed(a.buf[:rn])
	}
}

// sgrForeground maps a palette code to an SGR foreground parameter.
// Negative codes select the terminal default.
func sgrForeground(code int) int {
	if code < 0 || code > 15 {
		return 39
	}
	if code >= 8 {
		return 90 + paletteOrder[code&7]
	}
	return 30 + paletteOrder[code]
}

// sgrBackground maps a palette code to an SGR background parameter.
func sgrBackground(code int) int {
	if code < 0 || code > 15 {
		return 49
	}
	if code >= 8 {
		return 100 + paletteOrder[code&7]
	}
	return 40 + paletteOrder[code]
}
