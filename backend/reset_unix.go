//go:build unix

package backend

import (
	"io"
	"os"
)

// ttyResetSequence disables the terminal modes a full-screen session
// enables, plus a few that other programs commonly leave behind. It is
// deliberately broader than seqLeave: on a signal or panic the normal
// leave path may never run, and a mode left on makes the shell
// unusable afterwards.
const ttyResetSequence = "" +
	"\x1b[!p" + // DECSTR (soft reset)
	"\x1b[0m" + // reset attributes
	"\x1b[?25h" + // show cursor
	"\x1b[?2004l" + // bracketed paste off
	"\x1b[?1000l" + // mouse reporting off
	"\x1b[?1002l" + // mouse button-event off
	"\x1b[?1003l" + // mouse any-event off
	"\x1b[?1006l" + // SGR mouse mode off
	"\x1b[?1049l" // main screen

func writeTTYReset(w io.Writer) {
	_, _ = io.WriteString(w, ttyResetSequence)
}

// resetTTY best-effort restores sane terminal modes. It prefers writing
// to /dev/tty so the sequence reaches the controlling terminal even
// when stdout is redirected.
func resetTTY() {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err == nil {
		writeTTYReset(tty)
		_ = tty.Close()
		return
	}
	writeTTYReset(os.Stdout)
}
