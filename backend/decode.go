package backend

import "github.com/dshills/consolekit/console/key"

// decoder turns raw terminal input bytes into key codes and click
// positions. Escape sequences split across reads are held as pending
// bytes until the rest arrives.
type decoder struct {
	pending []byte

	keys      []int
	clickX    int
	clickY    int
	haveClick bool
}

func newDecoder() *decoder {
	return &decoder{clickX: -1, clickY: -1}
}

// feed consumes a chunk of input bytes.
func (d *decoder) feed(p []byte) {
	d.pending = append(d.pending, p...)

	for len(d.pending) > 0 {
		n := d.step()
		if n == 0 {
			// Incomplete sequence; wait for more bytes.
			return
		}
		d.pending = d.pending[n:]
	}
}

// step decodes one event from the front of pending and returns the
// number of bytes consumed, or 0 when the front is an incomplete
// escape sequence.
func (d *decoder) step() int {
	b := d.pending[0]

	if b != 0x1b {
		if code := plainKey(b); code >= 0 {
			d.keys = append(d.keys, code)
		}
		return 1
	}

	// Lone ESC at the end of a chunk is the Escape key; terminals send
	// multi-byte sequences atomically.
	if len(d.pending) == 1 {
		d.keys = append(d.keys, int(key.KeyEscape))
		return 1
	}

	switch d.pending[1] {
	case '[':
		return d.stepCSI()
	case 'O':
		return d.stepSS3()
	default:
		d.keys = append(d.keys, int(key.KeyEscape))
		return 1
	}
}

// stepSS3 decodes ESC O final (F1-F4 on most terminals).
func (d *decoder) stepSS3() int {
	if len(d.pending) < 3 {
		return 0
	}
	switch d.pending[2] {
	case 'P', 'Q', 'R', 'S':
		d.keys = append(d.keys, int(key.KeyF1)+int(d.pending[2]-'P'))
	}
	return 3
}

// stepCSI decodes ESC [ params final.
func (d *decoder) stepCSI() int {
	// Find the final byte (0x40-0x7e).
	end := 2
	for end < len(d.pending) {
		if c := d.pending[end]; c >= 0x40 && c <= 0x7e {
			break
		}
		end++
		if end-2 > 32 {
			// Malformed; drop the introducer and resync.
			return 2
		}
	}
	if end >= len(d.pending) {
		return 0
	}

	final := d.pending[end]
	params := d.pending[2:end]

	switch final {
	case 'A':
		d.keys = append(d.keys, int(key.KeyUp))
	case 'B':
		d.keys = append(d.keys, int(key.KeyDown))
	case 'C':
		d.keys = append(d.keys, int(key.KeyRight))
	case 'D':
		d.keys = append(d.keys, int(key.KeyLeft))
	case '~':
		if code := tildeKey(params); code >= 0 {
			d.keys = append(d.keys, code)
		}
	case 'M', 'm':
		d.decodeSGRMouse(params, final)
	}
	return end + 1
}

// decodeSGRMouse handles SGR mouse reports: ESC [ < Btn ; X ; Y M/m.
// Only left-button presses are recorded; the most recent click wins.
func (d *decoder) decodeSGRMouse(params []byte, final byte) {
	if len(params) == 0 || params[0] != '<' {
		return
	}

	var nums [3]int
	idx := 0
	for _, c := range params[1:] {
		switch {
		case c >= '0' && c <= '9':
			nums[idx] = nums[idx]*10 + int(c-'0')
		case c == ';':
			idx++
			if idx > 2 {
				return
			}
		default:
			return
		}
	}
	if idx != 2 {
		return
	}

	btn, x, y := nums[0], nums[1], nums[2]
	// Bits 0-1: button (0 = left), bit 6: scroll. 'M' is press.
	if final != 'M' || btn&0x43 != 0 {
		return
	}
	if x < 1 || y < 1 {
		return
	}
	d.clickX, d.clickY = x-1, y-1
	d.haveClick = true
}

// tildeKey maps CSI N ~ parameters to key codes.
func tildeKey(params []byte) int {
	n := 0
	for _, c := range params {
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
	}

	switch n {
	case 3:
		return int(key.KeyDelete)
	case 11, 12, 13, 14:
		return int(key.KeyF1) + n - 11
	case 15:
		return int(key.KeyF5)
	case 17, 18, 19, 20, 21:
		return int(key.KeyF6) + n - 17
	case 23:
		return int(key.KeyF11)
	case 24:
		return int(key.KeyF12)
	}
	return -1
}

// plainKey maps a single non-escape byte to a key code, or -1 for
// bytes with no representation (UTF-8 continuation bytes and friends).
func plainKey(b byte) int {
	switch b {
	case '\r', '\n':
		return int(key.KeyEnter)
	case '\t':
		return int(key.KeyTab)
	}
	if b < 128 {
		return int(b)
	}
	return -1
}
