package backend

import (
	"fmt"
	"sync"

	"github.com/dshills/consolekit/console"
)

// Null implements console.Device in memory, with no real terminal.
// It keeps a rune grid for drawn text, queues for injected input, and a
// log of primitive calls, which makes it useful for headless operation
// and for tests that assert on device traffic.
type Null struct {
	mu     sync.Mutex
	width  int
	height int

	cells      [][]rune
	curX, curY int

	keys   []int
	clicks [][2]int
	calls  []string
}

var _ console.Device = (*Null)(nil)

// NewNull creates an in-memory device with a fixed grid size.
func NewNull(width, height int) *Null {
	n := &Null{width: width, height: height}
	n.cells = make([][]rune, height)
	for y := range n.cells {
		n.cells[y] = make([]rune, width)
		for x := range n.cells[y] {
			n.cells[y][x] = ' '
		}
	}
	return n
}

// InjectKey queues a raw key code for a later ReadKey.
func (n *Null) InjectKey(code int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.keys = append(n.keys, code)
}

// InjectClick queues a left-click position for a later MouseClick.
func (n *Null) InjectClick(x, y int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.clicks = append(n.clicks, [2]int{x, y})
}

// Calls returns a copy of the primitive-call log.
func (n *Null) Calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]string, len(n.calls))
	copy(out, n.calls)
	return out
}

// Cell returns the rune drawn at a position, or space when out of
// bounds or untouched.
func (n *Null) Cell(x, y int) rune {
	n.mu.Lock()
	defer n.mu.Unlock()

	if x < 0 || x >= n.width || y < 0 || y >= n.height {
		return ' '
	}
	return n.cells[y][x]
}

func (n *Null) record(format string, args ...any) {
	n.calls = append(n.calls, fmt.Sprintf(format, args...))
}

func (n *Null) Init() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.record("Init")
	return nil
}

func (n *Null) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.record("Reset")
}

func (n *Null) Size() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.width, n.height
}

func (n *Null) HasInput() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.keys) > 0
}

func (n *Null) ReadKey() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.keys) == 0 {
		return -1
	}
	code := n.keys[0]
	n.keys = n.keys[1:]
	return code
}

func (n *Null) MouseClick() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.clicks) == 0 {
		return -1, -1
	}
	click := n.clicks[0]
	n.clicks = n.clicks[1:]
	return click[0], click[1]
}

func (n *Null) DrawText(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.record("DrawText(%s)", text)
	for _, r := range text {
		// Out-of-bounds characters are ignored, not wrapped.
		if n.curX >= 0 && n.curX < n.width && n.curY >= 0 && n.curY < n.height {
			n.cells[n.curY][n.curX] = r
		}
		n.curX++
	}
}

func (n *Null) SetColor(fg, bg int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.record("SetColor(%d,%d)", fg, bg)
}

func (n *Null) ResetColor() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.record("ResetColor")
}

func (n *Null) SetUnderline(on bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.record("SetUnderline(%v)", on)
}

func (n *Null) SetCursorPos(x, y int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.record("SetCursorPos(%d,%d)", x, y)
	n.curX, n.curY = x, y
}

func (n *Null) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.record("Clear")
	for y := range n.cells {
		for x := range n.cells[y] {
			n.cells[y][x] = ' '
		}
	}
}
