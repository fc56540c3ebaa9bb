package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/consolekit/console"
	"github.com/dshills/consolekit/console/key"
)

// Terminal implements console.Device using tcell for terminal control.
//
// tcell's event delivery is channel-based and blocking; Terminal adapts
// it to the non-blocking Device contract with an internal pump that
// drains pending events into a key FIFO and a last-click slot.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	keys      []int
	clickX    int
	clickY    int
	haveClick bool

	style      tcell.Style
	curX, curY int
}

var _ console.Device = (*Terminal)(nil)

// NewTerminal creates a tcell-backed device for the process terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()

	t.style = tcell.StyleDefault
	t.clickX, t.clickY = -1, -1
	t.events = make(chan tcell.Event, 64)
	t.quit = make(chan struct{})
	go t.screen.ChannelEvents(t.events, t.quit)

	return nil
}

func (t *Terminal) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.quit == nil {
		return
	}
	close(t.quit)
	t.quit = nil
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) HasInput() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pump()
	return len(t.keys) > 0
}

func (t *Terminal) ReadKey() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pump()
	if len(t.keys) == 0 {
		return -1
	}
	code := t.keys[0]
	t.keys = t.keys[1:]
	return code
}

func (t *Terminal) MouseClick() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pump()
	if !t.haveClick {
		return -1, -1
	}
	t.haveClick = false
	return t.clickX, t.clickY
}

func (t *Terminal) DrawText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range text {
		t.screen.SetContent(t.curX, t.curY, r, nil, t.style)
		t.curX++
	}
	t.screen.Show()
}

func (t *Terminal) SetColor(fg, bg int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.style = t.style.
		Foreground(paletteColor(fg)).
		Background(paletteColor(bg))
}

func (t *Terminal) ResetColor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.style = t.style.
		Foreground(tcell.ColorDefault).
		Background(tcell.ColorDefault)
}

func (t *Terminal) SetUnderline(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.style = t.style.Underline(on)
}

func (t *Terminal) SetCursorPos(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.curX, t.curY = x, y
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	t.screen.Show()
}

// pump drains pending tcell events without blocking.
// Callers must hold t.mu.
func (t *Terminal) pump() {
	if t.events == nil {
		return
	}
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				// ChannelEvents closed the channel after Reset; stop
				// reading or this loop would spin on zero events.
				t.events = nil
				return
			}
			t.handle(ev)
		default:
			return
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if code := translateKey(ev); code >= 0 {
			t.keys = append(t.keys, code)
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			t.clickX, t.clickY = ev.Position()
			t.haveClick = true
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// translateKey maps a tcell key event into the module's key-code space.
// Unrepresentable keys map to -1 and are dropped.
func translateKey(ev *tcell.EventKey) int {
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r >= 0 && r < 128 {
			return int(r)
		}
		return -1
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return int(key.KeyF1) + int(k-tcell.KeyF1)
	}

	switch k {
	case tcell.KeyUp:
		return int(key.KeyUp)
	case tcell.KeyDown:
		return int(key.KeyDown)
	case tcell.KeyLeft:
		return int(key.KeyLeft)
	case tcell.KeyRight:
		return int(key.KeyRight)
	case tcell.KeyEnter:
		return int(key.KeyEnter)
	case tcell.KeyTab:
		return int(key.KeyTab)
	case tcell.KeyEscape:
		return int(key.KeyEscape)
	case tcell.KeyDelete:
		return int(key.KeyDelete)
	case tcell.KeyBackspace:
		return 8
	case tcell.KeyBackspace2:
		return 127
	}

	// Remaining sub-128 tcell keys are ASCII control codes (Ctrl+A..).
	if k > 0 && k < 128 {
		return int(k)
	}
	return -1
}

// paletteOrder maps the palette encoding (Black, Blue, Green, Cyan,
// Red, Pink, Yellow, White) onto ANSI palette indices.
var paletteOrder = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

func paletteColor(code int) tcell.Color {
	if code < 0 || code > 15 {
		return tcell.ColorDefault
	}
	n := paletteOrder[code&7]
	if code >= 8 {
		n += 8
	}
	return tcell.PaletteColor(n)
}
