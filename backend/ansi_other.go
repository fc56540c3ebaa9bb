//go:build !unix

package backend

import (
	"errors"

	"github.com/dshills/consolekit/console"
)

// ANSI is only functional on Unix platforms; use Terminal elsewhere.
// The non-Unix stub satisfies console.Device so callers can compile,
// but Init always fails.
type ANSI struct{}

var _ console.Device = (*ANSI)(nil)

// NewANSI reports that the direct-ANSI driver is unsupported here.
func NewANSI() (*ANSI, error) {
	return nil, errors.New("ansi device requires a Unix terminal")
}

func (a *ANSI) Init() error            { return errors.New("ansi device requires a Unix terminal") }
func (a *ANSI) Reset()                 {}
func (a *ANSI) Size() (int, int)       { return 0, 0 }
func (a *ANSI) HasInput() bool         { return false }
func (a *ANSI) ReadKey() int           { return -1 }
func (a *ANSI) MouseClick() (int, int) { return -1, -1 }
func (a *ANSI) DrawText(string)        {}
func (a *ANSI) SetColor(int, int)      {}
func (a *ANSI) ResetColor()            {}
func (a *ANSI) SetUnderline(bool)      {}
func (a *ANSI) SetCursorPos(int, int)  {}
func (a *ANSI) Clear()                 {}
