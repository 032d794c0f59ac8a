// Package highlight renders messages in a visually distinct style that is reset
// afterwards so it does not bleed into later output.
package highlight

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

// Highlighter wraps a message with highlight on and off sequences
type Highlighter interface {
	Highlight(s string) string
}

// ANSI highlights messages in red using ANSI escape codes
type ANSI struct {
	color *color.Color
}

// NewANSI creates a red highlighter. Colour is forced on regardless of whether
// stdout is a terminal; use Plain to opt out.
func NewANSI() *ANSI {
	c := color.New(color.FgRed)
	c.EnableColor()
	return &ANSI{color: c}
}

// Highlight returns s wrapped in red foreground and reset sequences
func (a *ANSI) Highlight(s string) string {
	return a.color.Sprint(s)
}

// Plain leaves messages untouched
type Plain struct{}

// Highlight returns s unchanged
func (Plain) Highlight(s string) string {
	return s
}

// New returns Plain when noColor is set and ANSI otherwise
func New(noColor bool) Highlighter {
	if noColor {
		return Plain{}
	}
	return NewANSI()
}

// Writer wraps f so escape sequences render on consoles without native ANSI support.
// Other writers are returned unchanged.
func Writer(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok {
		return colorable.NewColorable(f)
	}
	return w
}
