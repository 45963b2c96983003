// Package raw provides the front-end that dumps every message in its Go
// representation, one per line. Mostly useful while debugging producers.
package raw

import (
	"fmt"
	"io"

	"github.com/franv314/task-maker-go/internal/ui"
)

// UI writes each message verbatim to an io.Writer.
type UI struct {
	out io.Writer
}

// New returns a raw front-end writing to out.
func New(out io.Writer) *UI {
	return &UI{out: out}
}

// OnMessage prints the message's kind and fields.
func (u *UI) OnMessage(m ui.Message) {
	fmt.Fprintf(u.out, "%s %+v\n", m.Kind(), m)
}

// Finish does nothing: everything was already written.
func (u *UI) Finish() {}
