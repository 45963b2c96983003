// Package jsonui provides the machine-readable front-end: one
// self-describing JSON envelope per line, suitable for piping into
// another process and replaying later.
package jsonui

import (
	"fmt"
	"io"
	"os"

	"github.com/franv314/task-maker-go/internal/ui"
)

// UI encodes each message to an io.Writer.
type UI struct {
	out io.Writer
}

// New returns a JSON front-end writing to out.
func New(out io.Writer) *UI {
	return &UI{out: out}
}

// OnMessage writes the envelope form of the message on its own line. A
// message that fails to encode is reported on stderr and skipped; the
// stream must keep flowing.
func (u *UI) OnMessage(m ui.Message) {
	data, err := ui.MarshalMessage(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot encode %s message: %v\n", m.Kind(), err)
		return
	}
	fmt.Fprintf(u.out, "%s\n", data)
}

// Finish does nothing: every envelope was written as it arrived.
func (u *UI) Finish() {}
