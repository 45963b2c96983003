// Package silent provides the front-end that discards everything. Useful
// when only the exit state of the run matters.
package silent

import "github.com/franv314/task-maker-go/internal/ui"

// UI ignores every message.
type UI struct{}

// New returns the silent front-end.
func New() *UI {
	return &UI{}
}

// OnMessage discards the message.
func (u *UI) OnMessage(ui.Message) {}

// Finish does nothing.
func (u *UI) Finish() {}
