// Package curses provides the interactive terminal front-end: a live
// view of the evaluation that repaints as events arrive, and prints the
// usual final summary once the run ends.
package curses

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/franv314/task-maker-go/internal/log"
	"github.com/franv314/task-maker-go/internal/ui"
	"github.com/franv314/task-maker-go/internal/ui/print"
)

// UI drives a bubbletea program fed with protocol messages.
type UI struct {
	prog  *tea.Program
	state *ui.State
	out   io.Writer

	wg     sync.WaitGroup
	runErr error
}

// New starts the interactive front-end, rendering to out.
func New(out io.Writer) *UI {
	state := ui.NewState()
	u := &UI{
		prog: tea.NewProgram(
			newModel(state),
			tea.WithOutput(out),
			tea.WithoutSignalHandler(),
		),
		state: state,
		out:   out,
	}
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		if _, err := u.prog.Run(); err != nil {
			u.runErr = err
		}
	}()
	return u
}

// OnMessage forwards the message into the running program.
func (u *UI) OnMessage(m ui.Message) {
	u.prog.Send(messageMsg{message: m})
}

// Finish stops the interactive program and prints the final summary from
// the state the program accumulated.
func (u *UI) Finish() {
	u.prog.Quit()
	u.wg.Wait()
	if u.runErr != nil {
		log.Error(log.CatUI, "interactive ui failed", "err", u.runErr)
		fmt.Fprintf(u.out, "interactive ui failed: %v\n", u.runErr)
	}
	// The program's event loop has exited: the state is ours again.
	print.PrintFinalState(u.out, print.DefaultStyles(), u.state)
}
