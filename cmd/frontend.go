package cmd

import (
	"io"

	"github.com/franv314/task-maker-go/internal/ui"
	"github.com/franv314/task-maker-go/internal/ui/curses"
	"github.com/franv314/task-maker-go/internal/ui/jsonui"
	"github.com/franv314/task-maker-go/internal/ui/print"
	"github.com/franv314/task-maker-go/internal/ui/raw"
	"github.com/franv314/task-maker-go/internal/ui/silent"
)

// newFrontEnd instantiates the renderer for a parsed selector. The
// switch covers every Type; ParseType already rejected everything else.
func newFrontEnd(t ui.Type, out io.Writer) ui.UI {
	switch t {
	case ui.TypePrint:
		return print.New(out)
	case ui.TypeRaw:
		return raw.New(out)
	case ui.TypeCurses:
		return curses.New(out)
	case ui.TypeJSON:
		return jsonui.New(out)
	case ui.TypeSilent:
		return silent.New()
	default:
		return silent.New()
	}
}
