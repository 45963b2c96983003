// Package print provides the line-oriented colored front-end: one line
// per notable event while the evaluation runs, then a final summary of
// compilations, scores and warnings.
package print

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/franv314/task-maker-go/internal/ui"
)

const warningWrapWidth = 80

// Styles are the lipgloss styles used by the print and curses
// front-ends.
type Styles struct {
	Bold    lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the standard adaptive style set.
func DefaultStyles() Styles {
	return Styles{
		Bold:    lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}),
	}
}

// UI prints one line per notable event and a summary on finish.
type UI struct {
	out    io.Writer
	state  *ui.State
	styles Styles
}

// New returns a print front-end writing to out.
func New(out io.Writer) *UI {
	return &UI{
		out:    out,
		state:  ui.NewState(),
		styles: DefaultStyles(),
	}
}

// OnMessage folds the message into the aggregate state and prints a line
// for the events worth showing while the run progresses.
func (u *UI) OnMessage(m ui.Message) {
	u.state.Apply(m)

	switch msg := m.(type) {
	case ui.Stop:
		// Never forwarded by the dispatch loop.
	case ui.ServerStatus:
		// Too chatty for a line-oriented output.
	case ui.Compilation:
		u.statusLine(fmt.Sprintf("Compilation of %s", msg.File), msg.Status)
	case ui.CompilationStdout, ui.CompilationStderr:
		// Shown in the final summary for failed compilations only.
	case ui.IOITask:
		fmt.Fprintf(u.out, "%s (%s)\n", u.styles.Bold.Render(msg.Task.Title), msg.Task.Name)
	case ui.IOIGeneration:
		u.statusLine(fmt.Sprintf("Generation of testcase %d of subtask %d", msg.Testcase, msg.Subtask), msg.Status)
	case ui.IOIGenerationStderr:
		// Kept in the state; printed only with a failed generation.
	case ui.IOIValidation:
		u.statusLine(fmt.Sprintf("Validation of testcase %d of subtask %d", msg.Testcase, msg.Subtask), msg.Status)
	case ui.IOIValidationStderr:
	case ui.IOISolution:
		u.statusLine(fmt.Sprintf("Solution of testcase %d of subtask %d", msg.Testcase, msg.Subtask), msg.Status)
	case ui.IOIEvaluation:
		u.statusLine(fmt.Sprintf("Evaluation of %s on testcase %d of subtask %d", msg.Solution, msg.Testcase, msg.Subtask), msg.Status)
	case ui.IOIChecker:
		u.statusLine(fmt.Sprintf("Checking output of %s on testcase %d of subtask %d", msg.Solution, msg.Testcase, msg.Subtask), msg.Status)
	case ui.IOITestcaseScore:
		fmt.Fprintf(u.out, "Solution %s scored %s on testcase %d of subtask %d: %s\n",
			msg.Solution, u.scoreStyle(msg.Score).Render(fmt.Sprintf("%.2f", msg.Score)),
			msg.Testcase, msg.Subtask, msg.Message)
	case ui.IOISubtaskScore:
		fmt.Fprintf(u.out, "Solution %s scored %s on subtask %d\n",
			msg.Solution, u.scoreStyle(msg.NormalizedScore).Render(fmt.Sprintf("%.2f", msg.Score)), msg.Subtask)
	case ui.IOITaskScore:
		fmt.Fprintf(u.out, "Solution %s scored %s\n",
			msg.Solution, u.styles.Bold.Render(fmt.Sprintf("%.2f", msg.Score)))
	case ui.IOIBooklet:
		u.statusLine(fmt.Sprintf("Compilation of booklet %s", msg.Name), msg.Status)
	case ui.IOIBookletDependency:
		u.statusLine(fmt.Sprintf("Compilation of dependency %s of booklet %s (step %d of %d)",
			msg.Name, msg.Booklet, msg.Step+1, msg.NumSteps), msg.Status)
	case ui.TerryTask:
		fmt.Fprintf(u.out, "%s (%s)\n", u.styles.Bold.Render(msg.Task.Description), msg.Task.Name)
	case ui.TerryGeneration:
		u.statusLine(fmt.Sprintf("Generation of input for %s with seed %d", msg.Solution, msg.Seed), msg.Status)
	case ui.TerryValidation:
		u.statusLine(fmt.Sprintf("Validation of input for %s", msg.Solution), msg.Status)
	case ui.TerrySolution:
		u.statusLine(fmt.Sprintf("Run of %s", msg.Solution), msg.Status)
	case ui.TerryChecker:
		u.statusLine(fmt.Sprintf("Checking output of %s", msg.Solution), msg.Status)
	case ui.TerrySolutionOutcome:
		if msg.Failed() {
			fmt.Fprintf(u.out, "Outcome of %s unavailable: %s\n", msg.Solution, u.styles.Failure.Render(msg.Error))
		} else {
			fmt.Fprintf(u.out, "Solution %s scored %s\n",
				msg.Solution, u.scoreStyle(msg.Outcome.Score).Render(fmt.Sprintf("%.2f", msg.Outcome.Score)))
		}
	case ui.Warning:
		fmt.Fprintln(u.out, u.styles.Warning.Render(wordwrap.String("warning: "+msg.Message, warningWrapWidth)))
	}
}

// Finish prints the final summary from the aggregate state.
func (u *UI) Finish() {
	PrintFinalState(u.out, u.styles, u.state)
}

// statusLine prints a progress line for a lifecycle update. Pending
// transitions are silent: the line would carry no information.
func (u *UI) statusLine(what string, status ui.ExecutionStatus) {
	switch status.State {
	case ui.StatePending:
	case ui.StateStarted:
		worker := ""
		if status.Worker != nil {
			worker = " on worker " + status.Worker.String()
		}
		fmt.Fprintf(u.out, "%s started%s\n", what, u.styles.Muted.Render(worker))
	case ui.StateDone:
		if status.Success() {
			fmt.Fprintf(u.out, "%s %s\n", what, u.styles.Success.Render("succeeded"))
		} else {
			fmt.Fprintf(u.out, "%s %s\n", what, u.styles.Failure.Render("failed"))
		}
	case ui.StateSkipped:
		fmt.Fprintf(u.out, "%s %s\n", what, u.styles.Muted.Render("skipped"))
	}
}

func (u *UI) scoreStyle(normalized float64) lipgloss.Style {
	switch {
	case normalized <= 0:
		return u.styles.Failure
	case normalized >= 1:
		return u.styles.Success
	default:
		return u.styles.Warning
	}
}

// PrintFinalState writes the end-of-run summary: compilation failures
// with their captured stderr, per-solution scores, and every warning.
// The curses front-end reuses it after the interactive program exits.
func PrintFinalState(out io.Writer, styles Styles, state *ui.State) {
	files := state.Compilations.Files()
	sort.Strings(files)
	if len(files) > 0 {
		fmt.Fprintln(out, styles.Bold.Render("Compilations"))
		for _, file := range files {
			st := state.Compilations.Get(file)
			fmt.Fprintf(out, "  %-40s %s\n", file, renderPhase(styles, st.Phase))
			if st.Phase == ui.CompilationFailed && st.Stderr != nil && *st.Stderr != "" {
				fmt.Fprintln(out, styles.Muted.Render(*st.Stderr))
			}
		}
	}

	if len(state.Evaluations) > 0 {
		fmt.Fprintln(out, styles.Bold.Render("Scores"))
		solutions := make([]string, 0, len(state.Evaluations))
		for sol := range state.Evaluations {
			solutions = append(solutions, sol)
		}
		sort.Strings(solutions)
		for _, sol := range solutions {
			eval := state.Evaluations[sol]
			if eval.Score != nil {
				fmt.Fprintf(out, "  %-40s %6.2f\n", sol, *eval.Score)
			} else {
				fmt.Fprintf(out, "  %-40s %s\n", sol, styles.Muted.Render("unknown"))
			}
		}
	}

	if len(state.TerrySolutions) > 0 {
		fmt.Fprintln(out, styles.Bold.Render("Outcomes"))
		solutions := make([]string, 0, len(state.TerrySolutions))
		for sol := range state.TerrySolutions {
			solutions = append(solutions, sol)
		}
		sort.Strings(solutions)
		for _, name := range solutions {
			sol := state.TerrySolutions[name]
			switch {
			case sol.Outcome != nil:
				fmt.Fprintf(out, "  %-40s %6.2f\n", name, sol.Outcome.Score)
			case sol.OutcomeError != "":
				fmt.Fprintf(out, "  %-40s %s\n", name,
					styles.Failure.Render("outcome unavailable: "+sol.OutcomeError))
			default:
				fmt.Fprintf(out, "  %-40s %s\n", name, styles.Muted.Render("unknown"))
			}
		}
	}

	for _, warning := range state.Warnings {
		fmt.Fprintln(out, styles.Warning.Render(wordwrap.String("warning: "+warning, warningWrapWidth)))
	}
}

func renderPhase(styles Styles, phase ui.CompilationPhase) string {
	switch phase {
	case ui.CompilationPending:
		return styles.Muted.Render("pending")
	case ui.CompilationRunning:
		return styles.Muted.Render("running")
	case ui.CompilationDone:
		return styles.Success.Render("OK")
	case ui.CompilationFailed:
		return styles.Failure.Render("FAIL")
	case ui.CompilationSkipped:
		return styles.Muted.Render("skipped")
	default:
		return string(phase)
	}
}
