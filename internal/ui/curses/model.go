package curses

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/franv314/task-maker-go/internal/task"
	"github.com/franv314/task-maker-go/internal/ui"
	"github.com/franv314/task-maker-go/internal/ui/print"
)

// messageMsg wraps a protocol message for the bubbletea event loop.
type messageMsg struct {
	message ui.Message
}

type model struct {
	state   *ui.State
	styles  print.Styles
	spinner spinner.Model
	width   int
}

func newModel(state *ui.State) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return model{
		state:   state,
		styles:  print.DefaultStyles(),
		spinner: sp,
		width:   80,
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case messageMsg:
		m.state.Apply(msg.message)
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString(m.executorView())
	b.WriteString(m.compilationsView())
	if m.state.IOITask != nil {
		b.WriteString(m.ioiView())
	}
	if m.state.TerryTask != nil {
		b.WriteString(m.terryView())
	}
	for _, warning := range m.state.Warnings {
		b.WriteString(m.styles.Warning.Render("warning: "+warning) + "\n")
	}
	return b.String()
}

func (m model) headerView() string {
	switch {
	case m.state.IOITask != nil:
		return m.styles.Bold.Render(fmt.Sprintf("%s (%s)", m.state.IOITask.Title, m.state.IOITask.Name)) + "\n"
	case m.state.TerryTask != nil:
		return m.styles.Bold.Render(fmt.Sprintf("%s (%s)", m.state.TerryTask.Description, m.state.TerryTask.Name)) + "\n"
	default:
		return m.styles.Bold.Render("waiting for the task description") + " " + m.spinner.View() + "\n"
	}
}

func (m model) executorView() string {
	ex := m.state.Executor
	if ex == nil {
		return ""
	}
	busy := 0
	for _, w := range ex.ConnectedWorkers {
		if w.CurrentJob != nil {
			busy++
		}
	}
	return m.styles.Muted.Render(fmt.Sprintf(
		"workers %d (%d busy)  ready %d  waiting %d",
		len(ex.ConnectedWorkers), busy, ex.ReadyExecs, ex.WaitingExecs)) + "\n"
}

func (m model) compilationsView() string {
	files := m.state.Compilations.Files()
	if len(files) == 0 {
		return ""
	}
	sort.Strings(files)
	var b strings.Builder
	b.WriteString(m.styles.Bold.Render("Compilations") + "\n")
	for _, file := range files {
		b.WriteString(fmt.Sprintf("  %-40s %s\n", file, m.phaseView(m.state.Compilations.Get(file).Phase)))
	}
	return b.String()
}

func (m model) phaseView(phase ui.CompilationPhase) string {
	if phase == ui.CompilationRunning {
		return m.spinner.View()
	}
	switch phase {
	case ui.CompilationPending:
		return m.styles.Muted.Render("...")
	case ui.CompilationDone:
		return m.styles.Success.Render("OK")
	case ui.CompilationFailed:
		return m.styles.Failure.Render("FAIL")
	case ui.CompilationSkipped:
		return m.styles.Muted.Render("skipped")
	default:
		return string(phase)
	}
}

func (m model) ioiView() string {
	var b strings.Builder

	total := m.state.IOITask.NumTestcases()
	generated := countTerminal(m.state.Generations)
	validated := countTerminal(m.state.Validations)
	b.WriteString(fmt.Sprintf("Generation %d/%d  Validation %d/%d\n", generated, total, validated, total))

	if len(m.state.Evaluations) == 0 {
		return b.String()
	}
	b.WriteString(m.styles.Bold.Render("Evaluations") + "\n")
	solutions := make([]string, 0, len(m.state.Evaluations))
	for sol := range m.state.Evaluations {
		solutions = append(solutions, sol)
	}
	sort.Strings(solutions)
	for _, sol := range solutions {
		eval := m.state.Evaluations[sol]
		done, cases := 0, 0
		for _, tcs := range eval.Testcases {
			for _, tc := range tcs {
				cases++
				if tc.Status.Terminal() {
					done++
				}
			}
		}
		score := m.styles.Muted.Render(m.spinner.View())
		if eval.Score != nil {
			score = m.styles.Bold.Render(fmt.Sprintf("%.2f", *eval.Score))
		}
		b.WriteString(fmt.Sprintf("  %-40s %3d/%-3d %s\n", sol, done, cases, score))
	}
	return b.String()
}

func (m model) terryView() string {
	if len(m.state.TerrySolutions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Bold.Render("Solutions") + "\n")
	solutions := make([]string, 0, len(m.state.TerrySolutions))
	for sol := range m.state.TerrySolutions {
		solutions = append(solutions, sol)
	}
	sort.Strings(solutions)
	for _, name := range solutions {
		sol := m.state.TerrySolutions[name]
		pipeline := lipgloss.JoinHorizontal(lipgloss.Top,
			m.stepView("gen", sol.Generation), " ",
			m.stepView("val", sol.Validation), " ",
			m.stepView("run", sol.Solution), " ",
			m.stepView("check", sol.Checker))
		outcome := ""
		switch {
		case sol.Outcome != nil:
			outcome = m.styles.Bold.Render(fmt.Sprintf("%.2f", sol.Outcome.Score))
		case sol.OutcomeError != "":
			outcome = m.styles.Failure.Render("outcome unavailable")
		}
		b.WriteString(fmt.Sprintf("  %-30s %s %s\n", name, pipeline, outcome))
	}
	return b.String()
}

func (m model) stepView(label string, status ui.ExecutionStatus) string {
	switch status.State {
	case ui.StateStarted:
		return label + ":" + m.spinner.View()
	case ui.StateDone:
		if status.Success() {
			return m.styles.Success.Render(label)
		}
		return m.styles.Failure.Render(label)
	case ui.StateSkipped:
		return m.styles.Muted.Render(label)
	default:
		return m.styles.Muted.Render(label + ":…")
	}
}

func countTerminal(statuses map[task.SubtaskID]map[task.TestcaseID]ui.ExecutionStatus) int {
	n := 0
	for _, tcs := range statuses {
		for _, st := range tcs {
			if st.Terminal() {
				n++
			}
		}
	}
	return n
}
