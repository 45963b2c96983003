package ui

import (
	"github.com/franv314/task-maker-go/internal/execution"
	"github.com/franv314/task-maker-go/internal/task"
)

// TestcaseEvaluation tracks one solution on one testcase.
type TestcaseEvaluation struct {
	Status  ExecutionStatus
	Checker ExecutionStatus
	// Score is set once the testcase has been scored.
	Score   *float64
	Message string
}

// SolutionEvaluation tracks one solution across the whole IOI task.
type SolutionEvaluation struct {
	Testcases        map[task.SubtaskID]map[task.TestcaseID]*TestcaseEvaluation
	SubtaskScores    map[task.SubtaskID]float64
	SubtaskNormScore map[task.SubtaskID]float64
	// Score is the task total, set last.
	Score *float64
}

// BookletStatus tracks the compilation of a booklet and of every step of
// its dependencies.
type BookletStatus struct {
	Status ExecutionStatus
	// Dependencies maps a dependency name to its per-step statuses.
	Dependencies map[string][]ExecutionStatus
}

// TerrySolutionState tracks one solution through the Terry pipeline.
type TerrySolutionState struct {
	Generation ExecutionStatus
	Validation ExecutionStatus
	Solution   ExecutionStatus
	Checker    ExecutionStatus
	Outcome    *task.SolutionOutcome
	// OutcomeError is set when the checker response failed validation.
	OutcomeError string
}

// State folds the complete event stream into one queryable snapshot. It
// is owned by the consumer goroutine and lives as long as the process;
// records are created on first reference and never removed.
type State struct {
	IOITask   *task.IOITask
	TerryTask *task.TerryTask

	Executor *execution.ExecutorStatus
	Warnings []string

	Compilations *CompilationTracker

	Generations       map[task.SubtaskID]map[task.TestcaseID]ExecutionStatus
	GenerationErrors  map[task.SubtaskID]map[task.TestcaseID]string
	Validations       map[task.SubtaskID]map[task.TestcaseID]ExecutionStatus
	ValidationErrors  map[task.SubtaskID]map[task.TestcaseID]string
	OfficialSolutions map[task.SubtaskID]map[task.TestcaseID]ExecutionStatus

	Evaluations map[string]*SolutionEvaluation
	Booklets    map[string]*BookletStatus

	TerrySolutions map[string]*TerrySolutionState
}

// NewState returns an empty aggregate.
func NewState() *State {
	return &State{
		Compilations:      NewCompilationTracker(),
		Generations:       make(map[task.SubtaskID]map[task.TestcaseID]ExecutionStatus),
		GenerationErrors:  make(map[task.SubtaskID]map[task.TestcaseID]string),
		Validations:       make(map[task.SubtaskID]map[task.TestcaseID]ExecutionStatus),
		ValidationErrors:  make(map[task.SubtaskID]map[task.TestcaseID]string),
		OfficialSolutions: make(map[task.SubtaskID]map[task.TestcaseID]ExecutionStatus),
		Evaluations:       make(map[string]*SolutionEvaluation),
		Booklets:          make(map[string]*BookletStatus),
		TerrySolutions:    make(map[string]*TerrySolutionState),
	}
}

// Apply folds one message into the snapshot. It handles every kind of
// the union; malformed sequences degrade the snapshot, never panic.
func (s *State) Apply(m Message) {
	switch msg := m.(type) {
	case Stop:
		// Consumed by the dispatch loop; nothing to record.
	case ServerStatus:
		status := msg.Status
		s.Executor = &status
	case Compilation, CompilationStdout, CompilationStderr:
		s.Compilations.Apply(m)
	case IOITask:
		s.IOITask = msg.Task
	case IOIGeneration:
		setStatus(s.Generations, msg.Subtask, msg.Testcase, msg.Status)
	case IOIGenerationStderr:
		setStatus(s.GenerationErrors, msg.Subtask, msg.Testcase, msg.Content)
	case IOIValidation:
		setStatus(s.Validations, msg.Subtask, msg.Testcase, msg.Status)
	case IOIValidationStderr:
		setStatus(s.ValidationErrors, msg.Subtask, msg.Testcase, msg.Content)
	case IOISolution:
		setStatus(s.OfficialSolutions, msg.Subtask, msg.Testcase, msg.Status)
	case IOIEvaluation:
		s.testcaseEvaluation(msg.Solution, msg.Subtask, msg.Testcase).Status = msg.Status
	case IOIChecker:
		s.testcaseEvaluation(msg.Solution, msg.Subtask, msg.Testcase).Checker = msg.Status
	case IOITestcaseScore:
		tc := s.testcaseEvaluation(msg.Solution, msg.Subtask, msg.Testcase)
		score := msg.Score
		tc.Score = &score
		tc.Message = msg.Message
	case IOISubtaskScore:
		eval := s.evaluation(msg.Solution)
		eval.SubtaskScores[msg.Subtask] = msg.Score
		eval.SubtaskNormScore[msg.Subtask] = msg.NormalizedScore
	case IOITaskScore:
		score := msg.Score
		s.evaluation(msg.Solution).Score = &score
	case IOIBooklet:
		s.booklet(msg.Name).Status = msg.Status
	case IOIBookletDependency:
		booklet := s.booklet(msg.Booklet)
		steps := booklet.Dependencies[msg.Name]
		for len(steps) < msg.NumSteps {
			steps = append(steps, Pending())
		}
		if msg.Step >= 0 && msg.Step < len(steps) {
			steps[msg.Step] = msg.Status
		}
		booklet.Dependencies[msg.Name] = steps
	case TerryTask:
		s.TerryTask = msg.Task
	case TerryGeneration:
		s.terrySolution(msg.Solution).Generation = msg.Status
	case TerryValidation:
		s.terrySolution(msg.Solution).Validation = msg.Status
	case TerrySolution:
		s.terrySolution(msg.Solution).Solution = msg.Status
	case TerryChecker:
		s.terrySolution(msg.Solution).Checker = msg.Status
	case TerrySolutionOutcome:
		sol := s.terrySolution(msg.Solution)
		sol.Outcome = msg.Outcome
		sol.OutcomeError = msg.Error
	case Warning:
		s.Warnings = append(s.Warnings, msg.Message)
	}
}

func setStatus[V any](m map[task.SubtaskID]map[task.TestcaseID]V, st task.SubtaskID, tc task.TestcaseID, v V) {
	inner, ok := m[st]
	if !ok {
		inner = make(map[task.TestcaseID]V)
		m[st] = inner
	}
	inner[tc] = v
}

func (s *State) evaluation(solution string) *SolutionEvaluation {
	eval, ok := s.Evaluations[solution]
	if !ok {
		eval = &SolutionEvaluation{
			Testcases:        make(map[task.SubtaskID]map[task.TestcaseID]*TestcaseEvaluation),
			SubtaskScores:    make(map[task.SubtaskID]float64),
			SubtaskNormScore: make(map[task.SubtaskID]float64),
		}
		s.Evaluations[solution] = eval
	}
	return eval
}

func (s *State) testcaseEvaluation(solution string, st task.SubtaskID, tc task.TestcaseID) *TestcaseEvaluation {
	eval := s.evaluation(solution)
	inner, ok := eval.Testcases[st]
	if !ok {
		inner = make(map[task.TestcaseID]*TestcaseEvaluation)
		eval.Testcases[st] = inner
	}
	tcEval, ok := inner[tc]
	if !ok {
		tcEval = &TestcaseEvaluation{Status: Pending(), Checker: Pending()}
		inner[tc] = tcEval
	}
	return tcEval
}

func (s *State) booklet(name string) *BookletStatus {
	b, ok := s.Booklets[name]
	if !ok {
		b = &BookletStatus{Status: Pending(), Dependencies: make(map[string][]ExecutionStatus)}
		s.Booklets[name] = b
	}
	return b
}

func (s *State) terrySolution(solution string) *TerrySolutionState {
	sol, ok := s.TerrySolutions[solution]
	if !ok {
		sol = &TerrySolutionState{
			Generation: Pending(),
			Validation: Pending(),
			Solution:   Pending(),
			Checker:    Pending(),
		}
		s.TerrySolutions[solution] = sol
	}
	return sol
}
