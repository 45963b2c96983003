// Package ui implements the progress-reporting protocol between the
// evaluation engine and the front-ends: the message vocabulary, the
// channel carrying it, the per-unit status reconciliation, and the
// contract every renderer implements.
package ui

import (
	"github.com/franv314/task-maker-go/internal/execution"
	"github.com/franv314/task-maker-go/internal/task"
)

// MessageKind is the wire tag identifying a union case.
type MessageKind string

const (
	KindStop                 MessageKind = "stop"
	KindServerStatus         MessageKind = "server_status"
	KindCompilation          MessageKind = "compilation"
	KindCompilationStdout    MessageKind = "compilation_stdout"
	KindCompilationStderr    MessageKind = "compilation_stderr"
	KindIOITask              MessageKind = "ioi_task"
	KindIOIGeneration        MessageKind = "ioi_generation"
	KindIOIGenerationStderr  MessageKind = "ioi_generation_stderr"
	KindIOIValidation        MessageKind = "ioi_validation"
	KindIOIValidationStderr  MessageKind = "ioi_validation_stderr"
	KindIOISolution          MessageKind = "ioi_solution"
	KindIOIEvaluation        MessageKind = "ioi_evaluation"
	KindIOIChecker           MessageKind = "ioi_checker"
	KindIOITestcaseScore     MessageKind = "ioi_testcase_score"
	KindIOISubtaskScore      MessageKind = "ioi_subtask_score"
	KindIOITaskScore         MessageKind = "ioi_task_score"
	KindIOIBooklet           MessageKind = "ioi_booklet"
	KindIOIBookletDependency MessageKind = "ioi_booklet_dependency"
	KindTerryTask            MessageKind = "terry_task"
	KindTerryGeneration      MessageKind = "terry_generation"
	KindTerryValidation      MessageKind = "terry_validation"
	KindTerrySolution        MessageKind = "terry_solution"
	KindTerryChecker         MessageKind = "terry_checker"
	KindTerrySolutionOutcome MessageKind = "terry_solution_outcome"
	KindWarning              MessageKind = "warning"
)

// Message is one case of the closed protocol union. The set of cases is
// sealed: only types in this package implement it, and every consumer
// dispatches with an exhaustive type switch so that adding a case is a
// visible change everywhere the protocol is handled.
type Message interface {
	// Kind returns the wire tag of this case.
	Kind() MessageKind

	isMessage()
}

// Stop asks the consumer to shut down. The dispatch loop consumes it and
// never forwards it to a renderer.
type Stop struct{}

// ServerStatus is a periodic snapshot of the executor.
type ServerStatus struct {
	Status execution.ExecutorStatus `json:"status"`
}

// Compilation is a lifecycle update of the compilation of a file.
type Compilation struct {
	File   string          `json:"file"`
	Status ExecutionStatus `json:"status"`
}

// CompilationStdout carries the captured stdout prefix of a compilation.
// Each event carries the complete prefix, not a delta.
type CompilationStdout struct {
	File    string `json:"file"`
	Content string `json:"content"`
}

// CompilationStderr carries the captured stderr prefix of a compilation.
type CompilationStderr struct {
	File    string `json:"file"`
	Content string `json:"content"`
}

// IOITask carries the description of the IOI task being evaluated.
type IOITask struct {
	Task *task.IOITask `json:"task"`
}

// IOIGeneration is a lifecycle update of the generation of a testcase.
type IOIGeneration struct {
	Subtask  task.SubtaskID  `json:"subtask"`
	Testcase task.TestcaseID `json:"testcase"`
	Status   ExecutionStatus `json:"status"`
}

// IOIGenerationStderr carries the stderr prefix of a generator run.
type IOIGenerationStderr struct {
	Subtask  task.SubtaskID  `json:"subtask"`
	Testcase task.TestcaseID `json:"testcase"`
	Content  string          `json:"content"`
}

// IOIValidation is a lifecycle update of the validation of a testcase.
type IOIValidation struct {
	Subtask  task.SubtaskID  `json:"subtask"`
	Testcase task.TestcaseID `json:"testcase"`
	Status   ExecutionStatus `json:"status"`
}

// IOIValidationStderr carries the stderr prefix of a validator run.
type IOIValidationStderr struct {
	Subtask  task.SubtaskID  `json:"subtask"`
	Testcase task.TestcaseID `json:"testcase"`
	Content  string          `json:"content"`
}

// IOISolution is a lifecycle update of the official solution producing
// the expected output of a testcase.
type IOISolution struct {
	Subtask  task.SubtaskID  `json:"subtask"`
	Testcase task.TestcaseID `json:"testcase"`
	Status   ExecutionStatus `json:"status"`
}

// IOIEvaluation is a lifecycle update of a solution evaluated on a
// testcase.
type IOIEvaluation struct {
	Subtask  task.SubtaskID  `json:"subtask"`
	Testcase task.TestcaseID `json:"testcase"`
	Solution string          `json:"solution"`
	Status   ExecutionStatus `json:"status"`
}

// IOIChecker is a lifecycle update of the checker run on a solution's
// output. A failure of this execution does not necessarily mean the
// checker itself failed.
type IOIChecker struct {
	Subtask  task.SubtaskID  `json:"subtask"`
	Testcase task.TestcaseID `json:"testcase"`
	Solution string          `json:"solution"`
	Status   ExecutionStatus `json:"status"`
}

// IOITestcaseScore reports the score of a solution on a testcase.
type IOITestcaseScore struct {
	Subtask  task.SubtaskID  `json:"subtask"`
	Testcase task.TestcaseID `json:"testcase"`
	Solution string          `json:"solution"`
	Score    float64         `json:"score"`
	Message  string          `json:"message"`
}

// IOISubtaskScore reports the score of a solution on a subtask.
type IOISubtaskScore struct {
	Subtask  task.SubtaskID `json:"subtask"`
	Solution string         `json:"solution"`
	// NormalizedScore is between 0 and 1.
	NormalizedScore float64 `json:"normalized_score"`
	Score           float64 `json:"score"`
}

// IOITaskScore reports the total score of a solution on the task.
type IOITaskScore struct {
	Solution string  `json:"solution"`
	Score    float64 `json:"score"`
}

// IOIBooklet is a lifecycle update of the compilation of a booklet.
type IOIBooklet struct {
	Name   string          `json:"name"`
	Status ExecutionStatus `json:"status"`
}

// IOIBookletDependency is a lifecycle update of one step of the
// compilation of a booklet dependency. A dependency may be processed in
// several steps, e.g. an asy file is compiled and then cropped.
type IOIBookletDependency struct {
	Booklet string `json:"booklet"`
	Name    string `json:"name"`
	// Step is the 0-based index of this step.
	Step     int             `json:"step"`
	NumSteps int             `json:"num_steps"`
	Status   ExecutionStatus `json:"status"`
}

// TerryTask carries the description of the Terry task being evaluated.
type TerryTask struct {
	Task *task.TerryTask `json:"task"`
}

// TerryGeneration is a lifecycle update of the input generation for a
// solution, from the given seed.
type TerryGeneration struct {
	Solution string          `json:"solution"`
	Seed     task.Seed       `json:"seed"`
	Status   ExecutionStatus `json:"status"`
}

// TerryValidation is a lifecycle update of the input validation for a
// solution.
type TerryValidation struct {
	Solution string          `json:"solution"`
	Status   ExecutionStatus `json:"status"`
}

// TerrySolution is a lifecycle update of the solution run itself.
type TerrySolution struct {
	Solution string          `json:"solution"`
	Status   ExecutionStatus `json:"status"`
}

// TerryChecker is a lifecycle update of the checker run on a solution.
type TerryChecker struct {
	Solution string          `json:"solution"`
	Status   ExecutionStatus `json:"status"`
}

// TerrySolutionOutcome reports the checker outcome of a solution. When
// the checker's response failed validation the outcome is absent and
// Error carries the reason; the front-end shows the solution as
// unavailable instead of aborting.
type TerrySolutionOutcome struct {
	Solution string                `json:"solution"`
	Outcome  *task.SolutionOutcome `json:"outcome,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// Failed reports whether the outcome is unavailable.
func (m TerrySolutionOutcome) Failed() bool {
	return m.Outcome == nil
}

// Warning surfaces a non-fatal problem to the operator. Front-ends must
// never drop or filter it.
type Warning struct {
	Message string `json:"message"`
}

func (Stop) Kind() MessageKind                 { return KindStop }
func (ServerStatus) Kind() MessageKind         { return KindServerStatus }
func (Compilation) Kind() MessageKind          { return KindCompilation }
func (CompilationStdout) Kind() MessageKind    { return KindCompilationStdout }
func (CompilationStderr) Kind() MessageKind    { return KindCompilationStderr }
func (IOITask) Kind() MessageKind              { return KindIOITask }
func (IOIGeneration) Kind() MessageKind        { return KindIOIGeneration }
func (IOIGenerationStderr) Kind() MessageKind  { return KindIOIGenerationStderr }
func (IOIValidation) Kind() MessageKind        { return KindIOIValidation }
func (IOIValidationStderr) Kind() MessageKind  { return KindIOIValidationStderr }
func (IOISolution) Kind() MessageKind          { return KindIOISolution }
func (IOIEvaluation) Kind() MessageKind        { return KindIOIEvaluation }
func (IOIChecker) Kind() MessageKind           { return KindIOIChecker }
func (IOITestcaseScore) Kind() MessageKind     { return KindIOITestcaseScore }
func (IOISubtaskScore) Kind() MessageKind      { return KindIOISubtaskScore }
func (IOITaskScore) Kind() MessageKind         { return KindIOITaskScore }
func (IOIBooklet) Kind() MessageKind           { return KindIOIBooklet }
func (IOIBookletDependency) Kind() MessageKind { return KindIOIBookletDependency }
func (TerryTask) Kind() MessageKind            { return KindTerryTask }
func (TerryGeneration) Kind() MessageKind      { return KindTerryGeneration }
func (TerryValidation) Kind() MessageKind      { return KindTerryValidation }
func (TerrySolution) Kind() MessageKind        { return KindTerrySolution }
func (TerryChecker) Kind() MessageKind         { return KindTerryChecker }
func (TerrySolutionOutcome) Kind() MessageKind { return KindTerrySolutionOutcome }
func (Warning) Kind() MessageKind              { return KindWarning }

func (Stop) isMessage()                 {}
func (ServerStatus) isMessage()         {}
func (Compilation) isMessage()          {}
func (CompilationStdout) isMessage()    {}
func (CompilationStderr) isMessage()    {}
func (IOITask) isMessage()              {}
func (IOIGeneration) isMessage()        {}
func (IOIGenerationStderr) isMessage()  {}
func (IOIValidation) isMessage()        {}
func (IOIValidationStderr) isMessage()  {}
func (IOISolution) isMessage()          {}
func (IOIEvaluation) isMessage()        {}
func (IOIChecker) isMessage()           {}
func (IOITestcaseScore) isMessage()     {}
func (IOISubtaskScore) isMessage()      {}
func (IOITaskScore) isMessage()         {}
func (IOIBooklet) isMessage()           {}
func (IOIBookletDependency) isMessage() {}
func (TerryTask) isMessage()            {}
func (TerryGeneration) isMessage()      {}
func (TerryValidation) isMessage()      {}
func (TerrySolution) isMessage()        {}
func (TerryChecker) isMessage()         {}
func (TerrySolutionOutcome) isMessage() {}
func (Warning) isMessage()              {}
