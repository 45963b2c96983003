package ui

import "github.com/franv314/task-maker-go/internal/execution"

// ExecutionState discriminates the lifecycle of a tracked execution.
type ExecutionState string

const (
	// StatePending means the execution is known to the DAG and will start
	// once its dependencies are ready.
	StatePending ExecutionState = "pending"
	// StateStarted means the execution has been claimed by a worker.
	StateStarted ExecutionState = "started"
	// StateDone means the execution completed and a result is available.
	StateDone ExecutionState = "done"
	// StateSkipped means an upstream dependency failed and the execution
	// will never run. Terminal.
	StateSkipped ExecutionState = "skipped"
)

// ExecutionStatus is the lifecycle value attached to most progress
// events. For any single unit the stream is a prefix of
// pending -> started -> (done | skipped), but consumers apply values
// unconditionally: a late value wins over whatever was there before.
type ExecutionStatus struct {
	State ExecutionState `json:"state"`
	// Worker is set when State is StateStarted.
	Worker *execution.WorkerID `json:"worker,omitempty"`
	// Result is set when State is StateDone.
	Result *execution.Result `json:"result,omitempty"`
}

// Pending returns the initial lifecycle value.
func Pending() ExecutionStatus {
	return ExecutionStatus{State: StatePending}
}

// Started returns the lifecycle value for an execution claimed by worker.
func Started(worker execution.WorkerID) ExecutionStatus {
	return ExecutionStatus{State: StateStarted, Worker: &worker}
}

// Done returns the terminal lifecycle value carrying the outcome.
func Done(result execution.Result) ExecutionStatus {
	return ExecutionStatus{State: StateDone, Result: &result}
}

// Skipped returns the terminal lifecycle value for an execution whose
// dependencies failed.
func Skipped() ExecutionStatus {
	return ExecutionStatus{State: StateSkipped}
}

// Terminal reports whether no further lifecycle value is expected.
func (s ExecutionStatus) Terminal() bool {
	return s.State == StateDone || s.State == StateSkipped
}

// Success reports whether the execution finished and succeeded.
func (s ExecutionStatus) Success() bool {
	return s.State == StateDone && s.Result != nil && s.Result.Success()
}
