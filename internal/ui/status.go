package ui

import "github.com/franv314/task-maker-go/internal/execution"

// CompilationPhase is the coarse display phase of a compilation.
type CompilationPhase string

const (
	CompilationPending CompilationPhase = "pending"
	CompilationRunning CompilationPhase = "running"
	CompilationDone    CompilationPhase = "done"
	CompilationFailed  CompilationPhase = "failed"
	CompilationSkipped CompilationPhase = "skipped"
)

// CompilationStatus reconciles the lifecycle and stdout/stderr events of
// one compilation into a display-ready aggregate.
type CompilationStatus struct {
	Phase CompilationPhase
	// Result is set once the phase is Done or Failed.
	Result *execution.Result
	// Stdout and Stderr are nil until the corresponding stream event
	// arrives after a terminal phase.
	Stdout *string
	Stderr *string
}

// NewCompilationStatus returns the aggregate for a compilation that has
// just become known.
func NewCompilationStatus() *CompilationStatus {
	return &CompilationStatus{Phase: CompilationPending}
}

// ApplyStatus folds a lifecycle value into the aggregate. The incoming
// value always wins, regardless of the current phase; reaching Done or
// Failed resets both stream buffers.
func (c *CompilationStatus) ApplyStatus(status ExecutionStatus) {
	switch status.State {
	case StatePending:
		*c = CompilationStatus{Phase: CompilationPending}
	case StateStarted:
		*c = CompilationStatus{Phase: CompilationRunning}
	case StateDone:
		phase := CompilationFailed
		if status.Result != nil && status.Result.Success() {
			phase = CompilationDone
		}
		*c = CompilationStatus{Phase: phase, Result: status.Result}
	case StateSkipped:
		*c = CompilationStatus{Phase: CompilationSkipped}
	}
}

// ApplyStdout stores the captured stdout prefix, overwriting any
// previous value. If the compilation has not reached a terminal phase
// yet the fragment is dropped.
//
// FIXME: a fragment arriving before the terminal lifecycle value is
// lost; see ApplyStatus resetting the buffers.
func (c *CompilationStatus) ApplyStdout(content string) {
	if c.Phase == CompilationDone || c.Phase == CompilationFailed {
		c.Stdout = &content
	}
}

// ApplyStderr stores the captured stderr prefix, with the same rules as
// ApplyStdout.
func (c *CompilationStatus) ApplyStderr(content string) {
	if c.Phase == CompilationDone || c.Phase == CompilationFailed {
		c.Stderr = &content
	}
}

// CompilationTracker keeps one CompilationStatus per compiled file. It is
// owned by the consumer goroutine; no locking.
type CompilationTracker struct {
	statuses map[string]*CompilationStatus
}

// NewCompilationTracker returns an empty tracker.
func NewCompilationTracker() *CompilationTracker {
	return &CompilationTracker{statuses: make(map[string]*CompilationStatus)}
}

// Get returns the aggregate for file, creating it in the pending phase on
// first reference.
func (t *CompilationTracker) Get(file string) *CompilationStatus {
	st, ok := t.statuses[file]
	if !ok {
		st = NewCompilationStatus()
		t.statuses[file] = st
	}
	return st
}

// Files returns the tracked file paths, in no particular order.
func (t *CompilationTracker) Files() []string {
	files := make([]string, 0, len(t.statuses))
	for f := range t.statuses {
		files = append(files, f)
	}
	return files
}

// Apply folds a message into the tracker and reports whether it was a
// compilation message. Every other kind is left for the caller.
func (t *CompilationTracker) Apply(m Message) bool {
	switch msg := m.(type) {
	case Compilation:
		t.Get(msg.File).ApplyStatus(msg.Status)
	case CompilationStdout:
		t.Get(msg.File).ApplyStdout(msg.Content)
	case CompilationStderr:
		t.Get(msg.File).ApplyStderr(msg.Content)
	default:
		return false
	}
	return true
}
