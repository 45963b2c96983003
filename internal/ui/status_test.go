package ui

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franv314/task-maker-go/internal/execution"
)

func successResult() execution.Result {
	return execution.Result{
		Status:    execution.Status{Kind: execution.StatusSuccess},
		Resources: execution.Usage{CPUTime: 0.1, WallTime: 0.2, Memory: 1024},
	}
}

func failureResult() execution.Result {
	return execution.Result{
		Status: execution.Status{Kind: execution.StatusReturnCode, Code: 1},
	}
}

func TestCompilationStatus_ApplyStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status ExecutionStatus
		want   CompilationPhase
	}{
		{"pending", Pending(), CompilationPending},
		{"started", Started(uuid.New()), CompilationRunning},
		{"done success", Done(successResult()), CompilationDone},
		{"done failure", Done(failureResult()), CompilationFailed},
		{"skipped", Skipped(), CompilationSkipped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewCompilationStatus()
			st.ApplyStatus(tt.status)
			assert.Equal(t, tt.want, st.Phase)
		})
	}
}

// The transition is deliberately not guarded by the current phase: the
// incoming value always wins, whatever was observed before.
func TestCompilationStatus_LastWriteWins(t *testing.T) {
	for _, prior := range []ExecutionStatus{
		Pending(), Started(uuid.New()), Done(successResult()), Done(failureResult()), Skipped(),
	} {
		st := NewCompilationStatus()
		st.ApplyStatus(prior)
		st.ApplyStatus(Pending())
		assert.Equal(t, CompilationPending, st.Phase)
	}
}

func TestCompilationStatus_DoneCarriesResultAndEmptyBuffers(t *testing.T) {
	st := NewCompilationStatus()
	st.ApplyStatus(Done(failureResult()))

	require.NotNil(t, st.Result)
	assert.Equal(t, execution.StatusReturnCode, st.Result.Status.Kind)
	assert.Nil(t, st.Stdout)
	assert.Nil(t, st.Stderr)
}

func TestCompilationStatus_StreamBuffersOnlyAfterTerminal(t *testing.T) {
	for _, phase := range []ExecutionStatus{Pending(), Started(uuid.New()), Skipped()} {
		st := NewCompilationStatus()
		st.ApplyStatus(phase)
		st.ApplyStdout("out")
		st.ApplyStderr("err")
		assert.Nil(t, st.Stdout, "phase %v must drop stdout", st.Phase)
		assert.Nil(t, st.Stderr, "phase %v must drop stderr", st.Phase)
	}

	for _, terminal := range []ExecutionStatus{Done(successResult()), Done(failureResult())} {
		st := NewCompilationStatus()
		st.ApplyStatus(terminal)
		st.ApplyStdout("first")
		st.ApplyStdout("second")
		st.ApplyStderr("oops")
		require.NotNil(t, st.Stdout)
		assert.Equal(t, "second", *st.Stdout, "each fragment carries the full prefix and overwrites")
		require.NotNil(t, st.Stderr)
		assert.Equal(t, "oops", *st.Stderr)
	}
}

func TestCompilationStatus_TerminalResetsBuffers(t *testing.T) {
	st := NewCompilationStatus()
	st.ApplyStatus(Done(successResult()))
	st.ApplyStdout("out")
	st.ApplyStatus(Done(successResult()))
	assert.Nil(t, st.Stdout)
}

func TestCompilationTracker_FullLifecycle(t *testing.T) {
	tracker := NewCompilationTracker()
	worker := uuid.New()

	require.True(t, tracker.Apply(Compilation{File: "sol.cpp", Status: Pending()}))
	require.True(t, tracker.Apply(Compilation{File: "sol.cpp", Status: Started(worker)}))
	require.True(t, tracker.Apply(Compilation{File: "sol.cpp", Status: Done(successResult())}))

	st := tracker.Get("sol.cpp")
	assert.Equal(t, CompilationDone, st.Phase)
	assert.Nil(t, st.Stdout)
	assert.Nil(t, st.Stderr)

	// An empty stderr fragment is still a set buffer.
	require.True(t, tracker.Apply(CompilationStderr{File: "sol.cpp", Content: ""}))
	require.NotNil(t, st.Stderr)
	assert.Equal(t, "", *st.Stderr)
}

func TestCompilationTracker_FragmentBeforeLifecycleIsDropped(t *testing.T) {
	tracker := NewCompilationTracker()

	require.True(t, tracker.Apply(CompilationStdout{File: "x.cpp", Content: "hello"}))

	st := tracker.Get("x.cpp")
	assert.Equal(t, CompilationPending, st.Phase, "first reference creates a pending record")
	assert.Nil(t, st.Stdout)
	assert.Nil(t, st.Stderr)
}

func TestCompilationTracker_IgnoresOtherKinds(t *testing.T) {
	tracker := NewCompilationTracker()
	assert.False(t, tracker.Apply(Warning{Message: "nope"}))
	assert.False(t, tracker.Apply(IOITaskScore{Solution: "sol.cpp", Score: 50}))
	assert.Empty(t, tracker.Files())
}

func TestCompilationTracker_IndependentCoordinates(t *testing.T) {
	tracker := NewCompilationTracker()
	tracker.Apply(Compilation{File: "a.cpp", Status: Done(successResult())})
	tracker.Apply(Compilation{File: "b.cpp", Status: Done(failureResult())})
	tracker.Apply(CompilationStderr{File: "b.cpp", Content: "b failed"})

	assert.Equal(t, CompilationDone, tracker.Get("a.cpp").Phase)
	assert.Nil(t, tracker.Get("a.cpp").Stderr)
	assert.Equal(t, CompilationFailed, tracker.Get("b.cpp").Phase)
	require.NotNil(t, tracker.Get("b.cpp").Stderr)
	assert.Equal(t, "b failed", *tracker.Get("b.cpp").Stderr)
	assert.ElementsMatch(t, []string{"a.cpp", "b.cpp"}, tracker.Files())
}
