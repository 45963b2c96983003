package ui

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franv314/task-maker-go/internal/task"
)

func roundTrip(t *testing.T, m Message) Message {
	t.Helper()
	data, err := MarshalMessage(m)
	require.NoError(t, err)
	decoded, err := UnmarshalMessage(data)
	require.NoError(t, err)
	return decoded
}

func TestCodec_EnvelopeIsSelfDescribing(t *testing.T) {
	data, err := MarshalMessage(Compilation{File: "sol.cpp", Status: Pending()})
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &env))
	assert.JSONEq(t, `"compilation"`, string(env["type"]))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(env["data"], &payload))
	assert.Equal(t, "sol.cpp", payload["file"], "fields are tagged, not positional")
}

func TestCodec_RoundTripReconstructsExactCase(t *testing.T) {
	worker := uuid.New()
	outcome := &task.SolutionOutcome{
		Score:      0.5,
		Validation: []task.SolutionValidationCase{{Status: task.CaseParsed}},
		Feedback:   []task.SolutionFeedbackCase{{Correct: true}},
	}

	tests := []struct {
		name string
		msg  Message
	}{
		{"stop", Stop{}},
		{"compilation started", Compilation{File: "sol.cpp", Status: Started(worker)}},
		{"compilation done", Compilation{File: "sol.cpp", Status: Done(successResult())}},
		{"compilation stderr", CompilationStderr{File: "sol.cpp", Content: "oops"}},
		{"generation", IOIGeneration{Subtask: 1, Testcase: 3, Status: Skipped()}},
		{"testcase score", IOITestcaseScore{Subtask: 1, Testcase: 3, Solution: "sol.cpp", Score: 50, Message: "partial"}},
		{"booklet dependency", IOIBookletDependency{Booklet: "statement", Name: "fig.asy", Step: 1, NumSteps: 2, Status: Pending()}},
		{"terry generation", TerryGeneration{Solution: "sol.py", Seed: 42, Status: Pending()}},
		{"terry outcome ok", TerrySolutionOutcome{Solution: "sol.py", Outcome: outcome}},
		{"terry outcome invalid", TerrySolutionOutcome{Solution: "sol.py", Error: "bad checker output"}},
		{"warning", Warning{Message: "careful"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded := roundTrip(t, tt.msg)
			assert.Equal(t, tt.msg, decoded)
			assert.Equal(t, tt.msg.Kind(), decoded.Kind())
		})
	}
}

func TestCodec_TaskDescriptionsRoundTrip(t *testing.T) {
	tl := 1.5
	ioiTask := &task.IOITask{
		Name:      "poly",
		Title:     "Polynomials",
		TimeLimit: &tl,
		Subtasks: map[task.SubtaskID]task.IOISubtask{
			0: {ID: 0, MaxScore: 20, Testcases: map[task.TestcaseID]task.IOITestcase{0: {ID: 0}}},
			1: {ID: 1, MaxScore: 80, Testcases: map[task.TestcaseID]task.IOITestcase{1: {ID: 1}, 2: {ID: 2}}},
		},
	}
	decoded := roundTrip(t, IOITask{Task: ioiTask})
	require.IsType(t, IOITask{}, decoded)
	got := decoded.(IOITask)
	assert.Equal(t, ioiTask, got.Task)
	assert.Equal(t, 100.0, got.Task.MaxScore())
	assert.Equal(t, 3, got.Task.NumTestcases())

	terryTask := &task.TerryTask{Name: "easy", Description: "Easy one", MaxScore: 100}
	decoded = roundTrip(t, TerryTask{Task: terryTask})
	assert.Equal(t, TerryTask{Task: terryTask}, decoded)
}

func TestCodec_UnknownTypeTagEchoed(t *testing.T) {
	_, err := UnmarshalMessage([]byte(`{"type":"made_up","data":{}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "made_up")
}

func TestCodec_MalformedEnvelope(t *testing.T) {
	_, err := UnmarshalMessage([]byte(`not json`))
	require.Error(t, err)

	_, err = UnmarshalMessage([]byte(`{"type":"compilation","data":[1,2]}`))
	require.Error(t, err)
}

// Every kind tag must be unique: the tag alone reconstructs the case.
func TestCodec_KindTagsAreUnique(t *testing.T) {
	all := []Message{
		Stop{}, ServerStatus{}, Compilation{}, CompilationStdout{}, CompilationStderr{},
		IOITask{}, IOIGeneration{}, IOIGenerationStderr{}, IOIValidation{}, IOIValidationStderr{},
		IOISolution{}, IOIEvaluation{}, IOIChecker{}, IOITestcaseScore{}, IOISubtaskScore{},
		IOITaskScore{}, IOIBooklet{}, IOIBookletDependency{}, TerryTask{}, TerryGeneration{},
		TerryValidation{}, TerrySolution{}, TerryChecker{}, TerrySolutionOutcome{}, Warning{},
	}
	seen := make(map[MessageKind]bool)
	for _, m := range all {
		assert.False(t, seen[m.Kind()], "duplicate kind %s", m.Kind())
		seen[m.Kind()] = true
	}
	assert.Len(t, seen, 25)
}
