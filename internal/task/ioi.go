// Package task holds the task description payloads and the coordinate
// types the event protocol threads through. The descriptions are owned by
// the task loaders; here they are trimmed to what the two task-info
// messages carry.
package task

// SubtaskID identifies a subtask within an IOI task.
type SubtaskID uint32

// TestcaseID identifies a testcase within an IOI task.
type TestcaseID uint32

// IOITestcase is the description of a single testcase.
type IOITestcase struct {
	ID TestcaseID `json:"id"`
	// InputFile is the path of a static input, empty when generated.
	InputFile string `json:"input_file,omitempty"`
}

// IOISubtask is the description of a subtask and its testcases.
type IOISubtask struct {
	ID          SubtaskID                  `json:"id"`
	Name        string                     `json:"name,omitempty"`
	Description string                     `json:"description,omitempty"`
	MaxScore    float64                    `json:"max_score"`
	Testcases   map[TestcaseID]IOITestcase `json:"testcases"`
}

// IOITask is the description of a subtask/testcase structured task.
// Event payloads carry it boxed: it is large and most renderers only need
// it once, to size their layout.
type IOITask struct {
	Name        string                   `json:"name"`
	Title       string                   `json:"title"`
	Path        string                   `json:"path"`
	TimeLimit   *float64                 `json:"time_limit,omitempty"`
	MemoryLimit *uint64                  `json:"memory_limit,omitempty"`
	Subtasks    map[SubtaskID]IOISubtask `json:"subtasks"`
}

// MaxScore is the sum of the maximum scores of all subtasks.
func (t *IOITask) MaxScore() float64 {
	var total float64
	for _, st := range t.Subtasks {
		total += st.MaxScore
	}
	return total
}

// NumTestcases counts the testcases across all subtasks.
func (t *IOITask) NumTestcases() int {
	var n int
	for _, st := range t.Subtasks {
		n += len(st.Testcases)
	}
	return n
}
