package task

// Seed is the value used to generate the input file of a solution in a
// solution/seed structured task.
type Seed uint64

// TerryTask is the description of a solution/seed structured task.
type TerryTask struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Path        string  `json:"path"`
	MaxScore    float64 `json:"max_score"`
}

// ValidationCaseStatus is the checker's verdict on a single case.
type ValidationCaseStatus string

const (
	CaseMissing ValidationCaseStatus = "missing"
	CaseParsed  ValidationCaseStatus = "parsed"
	CaseInvalid ValidationCaseStatus = "invalid"
)

// SolutionValidationCase is the validation outcome of one case.
type SolutionValidationCase struct {
	Status ValidationCaseStatus `json:"status"`
	// Message details why the case is invalid.
	Message string `json:"message,omitempty"`
}

// SolutionAlert is a checker remark about the submitted output as a whole.
type SolutionAlert struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// SolutionFeedbackCase is the graded outcome of one case.
type SolutionFeedbackCase struct {
	Correct bool   `json:"correct"`
	Message string `json:"message,omitempty"`
}

// SolutionOutcome is the free-form result the external checker produces
// for a solution: an overall score plus per-case validation and feedback.
type SolutionOutcome struct {
	// Score is normalized between 0 and 1.
	Score      float64                  `json:"score"`
	Validation []SolutionValidationCase `json:"validation"`
	Alerts     []SolutionAlert          `json:"alerts,omitempty"`
	Feedback   []SolutionFeedbackCase   `json:"feedback"`
}
