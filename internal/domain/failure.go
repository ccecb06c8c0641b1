package domain

// TestFailure represents a non-passing test case in the results file
type TestFailure struct {
	Index        int    `json:"index"`
	Category     string `json:"category"`
	InputPath    string `json:"input_path"`
	ExpectedPath string `json:"expected_path"`
	ActualPath   string `json:"actual_path,omitempty"`
	Diff         string `json:"diff,omitempty"`
	Message      string `json:"message,omitempty"`
	Resolved     bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}
