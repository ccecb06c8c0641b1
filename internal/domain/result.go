package domain

import "time"

// Status classifies the outcome of a single test case
type Status int

const (
	// StatusPassed means normalized outputs were identical
	StatusPassed Status = iota
	// StatusContentMismatch means normalized outputs differed
	StatusContentMismatch
	// StatusFixtureMissing means an input or expected-output file was absent
	StatusFixtureMissing
	// StatusExecutionFailed means the subprocess could not be launched or timed out
	StatusExecutionFailed
)

// String returns the category name used in reports and the results file
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusContentMismatch:
		return "content_mismatch"
	case StatusFixtureMissing:
		return "fixture_missing"
	case StatusExecutionFailed:
		return "execution_failed"
	}
	return "unknown"
}

// TestResult represents the outcome of executing one test case
type TestResult struct {
	Index      int           // Test index
	Status     Status        // Outcome category
	Diff       string        // Line diff, non-empty only for content mismatches
	Err        error         // Harness error for fixture/execution failures
	ExitCode   int           // Subprocess exit code (0 when not applicable)
	Duration   time.Duration // Time taken to execute the subprocess
	ActualPath string        // Where captured output was written, if any
}

// Passed reports whether the test case passed
func (r TestResult) Passed() bool {
	return r.Status == StatusPassed
}

// HarnessError reports whether the outcome is a harness error rather than a mismatch
func (r TestResult) HarnessError() bool {
	return r.Status == StatusFixtureMissing || r.Status == StatusExecutionFailed
}

// RunMeta contains metadata about a harness run
type RunMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	HarnessErrors   int     `json:"harness_errors"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete output structure for a harness run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []TestFailure `json:"details"`
}
