package domain

import "time"

// SuiteResult represents the result of running one suite
type SuiteResult struct {
	Suite     string        // Name of the suite that was executed
	Subject   string        // Subject function name
	Success   bool          // Whether every case passed
	Evaluated int           // Number of cases the harness invoked the subject for
	Failure   *CaseFailure  // First failing case, nil on success
	Error     error         // Error if the suite could not run at all
	Duration  time.Duration // Time taken to execute
}

// RunMeta contains metadata about a run
type RunMeta struct {
	TotalSuites     int     `json:"total_suites"`
	PassedSuites    int     `json:"passed_suites"`
	FailedSuites    int     `json:"failed_suites"`
	TotalCases      int     `json:"total_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete stored structure for a run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}
