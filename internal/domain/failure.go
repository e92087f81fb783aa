package domain

// CaseFailure represents the first failing case of a suite
type CaseFailure struct {
	Suite     string `json:"suite"`
	Subject   string `json:"subject"`
	CaseIndex int    `json:"case_index"`
	A         int    `json:"a"`
	B         int    `json:"b"`
	Expected  int    `json:"expected"`
	Actual    int    `json:"actual"`
	Message   string `json:"message"`
	Resolved  bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
