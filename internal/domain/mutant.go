package domain

// MutantStatus is the verdict for one mutant
type MutantStatus string

const (
	MutantKilled   MutantStatus = "killed"
	MutantSurvived MutantStatus = "survived"
)

// Mutant is a suite run against a replacement subject
type Mutant struct {
	Suite       Suite
	Original    string // Operator symbol of the real subject
	Replacement string // Operator symbol swapped in
}

// MutantResult records whether a suite caught its mutant
type MutantResult struct {
	Mutant   Mutant
	Status   MutantStatus
	KilledBy *CaseFailure // Failing case that killed the mutant, if any
	Error    error
}
