// Package harness asserts fixed integer cases against a subject function.
//
// A run is a single linear pass: every case is evaluated in order and the
// first mismatch ends the run with an *AssertionFailure. Nothing after the
// failing case is invoked and no state survives between runs.
package harness

import (
	"fmt"

	"ath/internal/arith"
	"ath/internal/domain"
)

// Outcome is the verdict of a run
type Outcome int

const (
	Pass Outcome = iota
	Fail
)

func (o Outcome) String() string {
	if o == Pass {
		return "PASS"
	}
	return "FAIL"
}

// RunCases invokes subject for each case in order and stops at the first mismatch.
// It returns Pass and a nil error when every case holds.
func RunCases(subject arith.Func, cases []domain.TestCase) (Outcome, error) {
	if subject == nil {
		return Fail, ErrNilSubject
	}
	if len(cases) == 0 {
		return Fail, ErrNoCases
	}

	for i, c := range cases {
		actual := subject(c.A, c.B)
		if actual != c.Expected {
			return Fail, &AssertionFailure{
				Index:    i,
				A:        c.A,
				B:        c.B,
				Expected: c.Expected,
				Actual:   actual,
			}
		}
	}

	return Pass, nil
}

// RunSuite resolves the suite's subject by name and runs its cases
func RunSuite(suite domain.Suite) (Outcome, error) {
	op, err := arith.Lookup(suite.Subject)
	if err != nil {
		return Fail, fmt.Errorf("suite %s: %w: %s", suite.Name, ErrUnknownSubject, suite.Subject)
	}
	return RunCases(op.Func, suite.Cases)
}
