package execution

import (
	"fmt"
	"time"

	"github.com/golang/glog"

	"ath/internal/arith"
	"ath/internal/domain"
	"ath/internal/harness"
)

// Runner executes a single suite through the assertion harness
type Runner struct{}

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run resolves the suite's subject and asserts its cases
func (r *Runner) Run(suite domain.Suite) domain.SuiteResult {
	op, err := arith.Lookup(suite.Subject)
	if err != nil {
		return domain.SuiteResult{
			Suite:   suite.Name,
			Subject: suite.Subject,
			Error:   fmt.Errorf("%w: %s", harness.ErrUnknownSubject, suite.Subject),
		}
	}
	return r.RunWith(suite, op.Func)
}

// RunWith asserts the suite's cases against subject instead of the named operation
func (r *Runner) RunWith(suite domain.Suite, subject arith.Func) domain.SuiteResult {
	start := time.Now()
	outcome, err := harness.RunCases(subject, suite.Cases)
	result := domain.SuiteResult{
		Suite:    suite.Name,
		Subject:  suite.Subject,
		Success:  outcome == harness.Pass && err == nil,
		Duration: time.Since(start),
	}

	if result.Success {
		result.Evaluated = len(suite.Cases)
		glog.V(2).Infof("suite %s: %d case(s) passed in %s", suite.Name, result.Evaluated, result.Duration)
		return result
	}

	if af, ok := harness.AsAssertionFailure(err); ok {
		result.Evaluated = af.Index + 1
		result.Failure = &domain.CaseFailure{
			Suite:     suite.Name,
			Subject:   suite.Subject,
			CaseIndex: af.Index,
			A:         af.A,
			B:         af.B,
			Expected:  af.Expected,
			Actual:    af.Actual,
			Message:   af.Error(),
		}
		glog.V(1).Infof("suite %s: %v", suite.Name, af)
		return result
	}

	result.Error = fmt.Errorf("suite %s: %w", suite.Name, err)
	glog.V(1).Infof("suite %s could not run: %v", suite.Name, err)
	return result
}
