package execution

import (
	"time"

	"ath/internal/domain"
)

// Executor executes suites and returns results
type Executor interface {
	Execute(suites []domain.Suite) ([]domain.SuiteResult, time.Duration, error)
}

// Progress receives pass/fail counts while suites complete
type Progress interface {
	Update(passed, failed int)
	Finish()
}
