// Package mutation checks how well suites catch operator swaps in their subject.
//
// Each suite gets one mutant: its subject with the operator replaced (+ becomes -,
// * becomes /, and so on). A suite that fails against the mutant kills it; a suite
// that still passes lets it survive.
package mutation

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"ath/internal/arith"
	"ath/internal/domain"
	"ath/internal/execution"
)

// Mutator generates and analyzes mutants
type Mutator struct {
	runner *execution.Runner
}

// NewMutator creates a new Mutator
func NewMutator(runner *execution.Runner) *Mutator {
	return &Mutator{runner: runner}
}

// Generate builds one mutant per suite whose subject operator has a replacement.
// Suites with an unknown subject are skipped.
func (m *Mutator) Generate(suites []domain.Suite) []domain.Mutant {
	var mutants []domain.Mutant
	for _, suite := range suites {
		op, err := arith.Lookup(suite.Subject)
		if err != nil {
			glog.V(1).Infof("suite %s: no mutation points: %v", suite.Name, err)
			continue
		}
		replacement, ok := Replacement(op.Symbol)
		if !ok {
			continue
		}
		mutants = append(mutants, domain.Mutant{
			Suite:       suite,
			Original:    op.Symbol,
			Replacement: replacement,
		})
	}
	return mutants
}

// Analyze runs every mutant's suite against the replacement operator.
// It stops early and returns ctx.Err() when ctx is cancelled.
func (m *Mutator) Analyze(ctx context.Context, mutants []domain.Mutant) (*Report, error) {
	report := &Report{}
	for _, mutant := range mutants {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.add(m.analyzeOne(mutant))
	}
	return report, nil
}

func (m *Mutator) analyzeOne(mutant domain.Mutant) domain.MutantResult {
	op, err := arith.Lookup(mutant.Replacement)
	if err != nil {
		// a mutant that cannot be built counts as killed
		glog.V(1).Infof("mutant %s: %v, counting as killed", Name(mutant), err)
		return domain.MutantResult{
			Mutant: mutant,
			Status: domain.MutantKilled,
			Error:  fmt.Errorf("build mutant %s: %w", Name(mutant), err),
		}
	}

	result := m.runner.RunWith(mutant.Suite, op.Func)
	if result.Success {
		glog.V(1).Infof("mutant %s survived", Name(mutant))
		return domain.MutantResult{Mutant: mutant, Status: domain.MutantSurvived}
	}

	glog.V(2).Infof("mutant %s killed", Name(mutant))
	return domain.MutantResult{
		Mutant:   mutant,
		Status:   domain.MutantKilled,
		KilledBy: result.Failure,
		Error:    result.Error,
	}
}

// Name identifies a mutant in logs and reports, e.g. "add[+→-]"
func Name(m domain.Mutant) string {
	return fmt.Sprintf("%s[%s→%s]", m.Suite.Name, m.Original, m.Replacement)
}
