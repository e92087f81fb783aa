package mutation

import "ath/internal/domain"

// Report summarizes a mutation analysis
type Report struct {
	Total    int
	Killed   int
	Survived int
	Results  []domain.MutantResult
}

func (r *Report) add(result domain.MutantResult) {
	r.Total++
	if result.Status == domain.MutantKilled {
		r.Killed++
	} else {
		r.Survived++
	}
	r.Results = append(r.Results, result)
}

// Score returns the killed percentage. ok is false when there were no mutants.
func (r *Report) Score() (score float64, ok bool) {
	if r.Total == 0 {
		return 0, false
	}
	return float64(r.Killed) / float64(r.Total) * 100, true
}
