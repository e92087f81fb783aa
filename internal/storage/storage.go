package storage

import (
	"context"
	"time"

	"ath/internal/config"
	"ath/internal/domain"
)

// Storage persists and loads the last run (e.g. for the failures viewer).
type Storage interface {
	Save(results []domain.SuiteResult, duration time.Duration, workers int) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after toggling resolved failures).
	SaveOutput(output *domain.RunOutput) error
}

// Recorder appends runs to a history
type Recorder interface {
	Record(ctx context.Context, output *domain.RunOutput) error
	Close() error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// BuildOutput summarizes suite results into the stored run structure
func BuildOutput(results []domain.SuiteResult, duration time.Duration, workers int) *domain.RunOutput {
	passed, failed, cases := 0, 0, 0
	details := make([]domain.CaseFailure, 0)
	for _, r := range results {
		cases += r.Evaluated
		if r.Success {
			passed++
			continue
		}
		failed++
		if r.Failure != nil {
			details = append(details, *r.Failure)
		} else if r.Error != nil {
			details = append(details, domain.CaseFailure{
				Suite:     r.Suite,
				Subject:   r.Subject,
				CaseIndex: -1,
				Message:   r.Error.Error(),
			})
		}
	}

	return &domain.RunOutput{
		Meta: domain.RunMeta{
			TotalSuites:     len(results),
			PassedSuites:    passed,
			FailedSuites:    failed,
			TotalCases:      cases,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}
}
