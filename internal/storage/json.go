package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"ath/internal/domain"
)

// Save writes suite results to the configured JSON output file.
// Failures already marked resolved in the previous run stay resolved if they recur unchanged.
func (s *JSONStorage) Save(results []domain.SuiteResult, duration time.Duration, workers int) error {
	output := BuildOutput(results, duration, workers)

	previous, err := s.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if previous != nil {
		carryResolved(previous.Details, output.Details)
	}

	return s.SaveOutput(output)
}

// Load reads the last run from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

func carryResolved(previous, current []domain.CaseFailure) {
	type key struct {
		suite            string
		index            int
		expected, actual int
	}
	resolved := make(map[key]bool)
	for _, f := range previous {
		if f.Resolved {
			resolved[key{f.Suite, f.CaseIndex, f.Expected, f.Actual}] = true
		}
	}
	for i, f := range current {
		if resolved[key{f.Suite, f.CaseIndex, f.Expected, f.Actual}] {
			current[i].Resolved = true
		}
	}
}
