package discovery

import (
	"fmt"

	"ath/internal/domain"
	"ath/internal/registry"
)

// Scanner lists the suites known to a registry
type Scanner struct {
	registry *registry.Registry
}

// NewScanner creates a new Scanner over reg
func NewScanner(reg *registry.Registry) *Scanner {
	return &Scanner{registry: reg}
}

// Scan returns every registered suite in registration order
func (s *Scanner) Scan() ([]domain.Suite, error) {
	suites := s.registry.Suites()
	if len(suites) == 0 {
		return nil, fmt.Errorf("no suites registered")
	}
	return suites, nil
}
