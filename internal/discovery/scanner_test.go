package discovery

import (
	"testing"

	"ath/internal/domain"
	"ath/internal/registry"
)

func TestScanner_Scan(t *testing.T) {
	reg := registry.New()
	reg.MustRegister(domain.Suite{Name: "mul", Subject: "mul", Cases: []domain.TestCase{{A: 5, B: 2, Expected: 10}}})
	reg.MustRegister(domain.Suite{Name: "add", Subject: "add", Cases: []domain.TestCase{{A: 1, B: 2, Expected: 3}}})

	suites, err := NewScanner(reg).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suites) != 2 {
		t.Fatalf("expected 2 suites, got %d", len(suites))
	}
	if suites[0].Name != "mul" || suites[1].Name != "add" {
		t.Errorf("expected registration order, got %s, %s", suites[0].Name, suites[1].Name)
	}
}

func TestScanner_ScanEmpty(t *testing.T) {
	if _, err := NewScanner(registry.New()).Scan(); err == nil {
		t.Error("expected error for empty registry")
	}
}
