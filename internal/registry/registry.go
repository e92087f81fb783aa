// Package registry holds the process-wide list of suites run by ath.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"ath/internal/domain"
)

var (
	// ErrDuplicateSuite is returned when a suite name is registered twice
	ErrDuplicateSuite = errors.New("duplicate suite")
	// ErrInvalidSuite is returned for suites without a name, subject or cases
	ErrInvalidSuite = errors.New("invalid suite")
)

// Registry is an ordered list of suites
type Registry struct {
	mu     sync.RWMutex
	suites []domain.Suite
	index  map[string]int
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Default is the registry populated at startup by package suites.
var Default = New()

// Register appends a suite. Cases are copied in and out of the registry, so callers never share them.
func (r *Registry) Register(s domain.Suite) error {
	if s.Name == "" || s.Subject == "" || len(s.Cases) == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidSuite, s.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[s.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSuite, s.Name)
	}

	r.index[s.Name] = len(r.suites)
	r.suites = append(r.suites, cloneSuite(s))
	return nil
}

// MustRegister is Register for init functions; it panics on error
func (r *Registry) MustRegister(s domain.Suite) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Suites returns the registered suites in registration order
func (r *Registry) Suites() []domain.Suite {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Suite, len(r.suites))
	for i, s := range r.suites {
		out[i] = cloneSuite(s)
	}
	return out
}

// Lookup returns the suite registered under name
func (r *Registry) Lookup(name string) (domain.Suite, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return domain.Suite{}, false
	}
	return cloneSuite(r.suites[i]), true
}

func cloneSuite(s domain.Suite) domain.Suite {
	cases := make([]domain.TestCase, len(s.Cases))
	copy(cases, s.Cases)
	s.Cases = cases
	return s
}

// Len returns the number of registered suites
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.suites)
}

// MustRegister adds a suite to Default.
func MustRegister(s domain.Suite) {
	Default.MustRegister(s)
}
