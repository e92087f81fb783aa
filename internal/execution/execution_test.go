package execution

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ath/internal/arith"
	"ath/internal/config"
	"ath/internal/domain"
	"ath/internal/harness"
)

type recordingProgress struct {
	mu       sync.Mutex
	updates  int
	passed   int
	failed   int
	finished bool
}

func (p *recordingProgress) Update(passed, failed int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates++
	p.passed, p.failed = passed, failed
}

func (p *recordingProgress) Finish() {
	p.finished = true
}

func passing(name, subject string) domain.Suite {
	op, _ := arith.Lookup(subject)
	return domain.Suite{
		Name:    name,
		Subject: subject,
		Cases:   []domain.TestCase{{A: 6, B: 3, Expected: op.Func(6, 3)}},
	}
}

func failing(name string) domain.Suite {
	return domain.Suite{
		Name:    name,
		Subject: "add",
		Cases:   []domain.TestCase{{A: 1, B: 2, Expected: 3}, {A: 1, B: 1, Expected: 3}, {A: 0, B: 0, Expected: 0}},
	}
}

func newPool(processors int) *WorkerPool {
	cfg := config.New()
	cfg.Processors = processors
	return NewWorkerPool(cfg, NewRunner(), NewRoundRobinScheduler())
}

func TestRunner_Run(t *testing.T) {
	r := NewRunner()

	t.Run("pass", func(t *testing.T) {
		result := r.Run(passing("div", "div"))
		assert.True(t, result.Success)
		assert.Equal(t, 1, result.Evaluated)
		assert.Nil(t, result.Failure)
		assert.NoError(t, result.Error)
	})

	t.Run("assertion failure", func(t *testing.T) {
		result := r.Run(failing("add"))
		assert.False(t, result.Success)
		assert.NoError(t, result.Error)
		require.NotNil(t, result.Failure)
		assert.Equal(t, 1, result.Failure.CaseIndex)
		assert.Equal(t, 3, result.Failure.Expected)
		assert.Equal(t, 2, result.Failure.Actual)
		assert.Equal(t, 2, result.Evaluated)
	})

	t.Run("unknown subject", func(t *testing.T) {
		result := r.Run(domain.Suite{Name: "mod", Subject: "mod", Cases: failing("x").Cases})
		assert.False(t, result.Success)
		assert.Nil(t, result.Failure)
		assert.ErrorIs(t, result.Error, harness.ErrUnknownSubject)
	})

	t.Run("replacement subject", func(t *testing.T) {
		result := r.RunWith(passing("add", "add"), arith.Sub)
		assert.False(t, result.Success)
		require.NotNil(t, result.Failure)
		assert.Equal(t, 3, result.Failure.Actual)
	})
}

func TestRoundRobinScheduler_Schedule(t *testing.T) {
	s := NewRoundRobinScheduler()
	suites := []domain.Suite{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}}

	tests := []struct {
		name     string
		workers  int
		expected []int
	}{
		{name: "single worker", workers: 1, expected: []int{5}},
		{name: "two workers", workers: 2, expected: []int{3, 2}},
		{name: "more workers than suites", workers: 7, expected: []int{1, 1, 1, 1, 1, 0, 0}},
		{name: "zero workers falls back to one", workers: 0, expected: []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist := s.Schedule(suites, tt.workers)
			require.Len(t, dist, len(tt.expected))
			for i, n := range tt.expected {
				assert.Len(t, dist[i], n, "worker %d", i)
			}
		})
	}
}

func TestWorkerPool_Execute(t *testing.T) {
	suites := []domain.Suite{
		passing("add", "add"),
		failing("broken"),
		passing("mul", "mul"),
		passing("div", "div"),
	}

	for _, processors := range []int{1, 2, 4} {
		pool := newPool(processors)
		progress := &recordingProgress{}
		pool.SetProgress(progress)

		results, _, err := pool.Execute(suites)
		require.NoError(t, err)
		require.Len(t, results, 4)

		var names []string
		for _, r := range results {
			names = append(names, r.Suite)
		}
		assert.Equal(t, []string{"add", "broken", "mul", "div"}, names, "processors=%d", processors)
		assert.False(t, results[1].Success)
		assert.Equal(t, 3, progress.passed)
		assert.Equal(t, 1, progress.failed)
		assert.Equal(t, 4, progress.updates)
		assert.True(t, progress.finished)
	}
}

func TestWorkerPool_ExecuteFailFast(t *testing.T) {
	suites := []domain.Suite{
		passing("add", "add"),
		failing("broken"),
		passing("mul", "mul"),
		passing("div", "div"),
	}

	pool := newPool(1)
	results, _, err := pool.ExecuteWithOptions(suites, true)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "add", results[0].Suite)
	assert.Equal(t, "broken", results[1].Suite)
	assert.False(t, results[1].Success)
}

func TestWorkerPool_ExecuteEmpty(t *testing.T) {
	results, duration, err := newPool(2).Execute(nil)
	assert.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, duration)
}
