package execution

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"ath/internal/config"
	"ath/internal/domain"
)

var _ Executor = (*WorkerPool)(nil)

// WorkerPool manages a pool of workers for running independent suites
type WorkerPool struct {
	config    *config.Config
	runner    *Runner
	scheduler Scheduler
	progress  Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, scheduler Scheduler) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		runner:    runner,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Execute runs every suite (no fail-fast across suites).
func (wp *WorkerPool) Execute(suites []domain.Suite) ([]domain.SuiteResult, time.Duration, error) {
	return wp.ExecuteWithOptions(suites, false)
}

// ExecuteWithOptions runs suites with optional fail-fast: once a suite fails no further suite is started.
// Results are returned in the order of suites.
func (wp *WorkerPool) ExecuteWithOptions(suites []domain.Suite, failFast bool) ([]domain.SuiteResult, time.Duration, error) {
	if len(suites) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return wp.executeAll(suites)
	}
	return wp.executeFailFast(suites)
}

// executeAll hands each worker its scheduled share of suites.
func (wp *WorkerPool) executeAll(suites []domain.Suite) ([]domain.SuiteResult, time.Duration, error) {
	workerCount := wp.config.Workers()
	distribution := wp.scheduler.Schedule(suites, workerCount)
	glog.V(1).Infof("running %d suite(s) on %d worker(s)", len(suites), workerCount)

	results := make(chan domain.SuiteResult, len(suites))
	counter := newCounter(wp.progress)
	startTime := time.Now()

	var wg sync.WaitGroup
	for i, share := range distribution {
		if len(share) == 0 {
			continue
		}
		wg.Add(1)
		go func(workerID int, share []domain.Suite) {
			defer wg.Done()
			for _, suite := range share {
				glog.V(2).Infof("worker %d: running suite %s", workerID, suite.Name)
				result := wp.runner.Run(suite)
				counter.record(result)
				results <- result
			}
		}(i+1, share)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	collected := collect(results)
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return inSuiteOrder(suites, collected), time.Since(startTime), nil
}

// executeFailFast feeds suites through a queue and stops after the first failure.
func (wp *WorkerPool) executeFailFast(suites []domain.Suite) ([]domain.SuiteResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := make(chan domain.Suite)
	results := make(chan domain.SuiteResult, len(suites))

	go func() {
		defer close(queue)
		for _, suite := range suites {
			select {
			case <-ctx.Done():
				return
			case queue <- suite:
			}
		}
	}()

	var mu sync.Mutex
	var seenFailure bool
	counter := newCounter(wp.progress)
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 1; i <= wp.config.Workers(); i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for suite := range queue {
				mu.Lock()
				done := seenFailure
				mu.Unlock()
				if done {
					continue
				}
				result := wp.runner.Run(suite)
				counter.record(result)
				results <- result
				if !result.Success {
					mu.Lock()
					seenFailure = true
					mu.Unlock()
					glog.V(1).Infof("worker %d: suite %s failed, stopping", workerID, suite.Name)
					cancel()
				}
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	collected := collect(results)
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return inSuiteOrder(suites, collected), time.Since(startTime), nil
}

// counter tallies pass/fail results and forwards them to the progress reporter
type counter struct {
	mu       sync.Mutex
	passed   int
	failed   int
	progress Progress
}

func newCounter(progress Progress) *counter {
	return &counter{progress: progress}
}

func (c *counter) record(result domain.SuiteResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if result.Success {
		c.passed++
	} else {
		c.failed++
	}
	if c.progress != nil {
		c.progress.Update(c.passed, c.failed)
	}
}

func collect(results <-chan domain.SuiteResult) []domain.SuiteResult {
	var all []domain.SuiteResult
	for result := range results {
		all = append(all, result)
	}
	return all
}

// inSuiteOrder sorts results to match the order suites were given in.
// Suites that never ran are left out.
func inSuiteOrder(suites []domain.Suite, results []domain.SuiteResult) []domain.SuiteResult {
	byName := make(map[string]domain.SuiteResult, len(results))
	for _, r := range results {
		byName[r.Suite] = r
	}
	ordered := make([]domain.SuiteResult, 0, len(results))
	for _, s := range suites {
		if r, ok := byName[s.Name]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}
