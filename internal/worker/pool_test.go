package worker

import (
	"context"
	"sync/atomic"
	"testing"
)

type countingJob struct {
	counter *int64
}

type countingResult struct {
	err error
}

func (r *countingResult) GetError() error { return r.err }

func (j *countingJob) Execute(ctx context.Context) Result {
	atomic.AddInt64(j.counter, 1)
	return &countingResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter int64
	pool := NewPool(4)
	pool.Start()

	const jobs = 50
	for i := 0; i < jobs; i++ {
		pool.Submit(&countingJob{counter: &counter})
	}

	results := pool.Wait()
	if len(results) != jobs {
		t.Errorf("got %d results, want %d", len(results), jobs)
	}
	if atomic.LoadInt64(&counter) != jobs {
		t.Errorf("executed %d jobs, want %d", counter, jobs)
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	var counter int64
	pool := NewPool(0)
	pool.Start()
	pool.Submit(&countingJob{counter: &counter})

	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}
