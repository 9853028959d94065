package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingJob struct {
	count *atomic.Int64
	wg    *sync.WaitGroup
}

func (j countingJob) Process(context.Context) error {
	j.count.Add(1)
	j.wg.Done()
	return nil
}

type failingJob struct {
	wg *sync.WaitGroup
}

func (j failingJob) Process(context.Context) error {
	j.wg.Done()
	return errors.New("job failed")
}

func TestPoolProcessesJobs(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	var count atomic.Int64
	var wg sync.WaitGroup

	const jobs = 20
	wg.Add(jobs)
	for i := 0; i < jobs; i++ {
		pool.Enqueue(countingJob{count: &count, wg: &wg})
	}

	wg.Wait()
	assert.Equal(t, int64(jobs), count.Load())
}

func TestPoolSurvivesFailingJobs(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	var wg sync.WaitGroup
	wg.Add(1)
	pool.Enqueue(failingJob{wg: &wg})
	wg.Wait()

	// Worker must still be alive after the failure
	var count atomic.Int64
	wg.Add(1)
	pool.Enqueue(countingJob{count: &count, wg: &wg})
	wg.Wait()

	assert.Equal(t, int64(1), count.Load())
}

func TestPoolTryEnqueue(t *testing.T) {
	// Not started, queue of one: second job must be rejected
	pool := NewPool(1, 1)

	var count atomic.Int64
	var wg sync.WaitGroup
	wg.Add(1)

	assert.True(t, pool.TryEnqueue(countingJob{count: &count, wg: &wg}))
	assert.False(t, pool.TryEnqueue(countingJob{count: &count, wg: &wg}))

	pool.Start()
	wg.Wait()
	pool.Stop()
}

func TestPoolDefaults(t *testing.T) {
	pool := NewPool(0, 0)
	assert.Equal(t, DefaultWorkers, pool.workers)
	assert.Equal(t, DefaultQueueSize, cap(pool.jobQueue))

	pool.Start()

	var count atomic.Int64
	var wg sync.WaitGroup
	wg.Add(1)
	pool.Enqueue(countingJob{count: &count, wg: &wg})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job was not processed")
	}

	pool.Stop()
}
