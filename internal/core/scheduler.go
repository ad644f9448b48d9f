package core

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// scheduler dispatches pipeline runs off the request path while capping how
// many execute at once. A run holds one slot for its whole lifetime, so the
// cap also bounds concurrent external tool subprocesses.
type scheduler struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

func newScheduler(limit int64) *scheduler {
	return &scheduler{sem: semaphore.NewWeighted(limit)}
}

// Submit queues fn to run in the background and returns immediately.
func (s *scheduler) Submit(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.sem.Acquire(context.Background(), 1); err != nil {
			return
		}
		defer s.sem.Release(1)
		fn()
	}()
}

// Wait blocks until every submitted run has finished.
func (s *scheduler) Wait() {
	s.wg.Wait()
}
