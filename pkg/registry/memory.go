package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/voidshard/rasterflow/pkg/errors"
	"github.com/voidshard/rasterflow/pkg/structs"
)

var timeNow = func() int64 { return time.Now().Unix() }

// Memory is an in-process Registry. State lives only as long as the
// process; a restart clears it.
//
// Records are copied on the way in and out, so callers can never mutate
// registry state except via Update.
type Memory struct {
	mu   sync.RWMutex
	jobs map[string]*structs.Job
}

func NewMemory() *Memory {
	return &Memory{jobs: map[string]*structs.Job{}}
}

func (m *Memory) Create(job *structs.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[job.ID]; ok {
		return fmt.Errorf("%w job %s", errors.ErrAlreadyExists, job.ID)
	}

	cp := copyJob(job)
	now := timeNow()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	m.jobs[cp.ID] = cp
	return nil
}

func (m *Memory) Get(id string) (*structs.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w job %s", errors.ErrNotFound, id)
	}
	return copyJob(job), nil
}

func (m *Memory) Update(id string, up *structs.Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return fmt.Errorf("%w job %s", errors.ErrNotFound, id)
	}
	if structs.IsFinalStatus(job.Status) {
		return fmt.Errorf("%w job %s is already %s", errors.ErrInvalidState, id, job.Status)
	}

	if up.Status != "" {
		job.Status = up.Status
	}
	if up.Message != "" {
		job.Message = up.Message
	}
	if up.Metadata != nil {
		md := *up.Metadata
		job.Metadata = &md
	}
	if up.Artifacts != nil {
		af := *up.Artifacts
		job.Artifacts = &af
	}
	job.UpdatedAt = timeNow()
	return nil
}

func copyJob(in *structs.Job) *structs.Job {
	out := *in
	if in.Metadata != nil {
		md := *in.Metadata
		out.Metadata = &md
	}
	if in.Artifacts != nil {
		af := *in.Artifacts
		out.Artifacts = &af
	}
	return &out
}
