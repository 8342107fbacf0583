package submission

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu    sync.RWMutex
	subs  map[string]Submission
	order []string // insertion order for stable listing
}

func NewInMemoryStore() Store {
	return &memoryStore{subs: map[string]Submission{}}
}

func (m *memoryStore) Create(_ context.Context, sub Submission) (Submission, error) {
	if err := sub.Validate(); err != nil {
		return Submission{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	sub.Status = StatusPending
	if sub.SubmittedAt == 0 {
		sub.SubmittedAt = time.Now().Unix()
	}
	m.subs[sub.ID] = sub
	m.order = append(m.order, sub.ID)
	return sub, nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sub, ok := m.subs[id]
	if !ok {
		return Submission{}, ErrNotFound
	}
	return sub, nil
}

func (m *memoryStore) List(_ context.Context, opts ListOpts) ([]Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Submission
	for _, id := range m.order {
		sub := m.subs[id]
		if opts.StudentID != "" && sub.StudentID != opts.StudentID {
			continue
		}
		if opts.CourseName != "" && sub.CourseName != opts.CourseName {
			continue
		}
		if opts.Status != "" && sub.Status != opts.Status {
			continue
		}
		out = append(out, sub)
	}
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return nil, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *memoryStore) Grade(_ context.Context, id string, in GradeInput, gradedBy string) (Submission, error) {
	if err := in.Validate(); err != nil {
		return Submission{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.subs[id]
	if !ok {
		return Submission{}, ErrNotFound
	}
	if sub.Status != StatusPending {
		return Submission{}, ErrAlreadyGraded
	}
	score, maxScore := in.Score, in.MaxScore
	sub.Status = StatusGraded
	sub.Score = &score
	sub.MaxScore = &maxScore
	sub.Feedback = in.Feedback
	sub.GradedBy = gradedBy
	sub.GradedAt = time.Now().Unix()
	m.subs[id] = sub
	return sub, nil
}
