package feedback

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu      sync.RWMutex
	records map[string]StudentFeedback
}

func NewInMemoryStore() Store {
	return &memoryStore{records: map[string]StudentFeedback{}}
}

func (m *memoryStore) Put(_ context.Context, f StudentFeedback) error {
	if err := f.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if f.UpdatedAt == 0 {
		f.UpdatedAt = time.Now().Unix()
	}
	m.records[f.StudentID] = f
	return nil
}

func (m *memoryStore) Get(_ context.Context, studentID string) (StudentFeedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.records[studentID]
	if !ok {
		return StudentFeedback{}, ErrNotFound
	}
	return f, nil
}

func (m *memoryStore) Delete(_ context.Context, studentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[studentID]; !ok {
		return ErrNotFound
	}
	delete(m.records, studentID)
	return nil
}
