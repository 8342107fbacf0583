package testresult

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu      sync.RWMutex
	results []TestResult
}

func NewInMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) Add(_ context.Context, r TestResult) (TestResult, error) {
	if err := r.Validate(); err != nil {
		return TestResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CompletedAt == 0 {
		r.CompletedAt = time.Now().Unix()
	}
	m.results = append(m.results, r)
	return r, nil
}

func (m *memoryStore) ListByStudent(_ context.Context, studentID string) ([]TestResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []TestResult
	for _, r := range m.results {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	sortByCompleted(out)
	return out, nil
}

func (m *memoryStore) Latest(_ context.Context, studentID string) (TestResult, error) {
	rs, _ := m.ListByStudent(context.Background(), studentID)
	if len(rs) == 0 {
		return TestResult{}, ErrNotFound
	}
	return rs[0], nil
}

func (m *memoryStore) List(_ context.Context) ([]TestResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]TestResult(nil), m.results...)
	sortByCompleted(out)
	return out, nil
}

func sortByCompleted(rs []TestResult) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].CompletedAt > rs[j].CompletedAt
	})
}
