package student

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryStore struct {
	mu       sync.RWMutex
	students map[string]Student
}

func NewInMemoryStore() Store {
	return &memoryStore{students: map[string]Student{}}
}

func (m *memoryStore) Upsert(_ context.Context, st Student) error {
	if err := st.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if st.Plan == "" {
		st.Plan = PlanFree
	}
	if prev, ok := m.students[st.ID]; ok {
		st.CreatedAt = prev.CreatedAt
	} else if st.CreatedAt == 0 {
		st.CreatedAt = time.Now().Unix()
	}
	m.students[st.ID] = st
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.students[id]
	if !ok {
		return Student{}, ErrNotFound
	}
	return st, nil
}

func (m *memoryStore) List(_ context.Context) ([]Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Student, 0, len(m.students))
	for _, st := range m.students {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.students[id]; !ok {
		return ErrNotFound
	}
	delete(m.students, id)
	return nil
}
