package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]UpcomingSession
}

func NewInMemoryStore() Store {
	return &memoryStore{sessions: map[string]UpcomingSession{}}
}

func (m *memoryStore) Create(_ context.Context, us UpcomingSession) (UpcomingSession, error) {
	if err := us.Validate(); err != nil {
		return UpcomingSession{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if us.ID == "" {
		us.ID = uuid.NewString()
	}
	if us.CreatedAt == 0 {
		us.CreatedAt = time.Now().Unix()
	}
	m.sessions[us.ID] = us
	return us, nil
}

func (m *memoryStore) List(_ context.Context, activeOnly bool) ([]UpcomingSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]UpcomingSession, 0, len(m.sessions))
	for _, us := range m.sessions {
		if activeOnly && !us.Active {
			continue
		}
		out = append(out, us)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}
