package session

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("session not found")

// UpcomingSession is a live class slot published by admins. Sessions are
// created and deleted wholesale; there is no update-in-place.
type UpcomingSession struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"` // "2026-01-15"
	Time        string `json:"time"` // "18:00"
	Link        string `json:"link"`
	Active      bool   `json:"active"`
	CreatedAt   int64  `json:"created_at,omitempty"`
}

func (s UpcomingSession) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return errors.New("title required")
	}
	if strings.TrimSpace(s.Date) == "" {
		return errors.New("date required")
	}
	if strings.TrimSpace(s.Time) == "" {
		return errors.New("time required")
	}
	if strings.TrimSpace(s.Link) == "" {
		return errors.New("link required")
	}
	return nil
}

type Store interface {
	Create(ctx context.Context, s UpcomingSession) (UpcomingSession, error)
	List(ctx context.Context, activeOnly bool) ([]UpcomingSession, error)
	Delete(ctx context.Context, id string) error
}
