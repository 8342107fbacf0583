package testresult

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("test result not found")

// TestResult is one scholarship-test outcome. Results are append-only
// history; the dashboard shows the latest per student.
type TestResult struct {
	ID           string  `json:"id"`
	StudentID    string  `json:"student_id"`
	Score        float64 `json:"score"` // 0-100 scale
	TimeSpentSec int     `json:"time_spent_sec"`
	CompletedAt  int64   `json:"completed_at"`
}

func (r TestResult) Validate() error {
	if strings.TrimSpace(r.StudentID) == "" {
		return errors.New("student_id required")
	}
	if r.Score < 0 || r.Score > 100 {
		return errors.New("score must be within [0,100]")
	}
	if r.TimeSpentSec < 0 {
		return errors.New("time_spent_sec must be non-negative")
	}
	return nil
}

type Store interface {
	Add(ctx context.Context, r TestResult) (TestResult, error)
	ListByStudent(ctx context.Context, studentID string) ([]TestResult, error)
	// Latest returns the most recently completed result for a student.
	Latest(ctx context.Context, studentID string) (TestResult, error)
	List(ctx context.Context) ([]TestResult, error)
}
