package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("feedback not found")

// StudentFeedback is the counseling record for one student. At most one
// current record exists per student; saving replaces it wholesale.
type StudentFeedback struct {
	StudentID string `json:"student_id"`

	CommunicationRating  int `json:"communication_rating"`   // 1-5
	TechnicalRating      int `json:"technical_rating"`       // 1-5
	ProblemSolvingRating int `json:"problem_solving_rating"` // 1-5

	Strengths       string `json:"strengths,omitempty"`
	Improvements    string `json:"improvements,omitempty"`
	RecommendedPath string `json:"recommended_path,omitempty"`
	Notes           string `json:"notes,omitempty"`

	UpdatedBy string `json:"updated_by,omitempty"`
	UpdatedAt int64  `json:"updated_at,omitempty"`
}

func (f StudentFeedback) Validate() error {
	if strings.TrimSpace(f.StudentID) == "" {
		return errors.New("student_id required")
	}
	for name, r := range map[string]int{
		"communication_rating":   f.CommunicationRating,
		"technical_rating":       f.TechnicalRating,
		"problem_solving_rating": f.ProblemSolvingRating,
	} {
		if r < 1 || r > 5 {
			return fmt.Errorf("%s must be within 1..5", name)
		}
	}
	return nil
}

type Store interface {
	// Put replaces the student's current record.
	Put(ctx context.Context, f StudentFeedback) error
	Get(ctx context.Context, studentID string) (StudentFeedback, error)
	Delete(ctx context.Context, studentID string) error
}
