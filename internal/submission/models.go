package submission

import (
	"errors"
	"fmt"
	"strings"
)

// Status values. Only pending and graded are ever produced by this service:
// grading is a one-way pending -> graded transition. Approved and rejected are
// reserved for a review workflow that is not specified yet; they are accepted
// when reading external data but never transitioned to.
const (
	StatusPending  = "pending"
	StatusApproved = "approved" // reserved
	StatusRejected = "rejected" // reserved
	StatusGraded   = "graded"
)

var (
	ErrNotFound      = errors.New("submission not found")
	ErrAlreadyGraded = errors.New("submission already graded")
)

// Submission is a student's assignment deliverable. Score and MaxScore are
// set together by grading and are absent until then.
type Submission struct {
	ID          string   `json:"id"`
	StudentID   string   `json:"student_id"`
	CourseName  string   `json:"course_name"`
	Week        int      `json:"week"`
	Module      string   `json:"module"` // assignment title
	Link        string   `json:"link"`
	SubmittedAt int64    `json:"submitted_at"`
	Status      string   `json:"status"`
	Score       *float64 `json:"score,omitempty"`
	MaxScore    *float64 `json:"max_score,omitempty"`
	Feedback    string   `json:"feedback,omitempty"`
	GradedBy    string   `json:"graded_by,omitempty"`
	GradedAt    int64    `json:"graded_at,omitempty"`
}

func (s Submission) Validate() error {
	if strings.TrimSpace(s.StudentID) == "" {
		return errors.New("student_id required")
	}
	if strings.TrimSpace(s.CourseName) == "" {
		return errors.New("course_name required")
	}
	if s.Week < 1 {
		return errors.New("week must be >= 1")
	}
	if strings.TrimSpace(s.Module) == "" {
		return errors.New("module required")
	}
	if strings.TrimSpace(s.Link) == "" {
		return errors.New("link required")
	}
	return nil
}

// GradeInput is the single grading action: status, score and feedback are
// applied together.
type GradeInput struct {
	Score    float64 `json:"score" validate:"min=0"`
	MaxScore float64 `json:"max_score" validate:"gt=0"`
	Feedback string  `json:"feedback,omitempty"`
}

func (in GradeInput) Validate() error {
	if in.MaxScore <= 0 {
		return errors.New("max_score must be positive")
	}
	if in.Score < 0 || in.Score > in.MaxScore {
		return fmt.Errorf("score %g outside [0,%g]", in.Score, in.MaxScore)
	}
	return nil
}
