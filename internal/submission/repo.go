package submission

import "context"

type ListOpts struct {
	StudentID  string
	CourseName string
	Status     string
	Limit      int
	Offset     int
}

// Store persists submissions. Grade applies the pending -> graded transition
// atomically; it fails with ErrAlreadyGraded when the submission is no longer
// pending, so two admins cannot both grade the same deliverable.
type Store interface {
	Create(ctx context.Context, s Submission) (Submission, error)
	Get(ctx context.Context, id string) (Submission, error)
	List(ctx context.Context, opts ListOpts) ([]Submission, error)
	Grade(ctx context.Context, id string, in GradeInput, gradedBy string) (Submission, error)
}
