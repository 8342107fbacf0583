package dashboard

import (
	"context"
	"errors"

	"github.com/Untraddgit/untraddcareer-sub001/internal/course"
	"github.com/Untraddgit/untraddcareer-sub001/internal/feedback"
	"github.com/Untraddgit/untraddcareer-sub001/internal/session"
	"github.com/Untraddgit/untraddcareer-sub001/internal/student"
	"github.com/Untraddgit/untraddcareer-sub001/internal/submission"
	"github.com/Untraddgit/untraddcareer-sub001/internal/testresult"
)

// Backend is the external write surface the admin dashboard forwards
// mutations to. Each call is a single request/response cycle.
type Backend interface {
	DeleteCourse(ctx context.Context, name string) error
	DeleteSession(ctx context.Context, id string) error
	CreateSession(ctx context.Context, s session.UpcomingSession) (session.UpcomingSession, error)
	GradeSubmission(ctx context.Context, id string, in submission.GradeInput, gradedBy string) (submission.Submission, error)
	SaveFeedback(ctx context.Context, f feedback.StudentFeedback) error
}

// State is the admin dashboard's owned collections. Transitions are
// confirm-then-apply: the external write must succeed before any local
// collection changes, so a failed call leaves State exactly as it was.
// State is not safe for concurrent use; it lives on a single event loop.
type State struct {
	Students    []student.Student
	Courses     []course.Course
	Submissions []submission.Submission
	Sessions    []session.UpcomingSession
	Results     []testresult.TestResult
	Feedback    map[string]feedback.StudentFeedback

	backend Backend
}

func NewState(b Backend) *State {
	return &State{backend: b, Feedback: map[string]feedback.StudentFeedback{}}
}

// Load replaces all collections wholesale (the fetch after a mutation).
func (s *State) Load(students []student.Student, courses []course.Course,
	subs []submission.Submission, sessions []session.UpcomingSession,
	results []testresult.TestResult) {
	s.Students = students
	s.Courses = courses
	s.Submissions = subs
	s.Sessions = sessions
	s.Results = results
}

// DeleteCourse forwards the delete and, on success, removes exactly the
// affected course from the local list.
func (s *State) DeleteCourse(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("course name required")
	}
	if err := s.backend.DeleteCourse(ctx, name); err != nil {
		return err
	}
	out := s.Courses[:0:0]
	for _, c := range s.Courses {
		if c.Name != name {
			out = append(out, c)
		}
	}
	s.Courses = out
	return nil
}

func (s *State) DeleteSession(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("session id required")
	}
	if err := s.backend.DeleteSession(ctx, id); err != nil {
		return err
	}
	out := s.Sessions[:0:0]
	for _, us := range s.Sessions {
		if us.ID != id {
			out = append(out, us)
		}
	}
	s.Sessions = out
	return nil
}

func (s *State) ScheduleSession(ctx context.Context, us session.UpcomingSession) error {
	if err := us.Validate(); err != nil {
		return err
	}
	created, err := s.backend.CreateSession(ctx, us)
	if err != nil {
		return err
	}
	s.Sessions = append(s.Sessions, created)
	return nil
}

// GradeSubmission forwards the grading action and replaces the affected
// submission in place on success.
func (s *State) GradeSubmission(ctx context.Context, id string, in submission.GradeInput, gradedBy string) error {
	if err := in.Validate(); err != nil {
		return err
	}
	graded, err := s.backend.GradeSubmission(ctx, id, in, gradedBy)
	if err != nil {
		return err
	}
	for i := range s.Submissions {
		if s.Submissions[i].ID == id {
			s.Submissions[i] = graded
			break
		}
	}
	return nil
}

func (s *State) SaveFeedback(ctx context.Context, f feedback.StudentFeedback) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if err := s.backend.SaveFeedback(ctx, f); err != nil {
		return err
	}
	s.Feedback[f.StudentID] = f
	return nil
}
