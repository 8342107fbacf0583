package submission

import (
	"context"
	"errors"
	"testing"

	"github.com/Untraddgit/untraddcareer-sub001/internal/grading"
)

func newPending(t *testing.T, store Store) Submission {
	t.Helper()
	sub, err := store.Create(context.Background(), Submission{
		StudentID:  "stu_1",
		CourseName: "fullstack",
		Week:       1,
		Module:     "intro",
		Link:       "https://github.com/stu1/intro",
	})
	if err != nil {
		t.Fatal(err)
	}
	return sub
}

func TestCreateStartsPending(t *testing.T) {
	store := NewInMemoryStore()
	sub := newPending(t, store)
	if sub.Status != StatusPending {
		t.Errorf("status = %q, want pending", sub.Status)
	}
	if sub.ID == "" || sub.SubmittedAt == 0 {
		t.Errorf("id/submitted_at not assigned: %+v", sub)
	}
	if sub.Score != nil {
		t.Error("score must be absent before grading")
	}
}

func TestGradeTransition(t *testing.T) {
	store := NewInMemoryStore()
	sub := newPending(t, store)

	graded, err := store.Grade(context.Background(), sub.ID, GradeInput{Score: 8, MaxScore: 10, Feedback: "good work"}, "admin-1")
	if err != nil {
		t.Fatal(err)
	}
	if graded.Status != StatusGraded {
		t.Errorf("status = %q, want graded", graded.Status)
	}
	if graded.Score == nil || *graded.Score != 8 || graded.MaxScore == nil || *graded.MaxScore != 10 {
		t.Errorf("score = %+v", graded)
	}
	if graded.Feedback != "good work" || graded.GradedBy != "admin-1" || graded.GradedAt == 0 {
		t.Errorf("grading metadata: %+v", graded)
	}
	if band := grading.Classify(graded.Score, *graded.MaxScore); band != grading.BandGood {
		t.Errorf("band = %q, want good", band)
	}
}

func TestGradeIsOneWay(t *testing.T) {
	store := NewInMemoryStore()
	sub := newPending(t, store)
	if _, err := store.Grade(context.Background(), sub.ID, GradeInput{Score: 5, MaxScore: 10}, "admin-1"); err != nil {
		t.Fatal(err)
	}
	_, err := store.Grade(context.Background(), sub.ID, GradeInput{Score: 9, MaxScore: 10}, "admin-2")
	if !errors.Is(err, ErrAlreadyGraded) {
		t.Fatalf("second grade: err = %v, want ErrAlreadyGraded", err)
	}
}

func TestGradeValidation(t *testing.T) {
	store := NewInMemoryStore()
	sub := newPending(t, store)
	for _, in := range []GradeInput{
		{Score: -1, MaxScore: 10},
		{Score: 11, MaxScore: 10},
		{Score: 5, MaxScore: 0},
	} {
		if _, err := store.Grade(context.Background(), sub.ID, in, "admin-1"); err == nil {
			t.Errorf("GradeInput %+v: want validation error", in)
		}
	}
	if _, err := store.Grade(context.Background(), "missing", GradeInput{Score: 5, MaxScore: 10}, "admin-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id: err = %v, want ErrNotFound", err)
	}
}

func TestListFiltersAndOrder(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	for _, s := range []Submission{
		{StudentID: "stu_1", CourseName: "fullstack", Week: 1, Module: "intro", Link: "l", SubmittedAt: 10},
		{StudentID: "stu_2", CourseName: "fullstack", Week: 1, Module: "intro", Link: "l", SubmittedAt: 20},
		{StudentID: "stu_1", CourseName: "fullstack", Week: 2, Module: "apis", Link: "l", SubmittedAt: 30},
	} {
		if _, err := store.Create(ctx, s); err != nil {
			t.Fatal(err)
		}
	}
	got, err := store.List(ctx, ListOpts{StudentID: "stu_1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Week != 1 || got[1].Week != 2 {
		t.Errorf("stu_1 submissions: %+v", got)
	}
	got, _ = store.List(ctx, ListOpts{Status: StatusPending})
	if len(got) != 3 {
		t.Errorf("pending count = %d, want 3", len(got))
	}
}
