package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Untraddgit/untraddcareer-sub001/internal/audit"
	"github.com/Untraddgit/untraddcareer-sub001/internal/course"
	"github.com/Untraddgit/untraddcareer-sub001/internal/dashboard"
	"github.com/Untraddgit/untraddcareer-sub001/internal/rbac"
	"github.com/Untraddgit/untraddcareer-sub001/internal/student"
	"github.com/Untraddgit/untraddcareer-sub001/internal/submission"
	"github.com/Untraddgit/untraddcareer-sub001/internal/testresult"
)

func asRole(r *http.Request, sub, role string) *http.Request {
	ctx := rbac.WithSubject(r.Context(), sub)
	ctx = rbac.WithRole(ctx, role)
	return r.WithContext(ctx)
}

func withURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// audit log writes are best-effort; a nil *audit.Log is skipped entirely.
var noAudit *audit.Log

func TestDeleteCourseHandler(t *testing.T) {
	store := course.NewInMemoryStore()
	_ = store.Put(context.Background(), course.Course{Name: "Full Stack Development", Active: true})

	req := httptest.NewRequest(http.MethodDelete, "/api/predefined-courses/admin/predefined-courses/Full%20Stack%20Development", nil)
	req = asRole(req, "admin-1", rbac.RoleAdmin)
	req = withURLParam(req, "courseName", "Full Stack Development")
	rec := httptest.NewRecorder()
	DeleteCourseHandler(store, noAudit)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if _, err := store.Get(context.Background(), "Full Stack Development"); err == nil {
		t.Error("course still present after delete")
	}

	// deleting again is a 404
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/x", nil)
	req = asRole(req, "admin-1", rbac.RoleAdmin)
	req = withURLParam(req, "courseName", "Full Stack Development")
	DeleteCourseHandler(store, noAudit)(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestListSubmissionsScopesStudents(t *testing.T) {
	store := submission.NewInMemoryStore()
	ctx := context.Background()
	for _, s := range []submission.Submission{
		{StudentID: "stu_1", CourseName: "fullstack", Week: 1, Module: "intro", Link: "l"},
		{StudentID: "stu_2", CourseName: "fullstack", Week: 1, Module: "intro", Link: "l"},
	} {
		if _, err := store.Create(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	// a student asking for someone else's data still gets their own
	req := httptest.NewRequest(http.MethodGet, "/api/submissions?student_id=stu_2", nil)
	req = asRole(req, "stu_1", rbac.RoleStudent)
	rec := httptest.NewRecorder()
	ListSubmissionsHandler(store)(rec, req)

	var got []submission.Submission
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].StudentID != "stu_1" {
		t.Errorf("student listing: %+v", got)
	}

	// admin sees the requested student
	req = httptest.NewRequest(http.MethodGet, "/api/submissions?student_id=stu_2", nil)
	req = asRole(req, "admin-1", rbac.RoleAdmin)
	rec = httptest.NewRecorder()
	ListSubmissionsHandler(store)(rec, req)
	got = nil
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 1 || got[0].StudentID != "stu_2" {
		t.Errorf("admin listing: %+v", got)
	}
}

func TestAdminTestResultsSearchAndFilter(t *testing.T) {
	students := student.NewInMemoryStore()
	results := testresult.NewInMemoryStore()
	ctx := context.Background()
	_ = students.Upsert(ctx, student.Student{ID: "stu_1", FirstName: "Asha", LastName: "Patel"})
	_ = students.Upsert(ctx, student.Student{ID: "stu_2", FirstName: "Rahul", LastName: "Verma"})
	_, _ = results.Add(ctx, testresult.TestResult{StudentID: "stu_1", Score: 85, CompletedAt: 2})
	_, _ = results.Add(ctx, testresult.TestResult{StudentID: "stu_2", Score: 62, CompletedAt: 1})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/test-results?filter=high", nil)
	req = asRole(req, "admin-1", rbac.RoleAdmin)
	rec := httptest.NewRecorder()
	AdminTestResultsHandler(results, students)(rec, req)

	var rows []dashboard.ResultRow
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].StudentID != "stu_1" {
		t.Errorf("high filter rows: %+v", rows)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/test-results?search=verma&filter=scholarship", nil)
	req = asRole(req, "admin-1", rbac.RoleAdmin)
	rec = httptest.NewRecorder()
	AdminTestResultsHandler(results, students)(rec, req)
	rows = nil
	_ = json.Unmarshal(rec.Body.Bytes(), &rows)
	if len(rows) != 1 || rows[0].StudentName != "Rahul Verma" {
		t.Errorf("combined search+filter rows: %+v", rows)
	}
}

func TestCreateTestResultRejectsOutOfRange(t *testing.T) {
	store := testresult.NewInMemoryStore()
	body := strings.NewReader(`{"score": 120, "time_spent_sec": 300}`)
	req := httptest.NewRequest(http.MethodPost, "/api/test-results", body)
	req = asRole(req, "stu_1", rbac.RoleStudent)
	rec := httptest.NewRecorder()
	CreateTestResultHandler(store)(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if list, _ := store.ListByStudent(context.Background(), "stu_1"); len(list) != 0 {
		t.Error("out-of-range score must not be stored")
	}
}

func TestStudentScholarshipHandler(t *testing.T) {
	results := testresult.NewInMemoryStore()
	_, _ = results.Add(context.Background(), testresult.TestResult{StudentID: "stu_1", Score: 95})

	req := httptest.NewRequest(http.MethodGet, "/api/students/stu_1/scholarship", nil)
	req = asRole(req, "stu_1", rbac.RoleStudent)
	req = withURLParam(req, "studentID", "stu_1")
	rec := httptest.NewRecorder()
	StudentScholarshipHandler(results)(rec, req)

	var view dashboard.ScholarshipView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.Tier == nil || view.Tier.Discount != 15 {
		t.Errorf("view = %+v, want 15%% tier", view)
	}

	// another student is forbidden
	req = httptest.NewRequest(http.MethodGet, "/api/students/stu_1/scholarship", nil)
	req = asRole(req, "stu_2", rbac.RoleStudent)
	req = withURLParam(req, "studentID", "stu_1")
	rec = httptest.NewRecorder()
	StudentScholarshipHandler(results)(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("cross-student status = %d, want 403", rec.Code)
	}
}
