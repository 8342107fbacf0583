package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Untraddgit/untraddcareer-sub001/internal/audit"
	"github.com/Untraddgit/untraddcareer-sub001/internal/dashboard"
	"github.com/Untraddgit/untraddcareer-sub001/internal/rbac"
	"github.com/Untraddgit/untraddcareer-sub001/internal/submission"
)

// GET /api/submissions?student_id=&course=&status=&grouped=1
// Students are forced onto their own submissions; admins may filter freely
// and request the per-student grouping used by the grading table.
func ListSubmissionsHandler(store submission.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := rbac.RoleFromContext(r.Context())
		sub := rbac.SubjectFromContext(r.Context())

		opts := submission.ListOpts{
			StudentID:  strings.TrimSpace(r.URL.Query().Get("student_id")),
			CourseName: strings.TrimSpace(r.URL.Query().Get("course")),
			Status:     strings.TrimSpace(r.URL.Query().Get("status")),
			Limit:      parseIntDefault(r.URL.Query().Get("limit"), 100),
			Offset:     parseIntDefault(r.URL.Query().Get("offset"), 0),
		}
		if role != rbac.RoleAdmin {
			opts.StudentID = sub
		}
		list, err := store.List(r.Context(), opts)
		if err != nil {
			storeError(w, err)
			return
		}
		if role == rbac.RoleAdmin && r.URL.Query().Get("grouped") == "1" {
			writeJSON(w, http.StatusOK, dashboard.GroupSubmissions(list))
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

type createSubmissionReq struct {
	CourseName string `json:"course_name" validate:"required"`
	Week       int    `json:"week" validate:"min=1"`
	Module     string `json:"module" validate:"required"`
	Link       string `json:"link" validate:"required,url"`
}

// POST /api/submissions creates a pending submission for the calling student.
func CreateSubmissionHandler(store submission.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSubmissionReq
		if !decodeJSON(w, r, &req) {
			return
		}
		created, err := store.Create(r.Context(), submission.Submission{
			StudentID:  rbac.SubjectFromContext(r.Context()),
			CourseName: req.CourseName,
			Week:       req.Week,
			Module:     req.Module,
			Link:       req.Link,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// PATCH /api/admin/submissions/{submissionID}/grade
func GradeSubmissionHandler(store submission.Store, auditLog *audit.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "submissionID"))
		if id == "" {
			http.Error(w, "submissionID required", http.StatusBadRequest)
			return
		}
		var in submission.GradeInput
		if !decodeJSON(w, r, &in) {
			return
		}
		if err := in.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		grader := rbac.SubjectFromContext(r.Context())
		graded, err := store.Grade(r.Context(), id, in, grader)
		if err != nil {
			storeError(w, err)
			return
		}
		auditLog.Record(r.Context(), grader, audit.TypeSubmissionGraded, id, in)
		writeJSON(w, http.StatusOK, graded)
	}
}
