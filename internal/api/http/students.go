package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Untraddgit/untraddcareer-sub001/internal/course"
	"github.com/Untraddgit/untraddcareer-sub001/internal/dashboard"
	"github.com/Untraddgit/untraddcareer-sub001/internal/progress"
	"github.com/Untraddgit/untraddcareer-sub001/internal/student"
	"github.com/Untraddgit/untraddcareer-sub001/internal/submission"
	"github.com/Untraddgit/untraddcareer-sub001/internal/testresult"
)

// GET /api/admin/students
func ListStudentsHandler(store student.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context())
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /api/students/{studentID}
func GetStudentHandler(store student.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "studentID")
		if !canViewStudent(r, id) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		st, err := store.Get(r.Context(), id)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

// GET /api/students/{studentID}/progress?course=
// Progress for one course, or for every active course when none is named.
func StudentProgressHandler(courses course.Store, subs submission.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "studentID")
		if !canViewStudent(r, id) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		courseName := strings.TrimSpace(r.URL.Query().Get("course"))

		var list []course.Course
		if courseName != "" {
			c, err := courses.Get(r.Context(), courseName)
			if err != nil {
				storeError(w, err)
				return
			}
			list = []course.Course{c}
		} else {
			var err error
			list, err = courses.List(r.Context(), course.ListOpts{ActiveOnly: true})
			if err != nil {
				storeError(w, err)
				return
			}
		}

		out := make([]progress.Summary, 0, len(list))
		for _, c := range list {
			studentSubs, err := subs.List(r.Context(), submission.ListOpts{
				StudentID:  id,
				CourseName: c.Name,
			})
			if err != nil {
				storeError(w, err)
				return
			}
			out = append(out, progress.ForCourse(c, studentSubs))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /api/students/{studentID}/scholarship resolves the latest result into a
// tier plus the retest affordance.
func StudentScholarshipHandler(results testresult.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "studentID")
		if !canViewStudent(r, id) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		var latest *testresult.TestResult
		res, err := results.Latest(r.Context(), id)
		switch {
		case err == nil:
			latest = &res
		case errors.Is(err, testresult.ErrNotFound):
			// no test yet: serve the empty view
		default:
			storeError(w, err)
			return
		}
		view, err := dashboard.BuildScholarshipView(latest)
		if err != nil {
			// out-of-range stored score means broken upstream data
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}
