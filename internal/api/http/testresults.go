package http

import (
	"net/http"
	"strings"

	"github.com/Untraddgit/untraddcareer-sub001/internal/dashboard"
	"github.com/Untraddgit/untraddcareer-sub001/internal/rbac"
	"github.com/Untraddgit/untraddcareer-sub001/internal/scholarship"
	"github.com/Untraddgit/untraddcareer-sub001/internal/student"
	"github.com/Untraddgit/untraddcareer-sub001/internal/testresult"
)

type createResultReq struct {
	Score        float64 `json:"score" validate:"min=0,max=100"`
	TimeSpentSec int     `json:"time_spent_sec" validate:"min=0"`
}

// POST /api/test-results records a scholarship test outcome for the caller.
func CreateTestResultHandler(store testresult.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createResultReq
		if !decodeJSON(w, r, &req) {
			return
		}
		// resolve eagerly so an out-of-range score is rejected, not stored
		if _, err := scholarship.ResolveTier(req.Score); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		created, err := store.Add(r.Context(), testresult.TestResult{
			StudentID:    rbac.SubjectFromContext(r.Context()),
			Score:        req.Score,
			TimeSpentSec: req.TimeSpentSec,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// GET /api/test-results?student_id= lists a student's result history (own only
// unless admin).
func ListTestResultsHandler(store testresult.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := strings.TrimSpace(r.URL.Query().Get("student_id"))
		if rbac.RoleFromContext(r.Context()) != rbac.RoleAdmin {
			studentID = rbac.SubjectFromContext(r.Context())
		}
		if studentID == "" {
			http.Error(w, "student_id required", http.StatusBadRequest)
			return
		}
		list, err := store.ListByStudent(r.Context(), studentID)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /api/admin/test-results?search=&filter=all|high|scholarship
// The admin scholarship tab: results joined with students, searched and
// filtered in one pass.
func AdminTestResultsHandler(results testresult.Store, students student.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := results.List(r.Context())
		if err != nil {
			storeError(w, err)
			return
		}
		sts, err := students.List(r.Context())
		if err != nil {
			storeError(w, err)
			return
		}
		rows := dashboard.BuildResultRows(sts, all)
		rows = dashboard.SearchRows(rows, r.URL.Query().Get("search"))
		rows = dashboard.FilterRows(rows, dashboard.Filter(r.URL.Query().Get("filter")))
		writeJSON(w, http.StatusOK, rows)
	}
}
