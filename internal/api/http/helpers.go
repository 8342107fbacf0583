package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/Untraddgit/untraddcareer-sub001/internal/course"
	"github.com/Untraddgit/untraddcareer-sub001/internal/feedback"
	"github.com/Untraddgit/untraddcareer-sub001/internal/rbac"
	"github.com/Untraddgit/untraddcareer-sub001/internal/session"
	"github.com/Untraddgit/untraddcareer-sub001/internal/student"
	"github.com/Untraddgit/untraddcareer-sub001/internal/submission"
	"github.com/Untraddgit/untraddcareer-sub001/internal/testresult"
)

// request DTOs are validated with struct tags at the boundary
var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(v); err != nil {
		http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// storeError maps domain errors onto HTTP statuses; external/db failures
// become 500 without leaking local state changes (stores apply writes only
// on success).
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, course.ErrNotFound),
		errors.Is(err, student.ErrNotFound),
		errors.Is(err, submission.ErrNotFound),
		errors.Is(err, testresult.ErrNotFound),
		errors.Is(err, session.ErrNotFound),
		errors.Is(err, feedback.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, submission.ErrAlreadyGraded):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// canViewStudent allows admins, or the student reading their own data.
func canViewStudent(r *http.Request, studentID string) bool {
	role := rbac.RoleFromContext(r.Context())
	if role == rbac.RoleAdmin {
		return true
	}
	return rbac.SubjectFromContext(r.Context()) == studentID
}
