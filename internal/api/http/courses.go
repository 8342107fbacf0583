package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Untraddgit/untraddcareer-sub001/internal/audit"
	"github.com/Untraddgit/untraddcareer-sub001/internal/course"
	"github.com/Untraddgit/untraddcareer-sub001/internal/rbac"
)

// GET /api/predefined-courses?active=1&q=&limit=&offset=
func ListCoursesHandler(store course.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := course.ListOpts{
			ActiveOnly: r.URL.Query().Get("active") == "1",
			Q:          strings.TrimSpace(r.URL.Query().Get("q")),
			Limit:      parseIntDefault(r.URL.Query().Get("limit"), 50),
			Offset:     parseIntDefault(r.URL.Query().Get("offset"), 0),
		}
		// students only ever see the active catalog
		if rbac.RoleFromContext(r.Context()) != rbac.RoleAdmin {
			opts.ActiveOnly = true
		}
		list, err := store.List(r.Context(), opts)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /api/predefined-courses/{courseName}
func GetCourseHandler(store course.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "courseName") // percent-decoded by chi
		c, err := store.Get(r.Context(), name)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// POST /api/predefined-courses/admin/predefined-courses
// Body is a full course; Put replaces the curriculum wholesale.
func PutCourseHandler(store course.Store, auditLog *audit.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c course.Course
		if !decodeJSON(w, r, &c) {
			return
		}
		if err := c.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.Put(r.Context(), c); err != nil {
			storeError(w, err)
			return
		}
		auditLog.Record(r.Context(), rbac.SubjectFromContext(r.Context()),
			audit.TypeCourseSaved, c.Name, map[string]any{"weeks": len(c.Weeks)})
		writeJSON(w, http.StatusOK, c)
	}
}

// DELETE /api/predefined-courses/admin/predefined-courses/{courseName}
func DeleteCourseHandler(store course.Store, auditLog *audit.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(chi.URLParam(r, "courseName"))
		if name == "" {
			http.Error(w, "courseName required", http.StatusBadRequest)
			return
		}
		if err := store.Delete(r.Context(), name); err != nil {
			storeError(w, err)
			return
		}
		auditLog.Record(r.Context(), rbac.SubjectFromContext(r.Context()),
			audit.TypeCourseDeleted, name, nil)
		writeJSON(w, http.StatusOK, map[string]string{"deleted": name})
	}
}
