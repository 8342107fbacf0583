package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Untraddgit/untraddcareer-sub001/internal/audit"
	"github.com/Untraddgit/untraddcareer-sub001/internal/rbac"
	"github.com/Untraddgit/untraddcareer-sub001/internal/session"
)

// GET /api/upcoming-sessions. Students see active sessions only; admins may
// pass all=1.
func ListSessionsHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := true
		if rbac.RoleFromContext(r.Context()) == rbac.RoleAdmin && r.URL.Query().Get("all") == "1" {
			activeOnly = false
		}
		list, err := store.List(r.Context(), activeOnly)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// POST /api/admin/upcoming-sessions
func CreateSessionHandler(store session.Store, auditLog *audit.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var us session.UpcomingSession
		if !decodeJSON(w, r, &us) {
			return
		}
		if err := us.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		created, err := store.Create(r.Context(), us)
		if err != nil {
			storeError(w, err)
			return
		}
		auditLog.Record(r.Context(), rbac.SubjectFromContext(r.Context()),
			audit.TypeSessionCreated, created.ID, created)
		writeJSON(w, http.StatusCreated, created)
	}
}

// DELETE /api/admin/upcoming-sessions/{sessionID}
func DeleteSessionHandler(store session.Store, auditLog *audit.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "sessionID"))
		if id == "" {
			http.Error(w, "sessionID required", http.StatusBadRequest)
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			storeError(w, err)
			return
		}
		auditLog.Record(r.Context(), rbac.SubjectFromContext(r.Context()),
			audit.TypeSessionDeleted, id, nil)
		writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
	}
}
