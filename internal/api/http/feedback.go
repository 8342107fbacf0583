package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Untraddgit/untraddcareer-sub001/internal/audit"
	"github.com/Untraddgit/untraddcareer-sub001/internal/feedback"
	"github.com/Untraddgit/untraddcareer-sub001/internal/rbac"
)

// GET /api/feedback/{studentID}
func GetFeedbackHandler(store feedback.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "studentID")
		if !canViewStudent(r, id) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		f, err := store.Get(r.Context(), id)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, f)
	}
}

type putFeedbackReq struct {
	CommunicationRating  int    `json:"communication_rating" validate:"min=1,max=5"`
	TechnicalRating      int    `json:"technical_rating" validate:"min=1,max=5"`
	ProblemSolvingRating int    `json:"problem_solving_rating" validate:"min=1,max=5"`
	Strengths            string `json:"strengths"`
	Improvements         string `json:"improvements"`
	RecommendedPath      string `json:"recommended_path"`
	Notes                string `json:"notes"`
}

// PUT /api/admin/feedback/{studentID} replaces the record wholesale.
func PutFeedbackHandler(store feedback.Store, auditLog *audit.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "studentID")
		var req putFeedbackReq
		if !decodeJSON(w, r, &req) {
			return
		}
		f := feedback.StudentFeedback{
			StudentID:            id,
			CommunicationRating:  req.CommunicationRating,
			TechnicalRating:      req.TechnicalRating,
			ProblemSolvingRating: req.ProblemSolvingRating,
			Strengths:            req.Strengths,
			Improvements:         req.Improvements,
			RecommendedPath:      req.RecommendedPath,
			Notes:                req.Notes,
			UpdatedBy:            rbac.SubjectFromContext(r.Context()),
		}
		if err := store.Put(r.Context(), f); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		auditLog.Record(r.Context(), f.UpdatedBy, audit.TypeFeedbackSaved, id, nil)
		writeJSON(w, http.StatusOK, f)
	}
}
