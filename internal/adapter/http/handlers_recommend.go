package adapthttp

import (
	"net/http"

	"nutriplan/internal/app"
	"nutriplan/internal/domain"
)

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var body app.CalculateInput
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var (
		rec domain.Recommendation
		err error
	)
	if user, ok := userFromContext(r.Context()); ok {
		rec, err = s.recs.CalculateFor(r.Context(), user.ID, body)
	} else {
		rec, err = s.recs.Calculate(body)
	}
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleRecommendationsRecent(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	limit := intQuery(r, "limit", app.DefaultRecentLimit)
	items, err := s.recs.ListRecent(r.Context(), user.ID, limit)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleRecommendationsUndoLast(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	deleted, err := s.recs.UndoLast(r.Context(), user.ID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted})
}
