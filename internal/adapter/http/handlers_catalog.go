package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"

	"nutriplan/internal/domain"
)

func (s *Server) handleDiets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Plans())
}

// handleDiet serves one plan. Unknown goals get the maintenance plan, the
// same fallback the calculator applies.
func (s *Server) handleDiet(w http.ResponseWriter, r *http.Request) {
	goal := domain.Goal(mux.Vars(r)["goal"])
	writeJSON(w, http.StatusOK, s.catalog.Plan(goal))
}

func (s *Server) handleFoods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Foods())
}

func (s *Server) handleFoodCategory(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.FoodsByCategory(mux.Vars(r)["category"])
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
