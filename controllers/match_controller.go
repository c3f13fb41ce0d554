package controllers

import (
	"net/http"

	"travelbuddy_server/services"
)

// MatchController handles HTTP requests for confirmed matches
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// GetUserMatches returns a user's confirmed matches, most recent first.
// An optional afterMatchId cursor resumes listing after that entry.
func (mc *MatchController) GetUserMatches(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()
	userID := queryParams.Get("userId")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userId is required"})
		return
	}

	matches, err := mc.MatchService.GetMatches(r.Context(), userID, queryParams.Get("afterMatchId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
	})
}
