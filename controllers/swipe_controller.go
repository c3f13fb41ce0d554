package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"travelbuddy_server/services"
)

// SwipeController handles HTTP requests for recording swipe decisions
type SwipeController struct {
	SwipeService *services.SwipeService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(swipeService *services.SwipeService) *SwipeController {
	return &SwipeController{SwipeService: swipeService}
}

// RecordSwipe records one like/pass decision and reports whether it
// completed a mutual match
func (sc *SwipeController) RecordSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID       string `json:"userId"`
		TargetUserID string `json:"targetUserId"`
		IsLike       bool   `json:"isLike"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if request.IsLike {
		log.Printf("💖 %s liked %s", request.UserID, request.TargetUserID)
	} else {
		log.Printf("💔 %s passed on %s", request.UserID, request.TargetUserID)
	}

	result, err := sc.SwipeService.RecordSwipe(r.Context(), request.UserID, request.TargetUserID, request.IsLike)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"is_new_swipe": result.IsNewSwipe,
		"is_match":     result.IsMatch,
	})
}
