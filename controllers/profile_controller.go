package controllers

import (
	"encoding/json"
	"net/http"

	"travelbuddy_server/models"
	"travelbuddy_server/services"

	"github.com/gorilla/mux"
)

// ProfileController handles HTTP requests for traveler profiles
type ProfileController struct {
	ProfileService *services.ProfileService
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// CreateProfile adds a new traveler profile
func (pc *ProfileController) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	created, err := pc.ProfileService.AddProfile(r.Context(), profile)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetProfile fetches a traveler profile by user id
func (pc *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := pc.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile merges the posted fields into an existing profile
func (pc *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var updates models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	updated, err := pc.ProfileService.UpdateProfile(r.Context(), userID, updates)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProfile removes a traveler profile
func (pc *ProfileController) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := pc.ProfileService.DeleteProfile(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Profile deleted successfully", "userId": userID})
}

// ImportProfiles bulk-loads traveler profiles
func (pc *ProfileController) ImportProfiles(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Profiles []models.UserProfile `json:"profiles"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	imported, err := pc.ProfileService.ImportProfiles(r.Context(), request.Profiles)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Profiles imported successfully",
		"imported": imported,
	})
}
