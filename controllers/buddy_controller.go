package controllers

import (
	"net/http"
	"strconv"

	"travelbuddy_server/services"
)

// BuddyController handles HTTP requests for the swipe deck
type BuddyController struct {
	CandidateService *services.CandidateService
}

// NewBuddyController creates a new BuddyController instance
func NewBuddyController(candidateService *services.CandidateService) *BuddyController {
	return &BuddyController{CandidateService: candidateService}
}

type buddyResponse struct {
	UserID                string   `json:"user_id"`
	UserEmail             string   `json:"user_email,omitempty"`
	UserBio               string   `json:"user_bio,omitempty"`
	UserLocation          string   `json:"user_location,omitempty"`
	UserAge               int      `json:"user_age,omitempty"`
	UserPhoto             string   `json:"user_photo,omitempty"`
	TravelStyle           string   `json:"travel_style,omitempty"`
	Interests             []string `json:"interests"`
	PreferredDestinations []string `json:"preferred_destinations"`
	CompatibilityScore    float64  `json:"compatibility_score"`
}

// GetPotentialTravelBuddies returns not-yet-swiped profiles for the
// requesting user, scored and ordered by compatibility
func (bc *BuddyController) GetPotentialTravelBuddies(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()
	userID := queryParams.Get("userId")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userId is required"})
		return
	}

	limit := services.DefaultCandidateLimit
	if rawLimit := queryParams.Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	candidates, err := bc.CandidateService.GetCandidates(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	buddies := make([]buddyResponse, 0, len(candidates))
	for _, candidate := range candidates {
		profile := candidate.Profile
		interests := profile.Interests
		if interests == nil {
			interests = []string{}
		}
		destinations := profile.PreferredDestinations
		if destinations == nil {
			destinations = []string{}
		}
		buddies = append(buddies, buddyResponse{
			UserID:                profile.UserID,
			UserEmail:             profile.EmailID,
			UserBio:               profile.Bio,
			UserLocation:          profile.Location,
			UserAge:               profile.Age,
			UserPhoto:             profile.PhotoURL,
			TravelStyle:           profile.TravelStyle,
			Interests:             interests,
			PreferredDestinations: destinations,
			CompatibilityScore:    candidate.CompatibilityScore,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"buddies": buddies,
	})
}
