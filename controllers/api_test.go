package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"travelbuddy_server/models"
	"travelbuddy_server/routes"
	"travelbuddy_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mux.Router, *services.MemoryStore) {
	t.Helper()

	store := services.NewMemoryStore()

	profileService := &services.ProfileService{Profiles: store}
	candidateService := &services.CandidateService{Profiles: store, Swipes: store}
	matchService := &services.MatchService{Profiles: store, Swipes: store, Matches: store}
	swipeService := &services.SwipeService{
		Profiles: store,
		Swipes:   store,
		Matches:  store,
		Detector: matchService,
	}

	r := mux.NewRouter()
	routes.RegisterProfileRoutes(r, profileService)
	routes.RegisterBuddyRoutes(r, candidateService)
	routes.RegisterSwipeRoutes(r, swipeService)
	routes.RegisterMatchRoutes(r, matchService)
	return r, store
}

func seedProfile(t *testing.T, store *services.MemoryStore, userID string, interests ...string) {
	t.Helper()

	require.NoError(t, store.PutProfile(context.Background(), models.UserProfile{
		UserID:    userID,
		EmailID:   userID + "@example.com",
		Interests: interests,
	}))
}

func postSwipe(t *testing.T, r *mux.Router, userID, targetID string, isLike bool) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"userId":       userID,
		"targetUserId": targetID,
		"isLike":       isLike,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/swipes", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRecordSwipeEndpoint(t *testing.T) {
	r, store := newTestRouter(t)
	seedProfile(t, store, "alice")
	seedProfile(t, store, "bob")

	rec := postSwipe(t, r, "alice", "bob", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		IsNewSwipe bool `json:"is_new_swipe"`
		IsMatch    bool `json:"is_match"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.IsNewSwipe)
	assert.False(t, response.IsMatch)

	// The reciprocal like completes the match.
	rec = postSwipe(t, r, "bob", "alice", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.IsMatch)
}

func TestRecordSwipeEndpoint_ErrorMapping(t *testing.T) {
	r, store := newTestRouter(t)
	seedProfile(t, store, "alice")
	seedProfile(t, store, "bob")

	// Self-swipe is a bad request.
	rec := postSwipe(t, r, "alice", "alice", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown profile is a 404.
	rec = postSwipe(t, r, "alice", "ghost", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Flipping a matched swipe is a conflict.
	require.Equal(t, http.StatusOK, postSwipe(t, r, "alice", "bob", true).Code)
	require.Equal(t, http.StatusOK, postSwipe(t, r, "bob", "alice", true).Code)
	rec = postSwipe(t, r, "alice", "bob", false)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Malformed body is a bad request.
	req := httptest.NewRequest(http.MethodPost, "/api/swipes", bytes.NewBufferString("{not json"))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPotentialTravelBuddiesEndpoint(t *testing.T) {
	r, store := newTestRouter(t)
	seedProfile(t, store, "alice", "hiking", "food")
	seedProfile(t, store, "bob", "food", "museums")

	req := httptest.NewRequest(http.MethodGet, "/api/buddies?userId=alice&limit=10", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Buddies []struct {
			UserID             string   `json:"user_id"`
			UserEmail          string   `json:"user_email"`
			Interests          []string `json:"interests"`
			CompatibilityScore float64  `json:"compatibility_score"`
		} `json:"buddies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Buddies, 1)
	assert.Equal(t, "bob", response.Buddies[0].UserID)
	assert.Equal(t, "bob@example.com", response.Buddies[0].UserEmail)
	assert.InDelta(t, 1.0/3.0, response.Buddies[0].CompatibilityScore, 1e-9)
}

func TestGetPotentialTravelBuddiesEndpoint_Validation(t *testing.T) {
	r, store := newTestRouter(t)
	seedProfile(t, store, "alice")

	req := httptest.NewRequest(http.MethodGet, "/api/buddies", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/buddies?userId=alice&limit=abc", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/buddies?userId=alice&limit=-1", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserMatchesEndpoint(t *testing.T) {
	r, store := newTestRouter(t)
	seedProfile(t, store, "alice")
	seedProfile(t, store, "bob")

	require.Equal(t, http.StatusOK, postSwipe(t, r, "alice", "bob", true).Code)
	require.Equal(t, http.StatusOK, postSwipe(t, r, "bob", "alice", true).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/matches?userId=alice", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Matches []struct {
			MatchID        string `json:"match_id"`
			MatchedUserID  string `json:"matched_user_id"`
			DaysSinceMatch int    `json:"days_since_match"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Matches, 1)
	assert.Equal(t, "bob", response.Matches[0].MatchedUserID)
	assert.Equal(t, 0, response.Matches[0].DaysSinceMatch)
	assert.NotEmpty(t, response.Matches[0].MatchID)
}

func TestProfileEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	body, err := json.Marshal(models.UserProfile{
		UserID:      "alice",
		TravelStyle: models.TravelStyleRelaxed,
		Interests:   []string{"food", "food", "hiking"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/profiles", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/profiles/alice", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, []string{"food", "hiking"}, profile.Interests)

	req = httptest.NewRequest(http.MethodGet, "/api/profiles/ghost", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/profiles/alice", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/profiles/alice", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImportProfilesEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	var profiles []models.UserProfile
	for i := 0; i < 3; i++ {
		profiles = append(profiles, models.UserProfile{UserID: fmt.Sprintf("traveler-%d", i)})
	}
	body, err := json.Marshal(map[string]interface{}{"profiles": profiles})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/profiles/import", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Imported int `json:"imported"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 3, response.Imported)
}
