package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"travelbuddy_server/models"

	"github.com/stretchr/testify/require"
)

// engineFixtures wires the full engine onto a single MemoryStore.
type engineFixtures struct {
	store      *MemoryStore
	profiles   *ProfileService
	candidates *CandidateService
	swipes     *SwipeService
	matches    *MatchService
	notifier   *recordingNotifier
}

// recordingNotifier captures match notifications for assertions.
type recordingNotifier struct {
	mu      sync.Mutex
	matches []models.Match
}

func (n *recordingNotifier) NotifyMatch(match models.Match) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.matches = append(n.matches, match)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.matches)
}

func newEngineFixtures() *engineFixtures {
	store := NewMemoryStore()
	notifier := &recordingNotifier{}

	matchService := &MatchService{
		Profiles: store,
		Swipes:   store,
		Matches:  store,
		Notifier: notifier,
	}

	return &engineFixtures{
		store:      store,
		profiles:   &ProfileService{Profiles: store},
		candidates: &CandidateService{Profiles: store, Swipes: store},
		swipes: &SwipeService{
			Profiles: store,
			Swipes:   store,
			Matches:  store,
			Detector: matchService,
		},
		matches:  matchService,
		notifier: notifier,
	}
}

func (fx *engineFixtures) seedProfile(t *testing.T, userID string, interests ...string) {
	t.Helper()

	_, err := fx.profiles.AddProfile(context.Background(), models.UserProfile{
		UserID:      userID,
		EmailID:     userID + "@example.com",
		Location:    "Lisbon",
		Age:         30,
		TravelStyle: models.TravelStyleAdventure,
		Interests:   interests,
	})
	require.NoError(t, err)
}

func (fx *engineFixtures) seedSwipe(t *testing.T, actorID, targetID string, liked bool) {
	t.Helper()

	now := time.Now().UTC().Format(time.RFC3339)
	created, err := fx.store.CreateSwipe(context.Background(), models.Swipe{
		ActorID:   actorID,
		TargetID:  targetID,
		Liked:     liked,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	require.True(t, created)
}
