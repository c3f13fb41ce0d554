package services

import (
	"context"
	"sync"

	"travelbuddy_server/models"
)

// MemoryStore is an in-process implementation of all three stores. It
// backs STORAGE=memory local runs and the test suite. The mutex-guarded
// create operations give the same lose-once semantics as the DynamoDB
// conditional writes.
type MemoryStore struct {
	mu       sync.Mutex
	profiles map[string]models.UserProfile
	swipes   map[string]models.Swipe // keyed actorId + "#" + targetId
	matches  map[string]models.Match // keyed pairId
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]models.UserProfile),
		swipes:   make(map[string]models.Swipe),
		matches:  make(map[string]models.Match),
	}
}

func (m *MemoryStore) GetProfile(_ context.Context, userID string) (*models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	profile, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (m *MemoryStore) PutProfile(_ context.Context, profile models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.profiles[profile.UserID] = profile
	return nil
}

func (m *MemoryStore) PutProfiles(_ context.Context, profiles []models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, profile := range profiles {
		m.profiles[profile.UserID] = profile
	}
	return nil
}

func (m *MemoryStore) DeleteProfile(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.profiles, userID)
	return nil
}

func (m *MemoryStore) ListProfiles(_ context.Context) ([]models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	profiles := make([]models.UserProfile, 0, len(m.profiles))
	for _, profile := range m.profiles {
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (m *MemoryStore) GetSwipe(_ context.Context, actorID, targetID string) (*models.Swipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	swipe, ok := m.swipes[actorID+"#"+targetID]
	if !ok {
		return nil, nil
	}
	return &swipe, nil
}

func (m *MemoryStore) CreateSwipe(_ context.Context, swipe models.Swipe) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := swipe.ActorID + "#" + swipe.TargetID
	if _, exists := m.swipes[key]; exists {
		return false, nil
	}
	m.swipes[key] = swipe
	return true, nil
}

func (m *MemoryStore) UpdateSwipe(_ context.Context, actorID, targetID string, liked bool, updatedAt string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := actorID + "#" + targetID
	swipe := m.swipes[key]
	swipe.Liked = liked
	swipe.UpdatedAt = updatedAt
	m.swipes[key] = swipe
	return nil
}

func (m *MemoryStore) ListSwipesByActor(_ context.Context, actorID string) ([]models.Swipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var swipes []models.Swipe
	for _, swipe := range m.swipes {
		if swipe.ActorID == actorID {
			swipes = append(swipes, swipe)
		}
	}
	return swipes, nil
}

func (m *MemoryStore) GetMatch(_ context.Context, pairID string) (*models.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	match, ok := m.matches[pairID]
	if !ok {
		return nil, nil
	}
	return &match, nil
}

func (m *MemoryStore) CreateMatch(_ context.Context, match models.Match) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.matches[match.PairID]; exists {
		return false, nil
	}
	m.matches[match.PairID] = match
	return true, nil
}

func (m *MemoryStore) ListMatchesByUser(_ context.Context, userID string) ([]models.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matches []models.Match
	for _, match := range m.matches {
		if match.UserAID == userID || match.UserBID == userID {
			matches = append(matches, match)
		}
	}
	return matches, nil
}
