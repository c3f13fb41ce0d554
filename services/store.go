package services

import (
	"context"

	"travelbuddy_server/models"
)

// The engine is agnostic to the storage technology backing it. These
// interfaces are implemented by the DynamoDB stores and by MemoryStore;
// lookups return (nil, nil) when the requested item does not exist.

// ProfileStore reads and writes traveler profiles.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	PutProfile(ctx context.Context, profile models.UserProfile) error
	PutProfiles(ctx context.Context, profiles []models.UserProfile) error
	DeleteProfile(ctx context.Context, userID string) error
	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
}

// SwipeStore is the swipe ledger, one row per ordered (actor, target) pair.
type SwipeStore interface {
	GetSwipe(ctx context.Context, actorID, targetID string) (*models.Swipe, error)
	// CreateSwipe inserts a new ledger row. Returns false without writing
	// when a row for the ordered pair already exists.
	CreateSwipe(ctx context.Context, swipe models.Swipe) (bool, error)
	// UpdateSwipe overwrites the liked decision of an existing row.
	UpdateSwipe(ctx context.Context, actorID, targetID string, liked bool, updatedAt string) error
	ListSwipesByActor(ctx context.Context, actorID string) ([]models.Swipe, error)
}

// MatchStore holds confirmed matches keyed by canonical pair.
type MatchStore interface {
	GetMatch(ctx context.Context, pairID string) (*models.Match, error)
	// CreateMatch inserts the match guarded by uniqueness on the pair key.
	// Returns false without writing when the pair is already matched, so
	// concurrent mutual likes settle on exactly one row.
	CreateMatch(ctx context.Context, match models.Match) (bool, error)
	ListMatchesByUser(ctx context.Context, userID string) ([]models.Match, error)
}
