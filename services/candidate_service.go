package services

import (
	"context"
	"fmt"
	"sort"

	"travelbuddy_server/models"
)

const (
	// DefaultCandidateLimit is used when the caller does not ask for a
	// specific deck size.
	DefaultCandidateLimit = 20
	// MaxCandidateLimit caps the deck size to bound response payloads.
	MaxCandidateLimit = 50
)

// Candidate is a profile surfaced in the swipe deck together with its
// compatibility score.
type Candidate struct {
	Profile            models.UserProfile
	CompatibilityScore float64
}

type CandidateService struct {
	Profiles ProfileStore
	Swipes   SwipeStore
}

// GetCandidates returns profiles the requester has not swiped on yet,
// ordered by descending compatibility. Swipe state is re-read on every
// call so a swiped-on profile never reappears. An empty deck is a normal
// result, not an error.
func (cs *CandidateService) GetCandidates(ctx context.Context, requesterID string, limit int) ([]Candidate, error) {
	if requesterID == "" {
		return nil, fmt.Errorf("userId is required: %w", ErrInvalidArgument)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive: %w", ErrInvalidArgument)
	}
	if limit > MaxCandidateLimit {
		limit = MaxCandidateLimit
	}

	var requester *models.UserProfile
	err := withRetries(ctx, "GetCandidates.profile", func() error {
		var opErr error
		requester, opErr = cs.Profiles.GetProfile(ctx, requesterID)
		return opErr
	})
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, fmt.Errorf("profile '%s': %w", requesterID, ErrNotFound)
	}

	var swipes []models.Swipe
	err = withRetries(ctx, "GetCandidates.swipes", func() error {
		var opErr error
		swipes, opErr = cs.Swipes.ListSwipesByActor(ctx, requesterID)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	// A user is never shown themselves or anyone they already swiped on,
	// liked or not.
	excluded := map[string]struct{}{requesterID: {}}
	for _, swipe := range swipes {
		excluded[swipe.TargetID] = struct{}{}
	}

	var profiles []models.UserProfile
	err = withRetries(ctx, "GetCandidates.scan", func() error {
		var opErr error
		profiles, opErr = cs.Profiles.ListProfiles(ctx)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(profiles))
	for _, profile := range profiles {
		if _, skip := excluded[profile.UserID]; skip {
			continue
		}
		candidates = append(candidates, Candidate{
			Profile:            profile,
			CompatibilityScore: CompatibilityScore(*requester, profile),
		})
	}

	// Score descending, then most recently active, then userId, so the
	// ordering is fully deterministic across calls.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].CompatibilityScore != candidates[j].CompatibilityScore {
			return candidates[i].CompatibilityScore > candidates[j].CompatibilityScore
		}
		if candidates[i].Profile.LastActiveAt != candidates[j].Profile.LastActiveAt {
			return candidates[i].Profile.LastActiveAt > candidates[j].Profile.LastActiveAt
		}
		return candidates[i].Profile.UserID < candidates[j].Profile.UserID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// CompatibilityScore measures how well two travelers fit, in [0,1].
// It is the Jaccard similarity of their interest sets, averaged with the
// Jaccard similarity of their preferred destinations when both sides list
// any; otherwise the interest term stands alone.
func CompatibilityScore(a, b models.UserProfile) float64 {
	score := jaccard(a.Interests, b.Interests)
	if len(a.PreferredDestinations) > 0 && len(b.PreferredDestinations) > 0 {
		score = (score + jaccard(a.PreferredDestinations, b.PreferredDestinations)) / 2
	}
	return score
}

// jaccard computes |A ∩ B| / |A ∪ B| over the two tag lists, treating
// them as sets.
func jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, tag := range a {
		setA[tag] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, tag := range b {
		setB[tag] = struct{}{}
	}

	intersection := 0
	for tag := range setA {
		if _, ok := setB[tag]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
