package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"travelbuddy_server/models"
	"travelbuddy_server/utils"

	"github.com/google/uuid"
)

// MatchNotifier pushes newly created matches to connected clients.
type MatchNotifier interface {
	NotifyMatch(match models.Match)
}

// MatchSummary is one entry in a user's match list, enriched with the
// counterpart's profile. daysSinceMatch is computed at call time.
type MatchSummary struct {
	MatchID             string `json:"match_id"`
	MatchedUserID       string `json:"matched_user_id"`
	MatchedUserEmail    string `json:"matched_user_email,omitempty"`
	MatchedUserPhoto    string `json:"matched_user_photo,omitempty"`
	MatchedUserLocation string `json:"matched_user_location,omitempty"`
	MatchedUserAge      int    `json:"matched_user_age,omitempty"`
	MatchedOn           string `json:"matched_on"`
	DaysSinceMatch      int    `json:"days_since_match"`
}

type MatchService struct {
	Profiles ProfileStore
	Swipes   SwipeStore
	Matches  MatchStore
	Notifier MatchNotifier // optional
}

// DetectAndRecordMatch checks whether the two users have liked each other
// and records the match exactly once. Returns true when a match exists
// after the call, whether or not this call created it: the insert is
// guarded by the uniqueness constraint on the canonical pair key, so two
// near-simultaneous mutual likes settle on a single row.
func (ms *MatchService) DetectAndRecordMatch(ctx context.Context, userA, userB string) (bool, error) {
	forward, err := ms.getSwipe(ctx, userA, userB)
	if err != nil {
		return false, err
	}
	if forward == nil || !forward.Liked {
		return false, nil
	}

	reciprocal, err := ms.getSwipe(ctx, userB, userA)
	if err != nil {
		return false, err
	}
	if reciprocal == nil || !reciprocal.Liked {
		return false, nil
	}

	lo, hi := models.CanonicalPair(userA, userB)
	match := models.Match{
		PairID:    models.PairKey(userA, userB),
		MatchID:   uuid.NewString(),
		UserAID:   lo,
		UserBID:   hi,
		Status:    models.MatchStatusActive,
		MatchedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var created bool
	err = withRetries(ctx, "DetectAndRecordMatch.create", func() error {
		var opErr error
		created, opErr = ms.Matches.CreateMatch(ctx, match)
		return opErr
	})
	if err != nil {
		return false, err
	}

	if created {
		log.Printf("🎉 It's a match: %s ❤️ %s", lo, hi)
		if ms.Notifier != nil {
			ms.Notifier.NotifyMatch(match)
		}
	}
	return true, nil
}

// GetMatches returns a user's confirmed matches, most recent first. The
// optional afterMatchID cursor resumes listing strictly after that entry.
// Matches whose counterpart profile no longer exists are skipped.
func (ms *MatchService) GetMatches(ctx context.Context, userID, afterMatchID string) ([]MatchSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("userId is required: %w", ErrInvalidArgument)
	}

	var requester *models.UserProfile
	err := withRetries(ctx, "GetMatches.profile", func() error {
		var opErr error
		requester, opErr = ms.Profiles.GetProfile(ctx, userID)
		return opErr
	})
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, fmt.Errorf("profile '%s': %w", userID, ErrNotFound)
	}

	var matches []models.Match
	err = withRetries(ctx, "GetMatches.list", func() error {
		var opErr error
		matches, opErr = ms.Matches.ListMatchesByUser(ctx, userID)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	// Timestamps are RFC3339 in UTC, so lexicographic order is
	// chronological. MatchID breaks exact-timestamp ties.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchedAt != matches[j].MatchedAt {
			return matches[i].MatchedAt > matches[j].MatchedAt
		}
		return matches[i].MatchID < matches[j].MatchID
	})

	if afterMatchID != "" {
		start := -1
		for i, match := range matches {
			if match.MatchID == afterMatchID {
				start = i + 1
				break
			}
		}
		if start == -1 {
			return nil, fmt.Errorf("unknown cursor '%s': %w", afterMatchID, ErrInvalidArgument)
		}
		matches = matches[start:]
	}

	summaries := make([]MatchSummary, 0, len(matches))
	for _, match := range matches {
		otherID := match.OtherUser(userID)

		var other *models.UserProfile
		err = withRetries(ctx, "GetMatches.enrich", func() error {
			var opErr error
			other, opErr = ms.Profiles.GetProfile(ctx, otherID)
			return opErr
		})
		if err != nil {
			return nil, err
		}
		if other == nil {
			continue
		}

		summaries = append(summaries, MatchSummary{
			MatchID:             match.MatchID,
			MatchedUserID:       otherID,
			MatchedUserEmail:    other.EmailID,
			MatchedUserPhoto:    other.PhotoURL,
			MatchedUserLocation: other.Location,
			MatchedUserAge:      other.Age,
			MatchedOn:           match.MatchedAt,
			DaysSinceMatch:      utils.DaysSince(match.MatchedAt),
		})
	}
	return summaries, nil
}

func (ms *MatchService) getSwipe(ctx context.Context, actorID, targetID string) (*models.Swipe, error) {
	var swipe *models.Swipe
	err := withRetries(ctx, "DetectAndRecordMatch.swipe", func() error {
		var opErr error
		swipe, opErr = ms.Swipes.GetSwipe(ctx, actorID, targetID)
		return opErr
	})
	if err != nil {
		return nil, err
	}
	return swipe, nil
}
