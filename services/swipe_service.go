package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"travelbuddy_server/models"
)

// SwipeResult reports what a recorded swipe did.
type SwipeResult struct {
	IsNewSwipe bool `json:"isNewSwipe"`
	IsMatch    bool `json:"isMatch"`
}

type SwipeService struct {
	Profiles ProfileStore
	Swipes   SwipeStore
	Matches  MatchStore
	Detector *MatchService
}

// RecordSwipe validates and persists one swipe decision. Re-asserting the
// same decision is a no-op on the ledger; flipping a decision overwrites
// the existing row unless the pair is already matched. On a like, match
// detection runs synchronously before returning, so IsMatch is
// authoritative at return time.
func (ss *SwipeService) RecordSwipe(ctx context.Context, actorID, targetID string, liked bool) (*SwipeResult, error) {
	if actorID == "" || targetID == "" {
		return nil, fmt.Errorf("userId and targetUserId are required: %w", ErrInvalidArgument)
	}
	if actorID == targetID {
		return nil, fmt.Errorf("cannot swipe on yourself: %w", ErrInvalidArgument)
	}

	if err := ss.requireProfile(ctx, actorID); err != nil {
		return nil, err
	}
	if err := ss.requireProfile(ctx, targetID); err != nil {
		return nil, err
	}

	var existing *models.Swipe
	err := withRetries(ctx, "RecordSwipe.lookup", func() error {
		var opErr error
		existing, opErr = ss.Swipes.GetSwipe(ctx, actorID, targetID)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	isNewSwipe := false

	if existing == nil {
		swipe := models.Swipe{
			ActorID:   actorID,
			TargetID:  targetID,
			Liked:     liked,
			CreatedAt: now,
			UpdatedAt: now,
		}

		var created bool
		err = withRetries(ctx, "RecordSwipe.create", func() error {
			var opErr error
			created, opErr = ss.Swipes.CreateSwipe(ctx, swipe)
			return opErr
		})
		if err != nil {
			return nil, err
		}

		if created {
			isNewSwipe = true
		} else {
			// Lost a race with a concurrent call for the same ordered
			// pair; re-read and handle it like any existing row.
			err = withRetries(ctx, "RecordSwipe.reread", func() error {
				var opErr error
				existing, opErr = ss.Swipes.GetSwipe(ctx, actorID, targetID)
				return opErr
			})
			if err != nil {
				return nil, err
			}
		}
	}

	if existing != nil && existing.Liked != liked {
		// A user may change their mind, but not once the pair is matched.
		var match *models.Match
		err = withRetries(ctx, "RecordSwipe.matchCheck", func() error {
			var opErr error
			match, opErr = ss.Matches.GetMatch(ctx, models.PairKey(actorID, targetID))
			return opErr
		})
		if err != nil {
			return nil, err
		}
		if match != nil {
			return nil, fmt.Errorf("swipe %s -> %s: %w", actorID, targetID, ErrMatchImmutable)
		}

		err = withRetries(ctx, "RecordSwipe.update", func() error {
			return ss.Swipes.UpdateSwipe(ctx, actorID, targetID, liked, now)
		})
		if err != nil {
			return nil, err
		}
		log.Printf("🔄 %s changed their decision on %s (liked=%v)", actorID, targetID, liked)
	}

	result := &SwipeResult{IsNewSwipe: isNewSwipe}

	if liked {
		isMatch, err := ss.Detector.DetectAndRecordMatch(ctx, actorID, targetID)
		if err != nil {
			return nil, err
		}
		result.IsMatch = isMatch
	}

	log.Printf("✅ Swipe recorded: %s -> %s (liked=%v, new=%v, match=%v)",
		actorID, targetID, liked, result.IsNewSwipe, result.IsMatch)
	return result, nil
}

func (ss *SwipeService) requireProfile(ctx context.Context, userID string) error {
	var profile *models.UserProfile
	err := withRetries(ctx, "RecordSwipe.profile", func() error {
		var opErr error
		profile, opErr = ss.Profiles.GetProfile(ctx, userID)
		return opErr
	})
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("profile '%s': %w", userID, ErrNotFound)
	}
	return nil
}
