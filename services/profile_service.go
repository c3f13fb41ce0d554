package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"travelbuddy_server/models"
)

type ProfileService struct {
	Profiles ProfileStore
}

// AddProfile validates and stores a new traveler profile
func (ps *ProfileService) AddProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile.Interests = dedupeTags(profile.Interests)
	profile.CreatedAt = now
	profile.UpdatedAt = now
	profile.LastActiveAt = now

	err := withRetries(ctx, "AddProfile", func() error {
		return ps.Profiles.PutProfile(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Profile created for user %s", profile.UserID)
	return &profile, nil
}

// GetProfile retrieves a traveler profile by user id
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("userId is required: %w", ErrInvalidArgument)
	}

	var profile *models.UserProfile
	err := withRetries(ctx, "GetProfile", func() error {
		var opErr error
		profile, opErr = ps.Profiles.GetProfile(ctx, userID)
		return opErr
	})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile '%s': %w", userID, ErrNotFound)
	}
	return profile, nil
}

// UpdateProfile merges non-empty fields of updates into an existing
// profile. The user id itself is immutable.
func (ps *ProfileService) UpdateProfile(ctx context.Context, userID string, updates models.UserProfile) (*models.UserProfile, error) {
	if updates.UserID != "" && updates.UserID != userID {
		return nil, fmt.Errorf("userId is immutable: %w", ErrInvalidArgument)
	}
	if updates.TravelStyle != "" && !models.ValidTravelStyle(updates.TravelStyle) {
		return nil, fmt.Errorf("unknown travel style '%s': %w", updates.TravelStyle, ErrInvalidArgument)
	}

	profile, err := ps.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if updates.EmailID != "" {
		profile.EmailID = updates.EmailID
	}
	if updates.FullName != "" {
		profile.FullName = updates.FullName
	}
	if updates.Bio != "" {
		profile.Bio = updates.Bio
	}
	if updates.Location != "" {
		profile.Location = updates.Location
	}
	if updates.Age != 0 {
		profile.Age = updates.Age
	}
	if updates.PhotoURL != "" {
		profile.PhotoURL = updates.PhotoURL
	}
	if updates.TravelStyle != "" {
		profile.TravelStyle = updates.TravelStyle
	}
	if updates.Interests != nil {
		profile.Interests = dedupeTags(updates.Interests)
	}
	if updates.PreferredDestinations != nil {
		profile.PreferredDestinations = updates.PreferredDestinations
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile.UpdatedAt = now
	profile.LastActiveAt = now

	err = withRetries(ctx, "UpdateProfile", func() error {
		return ps.Profiles.PutProfile(ctx, *profile)
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteProfile removes a traveler profile
func (ps *ProfileService) DeleteProfile(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("userId is required: %w", ErrInvalidArgument)
	}
	return withRetries(ctx, "DeleteProfile", func() error {
		return ps.Profiles.DeleteProfile(ctx, userID)
	})
}

// ImportProfiles bulk-loads traveler profiles. All entries are validated
// before anything is written.
func (ps *ProfileService) ImportProfiles(ctx context.Context, profiles []models.UserProfile) (int, error) {
	if len(profiles) == 0 {
		return 0, fmt.Errorf("no profiles to import: %w", ErrInvalidArgument)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i := range profiles {
		if err := validateProfile(profiles[i]); err != nil {
			return 0, err
		}
		profiles[i].Interests = dedupeTags(profiles[i].Interests)
		profiles[i].CreatedAt = now
		profiles[i].UpdatedAt = now
		if profiles[i].LastActiveAt == "" {
			profiles[i].LastActiveAt = now
		}
	}

	err := withRetries(ctx, "ImportProfiles", func() error {
		return ps.Profiles.PutProfiles(ctx, profiles)
	})
	if err != nil {
		return 0, err
	}

	log.Printf("✅ Imported %d profiles", len(profiles))
	return len(profiles), nil
}

func validateProfile(profile models.UserProfile) error {
	if profile.UserID == "" {
		return fmt.Errorf("userId is required: %w", ErrInvalidArgument)
	}
	if profile.Age < 0 {
		return fmt.Errorf("age cannot be negative: %w", ErrInvalidArgument)
	}
	if profile.TravelStyle != "" && !models.ValidTravelStyle(profile.TravelStyle) {
		return fmt.Errorf("unknown travel style '%s': %w", profile.TravelStyle, ErrInvalidArgument)
	}
	return nil
}

// dedupeTags removes duplicates while keeping first-seen order.
func dedupeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	deduped := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		deduped = append(deduped, tag)
	}
	return deduped
}
