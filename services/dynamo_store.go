package services

import (
	"context"
	"fmt"

	"travelbuddy_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Upper bound on items pulled per ledger/match query. Well above anything
// a single user accumulates at this scale.
const maxQueryLimit = 1000

// DynamoProfileStore implements ProfileStore on the TravelProfiles table.
type DynamoProfileStore struct {
	Dynamo *DynamoService
}

func (s *DynamoProfileStore) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.TravelProfilesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

func (s *DynamoProfileStore) PutProfile(ctx context.Context, profile models.UserProfile) error {
	return s.Dynamo.PutItem(ctx, models.TravelProfilesTable, profile)
}

func (s *DynamoProfileStore) PutProfiles(ctx context.Context, profiles []models.UserProfile) error {
	writeRequests := make([]types.WriteRequest, 0, len(profiles))
	for _, profile := range profiles {
		item, err := attributevalue.MarshalMap(profile)
		if err != nil {
			return fmt.Errorf("failed to marshal profile '%s': %w", profile.UserID, err)
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}
	return s.Dynamo.BatchWriteItems(ctx, models.TravelProfilesTable, writeRequests)
}

func (s *DynamoProfileStore) DeleteProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return s.Dynamo.DeleteItem(ctx, models.TravelProfilesTable, key)
}

func (s *DynamoProfileStore) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	if err := s.Dynamo.ScanWithFilter(ctx, models.TravelProfilesTable, nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// DynamoSwipeStore implements SwipeStore on the Swipes table
// (PK actorId, SK targetId).
type DynamoSwipeStore struct {
	Dynamo *DynamoService
}

func swipeKey(actorID, targetID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"actorId":  &types.AttributeValueMemberS{Value: actorID},
		"targetId": &types.AttributeValueMemberS{Value: targetID},
	}
}

func (s *DynamoSwipeStore) GetSwipe(ctx context.Context, actorID, targetID string) (*models.Swipe, error) {
	item, err := s.Dynamo.GetItem(ctx, models.SwipesTable, swipeKey(actorID, targetID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var swipe models.Swipe
	if err := attributevalue.UnmarshalMap(item, &swipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swipe: %w", err)
	}
	return &swipe, nil
}

func (s *DynamoSwipeStore) CreateSwipe(ctx context.Context, swipe models.Swipe) (bool, error) {
	// Keyed on (actorId, targetId); the condition loses exactly once per
	// ordered pair when two identical calls race.
	return s.Dynamo.PutItemWithCondition(ctx, models.SwipesTable, swipe, "attribute_not_exists(actorId)")
}

func (s *DynamoSwipeStore) UpdateSwipe(ctx context.Context, actorID, targetID string, liked bool, updatedAt string) error {
	updateExpression := "SET liked = :liked, updatedAt = :updatedAt"
	_, err := s.Dynamo.UpdateItem(ctx, models.SwipesTable, updateExpression,
		swipeKey(actorID, targetID),
		map[string]types.AttributeValue{
			":liked":     &types.AttributeValueMemberBOOL{Value: liked},
			":updatedAt": &types.AttributeValueMemberS{Value: updatedAt},
		}, nil,
	)
	return err
}

func (s *DynamoSwipeStore) ListSwipesByActor(ctx context.Context, actorID string) ([]models.Swipe, error) {
	keyCondition := "actorId = :actorId"
	expressionValues := map[string]types.AttributeValue{
		":actorId": &types.AttributeValueMemberS{Value: actorID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.SwipesTable, keyCondition, expressionValues, nil, maxQueryLimit)
	if err != nil {
		return nil, err
	}

	var swipes []models.Swipe
	if err := attributevalue.UnmarshalListOfMaps(items, &swipes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swipes: %w", err)
	}
	return swipes, nil
}

// DynamoMatchStore implements MatchStore on the Matches table
// (PK pairId, GSIs on userAId and userBId).
type DynamoMatchStore struct {
	Dynamo *DynamoService
}

func (s *DynamoMatchStore) GetMatch(ctx context.Context, pairID string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"pairId": &types.AttributeValueMemberS{Value: pairID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

func (s *DynamoMatchStore) CreateMatch(ctx context.Context, match models.Match) (bool, error) {
	// The uniqueness constraint on pairId arbitrates concurrent mutual
	// likes: exactly one writer wins, the other sees a no-op.
	return s.Dynamo.PutItemWithCondition(ctx, models.MatchesTable, match, "attribute_not_exists(pairId)")
}

func (s *DynamoMatchStore) ListMatchesByUser(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match

	queries := []struct {
		index     string
		attribute string
	}{
		{models.UserAIndex, "userAId"},
		{models.UserBIndex, "userBId"},
	}

	for _, q := range queries {
		keyCondition := fmt.Sprintf("%s = :userId", q.attribute)
		expressionValues := map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		}

		items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, q.index, keyCondition, expressionValues, nil, maxQueryLimit)
		if err != nil {
			return nil, err
		}

		var page []models.Match
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
		}
		matches = append(matches, page...)
	}

	return matches, nil
}
