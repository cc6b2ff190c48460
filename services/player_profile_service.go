package services

import (
	"context"
	"fmt"
	"time"

	"github.com/CodeMyMobile/ttp-play-dates-sub001/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type PlayerProfileService struct {
	Dynamo *DynamoService
}

// AddPlayerProfile adds a new player profile to DynamoDB
func (ps *PlayerProfileService) AddPlayerProfile(ctx context.Context, profile models.PlayerProfile) (*models.PlayerProfile, error) {
	if profile.UserID == "" {
		return nil, fmt.Errorf("userId is required")
	}
	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if err := ps.Dynamo.PutItem(ctx, models.PlayerProfilesTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetPlayerProfile retrieves a player profile by ID
func (ps *PlayerProfileService) GetPlayerProfile(ctx context.Context, userID string) (*models.PlayerProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := ps.Dynamo.GetItem(ctx, models.PlayerProfilesTable, key)
	if err != nil {
		return nil, err
	}
	var profile models.PlayerProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", userID, err)
	}
	return &profile, nil
}

// UpdatePlayerProfile applies a partial update to a player profile
func (ps *PlayerProfileService) UpdatePlayerProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.PlayerProfile, error) {
	if len(updates) == 0 {
		return ps.GetPlayerProfile(ctx, userID)
	}

	updateExpression := "SET"
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	i := 0
	for field, value := range updates {
		marshaled, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal update for field %q: %w", field, err)
		}
		placeholder := fmt.Sprintf(":v%d", i)
		alias := fmt.Sprintf("#f%d", i)
		if i > 0 {
			updateExpression += ","
		}
		updateExpression += fmt.Sprintf(" %s = %s", alias, placeholder)
		values[placeholder] = marshaled
		names[alias] = field
		i++
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	attrs, err := ps.Dynamo.UpdateItem(ctx, models.PlayerProfilesTable, updateExpression, key, values, names)
	if err != nil {
		return nil, err
	}
	var profile models.PlayerProfile
	if err := attributevalue.UnmarshalMap(attrs, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile %s: %w", userID, err)
	}
	return &profile, nil
}
