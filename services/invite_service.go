package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CodeMyMobile/ttp-play-dates-sub001/models"
	"github.com/CodeMyMobile/ttp-play-dates-sub001/roster"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DefaultInviteTTL is how long an invite stays confirmable.
const DefaultInviteTTL = 72 * time.Hour

// InviteService handles operations related to match invites
type InviteService struct {
	Dynamo   *DynamoService
	Notifier RosterNotifier
}

// CreateInvite stores a pending invite for a player to join a match.
func (s *InviteService) CreateInvite(ctx context.Context, matchID, inviterID, inviteeID string) (*models.Invite, error) {
	if matchID == "" || inviterID == "" || inviteeID == "" {
		return nil, errors.New("matchId, inviterId and inviteeId are required")
	}

	// only upcoming matches accept invites
	matchKey := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.Match{}.TableName(), matchKey)
	if err != nil {
		return nil, fmt.Errorf("match %s not found: %w", matchID, err)
	}
	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchID, err)
	}
	if match.Status != models.MatchStatusUpcoming {
		return nil, fmt.Errorf("match %s is not open for invites", matchID)
	}

	now := time.Now().UTC()
	invite := models.Invite{
		MatchID:   matchID,
		CreatedAt: now.Format(time.RFC3339),
		InviteID:  uuid.New().String(),
		InviterID: inviterID,
		InviteeID: inviteeID,
		Status:    models.InviteStatusPending,
		ExpiresAt: now.Add(DefaultInviteTTL).Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.Invite{}.TableName(), invite); err != nil {
		return nil, err
	}
	s.broadcast(matchID, "inviteCreated", invite)
	return &invite, nil
}

// UpdateInviteStatus confirms or declines an invite. Confirming an invite
// past its expiry marks it expired instead and reports an error.
func (s *InviteService) UpdateInviteStatus(ctx context.Context, matchID, createdAt, status string) error {
	if status != models.InviteStatusConfirmed && status != models.InviteStatusDeclined {
		return errors.New("invalid status")
	}

	invite, err := s.getInvite(ctx, matchID, createdAt)
	if err != nil {
		return err
	}
	if invite.Status != models.InviteStatusPending {
		return fmt.Errorf("invite %s is already %s", invite.InviteID, invite.Status)
	}

	now := time.Now().UTC()
	if status == models.InviteStatusConfirmed && InviteExpired(invite, now) {
		if err := s.setInviteStatus(ctx, matchID, createdAt, models.InviteStatusExpired, "", ""); err != nil {
			return err
		}
		return fmt.Errorf("invite %s has expired", invite.InviteID)
	}

	stamp := now.Format(time.RFC3339)
	confirmedAt, declinedAt := "", ""
	if status == models.InviteStatusConfirmed {
		confirmedAt = stamp
	} else {
		declinedAt = stamp
	}
	if err := s.setInviteStatus(ctx, matchID, createdAt, status, confirmedAt, declinedAt); err != nil {
		return err
	}
	s.broadcast(matchID, "inviteUpdated", map[string]string{
		"inviteId": invite.InviteID,
		"status":   status,
	})
	return nil
}

// GetInvitesForMatch returns every invite attached to a match.
func (s *InviteService) GetInvitesForMatch(ctx context.Context, matchID string) ([]models.Invite, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.Invite{}.TableName(),
		"matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		},
		nil, 0,
	)
	if err != nil {
		return nil, err
	}
	var invites []models.Invite
	err = attributevalue.UnmarshalListOfMaps(items, &invites)
	return invites, err
}

// GetPendingInvitesForPlayer returns the player's open invites, newest first.
func (s *InviteService) GetPendingInvitesForPlayer(ctx context.Context, inviteeID string) ([]models.Invite, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.Invite{}.TableName(), models.InviteeIndex,
		"inviteeId = :inviteeId",
		map[string]types.AttributeValue{
			":inviteeId": &types.AttributeValueMemberS{Value: inviteeID},
		},
		nil, 0,
	)
	if err != nil {
		return nil, err
	}
	var invites []models.Invite
	if err := attributevalue.UnmarshalListOfMaps(items, &invites); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pending := invites[:0]
	for _, invite := range invites {
		if invite.Status == models.InviteStatusPending && !InviteExpired(invite, now) {
			pending = append(pending, invite)
		}
	}
	return pending, nil
}

// ExpireOverdueInvites marks a match's pending invites past their expiry as
// expired and reports how many were flipped.
func (s *InviteService) ExpireOverdueInvites(ctx context.Context, matchID string) (int, error) {
	invites, err := s.GetInvitesForMatch(ctx, matchID)
	if err != nil {
		return 0, err
	}
	now := time.Now().UTC()
	expired := 0
	for _, invite := range invites {
		if invite.Status != models.InviteStatusPending || !InviteExpired(invite, now) {
			continue
		}
		if err := s.setInviteStatus(ctx, matchID, invite.CreatedAt, models.InviteStatusExpired, "", ""); err != nil {
			return expired, err
		}
		expired++
	}
	if expired > 0 {
		s.broadcast(matchID, "invitesExpired", map[string]int{"count": expired})
	}
	return expired, nil
}

// InviteExpired reports whether an invite's expiry has passed. Invites
// without a parseable expiry never expire.
func InviteExpired(invite models.Invite, now time.Time) bool {
	expiresAt, ok := roster.ParseTime(invite.ExpiresAt)
	return ok && expiresAt.Before(now)
}

func (s *InviteService) getInvite(ctx context.Context, matchID, createdAt string) (models.Invite, error) {
	key := map[string]types.AttributeValue{
		"matchId":   &types.AttributeValueMemberS{Value: matchID},
		"createdAt": &types.AttributeValueMemberS{Value: createdAt},
	}
	item, err := s.Dynamo.GetItem(ctx, models.Invite{}.TableName(), key)
	if err != nil {
		return models.Invite{}, err
	}
	var invite models.Invite
	if err := attributevalue.UnmarshalMap(item, &invite); err != nil {
		return models.Invite{}, fmt.Errorf("failed to unmarshal invite: %w", err)
	}
	return invite, nil
}

func (s *InviteService) setInviteStatus(ctx context.Context, matchID, createdAt, status, confirmedAt, declinedAt string) error {
	updateExpression := "SET #s = :status"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: status},
	}
	if confirmedAt != "" {
		updateExpression += ", confirmedAt = :confirmedAt"
		values[":confirmedAt"] = &types.AttributeValueMemberS{Value: confirmedAt}
	}
	if declinedAt != "" {
		updateExpression += ", declinedAt = :declinedAt"
		values[":declinedAt"] = &types.AttributeValueMemberS{Value: declinedAt}
	}
	key := map[string]types.AttributeValue{
		"matchId":   &types.AttributeValueMemberS{Value: matchID},
		"createdAt": &types.AttributeValueMemberS{Value: createdAt},
	}
	_, err := s.Dynamo.UpdateItem(ctx, models.Invite{}.TableName(), updateExpression, key, values, map[string]string{"#s": "status"})
	return err
}

func (s *InviteService) broadcast(matchID, event string, payload interface{}) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.BroadcastRosterUpdate(matchID, map[string]interface{}{
		"event": event,
		"data":  payload,
	})
}
