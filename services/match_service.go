package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/CodeMyMobile/ttp-play-dates-sub001/models"
	"github.com/CodeMyMobile/ttp-play-dates-sub001/roster"
	"github.com/CodeMyMobile/ttp-play-dates-sub001/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// RosterNotifier pushes roster changes to clients watching a match.
type RosterNotifier interface {
	BroadcastRosterUpdate(matchID string, payload map[string]interface{})
}

// MatchService handles match lifecycle and occupancy-aware match reads.
type MatchService struct {
	Dynamo   *DynamoService
	Notifier RosterNotifier
}

// CreateMatchInput carries the fields accepted when creating a match.
type CreateMatchInput struct {
	HostID        string `json:"hostId"`
	StartDateTime string `json:"startDateTime"`
	PlayerLimit   int    `json:"playerLimit"`
	Location      string `json:"location"`
	SkillLevel    string `json:"skillLevel"`
	Notes         string `json:"notes"`
}

// CreateMatch stores a new upcoming match with the host seated as its first
// participant, flagged with the hosting status.
func (ms *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	if input.HostID == "" {
		return nil, errors.New("hostId is required")
	}
	if _, ok := roster.ParseTime(input.StartDateTime); !ok {
		return nil, fmt.Errorf("invalid startDateTime: %q", input.StartDateTime)
	}
	if input.PlayerLimit <= 0 {
		return nil, errors.New("playerLimit must be a positive number")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	match := models.Match{
		MatchID:       uuid.New().String(),
		Status:        models.MatchStatusUpcoming,
		HostID:        input.HostID,
		StartDateTime: input.StartDateTime,
		PlayerLimit:   input.PlayerLimit,
		Location:      input.Location,
		SkillLevel:    input.SkillLevel,
		Notes:         input.Notes,
		Participants: []map[string]interface{}{
			{
				"player_id": input.HostID,
				"status":    models.ParticipantStatusHosting,
				"joined_at": now,
			},
		},
		CreatedAt: now,
	}

	if err := ms.Dynamo.PutItem(ctx, models.Match{}.TableName(), match); err != nil {
		return nil, err
	}
	return &match, nil
}

// GetMatch loads a match as a plain payload for the roster engine.
func (ms *MatchService) GetMatch(ctx context.Context, matchID string) (map[string]interface{}, error) {
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	item, err := ms.Dynamo.GetItem(ctx, models.Match{}.TableName(), key)
	if err != nil {
		return nil, err
	}
	var payload map[string]interface{}
	if err := attributevalue.UnmarshalMap(item, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchID, err)
	}
	return payload, nil
}

// GetMatchDetail loads a match and derives its occupancy view for the
// viewer: occupants, remaining spots, joined/host flags and a low-occupancy
// alert when one applies.
func (ms *MatchService) GetMatchDetail(ctx context.Context, matchID, viewerID string) (map[string]interface{}, error) {
	match, err := ms.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	invitees, err := ms.loadInviteeRecords(ctx, matchID)
	if err != nil {
		return nil, err
	}
	detail := BuildMatchDetail(match, invitees, viewerID, time.Now().UTC())
	detail["host"] = ms.hostSummary(ctx, match)
	return detail, nil
}

// BuildMatchDetail assembles the occupancy view of a match. Pure: it only
// reads the supplied payloads.
func BuildMatchDetail(match map[string]interface{}, invitees []map[string]interface{}, viewerID string, now time.Time) map[string]interface{} {
	participants := payloadRecords(match["participants"])
	occupants := roster.Occupants(participants, invitees)

	detail := map[string]interface{}{
		"match":         match,
		"occupants":     occupants,
		"occupantCount": len(occupants),
	}

	if remaining, known := roster.RemainingSpots(match["playerLimit"], len(occupants)); known {
		detail["remainingSpots"] = remaining
	} else {
		detail["remainingSpots"] = nil
	}

	status, _ := match["status"].(string)
	var startValue interface{}
	if start, ok := roster.MatchStartTime(match); ok {
		startValue = start
	}
	alert := roster.EvaluateLowOccupancyAlert(
		status, match["playerLimit"], startValue,
		participants, invitees,
		now, roster.DefaultAlertLookaheadHours,
	)
	if alert != nil {
		detail["alert"] = alert
	} else {
		detail["alert"] = nil
	}

	if viewerID != "" {
		viewer := map[string]interface{}{"id": viewerID}
		viewerIDs := roster.MemberIdentitySet(viewer)
		joined := false
		for _, occupant := range occupants {
			if viewerIDs.MatchesRecord(occupant, roster.OccupantIdentityPaths) {
				joined = true
				break
			}
		}
		detail["viewerJoined"] = joined
		detail["viewerIsHost"] = roster.MemberIsMatchHost(viewer, match)
	}

	return detail
}

// JoinMatch seats a player in a match, refusing duplicates and full matches.
func (ms *MatchService) JoinMatch(ctx context.Context, matchID, playerID string) error {
	if playerID == "" {
		return errors.New("playerId is required")
	}
	match, err := ms.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if status, _ := match["status"].(string); status != models.MatchStatusUpcoming {
		return fmt.Errorf("match %s is not open for joining", matchID)
	}

	participants := payloadRecords(match["participants"])
	invitees, err := ms.loadInviteeRecords(ctx, matchID)
	if err != nil {
		return err
	}
	occupants := roster.Occupants(participants, invitees)
	viewer := map[string]interface{}{"id": playerID}
	viewerIDs := roster.MemberIdentitySet(viewer)
	for _, occupant := range occupants {
		if viewerIDs.MatchesRecord(occupant, roster.OccupantIdentityPaths) {
			return fmt.Errorf("player %s already occupies a spot in match %s", playerID, matchID)
		}
	}
	if remaining, known := roster.RemainingSpots(match["playerLimit"], len(occupants)); known && remaining <= 0 {
		return fmt.Errorf("match %s is full", matchID)
	}

	joined := append(participants, map[string]interface{}{
		"player_id": playerID,
		"status":    models.ParticipantStatusConfirmed,
		"joined_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err := ms.saveParticipants(ctx, matchID, joined); err != nil {
		return err
	}
	ms.broadcastRoster(ctx, matchID)
	return nil
}

// LeaveMatch marks the player's participant entries as left. Entries are
// replaced, never mutated in place, so concurrent readers of the old payload
// are unaffected.
func (ms *MatchService) LeaveMatch(ctx context.Context, matchID, playerID string) error {
	match, err := ms.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	participants := payloadRecords(match["participants"])
	viewer := map[string]interface{}{"id": playerID}
	viewerIDs := roster.MemberIdentitySet(viewer)
	now := time.Now().UTC().Format(time.RFC3339)

	left := false
	updated := make([]map[string]interface{}, 0, len(participants))
	for _, participant := range participants {
		if !viewerIDs.MatchesRecord(participant, roster.ParticipantIdentityPaths) || !roster.IsActiveParticipant(participant) {
			updated = append(updated, participant)
			continue
		}
		replacement := make(map[string]interface{}, len(participant)+2)
		for k, v := range participant {
			replacement[k] = v
		}
		replacement["status"] = models.ParticipantStatusLeft
		replacement["left_at"] = now
		updated = append(updated, replacement)
		left = true
	}
	if !left {
		return fmt.Errorf("player %s is not an active participant of match %s", playerID, matchID)
	}
	if err := ms.saveParticipants(ctx, matchID, updated); err != nil {
		return err
	}
	ms.broadcastRoster(ctx, matchID)
	return nil
}

// CancelMatch sets a match to cancelled. Only the host may cancel.
func (ms *MatchService) CancelMatch(ctx context.Context, matchID, requesterID string) error {
	match, err := ms.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	requester := map[string]interface{}{"id": requesterID}
	if !roster.MemberIsMatchHost(requester, match) {
		return fmt.Errorf("player %s is not the host of match %s", requesterID, matchID)
	}

	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	_, err = ms.Dynamo.UpdateItem(ctx, models.Match{}.TableName(),
		"SET #s = :status, updatedAt = :updatedAt",
		key,
		map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: models.MatchStatusCancelled},
			":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		map[string]string{"#s": "status"},
	)
	if err != nil {
		return err
	}
	ms.broadcastRoster(ctx, matchID)
	return nil
}

// ListUpcomingMatches returns upcoming matches ordered by start time, each
// with its occupancy summary and, for browsing convenience, its alert.
func (ms *MatchService) ListUpcomingMatches(ctx context.Context, viewerID string) ([]map[string]interface{}, error) {
	items, err := ms.Dynamo.ScanItems(ctx, models.Match{}.TableName(),
		"#s = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: models.MatchStatusUpcoming},
		},
		map[string]string{"#s": "status"},
	)
	if err != nil {
		return nil, err
	}

	var matches []map[string]interface{}
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upcoming matches: %w", err)
	}

	now := time.Now().UTC()
	details := make([]map[string]interface{}, 0, len(matches))
	for _, match := range matches {
		matchID, _ := match["matchId"].(string)
		invitees, err := ms.loadInviteeRecords(ctx, matchID)
		if err != nil {
			log.Printf("Skipping invites for match %s: %v", matchID, err)
			invitees = nil
		}
		details = append(details, BuildMatchDetail(match, invitees, viewerID, now))
	}

	sort.SliceStable(details, func(i, j int) bool {
		a, aOK := startOfDetail(details[i])
		b, bOK := startOfDetail(details[j])
		if aOK != bOK {
			return aOK
		}
		return a.Before(b)
	})
	return details, nil
}

func startOfDetail(detail map[string]interface{}) (time.Time, bool) {
	match, _ := detail["match"].(map[string]interface{})
	return roster.MatchStartTime(match)
}

// loadInviteeRecords returns the match's invites as plain records for the
// roster engine.
func (ms *MatchService) loadInviteeRecords(ctx context.Context, matchID string) ([]map[string]interface{}, error) {
	if matchID == "" {
		return nil, nil
	}
	items, err := ms.Dynamo.QueryItems(ctx, models.Invite{}.TableName(),
		"matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		},
		nil, 0,
	)
	if err != nil {
		return nil, err
	}
	var invitees []map[string]interface{}
	if err := attributevalue.UnmarshalListOfMaps(items, &invitees); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invites for match %s: %w", matchID, err)
	}
	return invitees, nil
}

// hostSummary enriches the detail with the host's profile basics. Best
// effort: a missing profile just yields the bare id.
func (ms *MatchService) hostSummary(ctx context.Context, match map[string]interface{}) map[string]interface{} {
	hostID, _ := match["hostId"].(string)
	if hostID == "" {
		return nil
	}
	summary := map[string]interface{}{"hostId": hostID}
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: hostID},
	}
	item, err := ms.Dynamo.GetItem(ctx, models.PlayerProfilesTable, key)
	if err != nil {
		return summary
	}
	if name := utils.ExtractString(item, "fullName"); name != "" {
		summary["name"] = name
	}
	if photo := utils.ExtractFirstPhoto(item, "photos"); photo != "" {
		summary["photo"] = photo
	}
	if rating, ok := utils.ExtractNumber(item, "ntrpRating"); ok {
		summary["ntrpRating"] = rating
	}
	return summary
}

func (ms *MatchService) saveParticipants(ctx context.Context, matchID string, participants []map[string]interface{}) error {
	marshaled, err := attributevalue.Marshal(participants)
	if err != nil {
		return fmt.Errorf("failed to marshal participants for match %s: %w", matchID, err)
	}
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	_, err = ms.Dynamo.UpdateItem(ctx, models.Match{}.TableName(),
		"SET participants = :participants, updatedAt = :updatedAt",
		key,
		map[string]types.AttributeValue{
			":participants": marshaled,
			":updatedAt":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		nil,
	)
	return err
}

// broadcastRoster recomputes the roster view and pushes it to match
// subscribers. Failures are logged, never surfaced to the caller: the
// mutation already succeeded.
func (ms *MatchService) broadcastRoster(ctx context.Context, matchID string) {
	if ms.Notifier == nil {
		return
	}
	detail, err := ms.GetMatchDetail(ctx, matchID, "")
	if err != nil {
		log.Printf("Failed to build roster update for match %s: %v", matchID, err)
		return
	}
	ms.Notifier.BroadcastRosterUpdate(matchID, detail)
}

// payloadRecords tolerates both native and decoded-JSON record collections.
func payloadRecords(value interface{}) []map[string]interface{} {
	switch v := value.(type) {
	case []map[string]interface{}:
		return v
	case []interface{}:
		var records []map[string]interface{}
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				records = append(records, m)
			}
		}
		return records
	}
	return nil
}
