package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alertNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func startingIn(hours float64) string {
	return alertNow.Add(time.Duration(hours * float64(time.Hour))).Format(time.RFC3339)
}

func activePlayers(ids ...int) []map[string]interface{} {
	players := make([]map[string]interface{}, len(ids))
	for i, id := range ids {
		players[i] = map[string]interface{}{"player_id": id, "status": "confirmed"}
	}
	return players
}

func confirmedInvitees(ids ...int) []map[string]interface{} {
	invitees := make([]map[string]interface{}, len(ids))
	for i, id := range ids {
		invitees[i] = map[string]interface{}{"invitee_id": id, "status": "confirmed"}
	}
	return invitees
}

func TestEvaluateLowOccupancyAlertEndToEnd(t *testing.T) {
	alert := EvaluateLowOccupancyAlert(
		"upcoming", 4, startingIn(30),
		activePlayers(1), nil,
		alertNow, DefaultAlertLookaheadHours,
	)
	require.NotNil(t, alert)
	assert.Equal(t, 3, alert.OpenSpots)
	assert.Equal(t, 0, alert.InviteCoverage)
	assert.Equal(t, 3, alert.Shortfall)
	assert.Equal(t, AlertSeveritySoon, alert.Severity)
	assert.Equal(t, 1, alert.ParticipantCount)
	assert.Equal(t, 0, alert.InviteeCount)
	assert.Equal(t, 1, alert.CombinedPotential)
	assert.Equal(t, 4, alert.PlayerLimit)
	assert.InDelta(t, 30, alert.HoursUntilStart, 0.01)
}

func TestEvaluateLowOccupancyAlertSuppressedWhenCovered(t *testing.T) {
	// 2 open spots, 2 confirmed invitees: fully covered, no alert
	alert := EvaluateLowOccupancyAlert(
		"upcoming", 4, startingIn(10),
		activePlayers(1, 2), confirmedInvitees(3, 4),
		alertNow, DefaultAlertLookaheadHours,
	)
	assert.Nil(t, alert)
}

func TestEvaluateLowOccupancyAlertSeverityBoundaries(t *testing.T) {
	tests := []struct {
		hours    float64
		severity string
	}{
		{11.9, AlertSeverityUrgent},
		{12.1, AlertSeverityWarning},
		{24.1, AlertSeveritySoon},
	}
	for _, tt := range tests {
		alert := EvaluateLowOccupancyAlert(
			"upcoming", 4, startingIn(tt.hours),
			activePlayers(1, 2), confirmedInvitees(3),
			alertNow, DefaultAlertLookaheadHours,
		)
		require.NotNil(t, alert, "at %v hours", tt.hours)
		assert.Equal(t, tt.severity, alert.Severity, "at %v hours", tt.hours)
		assert.Equal(t, 1, alert.Shortfall)
	}

	// past the lookahead window nothing fires
	assert.Nil(t, EvaluateLowOccupancyAlert(
		"upcoming", 4, startingIn(48.1),
		activePlayers(1, 2), confirmedInvitees(3),
		alertNow, DefaultAlertLookaheadHours,
	))
}

func TestEvaluateLowOccupancyAlertFailsClosed(t *testing.T) {
	participants := activePlayers(1)

	// wrong status
	assert.Nil(t, EvaluateLowOccupancyAlert("completed", 4, startingIn(10), participants, nil, alertNow, 48))
	// empty status is allowed
	assert.NotNil(t, EvaluateLowOccupancyAlert("", 4, startingIn(10), participants, nil, alertNow, 48))
	// bad player limit
	assert.Nil(t, EvaluateLowOccupancyAlert("upcoming", nil, startingIn(10), participants, nil, alertNow, 48))
	assert.Nil(t, EvaluateLowOccupancyAlert("upcoming", 0, startingIn(10), participants, nil, alertNow, 48))
	assert.Nil(t, EvaluateLowOccupancyAlert("upcoming", "lots", startingIn(10), participants, nil, alertNow, 48))
	// unparseable start date
	assert.Nil(t, EvaluateLowOccupancyAlert("upcoming", 4, "not a date", participants, nil, alertNow, 48))
	assert.Nil(t, EvaluateLowOccupancyAlert("upcoming", 4, nil, participants, nil, alertNow, 48))
	// match already started
	assert.Nil(t, EvaluateLowOccupancyAlert("upcoming", 4, startingIn(-1), participants, nil, alertNow, 48))
	// full match
	assert.Nil(t, EvaluateLowOccupancyAlert("upcoming", 2, startingIn(10), activePlayers(1, 2), nil, alertNow, 48))
}

func TestEvaluateLowOccupancyAlertOverlappingInviteeNotDoubleCounted(t *testing.T) {
	// the invitee is already an active participant, so invite coverage is 0
	participants := activePlayers(1, 2)
	invitees := []map[string]interface{}{
		{"invitee_id": 2, "status": "confirmed"},
	}
	alert := EvaluateLowOccupancyAlert("upcoming", 4, startingIn(30), participants, invitees, alertNow, 48)
	require.NotNil(t, alert)
	assert.Equal(t, 0, alert.InviteCoverage)
	assert.Equal(t, 2, alert.Shortfall)
	assert.Equal(t, 2, alert.CombinedPotential)
}

func TestEvaluateLowOccupancyAlertCustomLookahead(t *testing.T) {
	// a zero lookahead falls back to the default window
	alert := EvaluateLowOccupancyAlert("upcoming", 4, startingIn(30), activePlayers(1), nil, alertNow, 0)
	require.NotNil(t, alert)
	assert.Equal(t, float64(DefaultAlertLookaheadHours), alert.LookaheadHours)

	// a narrower window suppresses matches beyond it
	assert.Nil(t, EvaluateLowOccupancyAlert("upcoming", 4, startingIn(30), activePlayers(1), nil, alertNow, 24))
}
