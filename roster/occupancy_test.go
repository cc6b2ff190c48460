package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupantsUnionCountsPersonOnce(t *testing.T) {
	participants := []map[string]interface{}{
		{"id": 1, "status": "confirmed"},
	}
	invitees := []map[string]interface{}{
		{"invitee_id": 1, "status": "confirmed"},
	}
	got := Occupants(participants, invitees)
	assert.Len(t, got, 1)
}

func TestOccupantsFiltersInactiveParticipants(t *testing.T) {
	participants := []map[string]interface{}{
		{"player_id": 1, "status": "confirmed"},
		{"player_id": 2, "status": "confirmed", "left_at": "2024-01-01"},
		{"player_id": 3, "status": "left"},
	}
	got := Occupants(participants, nil)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0]["player_id"])
}

func TestOccupantsIgnoresUnconfirmedInvitees(t *testing.T) {
	invitees := []map[string]interface{}{
		{"invitee_id": 1, "status": "pending"},
		{"invitee_id": 2},
		{"invitee_id": 3, "confirmed": true},
	}
	got := Occupants(nil, invitees)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0]["invitee_id"])
}

func TestOccupantsDisjointSets(t *testing.T) {
	participants := []map[string]interface{}{
		{"player_id": 1},
		{"player_id": 2},
	}
	invitees := []map[string]interface{}{
		{"invitee_id": 3, "confirmed_at": "2024-06-01T10:00:00Z"},
	}
	assert.Len(t, Occupants(participants, invitees), 3)
}

func TestRemainingSpots(t *testing.T) {
	spots, ok := RemainingSpots(4, 1)
	assert.True(t, ok)
	assert.Equal(t, 3, spots)

	spots, ok = RemainingSpots("4", 1)
	assert.True(t, ok)
	assert.Equal(t, 3, spots)

	// over-full clamps at zero, never negative
	spots, ok = RemainingSpots(2, 5)
	assert.True(t, ok)
	assert.Equal(t, 0, spots)
}

func TestRemainingSpotsUnknownLimit(t *testing.T) {
	for _, limit := range []interface{}{nil, 0, -1, "unlimited", ""} {
		_, ok := RemainingSpots(limit, 2)
		assert.False(t, ok, "limit %v should be unknown", limit)
	}
}
