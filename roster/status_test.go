package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActiveParticipant(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]interface{}
		active bool
	}{
		{"nil record", nil, false},
		{"plain record", map[string]interface{}{"player_id": 1}, true},
		{"confirmed status", map[string]interface{}{"status": "confirmed"}, true},
		{"left status", map[string]interface{}{"status": "left"}, false},
		{"uppercase status", map[string]interface{}{"status": "LEFT"}, false},
		{"camelCase status field", map[string]interface{}{"participantStatus": "removed"}, false},
		{"snake status field", map[string]interface{}{"participant_status": "declined"}, false},
		{"status reason", map[string]interface{}{"status_reason": "withdrawn"}, false},
		{"pending is inactive for participants", map[string]interface{}{"status": "pending"}, false},
		{"invited is inactive for participants", map[string]interface{}{"status": "invited"}, false},
		{"both cancelled spellings", map[string]interface{}{"status": "canceled"}, false},
		{"active flag false", map[string]interface{}{"is_active": false}, false},
		{"camel active flag false", map[string]interface{}{"isActive": false, "status": "confirmed"}, false},
		{"active flag true", map[string]interface{}{"active": true}, true},
		{"departure timestamp wins over status", map[string]interface{}{"status": "confirmed", "left_at": "2024-01-01"}, false},
		{"camel departure timestamp", map[string]interface{}{"removedAt": "2024-03-04T10:00:00Z"}, false},
		{"blank departure timestamp ignored", map[string]interface{}{"left_at": "   "}, true},
		{"nil departure timestamp ignored", map[string]interface{}{"left_at": nil}, true},
		{"unknown status token", map[string]interface{}{"status": "showed_up"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.active, IsActiveParticipant(tt.record))
		})
	}
}

func TestIsConfirmedInvitee(t *testing.T) {
	tests := []struct {
		name      string
		record    map[string]interface{}
		confirmed bool
	}{
		{"nil record", nil, false},
		{"no signal at all", map[string]interface{}{"invitee_id": 5}, false},
		{"confirmed status", map[string]interface{}{"status": "confirmed"}, true},
		{"confirmed token inside status", map[string]interface{}{"status": "CONFIRMED-2024"}, true},
		{"unconfirmed rejected", map[string]interface{}{"status": "unconfirmed"}, false},
		{"unconfirm substring rejected", map[string]interface{}{"status": "confirmed (unconfirm pending)"}, false},
		{"boolean flag", map[string]interface{}{"confirmed": true}, true},
		{"camel boolean flag", map[string]interface{}{"isConfirmed": true}, true},
		{"boolean flag false", map[string]interface{}{"confirmed": false}, false},
		{"confirmation timestamp", map[string]interface{}{"confirmed_at": "2024-05-01T12:00:00Z"}, true},
		{"blank confirmation timestamp", map[string]interface{}{"confirmed_at": ""}, false},
		{"confirmed then cancelled", map[string]interface{}{"confirmed_at": "2024-05-01", "cancelled_at": "2024-05-02"}, false},
		{"confirmed then declined status", map[string]interface{}{"confirmed": true, "status": "declined"}, false},
		{"pending invitee not counted", map[string]interface{}{"status": "pending"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.confirmed, IsConfirmedInvitee(tt.record))
		})
	}
}

func TestStatusToken(t *testing.T) {
	token, ok := statusToken("Left Match")
	assert.True(t, ok)
	assert.Equal(t, "leftmatch", token)

	token, ok = statusToken("LE_FT")
	assert.True(t, ok)
	assert.Equal(t, "left", token)

	_, ok = statusToken(7)
	assert.False(t, ok)

	_, ok = statusToken("---")
	assert.False(t, ok)
}
