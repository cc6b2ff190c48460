package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeByIdentityFirstOccurrenceWins(t *testing.T) {
	records := []map[string]interface{}{
		{"id": 1, "name": "first"},
		{"id": "1", "name": "numeric string duplicate"},
		{"id": 2},
	}
	got := DedupeByIdentity(records, ParticipantIdentityPaths)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0]["name"])
	assert.Equal(t, 2, got[1]["id"])
}

func TestDedupeByIdentityPreservesAnonymousRecords(t *testing.T) {
	records := []map[string]interface{}{
		{"id": 1},
		{"id": 1},
		{"name": "x"},
	}
	got := DedupeByIdentity(records, ParticipantIdentityPaths)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0]["id"])
	assert.Equal(t, "x", got[1]["name"])
}

func TestDedupeByIdentityTwoPathBehavior(t *testing.T) {
	// 10 records, 2 sharing an id, 1 with no identity: expect 9 back.
	records := make([]map[string]interface{}, 0, 10)
	for i := 1; i <= 8; i++ {
		records = append(records, map[string]interface{}{"player_id": i})
	}
	records = append(records, map[string]interface{}{"player_id": 8}) // duplicate
	records = append(records, map[string]interface{}{"note": "anonymous"})
	got := DedupeByIdentity(records, ParticipantIdentityPaths)
	require.Len(t, got, 9)
	assert.Equal(t, "anonymous", got[8]["note"])
}

func TestDedupeByIdentityIdempotent(t *testing.T) {
	records := []map[string]interface{}{
		{"id": "A"},
		{"id": "a"},
		{"profile": map[string]interface{}{"user_id": 3}},
		{"name": "anon"},
	}
	once := DedupeByIdentity(records, ParticipantIdentityPaths)
	twice := DedupeByIdentity(once, ParticipantIdentityPaths)
	assert.Equal(t, once, twice)
}

func TestDedupeByIdentityCrossFieldCollapse(t *testing.T) {
	// the same person under different identity fields is one occupant
	records := []map[string]interface{}{
		{"id": 1},
		{"invitee_id": 1},
	}
	got := DedupeByIdentity(records, OccupantIdentityPaths)
	assert.Len(t, got, 1)
}

func TestDedupeByIdentityEmptyInput(t *testing.T) {
	assert.Empty(t, DedupeByIdentity(nil, ParticipantIdentityPaths))
	assert.Empty(t, DedupeByIdentity([]map[string]interface{}{}, ParticipantIdentityPaths))
}
