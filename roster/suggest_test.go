package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selfSet(id interface{}) IdentitySet {
	set := NewIdentitySet()
	set.Add(id)
	return set
}

func TestSuggestPartnersRanksByRecency(t *testing.T) {
	matches := []map[string]interface{}{
		{
			"start_date_time": "2024-05-01T10:00:00Z",
			"participants": []interface{}{
				map[string]interface{}{"player_id": 1, "status": "confirmed"},
				map[string]interface{}{"player_id": 2, "status": "confirmed", "full_name": "Ana"},
			},
		},
		{
			"start_date_time": "2024-05-20T10:00:00Z",
			"participants": []interface{}{
				map[string]interface{}{"player_id": 1, "status": "confirmed"},
				map[string]interface{}{"player_id": 3, "status": "confirmed", "full_name": "Bo"},
			},
		},
	}
	got := SuggestPartners(matches, selfSet(1))
	require.Len(t, got, 2)
	assert.Equal(t, "Bo", got[0].Name)
	assert.Equal(t, "Ana", got[1].Name)
	require.NotNil(t, got[0].LastPlayedAt)
	assert.Equal(t, time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC), got[0].LastPlayedAt.UTC())
}

func TestSuggestPartnersKeepsMostRecentSighting(t *testing.T) {
	matches := []map[string]interface{}{
		{
			"start_date_time": "2024-05-01T10:00:00Z",
			"participants": []interface{}{
				map[string]interface{}{"player_id": 2, "status": "confirmed", "full_name": "Old Name"},
			},
		},
		{
			"start_date_time": "2024-06-01T10:00:00Z",
			"participants": []interface{}{
				map[string]interface{}{"player_id": 2, "status": "confirmed", "full_name": "New Name"},
			},
		},
	}
	got := SuggestPartners(matches, selfSet(1))
	require.Len(t, got, 1)
	assert.Equal(t, "New Name", got[0].Name)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), got[0].LastPlayedAt.UTC())
}

func TestSuggestPartnersExcludesSelfAndInactive(t *testing.T) {
	matches := []map[string]interface{}{
		{
			"start_date_time": "2024-05-01T10:00:00Z",
			"participants": []interface{}{
				map[string]interface{}{"player_id": 1, "status": "confirmed"},
				map[string]interface{}{"player_id": 2, "status": "left"},
				map[string]interface{}{"player_id": 3, "status": "confirmed", "left_at": "2024-05-01"},
				map[string]interface{}{"player_id": 4, "status": "confirmed"},
			},
		},
	}
	got := SuggestPartners(matches, selfSet(1))
	require.Len(t, got, 1)
	assert.Equal(t, float64(4), got[0].ID)
}

func TestSuggestPartnersFindsNestedCollections(t *testing.T) {
	// participant lists appear at inconsistent depths across endpoints
	matches := []map[string]interface{}{
		{
			"startDateTime": "2024-04-01T09:00:00Z",
			"match": map[string]interface{}{
				"matchParticipants": []interface{}{
					map[string]interface{}{"match_participant_id": 55, "player_id": 9, "status": "confirmed"},
				},
			},
		},
	}
	got := SuggestPartners(matches, selfSet(1))
	require.Len(t, got, 1)
	assert.Equal(t, float64(55), got[0].ID)
}

func TestSuggestPartnersNameFallback(t *testing.T) {
	matches := []map[string]interface{}{
		{
			"start_date_time": "2024-05-01T10:00:00Z",
			"participants": []interface{}{
				map[string]interface{}{"player_id": 42, "status": "confirmed"},
				map[string]interface{}{
					"player_id": 43,
					"status":    "confirmed",
					"profile":   map[string]interface{}{"first_name": "Rene", "last_name": "Park"},
				},
			},
		},
	}
	got := SuggestPartners(matches, selfSet(1))
	require.Len(t, got, 2)
	names := []string{got[0].Name, got[1].Name}
	assert.Contains(t, names, "Player 42")
	assert.Contains(t, names, "Rene Park")
}

func TestSuggestPartnersUnknownStartRanksLast(t *testing.T) {
	matches := []map[string]interface{}{
		{
			// no parseable start moment
			"participants": []interface{}{
				map[string]interface{}{"player_id": 2, "status": "confirmed", "name": "Undated"},
			},
		},
		{
			"start_date_time": "2024-01-01T10:00:00Z",
			"participants": []interface{}{
				map[string]interface{}{"player_id": 3, "status": "confirmed", "name": "Dated"},
			},
		},
	}
	got := SuggestPartners(matches, selfSet(1))
	require.Len(t, got, 2)
	assert.Equal(t, "Dated", got[0].Name)
	assert.Equal(t, "Undated", got[1].Name)
	assert.Nil(t, got[1].LastPlayedAt)
}

func TestSuggestPartnersSurvivesCyclicPayloads(t *testing.T) {
	match := map[string]interface{}{
		"start_date_time": "2024-05-01T10:00:00Z",
		"participants": []interface{}{
			map[string]interface{}{"player_id": 2, "status": "confirmed"},
		},
	}
	match["self_reference"] = match // cycle

	got := SuggestPartners([]map[string]interface{}{match}, selfSet(1))
	assert.Len(t, got, 1)
}

func TestMatchIncludesMember(t *testing.T) {
	match := map[string]interface{}{
		"participants": []interface{}{
			map[string]interface{}{"player_id": 7, "status": "confirmed"},
		},
	}
	assert.True(t, MatchIncludesMember(match, selfSet(7)))
	assert.True(t, MatchIncludesMember(match, selfSet("7")))
	assert.False(t, MatchIncludesMember(match, selfSet(8)))
	assert.False(t, MatchIncludesMember(nil, selfSet(7)))
}

func TestLooksLikeParticipant(t *testing.T) {
	assert.True(t, looksLikeParticipant(map[string]interface{}{"player_id": 1, "status": "confirmed"}))
	assert.True(t, looksLikeParticipant(map[string]interface{}{"id": 1, "profile": map[string]interface{}{}}))
	// identity without context is just an arbitrary object
	assert.False(t, looksLikeParticipant(map[string]interface{}{"id": 1}))
	// context without identity is not a participant
	assert.False(t, looksLikeParticipant(map[string]interface{}{"status": "confirmed"}))
	// an object holding participant collections is a container
	assert.False(t, looksLikeParticipant(map[string]interface{}{
		"id":           1,
		"status":       "upcoming",
		"participants": []interface{}{},
	}))
}
