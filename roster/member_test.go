package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberIdentitySetDirectAliases(t *testing.T) {
	member := map[string]interface{}{
		"id":        7,
		"user_id":   "U-7",
		"player_id": "7", // same as id after normalization
	}
	set := MemberIdentitySet(member)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(7))
	assert.True(t, set.Contains("7"))
	assert.True(t, set.Contains("u-7"))
}

func TestMemberIdentitySetNestedContainers(t *testing.T) {
	member := map[string]interface{}{
		"profile": map[string]interface{}{"user_id": 11},
		"account": map[string]interface{}{"member_id": "acct-4"},
		"person":  map[string]interface{}{"id": 12},
	}
	set := MemberIdentitySet(member)
	assert.True(t, set.Contains(11))
	assert.True(t, set.Contains("ACCT-4"))
	assert.True(t, set.Contains(12))
}

func TestMemberIdentitySetMemberships(t *testing.T) {
	member := map[string]interface{}{
		"id": 1,
		"memberships": []interface{}{
			map[string]interface{}{"membership_id": 100, "player_id": 101},
			map[string]interface{}{"membershipId": "M-2"},
		},
		"profile": map[string]interface{}{
			"membership": map[string]interface{}{"id": 200},
		},
	}
	set := MemberIdentitySet(member)
	assert.True(t, set.Contains(100))
	assert.True(t, set.Contains(101))
	assert.True(t, set.Contains("m-2"))
	assert.True(t, set.Contains(200))
}

func TestMemberIdentitySetIdentityLists(t *testing.T) {
	member := map[string]interface{}{
		"identityIds": []interface{}{
			5,
			"six",
			[]interface{}{7, []interface{}{"8"}}, // nested lists flatten
		},
	}
	set := MemberIdentitySet(member)
	assert.True(t, set.Contains(5))
	assert.True(t, set.Contains("SIX"))
	assert.True(t, set.Contains(7))
	assert.True(t, set.Contains(8))
}

func TestMemberMatchesParticipant(t *testing.T) {
	member := map[string]interface{}{"id": 7}
	assert.True(t, MemberMatchesParticipant(member, map[string]interface{}{"player_id": 7}))
	assert.True(t, MemberMatchesParticipant(member, map[string]interface{}{"player_id": "7"}))
	assert.True(t, MemberMatchesParticipant(member, map[string]interface{}{
		"profile": map[string]interface{}{"user_id": 7},
	}))
	// a low-priority alias still matches even when a higher-priority field
	// names something else
	assert.True(t, MemberMatchesParticipant(member, map[string]interface{}{
		"match_participant_id": "row-991",
		"player_id":            7,
	}))
	assert.False(t, MemberMatchesParticipant(member, map[string]interface{}{"player_id": 8}))
	assert.False(t, MemberMatchesParticipant(member, nil))
}

func TestMemberMatchesInvite(t *testing.T) {
	member := map[string]interface{}{"user_id": "abc"}
	assert.True(t, MemberMatchesInvite(member, map[string]interface{}{"invitee_id": "ABC"}))
	assert.True(t, MemberMatchesInvite(member, map[string]interface{}{"invited_user_id": "abc"}))
	assert.False(t, MemberMatchesInvite(member, map[string]interface{}{"invitee_id": "xyz"}))
}

func TestMemberIsMatchHostViaAliasObject(t *testing.T) {
	member := map[string]interface{}{"id": 7}
	match := map[string]interface{}{
		"organizer": map[string]interface{}{
			"profile": map[string]interface{}{"user_id": 7},
		},
	}
	assert.True(t, MemberIsMatchHost(member, match))
}

func TestMemberIsMatchHostViaHostingParticipant(t *testing.T) {
	member := map[string]interface{}{"id": 7}
	match := map[string]interface{}{
		"participants": []interface{}{
			map[string]interface{}{"player_id": 9, "status": "confirmed"},
			map[string]interface{}{"player_id": 7, "status": "hosting"},
		},
	}
	assert.True(t, MemberIsMatchHost(member, match))
}

func TestMemberIsMatchHostViaDirectField(t *testing.T) {
	member := map[string]interface{}{"id": "H-1"}
	assert.True(t, MemberIsMatchHost(member, map[string]interface{}{"host_id": "h-1"}))
	assert.True(t, MemberIsMatchHost(member, map[string]interface{}{"created_by": "H-1"}))
	assert.False(t, MemberIsMatchHost(member, map[string]interface{}{"host_id": "h-2"}))
	assert.False(t, MemberIsMatchHost(member, nil))
	assert.False(t, MemberIsMatchHost(nil, map[string]interface{}{"host_id": "h-1"}))
}

func TestMatchHostIdentitySetRoleToken(t *testing.T) {
	match := map[string]interface{}{
		"matchParticipants": []map[string]interface{}{
			{"participant_id": 31, "role": "host"},
			{"participant_id": 32, "role": "player"},
		},
	}
	set := MatchHostIdentitySet(match)
	assert.True(t, set.Contains(31))
	assert.False(t, set.Contains(32))
}

func TestIdentitySetIntersects(t *testing.T) {
	a := NewIdentitySet()
	require.True(t, a.Add(1))
	require.True(t, a.Add("x"))
	b := NewIdentitySet()
	require.True(t, b.Add("X"))
	assert.True(t, a.Intersects(b))

	c := NewIdentitySet()
	c.Add(2)
	assert.False(t, a.Intersects(c))
	assert.False(t, a.Intersects(NewIdentitySet()))
}
