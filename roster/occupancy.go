package roster

import "math"

// Occupants combines active participants and confirmed invitees into a single
// list of unique seat-holders. A person who is simultaneously an active
// participant and a confirmed invitee counts once; the participant record
// wins because the active set is deduped first.
func Occupants(participants, invitees []map[string]interface{}) []map[string]interface{} {
	active := DedupeByIdentity(filterRecords(participants, IsActiveParticipant), ParticipantIdentityPaths)
	confirmed := DedupeByIdentity(filterRecords(invitees, IsConfirmedInvitee), InviteeIdentityPaths)
	if len(confirmed) == 0 {
		return active
	}
	if len(active) == 0 {
		return confirmed
	}
	combined := make([]map[string]interface{}, 0, len(active)+len(confirmed))
	combined = append(combined, active...)
	combined = append(combined, confirmed...)
	return DedupeByIdentity(combined, OccupantIdentityPaths)
}

// RemainingSpots derives open capacity against a player limit. A limit that
// is absent, non-numeric, non-finite, or non-positive means occupancy is
// unknown, reported as ok=false: rendering "0 remaining" in that case would
// be a false "full" signal.
func RemainingSpots(playerLimit interface{}, occupantCount int) (int, bool) {
	limit, ok := positivePlayerLimit(playerLimit)
	if !ok {
		return 0, false
	}
	remaining := int(limit) - occupantCount
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// positivePlayerLimit coerces a loosely-typed player limit into a finite
// positive number.
func positivePlayerLimit(value interface{}) (float64, bool) {
	norm, ok := NormalizeIdentity(value)
	if !ok {
		return 0, false
	}
	limit, isNumber := norm.(float64)
	if !isNumber || math.IsNaN(limit) || math.IsInf(limit, 0) || limit <= 0 {
		return 0, false
	}
	return limit, true
}
