package roster

// The API that feeds this package is inconsistent about field names: the same
// concept arrives under different keys depending on the endpoint and its
// vintage. Every concept therefore gets a ranked key-path table, consumed by
// ExtractIdentity, instead of ad-hoc field checks scattered through the logic.
// Earlier entries outrank later ones.

// ParticipantIdentityPaths resolves the identity of a seated participant.
// A dedicated participant id outranks a generic "id".
var ParticipantIdentityPaths = []string{
	"match_participant_id", "matchParticipantId",
	"participant_id", "participantId",
	"player_id", "playerId",
	"invitee_id", "inviteeId",
	"id",
	"profile.id",
	"profile.player_id", "profile.playerId",
	"profile.user_id", "profile.userId",
}

// InviteeIdentityPaths resolves the identity of an invited (not necessarily
// seated) player.
var InviteeIdentityPaths = []string{
	"invitee_id", "inviteeId",
	"invited_user_id", "invitedUserId",
	"player_id", "playerId",
	"user_id", "userId",
	"id",
	"profile.id",
	"profile.player_id", "profile.playerId",
	"profile.user_id", "profile.userId",
}

// OccupantIdentityPaths is used when participants and invitees are merged
// into a single occupant list, so it probes both vocabularies.
var OccupantIdentityPaths = []string{
	"match_participant_id", "matchParticipantId",
	"participant_id", "participantId",
	"player_id", "playerId",
	"invitee_id", "inviteeId",
	"invited_user_id", "invitedUserId",
	"user_id", "userId",
	"id",
	"profile.id",
	"profile.player_id", "profile.playerId",
	"profile.user_id", "profile.userId",
}

// statusFields carry free-form participant/invitee status strings.
var statusFields = []string{
	"status",
	"participant_status", "participantStatus",
	"status_reason", "statusReason",
}

// activeFlagFields are explicit booleans; false means inactive.
var activeFlagFields = []string{"is_active", "isActive", "active"}

// departureFields mark that a participant left the match; presence of any
// non-empty value makes the record inactive regardless of its status string.
var departureFields = []string{
	"left_at", "leftAt",
	"removed_at", "removedAt",
	"cancelled_at", "cancelledAt",
	"canceled_at", "canceledAt",
	"declined_at", "declinedAt",
	"withdrawn_at", "withdrawnAt",
}

// confirmationFlagFields and confirmationTimeFields are the positive signals
// that turn an invitee into an occupant.
var confirmationFlagFields = []string{
	"confirmed",
	"is_confirmed", "isConfirmed",
	"has_confirmed", "hasConfirmed",
}

var confirmationTimeFields = []string{"confirmed_at", "confirmedAt"}

// hostAliasFields are direct host identifiers on a match payload.
var hostAliasFields = []string{
	"host_id", "hostId",
	"host_user_id", "hostUserId",
	"organizer_id", "organizerId",
	"creator_id", "creatorId",
	"created_by", "createdBy",
	"owner_id", "ownerId",
}

// hostObjectFields are embedded objects that denote the host; each is as
// alias-rich as a member record and is expanded the same way.
var hostObjectFields = []string{"host", "organizer", "creator", "owner"}

// memberAliasFields are the direct identity aliases of a member record, also
// probed on each nested container and membership record.
var memberAliasFields = []string{
	"id",
	"user_id", "userId",
	"player_id", "playerId",
	"member_id", "memberId",
}

// memberContainerFields nest a sub-object that repeats the member aliases.
var memberContainerFields = []string{"profile", "account", "person", "member", "user"}

// membershipFields hold membership records, each carrying its own alias ids.
var membershipFields = []string{"memberships", "membership"}

var membershipIDFields = []string{"membership_id", "membershipId"}

// identityListFields are explicit, possibly nested, lists of identifiers.
var identityListFields = []string{"identityIds", "identity", "identityHints"}

// roleFields may flag a participant as the match host.
var roleFields = []string{"status", "role", "participant_status", "participantStatus"}

// participantCollectionFields are the known homes of participant lists on a
// match payload; the suggestion scanner still traverses everything else.
var participantCollectionFields = []string{
	"participants",
	"match_participants", "matchParticipants",
	"invitees",
}

// NameFieldPaths resolve a display name for a participant record.
var NameFieldPaths = []string{
	"full_name", "fullName",
	"display_name", "displayName",
	"name",
	"profile.full_name", "profile.fullName",
	"profile.display_name", "profile.displayName",
	"profile.name",
}

// startTimeFields resolve the start moment of a match payload.
var startTimeFields = []string{
	"start_date_time", "startDateTime",
	"start_time", "startTime",
	"scheduled_at", "scheduledAt",
	"start_date", "startDate",
	"match_date", "matchDate",
	"date",
}
