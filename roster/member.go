package roster

// IdentitySet holds every identifier known to denote one real-world person,
// keyed by canonical identity. The signed-in member's set is computed once
// (MemberIdentitySet) and passed explicitly into every comparison instead of
// being re-derived ad hoc.
type IdentitySet struct {
	keys map[string]bool
}

// NewIdentitySet returns an empty set.
func NewIdentitySet() IdentitySet {
	return IdentitySet{keys: make(map[string]bool)}
}

// Add normalizes a raw identifier into the set. Values that carry no usable
// identity are ignored and reported as false.
func (s IdentitySet) Add(value interface{}) bool {
	key, ok := IdentityKey(value)
	if !ok {
		return false
	}
	s.keys[key] = true
	return true
}

// Contains reports whether a raw identifier normalizes to a member of the set.
func (s IdentitySet) Contains(value interface{}) bool {
	key, ok := IdentityKey(value)
	return ok && s.keys[key]
}

// Len returns the number of distinct identities in the set.
func (s IdentitySet) Len() int {
	return len(s.keys)
}

// Intersects reports whether the two sets share any identity.
func (s IdentitySet) Intersects(other IdentitySet) bool {
	small, large := s.keys, other.keys
	if len(large) < len(small) {
		small, large = large, small
	}
	for key := range small {
		if large[key] {
			return true
		}
	}
	return false
}

// MatchesRecord reports whether any identity resolvable from the record
// through keyPaths belongs to the set. Every path is probed, not just the
// first match: a record may expose the viewer's id under a low-priority
// alias while a higher-priority field names someone else's join row.
func (s IdentitySet) MatchesRecord(record map[string]interface{}, keyPaths []string) bool {
	if record == nil {
		return false
	}
	for _, path := range keyPaths {
		raw, ok := lookupPath(record, path)
		if !ok {
			continue
		}
		if s.Contains(raw) {
			return true
		}
	}
	return false
}

// MemberIdentitySet builds the full identity set of the signed-in member:
// direct alias fields, the same aliases on each nested
// profile/account/person/member/user sub-object, ids carried by membership
// records, and any explicit identity list, recursively flattened.
func MemberIdentitySet(member map[string]interface{}) IdentitySet {
	set := NewIdentitySet()
	collectMemberAliases(member, set)
	return set
}

const maxIdentityListDepth = 6

func collectMemberAliases(record map[string]interface{}, set IdentitySet) {
	if record == nil {
		return
	}
	addDirectAliases(record, set)
	collectMembershipIDs(record, set)
	for _, field := range memberContainerFields {
		sub, ok := record[field].(map[string]interface{})
		if !ok {
			continue
		}
		addDirectAliases(sub, set)
		collectMembershipIDs(sub, set)
	}
	for _, field := range identityListFields {
		addIdentityList(record[field], set, 0)
	}
}

func addDirectAliases(record map[string]interface{}, set IdentitySet) {
	for _, field := range memberAliasFields {
		if value, ok := record[field]; ok {
			set.Add(value)
		}
	}
}

func collectMembershipIDs(record map[string]interface{}, set IdentitySet) {
	for _, field := range membershipFields {
		switch v := record[field].(type) {
		case []interface{}:
			for _, entry := range v {
				if m, ok := entry.(map[string]interface{}); ok {
					addMembershipAliases(m, set)
				}
			}
		case []map[string]interface{}:
			for _, m := range v {
				addMembershipAliases(m, set)
			}
		case map[string]interface{}:
			addMembershipAliases(v, set)
		}
	}
}

func addMembershipAliases(membership map[string]interface{}, set IdentitySet) {
	addDirectAliases(membership, set)
	for _, field := range membershipIDFields {
		if value, ok := membership[field]; ok {
			set.Add(value)
		}
	}
}

func addIdentityList(value interface{}, set IdentitySet, depth int) {
	if value == nil || depth > maxIdentityListDepth {
		return
	}
	switch v := value.(type) {
	case []interface{}:
		for _, item := range v {
			addIdentityList(item, set, depth+1)
		}
	case map[string]interface{}:
		// an identity hint may itself be an alias-rich object
		addDirectAliases(v, set)
	default:
		set.Add(value)
	}
}

// MemberMatchesParticipant reports whether the participant record is the
// given member.
func MemberMatchesParticipant(member, participant map[string]interface{}) bool {
	return MemberIdentitySet(member).MatchesRecord(participant, ParticipantIdentityPaths)
}

// MemberMatchesInvite reports whether the invitee record is the given member.
func MemberMatchesInvite(member, invite map[string]interface{}) bool {
	return MemberIdentitySet(member).MatchesRecord(invite, InviteeIdentityPaths)
}

// MatchHostIdentitySet resolves every identifier that may denote the match's
// host: direct host alias fields, embedded host/organizer/creator/owner
// objects (expanded like member records, since a host object is just as
// alias-rich), and any participant flagged with a hosting status or role.
func MatchHostIdentitySet(match map[string]interface{}) IdentitySet {
	set := NewIdentitySet()
	if match == nil {
		return set
	}
	for _, field := range hostAliasFields {
		if value, ok := match[field]; ok {
			set.Add(value)
		}
	}
	for _, field := range hostObjectFields {
		if sub, ok := match[field].(map[string]interface{}); ok {
			collectMemberAliases(sub, set)
		}
	}
	for _, field := range participantCollectionFields {
		for _, participant := range recordList(match[field]) {
			if !hasHostingRole(participant) {
				continue
			}
			for _, path := range ParticipantIdentityPaths {
				if value, ok := lookupPath(participant, path); ok {
					set.Add(value)
				}
			}
		}
	}
	return set
}

// MemberIsMatchHost reports whether the member's identity set intersects the
// match's host identity set.
func MemberIsMatchHost(member, match map[string]interface{}) bool {
	memberIDs := MemberIdentitySet(member)
	if memberIDs.Len() == 0 {
		return false
	}
	return memberIDs.Intersects(MatchHostIdentitySet(match))
}

func hasHostingRole(participant map[string]interface{}) bool {
	for _, field := range roleFields {
		token, ok := statusToken(participant[field])
		if ok && (token == "hosting" || token == "host") {
			return true
		}
	}
	return false
}

// recordList tolerates both decoded-JSON ([]interface{}) and native
// ([]map[string]interface{}) participant collections.
func recordList(value interface{}) []map[string]interface{} {
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
