package roster

import "strings"

// inactiveStatusTokens is the vocabulary of statuses that mean a participant
// no longer holds a seat. "pending" and "invited" are inactive here on
// purpose: a participant record in one of those states has not joined yet,
// while an invitee in the same state is merely not-yet-counted (see
// IsConfirmedInvitee). Do not unify the two readings.
var inactiveStatusTokens = map[string]bool{
	"left":      true,
	"removed":   true,
	"cancelled": true,
	"canceled":  true,
	"declined":  true,
	"rejected":  true,
	"withdrawn": true,
	"expired":   true,
	"pending":   true,
	"invited":   true,
}

// IsActiveParticipant reports whether a participant record still occupies a
// seat. Any negative signal wins: an explicit false active flag, a status
// string from the inactive vocabulary under any known spelling, or any
// non-empty departure timestamp. The API is inconsistent about which signal
// it sets, so all of them are checked.
func IsActiveParticipant(record map[string]interface{}) bool {
	if record == nil {
		return false
	}
	for _, field := range activeFlagFields {
		if flag, ok := record[field].(bool); ok && !flag {
			return false
		}
	}
	for _, field := range statusFields {
		token, ok := statusToken(record[field])
		if ok && inactiveStatusTokens[token] {
			return false
		}
	}
	for _, field := range departureFields {
		if fieldPresent(record, field) {
			return false
		}
	}
	return true
}

// IsConfirmedInvitee reports whether an invitee record counts toward
// occupancy. It needs a positive confirmation signal (a "confirmed" status
// token, a true confirmation flag, or a confirmation timestamp) and must
// simultaneously pass every active-participant test: a confirmed invite that
// was later cancelled or left does not count.
func IsConfirmedInvitee(record map[string]interface{}) bool {
	if record == nil || !hasConfirmationSignal(record) {
		return false
	}
	return IsActiveParticipant(record)
}

func hasConfirmationSignal(record map[string]interface{}) bool {
	for _, field := range statusFields {
		raw, ok := record[field].(string)
		if !ok {
			continue
		}
		lower := strings.ToLower(raw)
		if strings.Contains(lower, "unconfirm") {
			continue
		}
		for _, token := range splitStatusTokens(lower) {
			if token == "confirmed" {
				return true
			}
		}
	}
	for _, field := range confirmationFlagFields {
		if flag, ok := record[field].(bool); ok && flag {
			return true
		}
	}
	for _, field := range confirmationTimeFields {
		if fieldPresent(record, field) {
			return true
		}
	}
	return false
}

// statusToken lowercases a status value and strips separators, so
// "Left-Match" never matches but "LEFT", "left " and "le_ft" all normalize
// to the same vocabulary entry.
func statusToken(value interface{}) (string, bool) {
	raw, ok := value.(string)
	if !ok {
		return "", false
	}
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// splitStatusTokens tokenizes a status string on non-alphanumeric boundaries.
func splitStatusTokens(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}

// fieldPresent reports whether a field carries a meaningful value: present,
// non-nil, and not a blank string.
func fieldPresent(record map[string]interface{}, field string) bool {
	value, ok := record[field]
	if !ok || value == nil {
		return false
	}
	if s, isString := value.(string); isString {
		return strings.TrimSpace(s) != ""
	}
	return true
}
