package roster

import (
	"reflect"
	"sort"
	"strings"
	"time"
)

// RankedPlayer is a recently-played partner, ranked by the most recent match
// shared with the viewer.
type RankedPlayer struct {
	ID           interface{} `json:"id"`
	Name         string      `json:"name"`
	LastPlayedAt *time.Time  `json:"lastPlayedAt"`
}

// maxScanDepth bounds the recursive participant scan; real payloads nest
// participant collections two or three levels down at most.
const maxScanDepth = 8

// SuggestPartners scans past matches for eligible partners of the viewer:
// every participant-looking record anywhere in each match payload that is
// active and not the viewer. Each partner keeps the most recent match start
// seen (matches without a parseable start rank earliest) and the result is
// ordered most-recent first. The recursive scan exists because the API nests
// participant collections at inconsistent depths.
func SuggestPartners(matches []map[string]interface{}, selfIDs IdentitySet) []RankedPlayer {
	type partner struct {
		player   RankedPlayer
		lastSeen time.Time
		hasSeen  bool
		order    int
	}
	best := make(map[string]*partner)
	order := 0

	for _, match := range matches {
		if match == nil {
			continue
		}
		startAt, hasStart := MatchStartTime(match)
		visited := make(map[uintptr]bool)
		var records []map[string]interface{}
		collectParticipantRecords(match, visited, 0, true, &records)

		for _, record := range records {
			if !IsActiveParticipant(record) {
				continue
			}
			if selfIDs.MatchesRecord(record, ParticipantIdentityPaths) {
				continue
			}
			identity := ExtractIdentity(record, ParticipantIdentityPaths)
			if identity == nil {
				continue
			}
			key, _ := IdentityKey(identity)
			existing, seen := best[key]
			if !seen {
				best[key] = &partner{
					player:   RankedPlayer{ID: identity, Name: displayName(record, identity)},
					lastSeen: startAt,
					hasSeen:  hasStart,
					order:    order,
				}
				order++
				if hasStart {
					at := startAt
					best[key].player.LastPlayedAt = &at
				}
				continue
			}
			if hasStart && (!existing.hasSeen || startAt.After(existing.lastSeen)) {
				existing.lastSeen = startAt
				existing.hasSeen = true
				at := startAt
				existing.player.LastPlayedAt = &at
				if name := displayName(record, identity); name != "" {
					existing.player.Name = name
				}
			}
		}
	}

	ranked := make([]*partner, 0, len(best))
	for _, p := range best {
		ranked = append(ranked, p)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.hasSeen != b.hasSeen {
			return a.hasSeen // unknown start moments rank as earliest
		}
		if a.hasSeen && !a.lastSeen.Equal(b.lastSeen) {
			return a.lastSeen.After(b.lastSeen)
		}
		return a.order < b.order
	})

	players := make([]RankedPlayer, len(ranked))
	for i, p := range ranked {
		players[i] = p.player
	}
	return players
}

// MatchIncludesMember reports whether any participant-looking record in the
// match payload belongs to the given identity set.
func MatchIncludesMember(match map[string]interface{}, ids IdentitySet) bool {
	if match == nil || ids.Len() == 0 {
		return false
	}
	visited := make(map[uintptr]bool)
	var records []map[string]interface{}
	collectParticipantRecords(match, visited, 0, true, &records)
	for _, record := range records {
		if ids.MatchesRecord(record, ParticipantIdentityPaths) {
			return true
		}
	}
	return false
}

// collectParticipantRecords walks arbitrarily nested maps and slices,
// collecting every object that looks like a participant record. The
// predicate doubles as the recursion's stopping condition: once a record is
// collected its interior is not scanned further. The root object is always
// traversed, never collected, since a match payload itself carries an id and
// a status. The visited set guards against cyclic or repeated references.
func collectParticipantRecords(value interface{}, visited map[uintptr]bool, depth int, isRoot bool, out *[]map[string]interface{}) {
	if depth > maxScanDepth {
		return
	}
	switch v := value.(type) {
	case map[string]interface{}:
		if !markVisited(v, visited) {
			return
		}
		if !isRoot && looksLikeParticipant(v) {
			*out = append(*out, v)
			return
		}
		for _, key := range sortedKeys(v) {
			collectParticipantRecords(v[key], visited, depth+1, false, out)
		}
	case []interface{}:
		if !markVisited(v, visited) {
			return
		}
		for _, item := range v {
			collectParticipantRecords(item, visited, depth+1, false, out)
		}
	case []map[string]interface{}:
		for _, item := range v {
			collectParticipantRecords(item, visited, depth+1, false, out)
		}
	}
}

// looksLikeParticipant distinguishes a participant record from an arbitrary
// nested object: it must carry a resolvable identity plus at least one
// contextual field (status, profile, role, or a lifecycle timestamp), and an
// object holding participant collections of its own is a container, not a
// participant.
func looksLikeParticipant(record map[string]interface{}) bool {
	for _, field := range participantCollectionFields {
		if _, ok := record[field]; ok {
			return false
		}
	}
	if ExtractIdentity(record, ParticipantIdentityPaths) == nil {
		return false
	}
	return hasParticipantContext(record)
}

var participantContextFields = buildParticipantContextFields()

func buildParticipantContextFields() []string {
	fields := []string{"profile", "role", "joined_at", "joinedAt"}
	fields = append(fields, statusFields...)
	fields = append(fields, departureFields...)
	fields = append(fields, confirmationTimeFields...)
	return fields
}

func hasParticipantContext(record map[string]interface{}) bool {
	for _, field := range participantContextFields {
		if _, ok := record[field]; ok {
			return true
		}
	}
	return false
}

// displayName derives a partner's display name from the ranked name fields,
// a first/last name pair, or a "Player <id>" fallback.
func displayName(record map[string]interface{}, identity interface{}) string {
	for _, path := range NameFieldPaths {
		raw, ok := lookupPath(record, path)
		if !ok {
			continue
		}
		if name, isString := raw.(string); isString {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				return trimmed
			}
		}
	}
	if name := firstLastName(record); name != "" {
		return name
	}
	if sub, ok := record["profile"].(map[string]interface{}); ok {
		if name := firstLastName(sub); name != "" {
			return name
		}
	}
	return "Player " + FormatIdentity(identity)
}

func firstLastName(record map[string]interface{}) string {
	first, _ := stringField(record, "first_name", "firstName")
	last, _ := stringField(record, "last_name", "lastName")
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func stringField(record map[string]interface{}, fields ...string) (string, bool) {
	for _, field := range fields {
		if s, ok := record[field].(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}

func markVisited(value interface{}, visited map[uintptr]bool) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return false
		}
		ptr := rv.Pointer()
		if visited[ptr] {
			return false
		}
		visited[ptr] = true
	}
	return true
}

func sortedKeys(record map[string]interface{}) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
