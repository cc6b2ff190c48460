package roster

import (
	"math"
	"strings"
	"time"
)

// Alert severity tiers, by time remaining before the match starts.
const (
	AlertSeverityUrgent  = "urgent"  // 12 hours or less
	AlertSeverityWarning = "warning" // 24 hours or less
	AlertSeveritySoon    = "soon"    // within the lookahead window
)

// DefaultAlertLookaheadHours bounds how far ahead a match may start and still
// produce an alert.
const DefaultAlertLookaheadHours = 48

// LowOccupancyAlert signals that a near-term match still lacks committed
// players after accounting for pending invite coverage.
type LowOccupancyAlert struct {
	Severity          string  `json:"severity"`
	OpenSpots         int     `json:"openSpots"`
	InviteCoverage    int     `json:"inviteCoverage"`
	Shortfall         int     `json:"shortfall"`
	ParticipantCount  int     `json:"participantCount"`
	InviteeCount      int     `json:"inviteeCount"`
	CombinedPotential int     `json:"combinedPotential"`
	HoursUntilStart   float64 `json:"hoursUntilStart"`
	MatchTime         string  `json:"matchTime"`
	PlayerLimit       int     `json:"playerLimit"`
	LookaheadHours    float64 `json:"lookaheadHours"`
}

// EvaluateLowOccupancyAlert decides whether a "needs more players" alert
// should fire for a match. It fails closed: no alert unless the match status
// is empty or "upcoming", the player limit is a finite positive number, the
// start time parses, and the start falls within [now, now+lookaheadHours].
// An alert is suppressed when the match is full or when pending confirmed
// invites already cover every open spot.
func EvaluateLowOccupancyAlert(
	status string,
	playerLimit interface{},
	startDateTime interface{},
	participants, invitees []map[string]interface{},
	now time.Time,
	lookaheadHours float64,
) *LowOccupancyAlert {
	normalizedStatus := strings.ToLower(strings.TrimSpace(status))
	if normalizedStatus != "" && normalizedStatus != "upcoming" {
		return nil
	}
	limit, ok := positivePlayerLimit(playerLimit)
	if !ok {
		return nil
	}
	start, ok := ParseTime(startDateTime)
	if !ok {
		return nil
	}
	if lookaheadHours <= 0 || math.IsNaN(lookaheadHours) || math.IsInf(lookaheadHours, 0) {
		lookaheadHours = DefaultAlertLookaheadHours
	}
	hoursUntilStart := start.Sub(now).Hours()
	if math.IsNaN(hoursUntilStart) || math.IsInf(hoursUntilStart, 0) {
		return nil
	}
	if hoursUntilStart < 0 || hoursUntilStart > lookaheadHours {
		return nil
	}

	active := DedupeByIdentity(filterRecords(participants, IsActiveParticipant), ParticipantIdentityPaths)
	confirmed := DedupeByIdentity(filterRecords(invitees, IsConfirmedInvitee), InviteeIdentityPaths)
	combined := make([]map[string]interface{}, 0, len(active)+len(confirmed))
	combined = append(combined, active...)
	combined = append(combined, confirmed...)
	combinedCount := len(DedupeByIdentity(combined, OccupantIdentityPaths))

	activeCount := len(active)
	inviteCoverage := combinedCount - activeCount
	if inviteCoverage < 0 {
		inviteCoverage = 0
	}
	openSpots := int(limit) - activeCount
	if openSpots < 0 {
		openSpots = 0
	}
	if openSpots <= 0 || inviteCoverage >= openSpots {
		return nil
	}
	shortfall := openSpots - inviteCoverage
	if shortfall <= 0 {
		return nil
	}

	severity := AlertSeveritySoon
	switch {
	case hoursUntilStart <= 12:
		severity = AlertSeverityUrgent
	case hoursUntilStart <= 24:
		severity = AlertSeverityWarning
	}

	return &LowOccupancyAlert{
		Severity:          severity,
		OpenSpots:         openSpots,
		InviteCoverage:    inviteCoverage,
		Shortfall:         shortfall,
		ParticipantCount:  activeCount,
		InviteeCount:      len(confirmed),
		CombinedPotential: combinedCount,
		HoursUntilStart:   hoursUntilStart,
		MatchTime:         start.UTC().Format(time.RFC3339),
		PlayerLimit:       int(limit),
		LookaheadHours:    lookaheadHours,
	}
}
