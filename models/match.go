package models

// Match represents a scheduled play date. Participant entries are stored as
// loosely-structured records because they arrive from several endpoint
// generations with differing field names; the roster package owns their
// interpretation.
type Match struct {
	MatchID       string                   `dynamodbav:"matchId" json:"matchId"` // Partition Key (PK)
	Status        string                   `dynamodbav:"status" json:"status"`
	HostID        string                   `dynamodbav:"hostId" json:"hostId"`
	StartDateTime string                   `dynamodbav:"startDateTime" json:"startDateTime"`
	PlayerLimit   int                      `dynamodbav:"playerLimit" json:"playerLimit"`
	Location      string                   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	SkillLevel    string                   `dynamodbav:"skillLevel,omitempty" json:"skillLevel,omitempty"`
	Notes         string                   `dynamodbav:"notes,omitempty" json:"notes,omitempty"`
	Participants  []map[string]interface{} `dynamodbav:"participants,omitempty" json:"participants,omitempty"`
	CreatedAt     string                   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt     string                   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Match Status Constants
const (
	MatchStatusUpcoming  = "upcoming"
	MatchStatusCompleted = "completed"
	MatchStatusCancelled = "cancelled"
)

// Participant Status Constants
const (
	ParticipantStatusConfirmed = "confirmed"
	ParticipantStatusHosting   = "hosting"
	ParticipantStatusLeft      = "left"
)

// TableName returns the DynamoDB table name for the Match model
func (Match) TableName() string {
	return "Matches"
}
