package models

// Invite represents an invitation for a player to join a match. An invite
// only counts toward occupancy once it carries a confirmation signal.
type Invite struct {
	MatchID     string `dynamodbav:"matchId" json:"matchId"`     // Partition Key (PK)
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"` // Sort Key (SK)
	InviteID    string `dynamodbav:"inviteId" json:"inviteId"`
	InviterID   string `dynamodbav:"inviterId" json:"inviterId"`
	InviteeID   string `dynamodbav:"inviteeId" json:"inviteeId"`
	Status      string `dynamodbav:"status" json:"status"`
	ConfirmedAt string `dynamodbav:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	DeclinedAt  string `dynamodbav:"declinedAt,omitempty" json:"declinedAt,omitempty"`
	ExpiresAt   string `dynamodbav:"expiresAt,omitempty" json:"expiresAt,omitempty"`
}

// Invite Status Constants
const (
	InviteStatusPending   = "pending"
	InviteStatusConfirmed = "confirmed"
	InviteStatusDeclined  = "declined"
	InviteStatusExpired   = "expired"
)

// InviteeIndex is the GSI used to look up invites by the invited player
const InviteeIndex = "InviteeIndex"

// TableName returns the DynamoDB table name for the Invite model
func (Invite) TableName() string {
	return "MatchInvites"
}
