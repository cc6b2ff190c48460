package models

// PlayerProfile defines the structure for player profiles
type PlayerProfile struct {
	UserID     string   `dynamodbav:"userId" json:"userId"`
	FullName   string   `dynamodbav:"fullName,omitempty" json:"fullName,omitempty"`
	Email      string   `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Phone      string   `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	NTRPRating float64  `dynamodbav:"ntrpRating,omitempty" json:"ntrpRating,omitempty"`
	Bio        string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	HomeCourts []string `dynamodbav:"homeCourts,omitempty" json:"homeCourts,omitempty"`
	Photos     []string `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	CreatedAt  string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// PlayerProfilesTable is the DynamoDB table name for player profiles
const PlayerProfilesTable = "PlayerProfiles"
