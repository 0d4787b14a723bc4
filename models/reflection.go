package models

import "time"

// Reflection is one user's report after attempting a challenge.
// Immutable once created.
type Reflection struct {
	ID          string    `bson:"_id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	ChallengeID string    `bson:"challenge_id" json:"challenge_id"`
	MoodBefore  int       `bson:"mood_before" json:"mood_before"` // 1..5
	MoodAfter   int       `bson:"mood_after" json:"mood_after"`   // 1..5
	Note        string    `bson:"note,omitempty" json:"note,omitempty"`
	IsPublic    bool      `bson:"is_public" json:"is_public"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
