package models

import "time"

// Group is a small circle of users doing challenges together.
// Members join with a short invite code.
type Group struct {
	ID                 string    `bson:"_id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Code               string    `bson:"code" json:"code"`
	OwnerID            string    `bson:"owner_id" json:"owner_id"`
	MemberIDs          []string  `bson:"member_ids" json:"member_ids"`
	CurrentChallengeID string    `bson:"current_challenge_id,omitempty" json:"current_challenge_id,omitempty"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}
