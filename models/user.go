package models

import "time"

// Mode is the user-selected play mode
type Mode = string

const (
	ModeCasual    Mode = "casual"
	ModeChallenge Mode = "challenge"
)

// User defines a user entity with progression state
type User struct {
	ID              string            `bson:"_id" json:"id"`
	Name            string            `bson:"name,omitempty" json:"name,omitempty"`
	Email           string            `bson:"email,omitempty" json:"email,omitempty"`
	Mode            Mode              `bson:"mode,omitempty" json:"mode,omitempty"`
	XP              int               `bson:"xp" json:"xp"`
	Streak          int               `bson:"streak" json:"streak"`
	LastCompletedAt *time.Time        `bson:"last_completed_at,omitempty" json:"last_completed_at,omitempty"`
	Preferences     map[string]string `bson:"preferences" json:"preferences"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
}
