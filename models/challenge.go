package models

// MoodTag classifies the emotional flavor of a challenge
type MoodTag = string

const (
	MoodSocial    MoodTag = "social"
	MoodSolo      MoodTag = "solo"
	MoodUplifting MoodTag = "uplifting"
)

// EnvironmentTag classifies where a challenge is meant to be done
type EnvironmentTag = string

const (
	EnvHome   EnvironmentTag = "home"
	EnvPublic EnvironmentTag = "public"
	EnvSchool EnvironmentTag = "school"
	EnvWork   EnvironmentTag = "work"
)

// Challenge is a static content unit, seeded at startup and never mutated
type Challenge struct {
	ID          string         `bson:"_id" json:"id"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Mood        MoodTag        `bson:"mood" json:"mood"`
	Environment EnvironmentTag `bson:"environment" json:"environment"`
	Confidence  int            `bson:"confidence" json:"confidence"` // 1..5
}
