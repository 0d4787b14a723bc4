package services

import (
	"time"

	"joybait/models"
)

// badgeDefinitions is the MVP badge table, in definition order.
// A badge is earned when xp or streak reaches its requirement.
var badgeDefinitions = []models.Badge{
	{ID: "first", Name: "First Step", Requirement: 1},
	{ID: "week1", Name: "Week One", Requirement: 7},
	{ID: "streak5", Name: "On a Roll", Requirement: 5},
}

// BadgeDefinitions returns the badge table in definition order
func BadgeDefinitions() []models.Badge {
	out := make([]models.Badge, len(badgeDefinitions))
	copy(out, badgeDefinitions)
	return out
}

// EarnedBadges returns the badges a user qualifies for, in definition
// order. Earning is inclusive-or over xp and streak, so adding either
// never removes a badge.
func EarnedBadges(xp, streak int) []models.Badge {
	earned := []models.Badge{}
	for _, b := range badgeDefinitions {
		if xp >= b.Requirement || streak >= b.Requirement {
			earned = append(earned, b)
		}
	}
	return earned
}

// ProfileUser is the user projection inside a profile view
type ProfileUser struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Mode   string `json:"mode,omitempty"`
	XP     int    `json:"xp"`
	Streak int    `json:"streak"`
}

// ReflectionSummary is the per-reflection projection inside a profile view
type ReflectionSummary struct {
	ID          string    `json:"id"`
	ChallengeID string    `json:"challenge_id"`
	MoodBefore  int       `json:"mood_before"`
	MoodAfter   int       `json:"mood_after"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileView is the composed read view for a user
type ProfileView struct {
	User              ProfileUser         `json:"user"`
	Badges            []models.Badge      `json:"badges"`
	RecentReflections []ReflectionSummary `json:"recent_reflections"`
}

// BuildProfile composes a stored user with their recent reflections.
// recent must already be ordered newest first; no reordering happens
// here, only projection.
func BuildProfile(user models.User, recent []models.Reflection) ProfileView {
	summaries := make([]ReflectionSummary, 0, len(recent))
	for _, r := range recent {
		summaries = append(summaries, ReflectionSummary{
			ID:          r.ID,
			ChallengeID: r.ChallengeID,
			MoodBefore:  r.MoodBefore,
			MoodAfter:   r.MoodAfter,
			Note:        r.Note,
			CreatedAt:   r.CreatedAt,
		})
	}
	return ProfileView{
		User: ProfileUser{
			ID:     user.ID,
			Name:   user.Name,
			Mode:   user.Mode,
			XP:     user.XP,
			Streak: user.Streak,
		},
		Badges:            EarnedBadges(user.XP, user.Streak),
		RecentReflections: summaries,
	}
}
