package services

import (
	"testing"

	"joybait/models"
)

func TestEarnedBadgesThresholds(t *testing.T) {
	if badges := EarnedBadges(0, 0); len(badges) != 0 {
		t.Errorf("Expected no badges for a fresh user, got %d", len(badges))
	}

	badges := EarnedBadges(1, 0)
	if len(badges) != 1 || badges[0].ID != "first" {
		t.Errorf("Expected only the first badge at 1 XP, got %v", badges)
	}

	// Streak alone qualifies too: earning is xp OR streak
	badges = EarnedBadges(0, 5)
	if len(badges) != 2 {
		t.Fatalf("Expected 2 badges at streak 5, got %d", len(badges))
	}
	if badges[0].ID != "first" || badges[1].ID != "streak5" {
		t.Errorf("Expected definition order first, streak5, got %s, %s", badges[0].ID, badges[1].ID)
	}

	if badges := EarnedBadges(10, 7); len(badges) != 3 {
		t.Errorf("Expected all 3 badges, got %d", len(badges))
	}
}

func TestEarnedBadgesMonotonic(t *testing.T) {
	for xp := 0; xp <= 10; xp++ {
		for streak := 0; streak <= 10; streak++ {
			base := len(EarnedBadges(xp, streak))
			if more := len(EarnedBadges(xp+1, streak)); more < base {
				t.Fatalf("Badge count dropped from %d to %d when XP rose at xp=%d streak=%d", base, more, xp, streak)
			}
			if more := len(EarnedBadges(xp, streak+1)); more < base {
				t.Fatalf("Badge count dropped from %d to %d when streak rose at xp=%d streak=%d", base, more, xp, streak)
			}
		}
	}
}

func TestBuildProfile(t *testing.T) {
	user := models.User{
		ID:     "u1",
		Name:   "Ada",
		Mode:   models.ModeCasual,
		XP:     12,
		Streak: 2,
	}
	recent := []models.Reflection{
		{ID: "r2", ChallengeID: "c2", MoodBefore: 2, MoodAfter: 4, Note: "better"},
		{ID: "r1", ChallengeID: "c1", MoodBefore: 3, MoodAfter: 3},
	}

	view := BuildProfile(user, recent)

	if view.User.ID != "u1" || view.User.XP != 12 || view.User.Streak != 2 {
		t.Errorf("Unexpected user projection: %+v", view.User)
	}
	if len(view.Badges) != 1 || view.Badges[0].ID != "first" {
		t.Errorf("Expected only the first badge, got %v", view.Badges)
	}
	if len(view.RecentReflections) != 2 {
		t.Fatalf("Expected 2 reflections, got %d", len(view.RecentReflections))
	}
	// Caller ordering is preserved, newest first
	if view.RecentReflections[0].ID != "r2" || view.RecentReflections[1].ID != "r1" {
		t.Errorf("Expected order r2, r1, got %s, %s", view.RecentReflections[0].ID, view.RecentReflections[1].ID)
	}
	if view.RecentReflections[0].Note != "better" {
		t.Errorf("Expected note projected, got %q", view.RecentReflections[0].Note)
	}
}

func TestBuildProfileEmptyHistory(t *testing.T) {
	view := BuildProfile(models.User{ID: "u1"}, nil)

	if view.RecentReflections == nil || len(view.RecentReflections) != 0 {
		t.Errorf("Expected empty, non-nil reflection list, got %v", view.RecentReflections)
	}
	if view.Badges == nil || len(view.Badges) != 0 {
		t.Errorf("Expected empty, non-nil badge list, got %v", view.Badges)
	}
}
