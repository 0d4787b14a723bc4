package services

import (
	"testing"
	"time"

	"joybait/structs"
)

func intPtr(v int) *int { return &v }

func TestFilterByMood(t *testing.T) {
	catalog := GetCatalog()

	candidates := catalog.Filter(structs.ChallengeFilter{Mood: "social"})
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 social challenges, got %d", len(candidates))
	}
	if candidates[0].ID != "c1" || candidates[1].ID != "c2" {
		t.Errorf("Expected catalog order c1, c2, got %s, %s", candidates[0].ID, candidates[1].ID)
	}
}

func TestFilterByEnvironmentAndConfidence(t *testing.T) {
	catalog := GetCatalog()

	candidates := catalog.Filter(structs.ChallengeFilter{
		Environment:   "public",
		ConfidenceMax: intPtr(2),
	})
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 low-confidence public challenges, got %d", len(candidates))
	}

	candidates = catalog.Filter(structs.ChallengeFilter{ConfidenceMin: intPtr(3)})
	if len(candidates) != 1 || candidates[0].ID != "c2" {
		t.Errorf("Expected only c2 at confidence >= 3, got %v", candidates)
	}
}

func TestFilterExhaustion(t *testing.T) {
	catalog := GetCatalog()

	candidates := catalog.Filter(structs.ChallengeFilter{Mood: "solo", Environment: "work"})
	if len(candidates) != 0 {
		t.Fatalf("Expected empty candidate set, got %d", len(candidates))
	}

	_, err := SelectForDay(time.Now().UTC(), candidates)
	if err != ErrNoMatch {
		t.Errorf("Expected ErrNoMatch for empty candidates, got %v", err)
	}
}

func TestSelectForDayDeterministic(t *testing.T) {
	catalog := GetCatalog()
	candidates := catalog.All()
	day := ts("2024-03-10T08:00:00Z")

	first, err := SelectForDay(day, candidates)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, _ := SelectForDay(day, candidates)
	if first.ID != second.ID {
		t.Errorf("Expected same challenge for same day, got %s then %s", first.ID, second.ID)
	}

	// Time of day must not matter, only the UTC calendar date
	evening, _ := SelectForDay(ts("2024-03-10T23:45:00Z"), candidates)
	if evening.ID != first.ID {
		t.Errorf("Expected same challenge across the day, got %s vs %s", evening.ID, first.ID)
	}
}

func TestSelectForDayRotates(t *testing.T) {
	catalog := GetCatalog()
	candidates := catalog.All()

	today, _ := SelectForDay(ts("2024-03-10T12:00:00Z"), candidates)
	tomorrow, _ := SelectForDay(ts("2024-03-11T12:00:00Z"), candidates)

	if today.ID == tomorrow.ID {
		t.Errorf("Expected rotation to advance across days, got %s twice", today.ID)
	}
}

func TestDayOrdinalCalendarStep(t *testing.T) {
	before := dayOrdinal(ts("2024-01-05T23:59:59Z"))
	after := dayOrdinal(ts("2024-01-06T00:00:00Z"))

	if after-before != 1 {
		t.Errorf("Expected consecutive dates to differ by 1, got %d and %d", before, after)
	}
	if dayOrdinal(ts("2024-01-05T00:00:00Z")) != before {
		t.Error("Expected ordinal to ignore time of day")
	}
}
