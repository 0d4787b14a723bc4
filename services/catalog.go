package services

import (
	"errors"
	"time"

	"joybait/models"
	"joybait/structs"
)

// ErrNoMatch is returned when a filter leaves no candidate challenges.
var ErrNoMatch = errors.New("no challenges match those filters")

// seedChallenges is the static MVP content pack. Dynamic packs would
// come from the challenge collection instead.
var seedChallenges = []models.Challenge{
	{
		ID:          "c1",
		Title:       "Give someone a genuine compliment",
		Description: "Keep it specific and sincere.",
		Mood:        models.MoodSocial,
		Environment: models.EnvPublic,
		Confidence:  2,
	},
	{
		ID:          "c2",
		Title:       "Ask a stranger about their favorite food",
		Description: "If you're shy, try a barista or cashier.",
		Mood:        models.MoodSocial,
		Environment: models.EnvPublic,
		Confidence:  3,
	},
	{
		ID:          "c3",
		Title:       "Sit alone at a café and smile at someone nearby",
		Description: "A gentle moment of openness.",
		Mood:        models.MoodSolo,
		Environment: models.EnvPublic,
		Confidence:  1,
	},
	{
		ID:          "c4",
		Title:       "Send a kind message to a friend you haven't talked to in a while",
		Description: "Low-pressure, high-warmth.",
		Mood:        models.MoodUplifting,
		Environment: models.EnvHome,
		Confidence:  1,
	},
}

// Catalog is an immutable list of challenges built once at startup.
type Catalog struct {
	challenges []models.Challenge
}

var defaultCatalog = NewCatalog(seedChallenges)

// GetCatalog returns the process-wide catalog
func GetCatalog() *Catalog {
	return defaultCatalog
}

func NewCatalog(challenges []models.Challenge) *Catalog {
	copied := make([]models.Challenge, len(challenges))
	copy(copied, challenges)
	return &Catalog{challenges: copied}
}

// All returns every challenge in catalog order
func (c *Catalog) All() []models.Challenge {
	out := make([]models.Challenge, len(c.challenges))
	copy(out, c.challenges)
	return out
}

// Filter returns the candidate set for the given filters, preserving
// catalog order. An empty result is not an error here; the caller
// decides how to surface it.
func (c *Catalog) Filter(f structs.ChallengeFilter) []models.Challenge {
	candidates := make([]models.Challenge, 0, len(c.challenges))
	for _, ch := range c.challenges {
		if f.Mood != "" && ch.Mood != f.Mood {
			continue
		}
		if f.Environment != "" && ch.Environment != f.Environment {
			continue
		}
		if f.ConfidenceMin != nil && ch.Confidence < *f.ConfidenceMin {
			continue
		}
		if f.ConfidenceMax != nil && ch.Confidence > *f.ConfidenceMax {
			continue
		}
		candidates = append(candidates, ch)
	}
	return candidates
}

// dayOrdinal returns the proleptic-Gregorian ordinal of the UTC
// calendar date of t. 719163 is the ordinal of 1970-01-01.
func dayOrdinal(t time.Time) int {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix()/86400) + 719163
}

// SelectForDay picks the challenge for the given UTC date by rotating
// through the candidates, one step per calendar day. The same date and
// candidate set always yield the same challenge, across restarts.
func SelectForDay(date time.Time, candidates []models.Challenge) (models.Challenge, error) {
	if len(candidates) == 0 {
		return models.Challenge{}, ErrNoMatch
	}
	idx := dayOrdinal(date) % len(candidates)
	return candidates[idx], nil
}
