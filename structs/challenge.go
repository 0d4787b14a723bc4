package structs

// ChallengeFilter narrows the candidate set for daily selection.
// Nil confidence bounds mean unbounded.
type ChallengeFilter struct {
	Mood          string `json:"mood" binding:"omitempty,oneof=social solo uplifting"`
	Environment   string `json:"environment" binding:"omitempty,oneof=home public school work"`
	ConfidenceMin *int   `json:"confidence_min" binding:"omitempty,min=1,max=5"`
	ConfidenceMax *int   `json:"confidence_max" binding:"omitempty,min=1,max=5"`
}
