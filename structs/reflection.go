package structs

type ReflectionRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	ChallengeID string `json:"challenge_id" binding:"required"`
	MoodBefore  int    `json:"mood_before" binding:"required,min=1,max=5"`
	MoodAfter   int    `json:"mood_after" binding:"required,min=1,max=5"`
	Note        string `json:"note"`
	IsPublic    bool   `json:"is_public"`
}
