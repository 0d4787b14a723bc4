package models

// Badge is a derived achievement label. Badges are computed from
// thresholds at read time and never persisted.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Requirement int    `json:"requirement"`
}
