package structs

type SignupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Mode  string `json:"mode" binding:"omitempty,oneof=casual challenge"`
}

type ModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=casual challenge"`
}
