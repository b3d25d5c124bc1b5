package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse doubles as the /me payload (token left empty there).
type LoginResponse struct {
	Token    string `json:"token,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}
