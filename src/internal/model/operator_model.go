package model

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=100"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type LogoutRequest struct {
	Token string `json:"-" validate:"required"`
}
