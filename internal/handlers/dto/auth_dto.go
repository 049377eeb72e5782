package dto

// RegisterRequest representa a requisição de registro
type RegisterRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8,max=72"`
	WhatsappNumber string `json:"whatsappNumber" binding:"required,min=6,max=20"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carrega o token de sessão e o perfil da conta
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
