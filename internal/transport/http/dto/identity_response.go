package dto

type ValidResponse struct {
	Valid bool `json:"valid"`
}

type SignupResponse struct {
	Email string `json:"email"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"` // "Bearer"
}
