package dto

import "time"

// LoginRequest credenciais de entrada.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// RegisterRequest dados de cadastro de usuário.
type RegisterRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
	Nome  string `json:"nome"`
}

// UserResponse representação de usuário nas respostas (sem hash de senha).
type UserResponse struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Nome     string    `json:"nome"`
	Ativo    bool      `json:"ativo"`
	CriadoEm time.Time `json:"criadoEm"`
}

// LoginResponse resultado do login. O token também segue em cookie httpOnly.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
