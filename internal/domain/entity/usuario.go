package entity

import "time"

// Usuario representa uma conta de acesso ao sistema (sessão única por usuário).
type Usuario struct {
	ID        string // uuid
	Email     string
	SenhaHash string
	Nome      string
	Ativo     bool
	CriadoEm  time.Time
}
