package dto

import "time"

// EmpresaRequest dados de cabeçalho da empresa (upsert do registro único).
type EmpresaRequest struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Endereco string `json:"endereco"`
	Cidade   string `json:"cidade"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

// EmpresaResponse representação dos dados da empresa nas respostas.
type EmpresaResponse struct {
	Nome         string    `json:"nome"`
	CNPJ         string    `json:"cnpj"`
	Endereco     string    `json:"endereco"`
	Cidade       string    `json:"cidade"`
	Telefone     string    `json:"telefone"`
	Email        string    `json:"email"`
	AtualizadoEm time.Time `json:"atualizadoEm"`
}
