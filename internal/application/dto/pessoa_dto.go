package dto

import "time"

// PessoaRequest dados de criação/atualização de pessoa (cliente ou mecânico).
type PessoaRequest struct {
	Nome       string `json:"nome"`
	Tipo       string `json:"tipo"`
	Telefone   string `json:"telefone"`
	Email      string `json:"email"`
	Observacao string `json:"observacao"`
}

// PessoaResponse representação de pessoa nas respostas.
type PessoaResponse struct {
	ID         int64     `json:"id"`
	Nome       string    `json:"nome"`
	Tipo       string    `json:"tipo"`
	Telefone   string    `json:"telefone"`
	Email      string    `json:"email"`
	Observacao string    `json:"observacao"`
	CriadoEm   time.Time `json:"criadoEm"`
}

// PessoaListResponse listagem paginada de pessoas.
type PessoaListResponse struct {
	Items []PessoaResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
