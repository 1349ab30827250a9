package dto

import "time"

// FornecedorRequest dados de criação/atualização de fornecedor.
type FornecedorRequest struct {
	Nome       string `json:"nome"`
	CNPJ       string `json:"cnpj"`
	Telefone   string `json:"telefone"`
	Email      string `json:"email"`
	Contato    string `json:"contato"`
	Observacao string `json:"observacao"`
}

// FornecedorResponse representação de fornecedor nas respostas.
type FornecedorResponse struct {
	ID         int64     `json:"id"`
	Nome       string    `json:"nome"`
	CNPJ       string    `json:"cnpj"`
	Telefone   string    `json:"telefone"`
	Email      string    `json:"email"`
	Contato    string    `json:"contato"`
	Observacao string    `json:"observacao"`
	CriadoEm   time.Time `json:"criadoEm"`
}

// FornecedorListResponse listagem paginada de fornecedores.
type FornecedorListResponse struct {
	Items []FornecedorResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
