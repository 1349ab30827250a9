package entity

import "time"

// Fornecedor representa um fornecedor de peças.
type Fornecedor struct {
	ID         int64
	Nome       string
	CNPJ       string
	Telefone   string
	Email      string
	Contato    string
	Observacao string
	CriadoEm   time.Time
}
