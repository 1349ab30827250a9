package entity

import "time"

// Tipos de pessoa cadastrada.
const (
	TipoPessoaCliente  = "cliente"
	TipoPessoaMecanico = "mecanico"
)

// Pessoa representa um contato: cliente ou mecânico.
type Pessoa struct {
	ID         int64
	Nome       string
	Tipo       string // ver constantes TipoPessoa*
	Telefone   string
	Email      string
	Observacao string
	CriadoEm   time.Time
}
