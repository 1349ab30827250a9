package entity

import "time"

// DadosEmpresa guarda os dados de cabeçalho da empresa emissora.
// Registro único: no máximo uma instância; ausente até a primeira configuração.
type DadosEmpresa struct {
	ID           int64
	Nome         string
	CNPJ         string
	Endereco     string
	Cidade       string
	Telefone     string
	Email        string
	AtualizadoEm time.Time
}
