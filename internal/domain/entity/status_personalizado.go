package entity

import "time"

// Entidades às quais um status personalizado pode se aplicar.
const (
	EntidadeGarantia   = "garantia"
	EntidadeLote       = "lote"
	EntidadeDevolucao  = "devolucao"
	EntidadeRequisicao = "requisicao"
)

// StatusPersonalizado é um rótulo de status definido pelo usuário, com cor própria.
// Sobrepõe o mapeamento padrão status→cor na renderização.
type StatusPersonalizado struct {
	ID        int64
	Nome      string
	Cor       string // hex, ex. "#d32f2f"
	Entidades []string
	CriadoEm  time.Time
}
