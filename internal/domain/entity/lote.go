package entity

import "time"

// Status possíveis de um lote (enum próprio, distinto do de Garantia).
const (
	StatusLoteAberto     = "Aberto"
	StatusLoteEnviado    = "Enviado"
	StatusLoteRecebido   = "Recebido"
	StatusLoteFinalizado = "Finalizado"
)

// Lote agrupa garantias enviadas juntas a um fornecedor.
type Lote struct {
	ID         int64
	Codigo     string
	Fornecedor string
	DataEnvio  *time.Time // nil enquanto o lote não foi despachado
	Observacao string
	Status     string
	CriadoEm   time.Time
}
