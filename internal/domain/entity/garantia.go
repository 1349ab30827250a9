package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de uma garantia.
const (
	StatusGarantiaEmAnalise = "Em análise"
	StatusGarantiaAprovada  = "Aprovada"
	StatusGarantiaRecusada  = "Recusada"
	StatusGarantiaPaga      = "Paga"
)

// Garantia representa um pedido de garantia junto ao fornecedor por peça defeituosa.
// CriadoEm é gravado uma única vez na criação e nunca alterado.
type Garantia struct {
	ID          int64
	Codigo      string
	Descricao   string
	Fornecedor  string
	Quantidade  int
	Defeito     string
	Requisicoes string // números de requisição vinculados (texto livre)
	NotaCompra  string
	ValorCompra decimal.Decimal
	Cliente     string
	Mecanico    string
	NotaSaida   string
	NotaRetorno string
	Observacao  string
	CriadoEm    time.Time
	Status      string
	LoteID      *int64 // nil = ainda não incluída em um lote
}
