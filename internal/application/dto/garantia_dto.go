package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GarantiaRequest dados de criação/atualização de garantia. CriadoEm não é
// aceito aqui: é atribuído uma única vez na criação.
type GarantiaRequest struct {
	Codigo      string          `json:"codigo"`
	Descricao   string          `json:"descricao"`
	Fornecedor  string          `json:"fornecedor"`
	Quantidade  int             `json:"quantidade"`
	Defeito     string          `json:"defeito"`
	Requisicoes string          `json:"requisicoes"`
	NotaCompra  string          `json:"notaCompra"`
	ValorCompra decimal.Decimal `json:"valorCompra"`
	Cliente     string          `json:"cliente"`
	Mecanico    string          `json:"mecanico"`
	NotaSaida   string          `json:"notaSaida"`
	NotaRetorno string          `json:"notaRetorno"`
	Observacao  string          `json:"observacao"`
	Status      string          `json:"status"`
	LoteID      *int64          `json:"loteId"`
}

// GarantiaResponse representação de garantia nas respostas.
type GarantiaResponse struct {
	ID          int64           `json:"id"`
	Codigo      string          `json:"codigo"`
	Descricao   string          `json:"descricao"`
	Fornecedor  string          `json:"fornecedor"`
	Quantidade  int             `json:"quantidade"`
	Defeito     string          `json:"defeito"`
	Requisicoes string          `json:"requisicoes"`
	NotaCompra  string          `json:"notaCompra"`
	ValorCompra decimal.Decimal `json:"valorCompra"`
	Cliente     string          `json:"cliente"`
	Mecanico    string          `json:"mecanico"`
	NotaSaida   string          `json:"notaSaida"`
	NotaRetorno string          `json:"notaRetorno"`
	Observacao  string          `json:"observacao"`
	CriadoEm    time.Time       `json:"criadoEm"`
	Status      string          `json:"status"`
	LoteID      *int64          `json:"loteId"`
}

// GarantiaListResponse listagem paginada de garantias.
type GarantiaListResponse struct {
	Items []GarantiaResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
