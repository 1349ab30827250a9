package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemDevolucaoRequest linha de devolução na criação (sem identificador: é atribuído pelo banco).
type ItemDevolucaoRequest struct {
	Codigo     string          `json:"codigo"`
	Descricao  string          `json:"descricao"`
	Quantidade int             `json:"quantidade"`
	Valor      decimal.Decimal `json:"valor"`
}

// DevolucaoRequest dados de criação de devolução. A devolução e seus itens
// são sempre persistidos juntos, como uma operação única.
type DevolucaoRequest struct {
	Numero     string                 `json:"numero"`
	Cliente    string                 `json:"cliente"`
	Data       *time.Time             `json:"data"`
	Observacao string                 `json:"observacao"`
	Status     string                 `json:"status"`
	Itens      []ItemDevolucaoRequest `json:"itens"`
}

// ItemDevolucaoResponse linha de devolução nas respostas.
type ItemDevolucaoResponse struct {
	ID          int64           `json:"id"`
	DevolucaoID int64           `json:"devolucaoId"`
	Codigo      string          `json:"codigo"`
	Descricao   string          `json:"descricao"`
	Quantidade  int             `json:"quantidade"`
	Valor       decimal.Decimal `json:"valor"`
}

// DevolucaoResponse representação de devolução nas respostas, com itens.
type DevolucaoResponse struct {
	ID         int64                   `json:"id"`
	Numero     string                  `json:"numero"`
	Cliente    string                  `json:"cliente"`
	Data       *time.Time              `json:"data"`
	Observacao string                  `json:"observacao"`
	Status     string                  `json:"status"`
	CriadoEm   time.Time               `json:"criadoEm"`
	Itens      []ItemDevolucaoResponse `json:"itens"`
}

// DevolucaoListResponse listagem paginada de devoluções.
type DevolucaoListResponse struct {
	Items []DevolucaoResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
