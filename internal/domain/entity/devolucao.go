package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de uma devolução.
const (
	StatusDevolucaoPendente  = "Pendente"
	StatusDevolucaoConcluida = "Concluída"
	StatusDevolucaoCancelada = "Cancelada"
)

// Devolucao representa uma devolução de cliente. É dona da lista ordenada de itens:
// os itens nunca são persistidos ou alterados fora da API do pai (criação e
// substituição são sempre atômicas com a Devolucao).
type Devolucao struct {
	ID         int64
	Numero     string
	Cliente    string
	Data       *time.Time
	Observacao string
	Status     string
	CriadoEm   time.Time
	Itens      []ItemDevolucao
}

// ItemDevolucao é uma linha da devolução. DevolucaoID é a referência obrigatória ao pai.
type ItemDevolucao struct {
	ID          int64
	DevolucaoID int64
	Codigo      string
	Descricao   string
	Quantidade  int
	Valor       decimal.Decimal
}
