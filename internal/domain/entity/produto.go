package entity

import "time"

// Produto representa um item do catálogo, alvo principal da busca inteligente nos formulários.
type Produto struct {
	ID         int64
	Codigo     string
	Descricao  string
	Marca      string
	Referencia string
	CriadoEm   time.Time
}
