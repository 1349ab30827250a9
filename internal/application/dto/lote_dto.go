package dto

import "time"

// LoteRequest dados de criação/atualização de lote.
type LoteRequest struct {
	Codigo     string     `json:"codigo"`
	Fornecedor string     `json:"fornecedor"`
	DataEnvio  *time.Time `json:"dataEnvio"`
	Observacao string     `json:"observacao"`
	Status     string     `json:"status"`
}

// LoteResponse representação de lote nas respostas.
type LoteResponse struct {
	ID         int64      `json:"id"`
	Codigo     string     `json:"codigo"`
	Fornecedor string     `json:"fornecedor"`
	DataEnvio  *time.Time `json:"dataEnvio"`
	Observacao string     `json:"observacao"`
	Status     string     `json:"status"`
	CriadoEm   time.Time  `json:"criadoEm"`
}

// LoteListResponse listagem paginada de lotes.
type LoteListResponse struct {
	Items []LoteResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
