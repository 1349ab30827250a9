package dto

import "time"

// StatusRequest dados de criação/atualização de status personalizado.
type StatusRequest struct {
	Nome      string   `json:"nome"`
	Cor       string   `json:"cor"`
	Entidades []string `json:"entidades"`
}

// StatusResponse representação de status personalizado nas respostas.
type StatusResponse struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Cor       string    `json:"cor"`
	Entidades []string  `json:"entidades"`
	CriadoEm  time.Time `json:"criadoEm"`
}

// StatusListResponse listagem de status personalizados.
type StatusListResponse struct {
	Items []StatusResponse `json:"items"`
}
