package dto

import "time"

// ProdutoRequest dados de criação/atualização de produto.
type ProdutoRequest struct {
	Codigo     string `json:"codigo"`
	Descricao  string `json:"descricao"`
	Marca      string `json:"marca"`
	Referencia string `json:"referencia"`
}

// ProdutoResponse representação de produto nas respostas.
type ProdutoResponse struct {
	ID         int64     `json:"id"`
	Codigo     string    `json:"codigo"`
	Descricao  string    `json:"descricao"`
	Marca      string    `json:"marca"`
	Referencia string    `json:"referencia"`
	CriadoEm   time.Time `json:"criadoEm"`
}

// ProdutoListResponse listagem paginada de produtos.
type ProdutoListResponse struct {
	Items []ProdutoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
