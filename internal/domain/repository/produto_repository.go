package repository

import (
	"context"

	"garantias/internal/domain/entity"
)

// ProdutoRepository define o porto de persistência para Produto (DIP).
type ProdutoRepository interface {
	Create(ctx context.Context, p *entity.Produto) error
	GetByID(ctx context.Context, id int64) (*entity.Produto, error)
	List(ctx context.Context) ([]*entity.Produto, error)
	Update(ctx context.Context, p *entity.Produto) error
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}
