package repository

import (
	"context"

	"garantias/internal/domain/entity"
)

// FornecedorRepository define o porto de persistência para Fornecedor (DIP).
type FornecedorRepository interface {
	Create(ctx context.Context, f *entity.Fornecedor) error
	GetByID(ctx context.Context, id int64) (*entity.Fornecedor, error)
	List(ctx context.Context) ([]*entity.Fornecedor, error)
	Update(ctx context.Context, f *entity.Fornecedor) error
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}
