package repository

import (
	"context"

	"garantias/internal/domain/entity"
)

// LoteRepository define o porto de persistência para Lote (DIP).
type LoteRepository interface {
	Create(ctx context.Context, l *entity.Lote) error
	GetByID(ctx context.Context, id int64) (*entity.Lote, error)
	List(ctx context.Context) ([]*entity.Lote, error)
	Update(ctx context.Context, l *entity.Lote) error
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}
