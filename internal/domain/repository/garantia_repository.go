package repository

import (
	"context"

	"garantias/internal/domain/entity"
)

// GarantiaRepository define o porto de persistência para Garantia (DIP).
// A implementação vive em infrastructure.
type GarantiaRepository interface {
	Create(ctx context.Context, g *entity.Garantia) error
	GetByID(ctx context.Context, id int64) (*entity.Garantia, error)
	List(ctx context.Context) ([]*entity.Garantia, error)
	Update(ctx context.Context, g *entity.Garantia) error
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}
