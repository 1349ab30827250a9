package repository

import (
	"context"

	"garantias/internal/domain/entity"
)

// StatusRepository define o porto de persistência para StatusPersonalizado (DIP).
type StatusRepository interface {
	Create(ctx context.Context, s *entity.StatusPersonalizado) error
	GetByID(ctx context.Context, id int64) (*entity.StatusPersonalizado, error)
	List(ctx context.Context) ([]*entity.StatusPersonalizado, error)
	Update(ctx context.Context, s *entity.StatusPersonalizado) error
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}
