package repository

import (
	"context"

	"garantias/internal/domain/entity"
)

// PessoaRepository define o porto de persistência para Pessoa (DIP).
type PessoaRepository interface {
	Create(ctx context.Context, p *entity.Pessoa) error
	GetByID(ctx context.Context, id int64) (*entity.Pessoa, error)
	List(ctx context.Context) ([]*entity.Pessoa, error)
	Update(ctx context.Context, p *entity.Pessoa) error
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}
