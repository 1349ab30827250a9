package repository

import (
	"context"

	"garantias/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario (contas de acesso).
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
}
