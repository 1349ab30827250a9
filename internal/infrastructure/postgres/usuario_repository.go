package postgres

import (
	"context"
	"fmt"

	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de persistência para usuários.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um novo usuário.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO usuarios (id, email, senha_hash, nome, ativo, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.SenhaHash, u.Nome, u.Ativo, u.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// FindByEmail busca um usuário pelo email. Devolve (nil, nil) quando não existe.
func (r *UsuarioRepo) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx, `
		SELECT id, email, senha_hash, nome, ativo, criado_em
		FROM usuarios WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.SenhaHash, &u.Nome, &u.Ativo, &u.CriadoEm)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find usuario por email: %w", err)
	}
	return &u, nil
}
