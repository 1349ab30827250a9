package postgres

import (
	"context"
	"fmt"

	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
)

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo implementação do porto StatusRepository sobre PostgreSQL.
type StatusRepo struct {
	q Querier
}

// NewStatusRepository constrói o adaptador de persistência para status personalizados.
func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

// Create persiste um novo status personalizado.
func (r *StatusRepo) Create(ctx context.Context, s *entity.StatusPersonalizado) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO status_personalizados (nome, cor, entidades, criado_em)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		s.Nome, s.Cor, s.Entidades, s.CriadoEm,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert status personalizado: %w", err)
	}
	return nil
}

// GetByID obtém um status personalizado por ID. Devolve (nil, nil) quando não existe.
func (r *StatusRepo) GetByID(ctx context.Context, id int64) (*entity.StatusPersonalizado, error) {
	var s entity.StatusPersonalizado
	err := r.q.QueryRow(ctx, `
		SELECT id, nome, cor, entidades, criado_em
		FROM status_personalizados WHERE id = $1`, id,
	).Scan(&s.ID, &s.Nome, &s.Cor, &s.Entidades, &s.CriadoEm)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status personalizado: %w", err)
	}
	return &s, nil
}

// List devolve todos os status personalizados.
func (r *StatusRepo) List(ctx context.Context) ([]*entity.StatusPersonalizado, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, nome, cor, entidades, criado_em
		FROM status_personalizados ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list status personalizados: %w", err)
	}
	defer rows.Close()

	var list []*entity.StatusPersonalizado
	for rows.Next() {
		var s entity.StatusPersonalizado
		if err := rows.Scan(&s.ID, &s.Nome, &s.Cor, &s.Entidades, &s.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan status personalizado: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update atualiza um status personalizado. Devolve domain.ErrNotFound se o ID não existe.
func (r *StatusRepo) Update(ctx context.Context, s *entity.StatusPersonalizado) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE status_personalizados SET nome = $2, cor = $3, entidades = $4
		WHERE id = $1`,
		s.ID, s.Nome, s.Cor, s.Entidades,
	)
	if err != nil {
		return fmt.Errorf("update status personalizado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um status personalizado por ID.
func (r *StatusRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM status_personalizados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete status personalizado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear esvazia a coleção inteira.
func (r *StatusRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM status_personalizados`); err != nil {
		return fmt.Errorf("clear status personalizados: %w", err)
	}
	return nil
}
