package postgres

import (
	"context"
	"fmt"

	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementação do porto LoteRepository sobre PostgreSQL (usável com pool ou tx).
type LoteRepo struct {
	q Querier
}

// NewLoteRepository constrói o adaptador de persistência para lotes.
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

// Create persiste um novo lote. ID preenchido é preservado (restauração de backup).
func (r *LoteRepo) Create(ctx context.Context, l *entity.Lote) error {
	if l.ID != 0 {
		_, err := r.q.Exec(ctx, `
			INSERT INTO lotes (id, codigo, fornecedor, data_envio, observacao, status, criado_em)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			l.ID, l.Codigo, l.Fornecedor, l.DataEnvio, l.Observacao, l.Status, l.CriadoEm,
		)
		if err != nil {
			return fmt.Errorf("insert lote: %w", err)
		}
		return nil
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO lotes (codigo, fornecedor, data_envio, observacao, status, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		l.Codigo, l.Fornecedor, l.DataEnvio, l.Observacao, l.Status, l.CriadoEm,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID obtém um lote por ID. Devolve (nil, nil) quando não existe.
func (r *LoteRepo) GetByID(ctx context.Context, id int64) (*entity.Lote, error) {
	var l entity.Lote
	err := r.q.QueryRow(ctx, `
		SELECT id, codigo, fornecedor, data_envio, observacao, status, criado_em
		FROM lotes WHERE id = $1`, id,
	).Scan(&l.ID, &l.Codigo, &l.Fornecedor, &l.DataEnvio, &l.Observacao, &l.Status, &l.CriadoEm)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

// List devolve todos os lotes.
func (r *LoteRepo) List(ctx context.Context) ([]*entity.Lote, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, codigo, fornecedor, data_envio, observacao, status, criado_em
		FROM lotes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Lote
	for rows.Next() {
		var l entity.Lote
		if err := rows.Scan(&l.ID, &l.Codigo, &l.Fornecedor, &l.DataEnvio, &l.Observacao, &l.Status, &l.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update atualiza um lote existente. Devolve domain.ErrNotFound se o ID não existe.
func (r *LoteRepo) Update(ctx context.Context, l *entity.Lote) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE lotes SET codigo = $2, fornecedor = $3, data_envio = $4, observacao = $5, status = $6
		WHERE id = $1`,
		l.ID, l.Codigo, l.Fornecedor, l.DataEnvio, l.Observacao, l.Status,
	)
	if err != nil {
		return fmt.Errorf("update lote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um lote por ID.
func (r *LoteRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM lotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear esvazia a coleção inteira.
func (r *LoteRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM lotes`); err != nil {
		return fmt.Errorf("clear lotes: %w", err)
	}
	return nil
}
