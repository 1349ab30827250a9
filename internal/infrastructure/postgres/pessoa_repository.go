package postgres

import (
	"context"
	"fmt"

	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
)

var _ repository.PessoaRepository = (*PessoaRepo)(nil)

// PessoaRepo implementação do porto PessoaRepository sobre PostgreSQL (usável com pool ou tx).
type PessoaRepo struct {
	q Querier
}

// NewPessoaRepository constrói o adaptador de persistência para pessoas.
func NewPessoaRepository(q Querier) *PessoaRepo {
	return &PessoaRepo{q: q}
}

// Create persiste uma nova pessoa. ID preenchido é preservado (restauração de backup).
func (r *PessoaRepo) Create(ctx context.Context, p *entity.Pessoa) error {
	if p.ID != 0 {
		_, err := r.q.Exec(ctx, `
			INSERT INTO pessoas (id, nome, tipo, telefone, email, observacao, criado_em)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.ID, p.Nome, p.Tipo, p.Telefone, p.Email, p.Observacao, p.CriadoEm,
		)
		if err != nil {
			return fmt.Errorf("insert pessoa: %w", err)
		}
		return nil
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO pessoas (nome, tipo, telefone, email, observacao, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		p.Nome, p.Tipo, p.Telefone, p.Email, p.Observacao, p.CriadoEm,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert pessoa: %w", err)
	}
	return nil
}

// GetByID obtém uma pessoa por ID. Devolve (nil, nil) quando não existe.
func (r *PessoaRepo) GetByID(ctx context.Context, id int64) (*entity.Pessoa, error) {
	var p entity.Pessoa
	err := r.q.QueryRow(ctx, `
		SELECT id, nome, tipo, telefone, email, observacao, criado_em
		FROM pessoas WHERE id = $1`, id,
	).Scan(&p.ID, &p.Nome, &p.Tipo, &p.Telefone, &p.Email, &p.Observacao, &p.CriadoEm)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pessoa: %w", err)
	}
	return &p, nil
}

// List devolve todas as pessoas.
func (r *PessoaRepo) List(ctx context.Context) ([]*entity.Pessoa, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, nome, tipo, telefone, email, observacao, criado_em
		FROM pessoas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list pessoas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Pessoa
	for rows.Next() {
		var p entity.Pessoa
		if err := rows.Scan(&p.ID, &p.Nome, &p.Tipo, &p.Telefone, &p.Email, &p.Observacao, &p.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan pessoa: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza uma pessoa existente. Devolve domain.ErrNotFound se o ID não existe.
func (r *PessoaRepo) Update(ctx context.Context, p *entity.Pessoa) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE pessoas SET nome = $2, tipo = $3, telefone = $4, email = $5, observacao = $6
		WHERE id = $1`,
		p.ID, p.Nome, p.Tipo, p.Telefone, p.Email, p.Observacao,
	)
	if err != nil {
		return fmt.Errorf("update pessoa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma pessoa por ID.
func (r *PessoaRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM pessoas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pessoa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear esvazia a coleção inteira.
func (r *PessoaRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM pessoas`); err != nil {
		return fmt.Errorf("clear pessoas: %w", err)
	}
	return nil
}
