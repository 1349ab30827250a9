package postgres

import (
	"context"
	"fmt"

	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
)

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação do porto FornecedorRepository sobre PostgreSQL (usável com pool ou tx).
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador de persistência para fornecedores.
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Create persiste um novo fornecedor. ID preenchido é preservado (restauração de backup).
func (r *FornecedorRepo) Create(ctx context.Context, f *entity.Fornecedor) error {
	if f.ID != 0 {
		_, err := r.q.Exec(ctx, `
			INSERT INTO fornecedores (id, nome, cnpj, telefone, email, contato, observacao, criado_em)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			f.ID, f.Nome, f.CNPJ, f.Telefone, f.Email, f.Contato, f.Observacao, f.CriadoEm,
		)
		if err != nil {
			return fmt.Errorf("insert fornecedor: %w", err)
		}
		return nil
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO fornecedores (nome, cnpj, telefone, email, contato, observacao, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		f.Nome, f.CNPJ, f.Telefone, f.Email, f.Contato, f.Observacao, f.CriadoEm,
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID. Devolve (nil, nil) quando não existe.
func (r *FornecedorRepo) GetByID(ctx context.Context, id int64) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := r.q.QueryRow(ctx, `
		SELECT id, nome, cnpj, telefone, email, contato, observacao, criado_em
		FROM fornecedores WHERE id = $1`, id,
	).Scan(&f.ID, &f.Nome, &f.CNPJ, &f.Telefone, &f.Email, &f.Contato, &f.Observacao, &f.CriadoEm)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

// List devolve todos os fornecedores.
func (r *FornecedorRepo) List(ctx context.Context) ([]*entity.Fornecedor, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, nome, cnpj, telefone, email, contato, observacao, criado_em
		FROM fornecedores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.Nome, &f.CNPJ, &f.Telefone, &f.Email, &f.Contato, &f.Observacao, &f.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update atualiza um fornecedor existente. Devolve domain.ErrNotFound se o ID não existe.
func (r *FornecedorRepo) Update(ctx context.Context, f *entity.Fornecedor) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE fornecedores SET nome = $2, cnpj = $3, telefone = $4, email = $5, contato = $6, observacao = $7
		WHERE id = $1`,
		f.ID, f.Nome, f.CNPJ, f.Telefone, f.Email, f.Contato, f.Observacao,
	)
	if err != nil {
		return fmt.Errorf("update fornecedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um fornecedor por ID.
func (r *FornecedorRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM fornecedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear esvazia a coleção inteira.
func (r *FornecedorRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM fornecedores`); err != nil {
		return fmt.Errorf("clear fornecedores: %w", err)
	}
	return nil
}
