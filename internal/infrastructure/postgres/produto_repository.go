package postgres

import (
	"context"
	"fmt"

	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência para produtos.
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto. Não há restrição de unicidade além do ID:
// conteúdo duplicado nunca falha.
func (r *ProdutoRepo) Create(ctx context.Context, p *entity.Produto) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO produtos (codigo, descricao, marca, referencia, criado_em)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.Codigo, p.Descricao, p.Marca, p.Referencia, p.CriadoEm,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID. Devolve (nil, nil) quando não existe.
func (r *ProdutoRepo) GetByID(ctx context.Context, id int64) (*entity.Produto, error) {
	var p entity.Produto
	err := r.q.QueryRow(ctx, `
		SELECT id, codigo, descricao, marca, referencia, criado_em
		FROM produtos WHERE id = $1`, id,
	).Scan(&p.ID, &p.Codigo, &p.Descricao, &p.Marca, &p.Referencia, &p.CriadoEm)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// List devolve todos os produtos (a busca inteligente filtra em memória no caso de uso).
func (r *ProdutoRepo) List(ctx context.Context) ([]*entity.Produto, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, codigo, descricao, marca, referencia, criado_em
		FROM produtos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Descricao, &p.Marca, &p.Referencia, &p.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza um produto existente. Devolve domain.ErrNotFound se o ID não existe.
func (r *ProdutoRepo) Update(ctx context.Context, p *entity.Produto) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE produtos SET codigo = $2, descricao = $3, marca = $4, referencia = $5
		WHERE id = $1`,
		p.ID, p.Codigo, p.Descricao, p.Marca, p.Referencia,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um produto por ID.
func (r *ProdutoRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear esvazia a coleção inteira.
func (r *ProdutoRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM produtos`); err != nil {
		return fmt.Errorf("clear produtos: %w", err)
	}
	return nil
}
