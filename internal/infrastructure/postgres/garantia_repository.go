package postgres

import (
	"context"
	"fmt"

	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
)

var _ repository.GarantiaRepository = (*GarantiaRepo)(nil)

// GarantiaRepo implementação do porto GarantiaRepository sobre PostgreSQL (usável com pool ou tx).
type GarantiaRepo struct {
	q Querier
}

// NewGarantiaRepository constrói o adaptador de persistência para garantias. Passar pool ou tx (Querier).
func NewGarantiaRepository(q Querier) *GarantiaRepo {
	return &GarantiaRepo{q: q}
}

const garantiaCols = `codigo, descricao, fornecedor, quantidade, defeito, requisicoes,
	nota_compra, valor_compra, cliente, mecanico, nota_saida, nota_retorno,
	observacao, criado_em, status, lote_id`

// Create persiste uma nova garantia. Com ID zero, o banco atribui o próximo
// identificador da coleção (devolvido em g.ID); com ID preenchido (caso da
// restauração de backup) o identificador original é preservado.
func (r *GarantiaRepo) Create(ctx context.Context, g *entity.Garantia) error {
	if g.ID != 0 {
		query := `
			INSERT INTO garantias (id, ` + garantiaCols + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
		_, err := r.q.Exec(ctx, query,
			g.ID, g.Codigo, g.Descricao, g.Fornecedor, g.Quantidade, g.Defeito, g.Requisicoes,
			g.NotaCompra, g.ValorCompra, g.Cliente, g.Mecanico, g.NotaSaida, g.NotaRetorno,
			g.Observacao, g.CriadoEm, g.Status, g.LoteID,
		)
		if err != nil {
			return fmt.Errorf("insert garantia: %w", err)
		}
		return nil
	}
	query := `
		INSERT INTO garantias (` + garantiaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		g.Codigo, g.Descricao, g.Fornecedor, g.Quantidade, g.Defeito, g.Requisicoes,
		g.NotaCompra, g.ValorCompra, g.Cliente, g.Mecanico, g.NotaSaida, g.NotaRetorno,
		g.Observacao, g.CriadoEm, g.Status, g.LoteID,
	).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("insert garantia: %w", err)
	}
	return nil
}

// GetByID obtém uma garantia por ID. Devolve (nil, nil) quando não existe.
func (r *GarantiaRepo) GetByID(ctx context.Context, id int64) (*entity.Garantia, error) {
	query := `SELECT id, ` + garantiaCols + ` FROM garantias WHERE id = $1`
	var g entity.Garantia
	err := r.q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.Codigo, &g.Descricao, &g.Fornecedor, &g.Quantidade, &g.Defeito, &g.Requisicoes,
		&g.NotaCompra, &g.ValorCompra, &g.Cliente, &g.Mecanico, &g.NotaSaida, &g.NotaRetorno,
		&g.Observacao, &g.CriadoEm, &g.Status, &g.LoteID,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get garantia: %w", err)
	}
	return &g, nil
}

// List devolve todas as garantias. A ordem não é semântica; a UI reordena por
// recência usando o ID como desempate.
func (r *GarantiaRepo) List(ctx context.Context) ([]*entity.Garantia, error) {
	query := `SELECT id, ` + garantiaCols + ` FROM garantias ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list garantias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Garantia
	for rows.Next() {
		var g entity.Garantia
		if err := rows.Scan(
			&g.ID, &g.Codigo, &g.Descricao, &g.Fornecedor, &g.Quantidade, &g.Defeito, &g.Requisicoes,
			&g.NotaCompra, &g.ValorCompra, &g.Cliente, &g.Mecanico, &g.NotaSaida, &g.NotaRetorno,
			&g.Observacao, &g.CriadoEm, &g.Status, &g.LoteID,
		); err != nil {
			return nil, fmt.Errorf("scan garantia: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update atualiza uma garantia existente. criado_em nunca é alterado.
// Devolve domain.ErrNotFound se o ID não existe na coleção.
func (r *GarantiaRepo) Update(ctx context.Context, g *entity.Garantia) error {
	query := `
		UPDATE garantias SET codigo = $2, descricao = $3, fornecedor = $4, quantidade = $5,
			defeito = $6, requisicoes = $7, nota_compra = $8, valor_compra = $9, cliente = $10,
			mecanico = $11, nota_saida = $12, nota_retorno = $13, observacao = $14,
			status = $15, lote_id = $16
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		g.ID, g.Codigo, g.Descricao, g.Fornecedor, g.Quantidade, g.Defeito, g.Requisicoes,
		g.NotaCompra, g.ValorCompra, g.Cliente, g.Mecanico, g.NotaSaida, g.NotaRetorno,
		g.Observacao, g.Status, g.LoteID,
	)
	if err != nil {
		return fmt.Errorf("update garantia: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma garantia por ID. Sinaliza domain.ErrNotFound para observabilidade.
func (r *GarantiaRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM garantias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete garantia: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear esvazia a coleção inteira. Usado pela restauração e pela ação explícita de limpeza.
func (r *GarantiaRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM garantias`); err != nil {
		return fmt.Errorf("clear garantias: %w", err)
	}
	return nil
}
