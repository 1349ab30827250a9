package postgres

import (
	"context"
	"fmt"

	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
)

var _ repository.DevolucaoRepository = (*DevolucaoRepo)(nil)

// DevolucaoRepo implementação do porto DevolucaoRepository sobre PostgreSQL.
// Os itens vivem em tabela própria (itens_devolucao) mas só são tocados por aqui:
// criação pai+itens deve rodar dentro de uma transação (passar tx como Querier;
// o caso de uso usa o TxRunner para isso).
type DevolucaoRepo struct {
	q Querier
}

// NewDevolucaoRepository constrói o adaptador de persistência para devoluções.
func NewDevolucaoRepository(q Querier) *DevolucaoRepo {
	return &DevolucaoRepo{q: q}
}

// Create persiste a devolução e seus itens como uma operação lógica única.
// Cada item recebe identificador novo e a referência ao pai; IDs de itens vindos
// do chamador são ignorados. ID do pai preenchido é preservado (restauração).
func (r *DevolucaoRepo) Create(ctx context.Context, d *entity.Devolucao) error {
	if d.ID != 0 {
		_, err := r.q.Exec(ctx, `
			INSERT INTO devolucoes (id, numero, cliente, data, observacao, status, criado_em)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			d.ID, d.Numero, d.Cliente, d.Data, d.Observacao, d.Status, d.CriadoEm,
		)
		if err != nil {
			return fmt.Errorf("insert devolucao: %w", err)
		}
	} else {
		err := r.q.QueryRow(ctx, `
			INSERT INTO devolucoes (numero, cliente, data, observacao, status, criado_em)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			d.Numero, d.Cliente, d.Data, d.Observacao, d.Status, d.CriadoEm,
		).Scan(&d.ID)
		if err != nil {
			return fmt.Errorf("insert devolucao: %w", err)
		}
	}

	for i := range d.Itens {
		item := &d.Itens[i]
		item.DevolucaoID = d.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO itens_devolucao (devolucao_id, codigo, descricao, quantidade, valor)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			item.DevolucaoID, item.Codigo, item.Descricao, item.Quantidade, item.Valor,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert item de devolucao: %w", err)
		}
	}
	return nil
}

// GetByID obtém uma devolução com seus itens. Devolve (nil, nil) quando não existe.
func (r *DevolucaoRepo) GetByID(ctx context.Context, id int64) (*entity.Devolucao, error) {
	var d entity.Devolucao
	err := r.q.QueryRow(ctx, `
		SELECT id, numero, cliente, data, observacao, status, criado_em
		FROM devolucoes WHERE id = $1`, id,
	).Scan(&d.ID, &d.Numero, &d.Cliente, &d.Data, &d.Observacao, &d.Status, &d.CriadoEm)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get devolucao: %w", err)
	}
	itens, err := r.ListItens(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.Itens = itens
	return &d, nil
}

// List devolve todas as devoluções, cada uma já com seus itens.
func (r *DevolucaoRepo) List(ctx context.Context) ([]*entity.Devolucao, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, numero, cliente, data, observacao, status, criado_em
		FROM devolucoes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list devolucoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Devolucao
	for rows.Next() {
		var d entity.Devolucao
		if err := rows.Scan(&d.ID, &d.Numero, &d.Cliente, &d.Data, &d.Observacao, &d.Status, &d.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan devolucao: %w", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, d := range list {
		itens, err := r.ListItens(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		d.Itens = itens
	}
	return list, nil
}

// ListItens devolve os itens de uma devolução, na ordem de inserção.
func (r *DevolucaoRepo) ListItens(ctx context.Context, devolucaoID int64) ([]entity.ItemDevolucao, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, devolucao_id, codigo, descricao, quantidade, valor
		FROM itens_devolucao WHERE devolucao_id = $1 ORDER BY id`, devolucaoID)
	if err != nil {
		return nil, fmt.Errorf("list itens de devolucao: %w", err)
	}
	defer rows.Close()

	var itens []entity.ItemDevolucao
	for rows.Next() {
		var it entity.ItemDevolucao
		if err := rows.Scan(&it.ID, &it.DevolucaoID, &it.Codigo, &it.Descricao, &it.Quantidade, &it.Valor); err != nil {
			return nil, fmt.Errorf("scan item de devolucao: %w", err)
		}
		itens = append(itens, it)
	}
	return itens, rows.Err()
}

// Update substitui a devolução e regrava a lista de itens: os itens antigos
// são removidos e os novos inseridos com identificadores frescos. criado_em
// nunca é alterado. Como o Create, deve rodar dentro de uma transação (o caso
// de uso usa RunDevolucao).
func (r *DevolucaoRepo) Update(ctx context.Context, d *entity.Devolucao) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE devolucoes SET numero = $2, cliente = $3, data = $4, observacao = $5, status = $6
		WHERE id = $1`,
		d.ID, d.Numero, d.Cliente, d.Data, d.Observacao, d.Status,
	)
	if err != nil {
		return fmt.Errorf("update devolucao: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := r.q.Exec(ctx, `DELETE FROM itens_devolucao WHERE devolucao_id = $1`, d.ID); err != nil {
		return fmt.Errorf("remover itens antigos de devolucao: %w", err)
	}
	for i := range d.Itens {
		item := &d.Itens[i]
		item.DevolucaoID = d.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO itens_devolucao (devolucao_id, codigo, descricao, quantidade, valor)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			item.DevolucaoID, item.Codigo, item.Descricao, item.Quantidade, item.Valor,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert item de devolucao: %w", err)
		}
	}
	return nil
}

// Delete remove a devolução e, por cascata, seus itens.
func (r *DevolucaoRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM devolucoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete devolucao: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear esvazia devoluções e itens (cascata pela FK).
func (r *DevolucaoRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM devolucoes`); err != nil {
		return fmt.Errorf("clear devolucoes: %w", err)
	}
	return nil
}
