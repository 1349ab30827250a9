package postgres

import (
	"context"
	"fmt"
	"time"

	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementação do porto EmpresaRepository sobre PostgreSQL.
// A tabela dados_empresa admite no máximo uma linha (id travado em 1).
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador de persistência dos dados da empresa.
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Get obtém o registro único. Devolve (nil, nil) enquanto não configurado.
func (r *EmpresaRepo) Get(ctx context.Context) (*entity.DadosEmpresa, error) {
	var e entity.DadosEmpresa
	err := r.q.QueryRow(ctx, `
		SELECT id, nome, cnpj, endereco, cidade, telefone, email, atualizado_em
		FROM dados_empresa WHERE id = 1`,
	).Scan(&e.ID, &e.Nome, &e.CNPJ, &e.Endereco, &e.Cidade, &e.Telefone, &e.Email, &e.AtualizadoEm)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dados da empresa: %w", err)
	}
	return &e, nil
}

// Save grava os dados da empresa com semântica de upsert: cria o registro
// único se ausente, senão substitui.
func (r *EmpresaRepo) Save(ctx context.Context, e *entity.DadosEmpresa) error {
	e.ID = 1
	e.AtualizadoEm = time.Now()
	_, err := r.q.Exec(ctx, `
		INSERT INTO dados_empresa (id, nome, cnpj, endereco, cidade, telefone, email, atualizado_em)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			nome = EXCLUDED.nome, cnpj = EXCLUDED.cnpj, endereco = EXCLUDED.endereco,
			cidade = EXCLUDED.cidade, telefone = EXCLUDED.telefone, email = EXCLUDED.email,
			atualizado_em = EXCLUDED.atualizado_em`,
		e.Nome, e.CNPJ, e.Endereco, e.Cidade, e.Telefone, e.Email, e.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("save dados da empresa: %w", err)
	}
	return nil
}

// Clear remove o registro único, se existir.
func (r *EmpresaRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM dados_empresa`); err != nil {
		return fmt.Errorf("clear dados da empresa: %w", err)
	}
	return nil
}
