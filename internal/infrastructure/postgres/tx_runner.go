package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"garantias/internal/application/backup"
	"garantias/internal/application/usecase"
	"garantias/internal/domain/repository"
)

// Garante que TxRunner implementa os portos transacionais da aplicação.
var _ backup.TxRunner = (*TxRunner)(nil)
var _ usecase.DevolucaoTxRunner = (*TxRunner)(nil)

// Tabelas com identificador identity. A restauração insere preservando IDs do
// documento, então as sequências precisam ser realinhadas antes do commit.
var tabelasIdentity = []string{"garantias", "lotes", "pessoas", "fornecedores", "devolucoes", "itens_devolucao"}

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com os repositórios das seis coleções
// presos à tx, realinha as sequências e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos backup.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := backup.Repos{
		Garantias:    NewGarantiaRepository(tx),
		Lotes:        NewLoteRepository(tx),
		Pessoas:      NewPessoaRepository(tx),
		Fornecedores: NewFornecedorRepository(tx),
		Devolucoes:   NewDevolucaoRepository(tx),
		Empresa:      NewEmpresaRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	for _, tabela := range tabelasIdentity {
		if err := resyncIdentity(ctx, tx, tabela); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDevolucao inicia uma transação só com o repositório de devoluções
// (criação pai+itens tudo-ou-nada).
func (r *TxRunner) RunDevolucao(ctx context.Context, fn func(repo repository.DevolucaoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDevolucaoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// resyncIdentity deixa a sequência da tabela à frente do maior ID inserido.
func resyncIdentity(ctx context.Context, q Querier, tabela string) error {
	query := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %s`,
		tabela, tabela,
	)
	if _, err := q.Exec(ctx, query); err != nil {
		return fmt.Errorf("realinhar sequência de %s: %w", tabela, err)
	}
	return nil
}
