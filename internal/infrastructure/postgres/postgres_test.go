package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"garantias/internal/application/backup"
	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
	"garantias/internal/infrastructure/postgres"
	"garantias/pkg/config"
)

// Os testes de integração sobem um PostgreSQL real via testcontainers.
// Rodam apenas com TEST_INTEGRATION=1 (exigem Docker disponível).

func setupPool(t *testing.T) *postgresHarness {
	t.Helper()
	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("TEST_INTEGRATION não definido; pulando testes com banco real")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("garantias_test"),
		tcpostgres.WithUsername("garantias"),
		tcpostgres.WithPassword("garantias"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.EnsureSchema(ctx, pool))

	return &postgresHarness{
		garantias:  postgres.NewGarantiaRepository(pool),
		lotes:      postgres.NewLoteRepository(pool),
		devolucoes: postgres.NewDevolucaoRepository(pool),
		empresa:    postgres.NewEmpresaRepository(pool),
		tx:         postgres.NewTxRunner(pool),
	}
}

type postgresHarness struct {
	garantias  repository.GarantiaRepository
	lotes      repository.LoteRepository
	devolucoes repository.DevolucaoRepository
	empresa    repository.EmpresaRepository
	tx         *postgres.TxRunner
}

func TestGarantiaRepository_CicloCompleto(t *testing.T) {
	h := setupPool(t)
	ctx := context.Background()

	g := &entity.Garantia{
		Codigo:      "AM-100",
		Descricao:   "Amortecedor dianteiro",
		Quantidade:  2,
		ValorCompra: decimal.RequireFromString("149.90"),
		CriadoEm:    time.Now().UTC().Truncate(time.Microsecond),
		Status:      entity.StatusGarantiaEmAnalise,
	}
	require.NoError(t, h.garantias.Create(ctx, g))
	require.NotZero(t, g.ID)

	lida, err := h.garantias.GetByID(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, lida)
	assert.Equal(t, "AM-100", lida.Codigo)
	assert.True(t, lida.ValorCompra.Equal(decimal.RequireFromString("149.90")), "decimal sem perda de precisão")

	lida.Status = entity.StatusGarantiaAprovada
	require.NoError(t, h.garantias.Update(ctx, lida))

	depois, err := h.garantias.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusGarantiaAprovada, depois.Status)

	require.NoError(t, h.garantias.Delete(ctx, g.ID))
	sumiu, err := h.garantias.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Nil(t, sumiu)

	assert.ErrorIs(t, h.garantias.Update(ctx, lida), domain.ErrNotFound)
	assert.ErrorIs(t, h.garantias.Delete(ctx, g.ID), domain.ErrNotFound)
}

func TestDevolucaoRepository_PaiEItensJuntos(t *testing.T) {
	h := setupPool(t)
	ctx := context.Background()

	d := &entity.Devolucao{
		Numero:   "DEV-1",
		Cliente:  "Oficina do Zé",
		CriadoEm: time.Now().UTC(),
		Status:   entity.StatusDevolucaoPendente,
		Itens: []entity.ItemDevolucao{
			{Codigo: "PX-1", Descricao: "Pastilha", Quantidade: 2, Valor: decimal.NewFromInt(80)},
			{Codigo: "PX-2", Descricao: "Disco", Quantidade: 1, Valor: decimal.RequireFromString("120.50")},
		},
	}
	err := h.tx.RunDevolucao(ctx, func(repo repository.DevolucaoRepository) error {
		return repo.Create(ctx, d)
	})
	require.NoError(t, err)
	require.NotZero(t, d.ID)

	lida, err := h.devolucoes.GetByID(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, lida)
	require.Len(t, lida.Itens, 2)
	for _, item := range lida.Itens {
		assert.Equal(t, d.ID, item.DevolucaoID)
		assert.NotZero(t, item.ID)
	}

	// remover o pai derruba os itens em cascata
	require.NoError(t, h.devolucoes.Delete(ctx, d.ID))
	orfaos, err := h.devolucoes.ListItens(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, orfaos)
}

func TestDevolucaoRepository_UpdateRegravaOsItens(t *testing.T) {
	h := setupPool(t)
	ctx := context.Background()

	d := &entity.Devolucao{
		Numero:   "DEV-2",
		CriadoEm: time.Now().UTC(),
		Status:   entity.StatusDevolucaoPendente,
		Itens: []entity.ItemDevolucao{
			{Codigo: "PX-1", Quantidade: 2},
			{Codigo: "PX-2", Quantidade: 1},
		},
	}
	err := h.tx.RunDevolucao(ctx, func(repo repository.DevolucaoRepository) error {
		return repo.Create(ctx, d)
	})
	require.NoError(t, err)
	antigos := make(map[int64]bool)
	for _, item := range d.Itens {
		antigos[item.ID] = true
	}

	d.Cliente = "Oficina do Zé"
	d.Itens = []entity.ItemDevolucao{{Codigo: "FX-9", Descricao: "Filtro", Quantidade: 3}}
	err = h.tx.RunDevolucao(ctx, func(repo repository.DevolucaoRepository) error {
		return repo.Update(ctx, d)
	})
	require.NoError(t, err)

	// só os itens novos sobram, presos ao mesmo pai
	itens, err := h.devolucoes.ListItens(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, itens, 1)
	assert.Equal(t, "FX-9", itens[0].Codigo)
	assert.Equal(t, d.ID, itens[0].DevolucaoID)
	assert.False(t, antigos[itens[0].ID], "item regravado recebe identificador novo")

	lida, err := h.devolucoes.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oficina do Zé", lida.Cliente)

	inexistente := &entity.Devolucao{ID: 99999, Numero: "DEV-X"}
	err = h.tx.RunDevolucao(ctx, func(repo repository.DevolucaoRepository) error {
		return repo.Update(ctx, inexistente)
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTxRunner_RestauracaoPreservaIDsEResincronizaSequencias(t *testing.T) {
	h := setupPool(t)
	ctx := context.Background()

	// dado pré-existente que deve desaparecer
	antiga := &entity.Garantia{Codigo: "VELHA", CriadoEm: time.Now().UTC(), Status: entity.StatusGarantiaEmAnalise}
	require.NoError(t, h.garantias.Create(ctx, antiga))

	err := h.tx.Run(ctx, func(r backup.Repos) error {
		if err := r.Garantias.Clear(ctx); err != nil {
			return err
		}
		if err := r.Lotes.Clear(ctx); err != nil {
			return err
		}
		// identificadores explícitos vindos do arquivo de backup
		if err := r.Lotes.Create(ctx, &entity.Lote{ID: 40, Codigo: "L-1", CriadoEm: time.Now().UTC(), Status: entity.StatusLoteAberto}); err != nil {
			return err
		}
		loteID := int64(40)
		return r.Garantias.Create(ctx, &entity.Garantia{
			ID: 100, Codigo: "RESTAURADA", LoteID: &loteID,
			CriadoEm: time.Now().UTC(), Status: entity.StatusGarantiaAprovada,
		})
	})
	require.NoError(t, err)

	restaurada, err := h.garantias.GetByID(ctx, 100)
	require.NoError(t, err)
	require.NotNil(t, restaurada)
	assert.Equal(t, "RESTAURADA", restaurada.Codigo)

	todas, err := h.garantias.List(ctx)
	require.NoError(t, err)
	require.Len(t, todas, 1, "restauração substitui, não mescla")

	// sequência resincronizada: a próxima criação não colide com o id 100
	nova := &entity.Garantia{Codigo: "POS-RESTAURACAO", CriadoEm: time.Now().UTC(), Status: entity.StatusGarantiaEmAnalise}
	require.NoError(t, h.garantias.Create(ctx, nova))
	assert.Greater(t, nova.ID, int64(100))
}

func TestTxRunner_ErroDentroDaTransacaoReverteTudo(t *testing.T) {
	h := setupPool(t)
	ctx := context.Background()

	pre := &entity.Garantia{Codigo: "PRE", CriadoEm: time.Now().UTC(), Status: entity.StatusGarantiaEmAnalise}
	require.NoError(t, h.garantias.Create(ctx, pre))

	err := h.tx.Run(ctx, func(r backup.Repos) error {
		if err := r.Garantias.Clear(ctx); err != nil {
			return err
		}
		// garantia apontando para lote inexistente viola a FK e aborta a transação
		loteID := int64(9999)
		return r.Garantias.Create(ctx, &entity.Garantia{
			Codigo: "QUEBRADA", LoteID: &loteID,
			CriadoEm: time.Now().UTC(), Status: entity.StatusGarantiaEmAnalise,
		})
	})
	require.Error(t, err)

	// o clear foi revertido junto
	todas, err := h.garantias.List(ctx)
	require.NoError(t, err)
	require.Len(t, todas, 1)
	assert.Equal(t, "PRE", todas[0].Codigo)
}

func TestEmpresaRepository_RegistroUnico(t *testing.T) {
	h := setupPool(t)
	ctx := context.Background()

	vazio, err := h.empresa.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, vazio, "ausente até a primeira configuração")

	require.NoError(t, h.empresa.Save(ctx, &entity.DadosEmpresa{Nome: "Primeira", AtualizadoEm: time.Now().UTC()}))
	require.NoError(t, h.empresa.Save(ctx, &entity.DadosEmpresa{Nome: "Substituta", AtualizadoEm: time.Now().UTC()}))

	atual, err := h.empresa.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, atual)
	assert.Equal(t, "Substituta", atual.Nome, "upsert substitui o registro único")
}
