package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garantias/internal/application/dto"
	"garantias/internal/application/usecase"
	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/pkg/logger"
)

// fake em memória do repositório de garantias
type memGarantias struct {
	itens []*entity.Garantia
	seq   int64
}

func (m *memGarantias) Create(_ context.Context, g *entity.Garantia) error {
	m.seq++
	g.ID = m.seq
	cp := *g
	m.itens = append(m.itens, &cp)
	return nil
}

func (m *memGarantias) GetByID(_ context.Context, id int64) (*entity.Garantia, error) {
	for _, g := range m.itens {
		if g.ID == id {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memGarantias) List(_ context.Context) ([]*entity.Garantia, error) {
	out := make([]*entity.Garantia, len(m.itens))
	copy(out, m.itens)
	return out, nil
}

func (m *memGarantias) Update(_ context.Context, g *entity.Garantia) error {
	for i, atual := range m.itens {
		if atual.ID == g.ID {
			cp := *g
			m.itens[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memGarantias) Delete(_ context.Context, id int64) error {
	for i, g := range m.itens {
		if g.ID == id {
			m.itens = append(m.itens[:i], m.itens[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memGarantias) Clear(_ context.Context) error {
	m.itens = nil
	return nil
}

func quietLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestGarantia_CriarEBuscar(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewGarantiaUseCase(&memGarantias{}, quietLogger())

	criada, err := uc.Create(ctx, dto.GarantiaRequest{
		Codigo:    "AM-100",
		Descricao: "Amortecedor dianteiro",
		Defeito:   "vazamento de óleo",
	})
	require.NoError(t, err)
	assert.NotZero(t, criada.ID)
	assert.Equal(t, entity.StatusGarantiaEmAnalise, criada.Status, "status padrão na criação")
	assert.False(t, criada.CriadoEm.IsZero())

	lida, err := uc.GetByID(ctx, criada.ID)
	require.NoError(t, err)
	assert.Equal(t, criada.Codigo, lida.Codigo)
	assert.Equal(t, criada.CriadoEm.Unix(), lida.CriadoEm.Unix())
}

func TestGarantia_CriarSemIdentificacao(t *testing.T) {
	uc := usecase.NewGarantiaUseCase(&memGarantias{}, quietLogger())
	_, err := uc.Create(context.Background(), dto.GarantiaRequest{Defeito: "sem código nem descrição"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGarantia_ListaFiltraSemAcentos(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewGarantiaUseCase(&memGarantias{}, quietLogger())

	_, err := uc.Create(ctx, dto.GarantiaRequest{Codigo: "S1", Descricao: "Kit de Suspensão"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.GarantiaRequest{Codigo: "F1", Descricao: "Pastilha de freio"})
	require.NoError(t, err)

	out, err := uc.List(ctx, "suspensao", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "S1", out.Items[0].Codigo)
	assert.Equal(t, 1, out.Page.Total)

	// termo vazio devolve tudo
	out, err = uc.List(ctx, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}

func TestGarantia_ListaOrdenaPorRecencia(t *testing.T) {
	ctx := context.Background()
	repo := &memGarantias{}
	uc := usecase.NewGarantiaUseCase(repo, quietLogger())

	antiga := time.Now().Add(-time.Hour)
	agora := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.Garantia{Codigo: "ANTIGA", CriadoEm: antiga}))
	require.NoError(t, repo.Create(ctx, &entity.Garantia{Codigo: "NOVA", CriadoEm: agora}))
	// mesmo instante da anterior: o id maior desempata na frente
	require.NoError(t, repo.Create(ctx, &entity.Garantia{Codigo: "NOVA-2", CriadoEm: agora}))

	out, err := uc.List(ctx, "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "NOVA-2", out.Items[0].Codigo)
	assert.Equal(t, "NOVA", out.Items[1].Codigo)
	assert.Equal(t, "ANTIGA", out.Items[2].Codigo)
}

func TestGarantia_ListaPagina(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewGarantiaUseCase(&memGarantias{}, quietLogger())
	for i := 0; i < 5; i++ {
		_, err := uc.Create(ctx, dto.GarantiaRequest{Codigo: "G", Descricao: "peça"})
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, "", dto.PageRequest{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 5, out.Page.Total)

	out, err = uc.List(ctx, "", dto.PageRequest{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestGarantia_UpdatePreservaCriadoEm(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewGarantiaUseCase(&memGarantias{}, quietLogger())

	criada, err := uc.Create(ctx, dto.GarantiaRequest{Codigo: "AM-100", Descricao: "Amortecedor"})
	require.NoError(t, err)

	atualizada, err := uc.Update(ctx, criada.ID, dto.GarantiaRequest{
		Codigo:    "AM-100",
		Descricao: "Amortecedor traseiro",
		Status:    entity.StatusGarantiaAprovada,
	})
	require.NoError(t, err)
	assert.Equal(t, "Amortecedor traseiro", atualizada.Descricao)
	assert.Equal(t, entity.StatusGarantiaAprovada, atualizada.Status)
	assert.Equal(t, criada.CriadoEm.Unix(), atualizada.CriadoEm.Unix(), "criadoEm nunca muda")
}

func TestGarantia_UpdateInexistente(t *testing.T) {
	uc := usecase.NewGarantiaUseCase(&memGarantias{}, quietLogger())
	_, err := uc.Update(context.Background(), 999, dto.GarantiaRequest{Codigo: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGarantia_DeleteInexistente(t *testing.T) {
	uc := usecase.NewGarantiaUseCase(&memGarantias{}, quietLogger())
	err := uc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
