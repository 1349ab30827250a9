package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garantias/internal/application/dto"
	"garantias/internal/application/usecase"
	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
)

type memDevolucoes struct {
	itens  []*entity.Devolucao
	seq    int64
	seqIt  int64
	falhar bool
}

func (m *memDevolucoes) Create(_ context.Context, d *entity.Devolucao) error {
	if m.falhar {
		return errors.New("falha simulada")
	}
	m.seq++
	d.ID = m.seq
	for i := range d.Itens {
		m.seqIt++
		d.Itens[i].ID = m.seqIt
		d.Itens[i].DevolucaoID = d.ID
	}
	cp := *d
	cp.Itens = append([]entity.ItemDevolucao(nil), d.Itens...)
	m.itens = append(m.itens, &cp)
	return nil
}

func (m *memDevolucoes) GetByID(_ context.Context, id int64) (*entity.Devolucao, error) {
	for _, d := range m.itens {
		if d.ID == id {
			cp := *d
			cp.Itens = append([]entity.ItemDevolucao(nil), d.Itens...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memDevolucoes) List(_ context.Context) ([]*entity.Devolucao, error) {
	out := make([]*entity.Devolucao, len(m.itens))
	copy(out, m.itens)
	return out, nil
}

func (m *memDevolucoes) ListItens(_ context.Context, devolucaoID int64) ([]entity.ItemDevolucao, error) {
	for _, d := range m.itens {
		if d.ID == devolucaoID {
			return append([]entity.ItemDevolucao(nil), d.Itens...), nil
		}
	}
	return nil, nil
}

func (m *memDevolucoes) Update(_ context.Context, d *entity.Devolucao) error {
	for i, atual := range m.itens {
		if atual.ID == d.ID {
			for j := range d.Itens {
				m.seqIt++
				d.Itens[j].ID = m.seqIt
				d.Itens[j].DevolucaoID = d.ID
			}
			cp := *d
			cp.Itens = append([]entity.ItemDevolucao(nil), d.Itens...)
			m.itens[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memDevolucoes) Delete(_ context.Context, id int64) error {
	for i, d := range m.itens {
		if d.ID == id {
			m.itens = append(m.itens[:i], m.itens[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memDevolucoes) Clear(_ context.Context) error {
	m.itens = nil
	return nil
}

// passthroughTx registra quantas vezes o runner foi chamado.
type passthroughTx struct {
	repo     repository.DevolucaoRepository
	chamadas int
}

func (tx *passthroughTx) RunDevolucao(ctx context.Context, fn func(repo repository.DevolucaoRepository) error) error {
	tx.chamadas++
	return fn(tx.repo)
}

func TestDevolucao_CriarComItensViaTransacao(t *testing.T) {
	ctx := context.Background()
	repo := &memDevolucoes{}
	tx := &passthroughTx{repo: repo}
	uc := usecase.NewDevolucaoUseCase(repo, tx, quietLogger())

	criada, err := uc.Create(ctx, dto.DevolucaoRequest{
		Numero:  "DEV-1",
		Cliente: "Oficina do Zé",
		Itens: []dto.ItemDevolucaoRequest{
			{Codigo: "PX-1", Descricao: "Pastilha", Quantidade: 2, Valor: decimal.NewFromInt(80)},
			{Codigo: "PX-2", Descricao: "Disco", Quantidade: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.chamadas, "criação passa pelo runner transacional")
	assert.Equal(t, entity.StatusDevolucaoPendente, criada.Status)
	require.Len(t, criada.Itens, 2)
	for _, item := range criada.Itens {
		assert.NotZero(t, item.ID)
		assert.Equal(t, criada.ID, item.DevolucaoID, "todo item referencia o pai")
	}

	lida, err := uc.GetByID(ctx, criada.ID)
	require.NoError(t, err)
	assert.Len(t, lida.Itens, 2)
}

func TestDevolucao_ValidacaoAntesDaTransacao(t *testing.T) {
	repo := &memDevolucoes{}
	tx := &passthroughTx{repo: repo}
	uc := usecase.NewDevolucaoUseCase(repo, tx, quietLogger())

	_, err := uc.Create(context.Background(), dto.DevolucaoRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.DevolucaoRequest{
		Numero: "DEV-1",
		Itens:  []dto.ItemDevolucaoRequest{{Codigo: "X", Quantidade: -1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, tx.chamadas, "entrada inválida não chega ao banco")
}

func TestDevolucao_UpdateSubstituiOsItens(t *testing.T) {
	ctx := context.Background()
	repo := &memDevolucoes{}
	tx := &passthroughTx{repo: repo}
	uc := usecase.NewDevolucaoUseCase(repo, tx, quietLogger())

	criada, err := uc.Create(ctx, dto.DevolucaoRequest{
		Numero: "DEV-1",
		Itens: []dto.ItemDevolucaoRequest{
			{Codigo: "PX-1", Descricao: "Pastilha", Quantidade: 2},
			{Codigo: "PX-2", Descricao: "Disco", Quantidade: 1},
		},
	})
	require.NoError(t, err)
	antigos := make(map[int64]bool)
	for _, item := range criada.Itens {
		antigos[item.ID] = true
	}

	atualizada, err := uc.Update(ctx, criada.ID, dto.DevolucaoRequest{
		Numero:  "DEV-1",
		Cliente: "Oficina do Zé",
		Itens: []dto.ItemDevolucaoRequest{
			{Codigo: "FX-9", Descricao: "Filtro", Quantidade: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tx.chamadas, "atualização também passa pelo runner transacional")
	assert.Equal(t, criada.CriadoEm, atualizada.CriadoEm, "CriadoEm não muda em Update")
	require.Len(t, atualizada.Itens, 1)
	assert.False(t, antigos[atualizada.Itens[0].ID], "item novo recebe identificador novo")
	assert.Equal(t, criada.ID, atualizada.Itens[0].DevolucaoID)

	lida, err := uc.GetByID(ctx, criada.ID)
	require.NoError(t, err)
	require.Len(t, lida.Itens, 1, "os itens antigos sumiram")
	assert.Equal(t, "FX-9", lida.Itens[0].Codigo)

	_, err = uc.Update(ctx, 999, dto.DevolucaoRequest{Numero: "DEV-X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, tx.chamadas, "id inexistente não abre transação")
}

func TestDevolucao_FalhaNaTransacaoNaoGrava(t *testing.T) {
	repo := &memDevolucoes{falhar: true}
	uc := usecase.NewDevolucaoUseCase(repo, &passthroughTx{repo: repo}, quietLogger())

	_, err := uc.Create(context.Background(), dto.DevolucaoRequest{Numero: "DEV-1"})
	require.Error(t, err)
	assert.Empty(t, repo.itens)
}

func TestDevolucao_BuscaVarreOsItens(t *testing.T) {
	ctx := context.Background()
	repo := &memDevolucoes{}
	uc := usecase.NewDevolucaoUseCase(repo, &passthroughTx{repo: repo}, quietLogger())

	_, err := uc.Create(ctx, dto.DevolucaoRequest{
		Numero: "DEV-1",
		Itens:  []dto.ItemDevolucaoRequest{{Codigo: "PX-9", Descricao: "Correia dentada"}},
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.DevolucaoRequest{Numero: "DEV-2", Cliente: "Maria"})
	require.NoError(t, err)

	out, err := uc.List(ctx, "correia", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "DEV-1", out.Items[0].Numero)

	out, err = uc.List(ctx, "maria", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "DEV-2", out.Items[0].Numero)
}
