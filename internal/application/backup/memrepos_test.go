package backup_test

import (
	"context"
	"errors"

	"garantias/internal/application/backup"
	"garantias/internal/domain"
	"garantias/internal/domain/entity"
)

// Repositórios em memória para os testes do codec e do orquestrador.
// O fakeTxRunner abaixo emula a semântica transacional do banco: snapshot
// antes de executar fn e restauração do snapshot se fn falhar.

type fakeGarantias struct {
	itens []*entity.Garantia
	seq   int64
}

func (f *fakeGarantias) Create(_ context.Context, g *entity.Garantia) error {
	if g.ID == 0 {
		f.seq++
		g.ID = f.seq
	} else if g.ID > f.seq {
		f.seq = g.ID
	}
	cp := *g
	f.itens = append(f.itens, &cp)
	return nil
}

func (f *fakeGarantias) GetByID(_ context.Context, id int64) (*entity.Garantia, error) {
	for _, g := range f.itens {
		if g.ID == id {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeGarantias) List(_ context.Context) ([]*entity.Garantia, error) {
	out := make([]*entity.Garantia, len(f.itens))
	copy(out, f.itens)
	return out, nil
}

func (f *fakeGarantias) Update(_ context.Context, g *entity.Garantia) error {
	for i, atual := range f.itens {
		if atual.ID == g.ID {
			cp := *g
			f.itens[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeGarantias) Delete(_ context.Context, id int64) error {
	for i, g := range f.itens {
		if g.ID == id {
			f.itens = append(f.itens[:i], f.itens[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeGarantias) Clear(_ context.Context) error {
	f.itens = nil
	return nil
}

type fakeLotes struct {
	itens []*entity.Lote
	seq   int64
}

func (f *fakeLotes) Create(_ context.Context, l *entity.Lote) error {
	if l.ID == 0 {
		f.seq++
		l.ID = f.seq
	} else if l.ID > f.seq {
		f.seq = l.ID
	}
	cp := *l
	f.itens = append(f.itens, &cp)
	return nil
}

func (f *fakeLotes) GetByID(_ context.Context, id int64) (*entity.Lote, error) {
	for _, l := range f.itens {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLotes) List(_ context.Context) ([]*entity.Lote, error) {
	out := make([]*entity.Lote, len(f.itens))
	copy(out, f.itens)
	return out, nil
}

func (f *fakeLotes) Update(_ context.Context, l *entity.Lote) error {
	for i, atual := range f.itens {
		if atual.ID == l.ID {
			cp := *l
			f.itens[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeLotes) Delete(_ context.Context, id int64) error {
	for i, l := range f.itens {
		if l.ID == id {
			f.itens = append(f.itens[:i], f.itens[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeLotes) Clear(_ context.Context) error {
	f.itens = nil
	return nil
}

type fakePessoas struct {
	itens []*entity.Pessoa
	seq   int64
}

func (f *fakePessoas) Create(_ context.Context, p *entity.Pessoa) error {
	if p.ID == 0 {
		f.seq++
		p.ID = f.seq
	} else if p.ID > f.seq {
		f.seq = p.ID
	}
	cp := *p
	f.itens = append(f.itens, &cp)
	return nil
}

func (f *fakePessoas) GetByID(_ context.Context, id int64) (*entity.Pessoa, error) {
	for _, p := range f.itens {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakePessoas) List(_ context.Context) ([]*entity.Pessoa, error) {
	out := make([]*entity.Pessoa, len(f.itens))
	copy(out, f.itens)
	return out, nil
}

func (f *fakePessoas) Update(_ context.Context, p *entity.Pessoa) error {
	for i, atual := range f.itens {
		if atual.ID == p.ID {
			cp := *p
			f.itens[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakePessoas) Delete(_ context.Context, id int64) error {
	for i, p := range f.itens {
		if p.ID == id {
			f.itens = append(f.itens[:i], f.itens[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakePessoas) Clear(_ context.Context) error {
	f.itens = nil
	return nil
}

type fakeFornecedores struct {
	itens []*entity.Fornecedor
	seq   int64
}

func (f *fakeFornecedores) Create(_ context.Context, fo *entity.Fornecedor) error {
	if fo.ID == 0 {
		f.seq++
		fo.ID = f.seq
	} else if fo.ID > f.seq {
		f.seq = fo.ID
	}
	cp := *fo
	f.itens = append(f.itens, &cp)
	return nil
}

func (f *fakeFornecedores) GetByID(_ context.Context, id int64) (*entity.Fornecedor, error) {
	for _, fo := range f.itens {
		if fo.ID == id {
			cp := *fo
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeFornecedores) List(_ context.Context) ([]*entity.Fornecedor, error) {
	out := make([]*entity.Fornecedor, len(f.itens))
	copy(out, f.itens)
	return out, nil
}

func (f *fakeFornecedores) Update(_ context.Context, fo *entity.Fornecedor) error {
	for i, atual := range f.itens {
		if atual.ID == fo.ID {
			cp := *fo
			f.itens[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeFornecedores) Delete(_ context.Context, id int64) error {
	for i, fo := range f.itens {
		if fo.ID == id {
			f.itens = append(f.itens[:i], f.itens[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeFornecedores) Clear(_ context.Context) error {
	f.itens = nil
	return nil
}

type fakeDevolucoes struct {
	itens  []*entity.Devolucao
	seq    int64
	seqIt  int64
	falhar bool // força erro no Create para o teste de rollback
}

func (f *fakeDevolucoes) Create(_ context.Context, d *entity.Devolucao) error {
	if f.falhar {
		return errors.New("falha simulada de escrita")
	}
	if d.ID == 0 {
		f.seq++
		d.ID = f.seq
	} else if d.ID > f.seq {
		f.seq = d.ID
	}
	for i := range d.Itens {
		f.seqIt++
		d.Itens[i].ID = f.seqIt
		d.Itens[i].DevolucaoID = d.ID
	}
	cp := *d
	cp.Itens = append([]entity.ItemDevolucao(nil), d.Itens...)
	f.itens = append(f.itens, &cp)
	return nil
}

func (f *fakeDevolucoes) GetByID(_ context.Context, id int64) (*entity.Devolucao, error) {
	for _, d := range f.itens {
		if d.ID == id {
			cp := *d
			cp.Itens = append([]entity.ItemDevolucao(nil), d.Itens...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDevolucoes) List(_ context.Context) ([]*entity.Devolucao, error) {
	out := make([]*entity.Devolucao, len(f.itens))
	copy(out, f.itens)
	return out, nil
}

func (f *fakeDevolucoes) ListItens(_ context.Context, devolucaoID int64) ([]entity.ItemDevolucao, error) {
	for _, d := range f.itens {
		if d.ID == devolucaoID {
			return append([]entity.ItemDevolucao(nil), d.Itens...), nil
		}
	}
	return nil, nil
}

func (f *fakeDevolucoes) Update(_ context.Context, d *entity.Devolucao) error {
	for i, atual := range f.itens {
		if atual.ID == d.ID {
			for j := range d.Itens {
				f.seqIt++
				d.Itens[j].ID = f.seqIt
				d.Itens[j].DevolucaoID = d.ID
			}
			cp := *d
			cp.Itens = append([]entity.ItemDevolucao(nil), d.Itens...)
			f.itens[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeDevolucoes) Delete(_ context.Context, id int64) error {
	for i, d := range f.itens {
		if d.ID == id {
			f.itens = append(f.itens[:i], f.itens[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeDevolucoes) Clear(_ context.Context) error {
	f.itens = nil
	return nil
}

type fakeEmpresa struct {
	dados *entity.DadosEmpresa
}

func (f *fakeEmpresa) Get(_ context.Context) (*entity.DadosEmpresa, error) {
	if f.dados == nil {
		return nil, nil
	}
	cp := *f.dados
	return &cp, nil
}

func (f *fakeEmpresa) Save(_ context.Context, e *entity.DadosEmpresa) error {
	cp := *e
	f.dados = &cp
	return nil
}

func (f *fakeEmpresa) Clear(_ context.Context) error {
	f.dados = nil
	return nil
}

// fakeStore agrupa os fakes das seis coleções.
type fakeStore struct {
	garantias    *fakeGarantias
	lotes        *fakeLotes
	pessoas      *fakePessoas
	fornecedores *fakeFornecedores
	devolucoes   *fakeDevolucoes
	empresa      *fakeEmpresa
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		garantias:    &fakeGarantias{},
		lotes:        &fakeLotes{},
		pessoas:      &fakePessoas{},
		fornecedores: &fakeFornecedores{},
		devolucoes:   &fakeDevolucoes{},
		empresa:      &fakeEmpresa{},
	}
}

func (s *fakeStore) repos() backup.Repos {
	return backup.Repos{
		Garantias:    s.garantias,
		Lotes:        s.lotes,
		Pessoas:      s.pessoas,
		Fornecedores: s.fornecedores,
		Devolucoes:   s.devolucoes,
		Empresa:      s.empresa,
	}
}

// fakeTxRunner emula a atomicidade do banco: guarda o estado antes de fn e o
// restaura integralmente se fn devolver erro.
type fakeTxRunner struct {
	store *fakeStore
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(r backup.Repos) error) error {
	snapGarantias := append([]*entity.Garantia(nil), tx.store.garantias.itens...)
	snapLotes := append([]*entity.Lote(nil), tx.store.lotes.itens...)
	snapPessoas := append([]*entity.Pessoa(nil), tx.store.pessoas.itens...)
	snapFornecedores := append([]*entity.Fornecedor(nil), tx.store.fornecedores.itens...)
	snapDevolucoes := append([]*entity.Devolucao(nil), tx.store.devolucoes.itens...)
	snapEmpresa := tx.store.empresa.dados

	if err := fn(tx.store.repos()); err != nil {
		tx.store.garantias.itens = snapGarantias
		tx.store.lotes.itens = snapLotes
		tx.store.pessoas.itens = snapPessoas
		tx.store.fornecedores.itens = snapFornecedores
		tx.store.devolucoes.itens = snapDevolucoes
		tx.store.empresa.dados = snapEmpresa
		return err
	}
	return nil
}
