package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"garantias/internal/application/dto"
	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
	"garantias/pkg/busca"
	"garantias/pkg/logger"
)

// ProdutoUseCase orquestra as operações sobre o catálogo de produtos.
// A listagem com termo de busca alimenta o autocompletar dos formulários,
// por isso a correspondência cobre código, descrição, marca e referência.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
	log  *logger.Logger
}

func NewProdutoUseCase(repo repository.ProdutoRepository, log *logger.Logger) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo, log: log}
}

func (uc *ProdutoUseCase) Create(ctx context.Context, req dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	if req.Codigo == "" && req.Descricao == "" {
		return nil, fmt.Errorf("%w: informe código ou descrição", domain.ErrInvalidInput)
	}
	p := &entity.Produto{
		Codigo:     req.Codigo,
		Descricao:  req.Descricao,
		Marca:      req.Marca,
		Referencia: req.Referencia,
		CriadoEm:   time.Now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("criando produto: %w", err)
	}
	resp := produtoToResponse(p)
	return &resp, nil
}

func (uc *ProdutoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := produtoToResponse(p)
	return &resp, nil
}

func (uc *ProdutoUseCase) List(ctx context.Context, termo string, page dto.PageRequest) (*dto.ProdutoListResponse, error) {
	page.DefaultPage()
	todos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando produtos: %w", err)
	}
	filtrados := todos[:0:0]
	for _, p := range todos {
		if busca.Corresponde(termo, p.Codigo, p.Descricao, p.Marca, p.Referencia) {
			filtrados = append(filtrados, p)
		}
	}
	sort.Slice(filtrados, func(i, j int) bool {
		if !filtrados[i].CriadoEm.Equal(filtrados[j].CriadoEm) {
			return filtrados[i].CriadoEm.After(filtrados[j].CriadoEm)
		}
		return filtrados[i].ID > filtrados[j].ID
	})
	total := len(filtrados)
	filtrados = paginar(filtrados, page)
	items := make([]dto.ProdutoResponse, 0, len(filtrados))
	for _, p := range filtrados {
		items = append(items, produtoToResponse(p))
	}
	return &dto.ProdutoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func (uc *ProdutoUseCase) Update(ctx context.Context, id int64, req dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	p := &entity.Produto{
		ID:         id,
		Codigo:     req.Codigo,
		Descricao:  req.Descricao,
		Marca:      req.Marca,
		Referencia: req.Referencia,
		CriadoEm:   atual.CriadoEm,
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("atualizando produto %d: %w", id, err)
	}
	resp := produtoToResponse(p)
	return &resp, nil
}

func (uc *ProdutoUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ProdutoUseCase) Clear(ctx context.Context) error {
	return uc.repo.Clear(ctx)
}

func produtoToResponse(p *entity.Produto) dto.ProdutoResponse {
	return dto.ProdutoResponse{
		ID:         p.ID,
		Codigo:     p.Codigo,
		Descricao:  p.Descricao,
		Marca:      p.Marca,
		Referencia: p.Referencia,
		CriadoEm:   p.CriadoEm,
	}
}
