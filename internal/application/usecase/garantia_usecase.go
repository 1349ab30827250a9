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

// GarantiaUseCase orquestra as operações sobre garantias.
type GarantiaUseCase struct {
	repo repository.GarantiaRepository
	log  *logger.Logger
}

func NewGarantiaUseCase(repo repository.GarantiaRepository, log *logger.Logger) *GarantiaUseCase {
	return &GarantiaUseCase{repo: repo, log: log}
}

// Create registra uma nova garantia. CriadoEm é atribuído aqui, uma única vez,
// e nunca mais alterado por Update.
func (uc *GarantiaUseCase) Create(ctx context.Context, req dto.GarantiaRequest) (*dto.GarantiaResponse, error) {
	if req.Codigo == "" && req.Descricao == "" {
		return nil, fmt.Errorf("%w: informe código ou descrição", domain.ErrInvalidInput)
	}
	if req.Quantidade < 0 {
		return nil, fmt.Errorf("%w: quantidade não pode ser negativa", domain.ErrInvalidInput)
	}
	g := garantiaFromRequest(req)
	g.CriadoEm = time.Now()
	if g.Status == "" {
		g.Status = entity.StatusGarantiaEmAnalise
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("criando garantia: %w", err)
	}
	uc.log.Info().Int64("id", g.ID).Str("codigo", g.Codigo).Msg("garantia criada")
	resp := garantiaToResponse(g)
	return &resp, nil
}

func (uc *GarantiaUseCase) GetByID(ctx context.Context, id int64) (*dto.GarantiaResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	resp := garantiaToResponse(g)
	return &resp, nil
}

// List devolve as garantias em ordem de recência (mais novas primeiro, id como
// desempate), opcionalmente filtradas pelo termo de busca. O filtro ignora
// acentos e maiúsculas e percorre todos os campos visíveis do registro.
func (uc *GarantiaUseCase) List(ctx context.Context, termo string, page dto.PageRequest) (*dto.GarantiaListResponse, error) {
	page.DefaultPage()
	todas, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando garantias: %w", err)
	}
	filtradas := todas[:0:0]
	for _, g := range todas {
		if busca.Corresponde(termo, g.Codigo, g.Descricao, g.Fornecedor, g.Defeito,
			g.Requisicoes, g.NotaCompra, g.Cliente, g.Mecanico, g.NotaSaida,
			g.NotaRetorno, g.Observacao, g.Status) {
			filtradas = append(filtradas, g)
		}
	}
	sort.Slice(filtradas, func(i, j int) bool {
		if !filtradas[i].CriadoEm.Equal(filtradas[j].CriadoEm) {
			return filtradas[i].CriadoEm.After(filtradas[j].CriadoEm)
		}
		return filtradas[i].ID > filtradas[j].ID
	})
	total := len(filtradas)
	filtradas = paginar(filtradas, page)
	items := make([]dto.GarantiaResponse, 0, len(filtradas))
	for _, g := range filtradas {
		items = append(items, garantiaToResponse(g))
	}
	return &dto.GarantiaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update substitui os campos editáveis da garantia. CriadoEm é preservado.
func (uc *GarantiaUseCase) Update(ctx context.Context, id int64, req dto.GarantiaRequest) (*dto.GarantiaResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	g := garantiaFromRequest(req)
	g.ID = id
	g.CriadoEm = atual.CriadoEm
	if g.Status == "" {
		g.Status = atual.Status
	}
	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("atualizando garantia %d: %w", id, err)
	}
	resp := garantiaToResponse(g)
	return &resp, nil
}

func (uc *GarantiaUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("id", id).Msg("garantia removida")
	return nil
}

// Clear apaga todas as garantias. Usado pelo fluxo de limpeza da coleção.
func (uc *GarantiaUseCase) Clear(ctx context.Context) error {
	return uc.repo.Clear(ctx)
}

func garantiaFromRequest(req dto.GarantiaRequest) *entity.Garantia {
	return &entity.Garantia{
		Codigo:      req.Codigo,
		Descricao:   req.Descricao,
		Fornecedor:  req.Fornecedor,
		Quantidade:  req.Quantidade,
		Defeito:     req.Defeito,
		Requisicoes: req.Requisicoes,
		NotaCompra:  req.NotaCompra,
		ValorCompra: req.ValorCompra,
		Cliente:     req.Cliente,
		Mecanico:    req.Mecanico,
		NotaSaida:   req.NotaSaida,
		NotaRetorno: req.NotaRetorno,
		Observacao:  req.Observacao,
		Status:      req.Status,
		LoteID:      req.LoteID,
	}
}

func garantiaToResponse(g *entity.Garantia) dto.GarantiaResponse {
	return dto.GarantiaResponse{
		ID:          g.ID,
		Codigo:      g.Codigo,
		Descricao:   g.Descricao,
		Fornecedor:  g.Fornecedor,
		Quantidade:  g.Quantidade,
		Defeito:     g.Defeito,
		Requisicoes: g.Requisicoes,
		NotaCompra:  g.NotaCompra,
		ValorCompra: g.ValorCompra,
		Cliente:     g.Cliente,
		Mecanico:    g.Mecanico,
		NotaSaida:   g.NotaSaida,
		NotaRetorno: g.NotaRetorno,
		Observacao:  g.Observacao,
		CriadoEm:    g.CriadoEm,
		Status:      g.Status,
		LoteID:      g.LoteID,
	}
}

// paginar recorta a janela pedida; offset além do fim devolve lista vazia.
func paginar[T any](itens []T, page dto.PageRequest) []T {
	if page.Offset >= len(itens) {
		return nil
	}
	fim := page.Offset + page.Limit
	if fim > len(itens) {
		fim = len(itens)
	}
	return itens[page.Offset:fim]
}
