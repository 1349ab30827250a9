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

// LoteUseCase orquestra as operações sobre lotes de garantias.
type LoteUseCase struct {
	repo repository.LoteRepository
	log  *logger.Logger
}

func NewLoteUseCase(repo repository.LoteRepository, log *logger.Logger) *LoteUseCase {
	return &LoteUseCase{repo: repo, log: log}
}

func (uc *LoteUseCase) Create(ctx context.Context, req dto.LoteRequest) (*dto.LoteResponse, error) {
	if req.Codigo == "" {
		return nil, fmt.Errorf("%w: código do lote é obrigatório", domain.ErrInvalidInput)
	}
	l := &entity.Lote{
		Codigo:     req.Codigo,
		Fornecedor: req.Fornecedor,
		DataEnvio:  req.DataEnvio,
		Observacao: req.Observacao,
		Status:     req.Status,
		CriadoEm:   time.Now(),
	}
	if l.Status == "" {
		l.Status = entity.StatusLoteAberto
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("criando lote: %w", err)
	}
	uc.log.Info().Int64("id", l.ID).Str("codigo", l.Codigo).Msg("lote criado")
	resp := loteToResponse(l)
	return &resp, nil
}

func (uc *LoteUseCase) GetByID(ctx context.Context, id int64) (*dto.LoteResponse, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	resp := loteToResponse(l)
	return &resp, nil
}

func (uc *LoteUseCase) List(ctx context.Context, termo string, page dto.PageRequest) (*dto.LoteListResponse, error) {
	page.DefaultPage()
	todos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando lotes: %w", err)
	}
	filtrados := todos[:0:0]
	for _, l := range todos {
		if busca.Corresponde(termo, l.Codigo, l.Fornecedor, l.Observacao, l.Status) {
			filtrados = append(filtrados, l)
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
	items := make([]dto.LoteResponse, 0, len(filtrados))
	for _, l := range filtrados {
		items = append(items, loteToResponse(l))
	}
	return &dto.LoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func (uc *LoteUseCase) Update(ctx context.Context, id int64, req dto.LoteRequest) (*dto.LoteResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	l := &entity.Lote{
		ID:         id,
		Codigo:     req.Codigo,
		Fornecedor: req.Fornecedor,
		DataEnvio:  req.DataEnvio,
		Observacao: req.Observacao,
		Status:     req.Status,
		CriadoEm:   atual.CriadoEm,
	}
	if l.Status == "" {
		l.Status = atual.Status
	}
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("atualizando lote %d: %w", id, err)
	}
	resp := loteToResponse(l)
	return &resp, nil
}

func (uc *LoteUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *LoteUseCase) Clear(ctx context.Context) error {
	return uc.repo.Clear(ctx)
}

func loteToResponse(l *entity.Lote) dto.LoteResponse {
	return dto.LoteResponse{
		ID:         l.ID,
		Codigo:     l.Codigo,
		Fornecedor: l.Fornecedor,
		DataEnvio:  l.DataEnvio,
		Observacao: l.Observacao,
		Status:     l.Status,
		CriadoEm:   l.CriadoEm,
	}
}
