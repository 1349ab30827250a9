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

// DevolucaoTxRunner executa fn com um repositório de devoluções vinculado a uma
// transação: pai e itens são gravados juntos ou nada é gravado.
type DevolucaoTxRunner interface {
	RunDevolucao(ctx context.Context, fn func(repo repository.DevolucaoRepository) error) error
}

// DevolucaoUseCase orquestra as operações sobre devoluções. Os itens só
// existem por meio do pai: nenhuma operação expõe itens órfãos.
type DevolucaoUseCase struct {
	repo repository.DevolucaoRepository
	tx   DevolucaoTxRunner
	log  *logger.Logger
}

func NewDevolucaoUseCase(repo repository.DevolucaoRepository, tx DevolucaoTxRunner, log *logger.Logger) *DevolucaoUseCase {
	return &DevolucaoUseCase{repo: repo, tx: tx, log: log}
}

// Create registra a devolução e seus itens em uma única transação.
func (uc *DevolucaoUseCase) Create(ctx context.Context, req dto.DevolucaoRequest) (*dto.DevolucaoResponse, error) {
	if req.Numero == "" && req.Cliente == "" {
		return nil, fmt.Errorf("%w: informe número ou cliente", domain.ErrInvalidInput)
	}
	for i, item := range req.Itens {
		if item.Quantidade < 0 {
			return nil, fmt.Errorf("%w: item %d com quantidade negativa", domain.ErrInvalidInput, i)
		}
	}
	d := &entity.Devolucao{
		Numero:     req.Numero,
		Cliente:    req.Cliente,
		Data:       req.Data,
		Observacao: req.Observacao,
		Status:     req.Status,
		CriadoEm:   time.Now(),
	}
	if d.Status == "" {
		d.Status = entity.StatusDevolucaoPendente
	}
	for _, item := range req.Itens {
		d.Itens = append(d.Itens, entity.ItemDevolucao{
			Codigo:     item.Codigo,
			Descricao:  item.Descricao,
			Quantidade: item.Quantidade,
			Valor:      item.Valor,
		})
	}
	err := uc.tx.RunDevolucao(ctx, func(repo repository.DevolucaoRepository) error {
		return repo.Create(ctx, d)
	})
	if err != nil {
		return nil, fmt.Errorf("criando devolução: %w", err)
	}
	uc.log.Info().Int64("id", d.ID).Int("itens", len(d.Itens)).Msg("devolução criada")
	resp := devolucaoToResponse(d)
	return &resp, nil
}

func (uc *DevolucaoUseCase) GetByID(ctx context.Context, id int64) (*dto.DevolucaoResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	resp := devolucaoToResponse(d)
	return &resp, nil
}

func (uc *DevolucaoUseCase) List(ctx context.Context, termo string, page dto.PageRequest) (*dto.DevolucaoListResponse, error) {
	page.DefaultPage()
	todas, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando devoluções: %w", err)
	}
	filtradas := todas[:0:0]
	for _, d := range todas {
		if devolucaoCorresponde(d, termo) {
			filtradas = append(filtradas, d)
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
	items := make([]dto.DevolucaoResponse, 0, len(filtradas))
	for _, d := range filtradas {
		items = append(items, devolucaoToResponse(d))
	}
	return &dto.DevolucaoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update substitui a devolução e a lista de itens inteira de forma atômica:
// os itens antigos saem e os novos entram na mesma transação do pai, com
// identificadores novos. CriadoEm é preservado.
func (uc *DevolucaoUseCase) Update(ctx context.Context, id int64, req dto.DevolucaoRequest) (*dto.DevolucaoResponse, error) {
	if req.Numero == "" && req.Cliente == "" {
		return nil, fmt.Errorf("%w: informe número ou cliente", domain.ErrInvalidInput)
	}
	for i, item := range req.Itens {
		if item.Quantidade < 0 {
			return nil, fmt.Errorf("%w: item %d com quantidade negativa", domain.ErrInvalidInput, i)
		}
	}
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	d := &entity.Devolucao{
		ID:         id,
		Numero:     req.Numero,
		Cliente:    req.Cliente,
		Data:       req.Data,
		Observacao: req.Observacao,
		Status:     req.Status,
		CriadoEm:   atual.CriadoEm,
	}
	if d.Status == "" {
		d.Status = atual.Status
	}
	for _, item := range req.Itens {
		d.Itens = append(d.Itens, entity.ItemDevolucao{
			Codigo:     item.Codigo,
			Descricao:  item.Descricao,
			Quantidade: item.Quantidade,
			Valor:      item.Valor,
		})
	}
	err = uc.tx.RunDevolucao(ctx, func(repo repository.DevolucaoRepository) error {
		return repo.Update(ctx, d)
	})
	if err != nil {
		return nil, fmt.Errorf("atualizando devolução %d: %w", id, err)
	}
	uc.log.Info().Int64("id", d.ID).Int("itens", len(d.Itens)).Msg("devolução atualizada")
	resp := devolucaoToResponse(d)
	return &resp, nil
}

// Delete remove a devolução; os itens caem junto (cascata no banco).
func (uc *DevolucaoUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("id", id).Msg("devolução removida")
	return nil
}

func (uc *DevolucaoUseCase) Clear(ctx context.Context) error {
	return uc.repo.Clear(ctx)
}

// devolucaoCorresponde também varre os itens: buscar pelo código de uma peça
// devolvida deve encontrar a devolução que a contém.
func devolucaoCorresponde(d *entity.Devolucao, termo string) bool {
	if busca.Corresponde(termo, d.Numero, d.Cliente, d.Observacao, d.Status) {
		return true
	}
	for _, item := range d.Itens {
		if busca.Corresponde(termo, item.Codigo, item.Descricao) {
			return true
		}
	}
	return false
}

func devolucaoToResponse(d *entity.Devolucao) dto.DevolucaoResponse {
	itens := make([]dto.ItemDevolucaoResponse, 0, len(d.Itens))
	for _, item := range d.Itens {
		itens = append(itens, dto.ItemDevolucaoResponse{
			ID:          item.ID,
			DevolucaoID: item.DevolucaoID,
			Codigo:      item.Codigo,
			Descricao:   item.Descricao,
			Quantidade:  item.Quantidade,
			Valor:       item.Valor,
		})
	}
	return dto.DevolucaoResponse{
		ID:         d.ID,
		Numero:     d.Numero,
		Cliente:    d.Cliente,
		Data:       d.Data,
		Observacao: d.Observacao,
		Status:     d.Status,
		CriadoEm:   d.CriadoEm,
		Itens:      itens,
	}
}
