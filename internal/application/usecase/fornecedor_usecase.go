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

// FornecedorUseCase orquestra as operações sobre fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
	log  *logger.Logger
}

func NewFornecedorUseCase(repo repository.FornecedorRepository, log *logger.Logger) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo, log: log}
}

func (uc *FornecedorUseCase) Create(ctx context.Context, req dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	if req.Nome == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", domain.ErrInvalidInput)
	}
	f := &entity.Fornecedor{
		Nome:       req.Nome,
		CNPJ:       req.CNPJ,
		Telefone:   req.Telefone,
		Email:      req.Email,
		Contato:    req.Contato,
		Observacao: req.Observacao,
		CriadoEm:   time.Now(),
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("criando fornecedor: %w", err)
	}
	uc.log.Info().Int64("id", f.ID).Str("nome", f.Nome).Msg("fornecedor criado")
	resp := fornecedorToResponse(f)
	return &resp, nil
}

func (uc *FornecedorUseCase) GetByID(ctx context.Context, id int64) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	resp := fornecedorToResponse(f)
	return &resp, nil
}

func (uc *FornecedorUseCase) List(ctx context.Context, termo string, page dto.PageRequest) (*dto.FornecedorListResponse, error) {
	page.DefaultPage()
	todos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando fornecedores: %w", err)
	}
	filtrados := todos[:0:0]
	for _, f := range todos {
		if busca.Corresponde(termo, f.Nome, f.CNPJ, f.Telefone, f.Email, f.Contato, f.Observacao) {
			filtrados = append(filtrados, f)
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
	items := make([]dto.FornecedorResponse, 0, len(filtrados))
	for _, f := range filtrados {
		items = append(items, fornecedorToResponse(f))
	}
	return &dto.FornecedorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func (uc *FornecedorUseCase) Update(ctx context.Context, id int64, req dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	f := &entity.Fornecedor{
		ID:         id,
		Nome:       req.Nome,
		CNPJ:       req.CNPJ,
		Telefone:   req.Telefone,
		Email:      req.Email,
		Contato:    req.Contato,
		Observacao: req.Observacao,
		CriadoEm:   atual.CriadoEm,
	}
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("atualizando fornecedor %d: %w", id, err)
	}
	resp := fornecedorToResponse(f)
	return &resp, nil
}

func (uc *FornecedorUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *FornecedorUseCase) Clear(ctx context.Context) error {
	return uc.repo.Clear(ctx)
}

func fornecedorToResponse(f *entity.Fornecedor) dto.FornecedorResponse {
	return dto.FornecedorResponse{
		ID:         f.ID,
		Nome:       f.Nome,
		CNPJ:       f.CNPJ,
		Telefone:   f.Telefone,
		Email:      f.Email,
		Contato:    f.Contato,
		Observacao: f.Observacao,
		CriadoEm:   f.CriadoEm,
	}
}
