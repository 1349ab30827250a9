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

// PessoaUseCase orquestra as operações sobre pessoas (clientes e mecânicos).
type PessoaUseCase struct {
	repo repository.PessoaRepository
	log  *logger.Logger
}

func NewPessoaUseCase(repo repository.PessoaRepository, log *logger.Logger) *PessoaUseCase {
	return &PessoaUseCase{repo: repo, log: log}
}

func (uc *PessoaUseCase) Create(ctx context.Context, req dto.PessoaRequest) (*dto.PessoaResponse, error) {
	if req.Nome == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", domain.ErrInvalidInput)
	}
	if req.Tipo != entity.TipoPessoaCliente && req.Tipo != entity.TipoPessoaMecanico {
		return nil, fmt.Errorf("%w: tipo deve ser %q ou %q", domain.ErrInvalidInput,
			entity.TipoPessoaCliente, entity.TipoPessoaMecanico)
	}
	p := &entity.Pessoa{
		Nome:       req.Nome,
		Tipo:       req.Tipo,
		Telefone:   req.Telefone,
		Email:      req.Email,
		Observacao: req.Observacao,
		CriadoEm:   time.Now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("criando pessoa: %w", err)
	}
	uc.log.Info().Int64("id", p.ID).Str("tipo", p.Tipo).Msg("pessoa criada")
	resp := pessoaToResponse(p)
	return &resp, nil
}

func (uc *PessoaUseCase) GetByID(ctx context.Context, id int64) (*dto.PessoaResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := pessoaToResponse(p)
	return &resp, nil
}

// List filtra por termo de busca e, opcionalmente, pelo tipo ("cliente" ou
// "mecanico"; vazio devolve ambos).
func (uc *PessoaUseCase) List(ctx context.Context, termo, tipo string, page dto.PageRequest) (*dto.PessoaListResponse, error) {
	page.DefaultPage()
	todas, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando pessoas: %w", err)
	}
	filtradas := todas[:0:0]
	for _, p := range todas {
		if tipo != "" && p.Tipo != tipo {
			continue
		}
		if busca.Corresponde(termo, p.Nome, p.Telefone, p.Email, p.Observacao) {
			filtradas = append(filtradas, p)
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
	items := make([]dto.PessoaResponse, 0, len(filtradas))
	for _, p := range filtradas {
		items = append(items, pessoaToResponse(p))
	}
	return &dto.PessoaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func (uc *PessoaUseCase) Update(ctx context.Context, id int64, req dto.PessoaRequest) (*dto.PessoaResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	p := &entity.Pessoa{
		ID:         id,
		Nome:       req.Nome,
		Tipo:       req.Tipo,
		Telefone:   req.Telefone,
		Email:      req.Email,
		Observacao: req.Observacao,
		CriadoEm:   atual.CriadoEm,
	}
	if p.Tipo == "" {
		p.Tipo = atual.Tipo
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("atualizando pessoa %d: %w", id, err)
	}
	resp := pessoaToResponse(p)
	return &resp, nil
}

func (uc *PessoaUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *PessoaUseCase) Clear(ctx context.Context) error {
	return uc.repo.Clear(ctx)
}

func pessoaToResponse(p *entity.Pessoa) dto.PessoaResponse {
	return dto.PessoaResponse{
		ID:         p.ID,
		Nome:       p.Nome,
		Tipo:       p.Tipo,
		Telefone:   p.Telefone,
		Email:      p.Email,
		Observacao: p.Observacao,
		CriadoEm:   p.CriadoEm,
	}
}
