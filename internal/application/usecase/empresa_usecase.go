package usecase

import (
	"context"
	"fmt"
	"time"

	"garantias/internal/application/dto"
	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
	"garantias/pkg/logger"
)

// EmpresaUseCase gerencia o registro único de dados da empresa.
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
	log  *logger.Logger
}

func NewEmpresaUseCase(repo repository.EmpresaRepository, log *logger.Logger) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo, log: log}
}

// Get devolve ErrNotFound enquanto a empresa não foi configurada.
func (uc *EmpresaUseCase) Get(ctx context.Context) (*dto.EmpresaResponse, error) {
	e, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := empresaToResponse(e)
	return &resp, nil
}

// Save cria ou substitui os dados da empresa (upsert do registro único).
func (uc *EmpresaUseCase) Save(ctx context.Context, req dto.EmpresaRequest) (*dto.EmpresaResponse, error) {
	if req.Nome == "" {
		return nil, fmt.Errorf("%w: nome da empresa é obrigatório", domain.ErrInvalidInput)
	}
	e := &entity.DadosEmpresa{
		Nome:         req.Nome,
		CNPJ:         req.CNPJ,
		Endereco:     req.Endereco,
		Cidade:       req.Cidade,
		Telefone:     req.Telefone,
		Email:        req.Email,
		AtualizadoEm: time.Now(),
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("salvando dados da empresa: %w", err)
	}
	uc.log.Info().Str("nome", e.Nome).Msg("dados da empresa atualizados")
	resp := empresaToResponse(e)
	return &resp, nil
}

func (uc *EmpresaUseCase) Clear(ctx context.Context) error {
	return uc.repo.Clear(ctx)
}

func empresaToResponse(e *entity.DadosEmpresa) dto.EmpresaResponse {
	return dto.EmpresaResponse{
		Nome:         e.Nome,
		CNPJ:         e.CNPJ,
		Endereco:     e.Endereco,
		Cidade:       e.Cidade,
		Telefone:     e.Telefone,
		Email:        e.Email,
		AtualizadoEm: e.AtualizadoEm,
	}
}
