package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"garantias/internal/application/dto"
	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
	"garantias/pkg/logger"
)

var corHex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// StatusUseCase gerencia os status personalizados definidos pelo usuário.
type StatusUseCase struct {
	repo repository.StatusRepository
	log  *logger.Logger
}

func NewStatusUseCase(repo repository.StatusRepository, log *logger.Logger) *StatusUseCase {
	return &StatusUseCase{repo: repo, log: log}
}

func (uc *StatusUseCase) Create(ctx context.Context, req dto.StatusRequest) (*dto.StatusResponse, error) {
	if err := validarStatus(req); err != nil {
		return nil, err
	}
	s := &entity.StatusPersonalizado{
		Nome:      req.Nome,
		Cor:       req.Cor,
		Entidades: req.Entidades,
		CriadoEm:  time.Now(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("criando status personalizado: %w", err)
	}
	resp := statusToResponse(s)
	return &resp, nil
}

func (uc *StatusUseCase) GetByID(ctx context.Context, id int64) (*dto.StatusResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := statusToResponse(s)
	return &resp, nil
}

// List devolve todos os status, do mais recente para o mais antigo.
func (uc *StatusUseCase) List(ctx context.Context) (*dto.StatusListResponse, error) {
	todos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando status personalizados: %w", err)
	}
	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CriadoEm.Equal(todos[j].CriadoEm) {
			return todos[i].CriadoEm.After(todos[j].CriadoEm)
		}
		return todos[i].ID > todos[j].ID
	})
	items := make([]dto.StatusResponse, 0, len(todos))
	for _, s := range todos {
		items = append(items, statusToResponse(s))
	}
	return &dto.StatusListResponse{Items: items}, nil
}

func (uc *StatusUseCase) Update(ctx context.Context, id int64, req dto.StatusRequest) (*dto.StatusResponse, error) {
	if err := validarStatus(req); err != nil {
		return nil, err
	}
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	s := &entity.StatusPersonalizado{
		ID:        id,
		Nome:      req.Nome,
		Cor:       req.Cor,
		Entidades: req.Entidades,
		CriadoEm:  atual.CriadoEm,
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("atualizando status %d: %w", id, err)
	}
	resp := statusToResponse(s)
	return &resp, nil
}

func (uc *StatusUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func validarStatus(req dto.StatusRequest) error {
	if req.Nome == "" {
		return fmt.Errorf("%w: nome é obrigatório", domain.ErrInvalidInput)
	}
	if req.Cor != "" && !corHex.MatchString(req.Cor) {
		return fmt.Errorf("%w: cor deve estar no formato #rrggbb", domain.ErrInvalidInput)
	}
	valido := map[string]bool{
		entity.EntidadeGarantia:   true,
		entity.EntidadeLote:       true,
		entity.EntidadeDevolucao:  true,
		entity.EntidadeRequisicao: true,
	}
	for _, e := range req.Entidades {
		if !valido[e] {
			return fmt.Errorf("%w: entidade desconhecida %q", domain.ErrInvalidInput, e)
		}
	}
	return nil
}

func statusToResponse(s *entity.StatusPersonalizado) dto.StatusResponse {
	return dto.StatusResponse{
		ID:        s.ID,
		Nome:      s.Nome,
		Cor:       s.Cor,
		Entidades: s.Entidades,
		CriadoEm:  s.CriadoEm,
	}
}
