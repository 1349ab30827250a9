package repository

import (
	"context"

	"garantias/internal/domain/entity"
)

// EmpresaRepository define o porto de persistência para DadosEmpresa (registro único).
// Get devolve (nil, nil) enquanto a empresa não foi configurada; Save faz upsert.
type EmpresaRepository interface {
	Get(ctx context.Context) (*entity.DadosEmpresa, error)
	Save(ctx context.Context, e *entity.DadosEmpresa) error
	Clear(ctx context.Context) error
}
