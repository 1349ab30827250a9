package repository

import (
	"context"

	"garantias/internal/domain/entity"
)

// DevolucaoRepository define o porto de persistência para Devolucao e seus itens.
// Os itens só são alcançáveis pela API do pai: Create persiste pai e itens como
// uma única operação lógica (tudo ou nada), Update substitui o pai e regrava a
// lista de itens inteira, e Get/List devolvem o pai já com os itens.
type DevolucaoRepository interface {
	Create(ctx context.Context, d *entity.Devolucao) error
	GetByID(ctx context.Context, id int64) (*entity.Devolucao, error)
	List(ctx context.Context) ([]*entity.Devolucao, error)
	ListItens(ctx context.Context, devolucaoID int64) ([]entity.ItemDevolucao, error)
	Update(ctx context.Context, d *entity.Devolucao) error
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}
