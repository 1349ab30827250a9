package backup

import (
	"context"

	"garantias/internal/domain/repository"
)

// Repos agrupa os repositórios das seis coleções cobertas pelo backup.
// Na exportação são adaptadores presos ao pool; na restauração, presos à transação.
type Repos struct {
	Garantias    repository.GarantiaRepository
	Lotes        repository.LoteRepository
	Pessoas      repository.PessoaRepository
	Fornecedores repository.FornecedorRepository
	Devolucoes   repository.DevolucaoRepository
	Empresa      repository.EmpresaRepository
}

// TxRunner executa fn com repositórios presos a uma única transação.
// É a garantia de atomicidade multi-coleção da restauração: ou o
// limpar-e-inserir inteiro entra, ou nada entra.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
