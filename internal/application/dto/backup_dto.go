package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BackupDocument é o documento portátil com o snapshot completo das coleções.
// Forma atual (A) do arquivo de backup: JSON UTF-8 com até seis membros
// reconhecidos. Nenhum campo dentro de um registro é obrigatório: exports
// antigos podem omitir qualquer um.
type BackupDocument struct {
	Warranties  []GarantiaBackup   `json:"warranties,omitempty"`
	Persons     []PessoaBackup     `json:"persons,omitempty"`
	Suppliers   []FornecedorBackup `json:"suppliers,omitempty"`
	Lotes       []LoteBackup       `json:"lotes,omitempty"`
	Devolucoes  []DevolucaoBackup  `json:"devolucoes,omitempty"`
	CompanyData *EmpresaBackup     `json:"companyData,omitempty"`
}

// GarantiaBackup registro de garantia no documento de backup.
type GarantiaBackup struct {
	ID          int64           `json:"id,omitempty"`
	Codigo      string          `json:"codigo,omitempty"`
	Descricao   string          `json:"descricao,omitempty"`
	Fornecedor  string          `json:"fornecedor,omitempty"`
	Quantidade  int             `json:"quantidade,omitempty"`
	Defeito     string          `json:"defeito,omitempty"`
	Requisicoes string          `json:"requisicoes,omitempty"`
	NotaCompra  string          `json:"notaCompra,omitempty"`
	ValorCompra decimal.Decimal `json:"valorCompra,omitempty"`
	Cliente     string          `json:"cliente,omitempty"`
	Mecanico    string          `json:"mecanico,omitempty"`
	NotaSaida   string          `json:"notaSaida,omitempty"`
	NotaRetorno string          `json:"notaRetorno,omitempty"`
	Observacao  string          `json:"observacao,omitempty"`
	CriadoEm    *time.Time      `json:"criadoEm,omitempty"`
	Status      string          `json:"status,omitempty"`
	LoteID      *int64          `json:"loteId,omitempty"`
}

// PessoaBackup registro de pessoa no documento de backup.
type PessoaBackup struct {
	ID         int64      `json:"id,omitempty"`
	Nome       string     `json:"nome,omitempty"`
	Tipo       string     `json:"tipo,omitempty"`
	Telefone   string     `json:"telefone,omitempty"`
	Email      string     `json:"email,omitempty"`
	Observacao string     `json:"observacao,omitempty"`
	CriadoEm   *time.Time `json:"criadoEm,omitempty"`
}

// FornecedorBackup registro de fornecedor no documento de backup.
type FornecedorBackup struct {
	ID         int64      `json:"id,omitempty"`
	Nome       string     `json:"nome,omitempty"`
	CNPJ       string     `json:"cnpj,omitempty"`
	Telefone   string     `json:"telefone,omitempty"`
	Email      string     `json:"email,omitempty"`
	Contato    string     `json:"contato,omitempty"`
	Observacao string     `json:"observacao,omitempty"`
	CriadoEm   *time.Time `json:"criadoEm,omitempty"`
}

// LoteBackup registro de lote no documento de backup.
type LoteBackup struct {
	ID         int64      `json:"id,omitempty"`
	Codigo     string     `json:"codigo,omitempty"`
	Fornecedor string     `json:"fornecedor,omitempty"`
	DataEnvio  *time.Time `json:"dataEnvio,omitempty"`
	Observacao string     `json:"observacao,omitempty"`
	Status     string     `json:"status,omitempty"`
	CriadoEm   *time.Time `json:"criadoEm,omitempty"`
}

// DevolucaoBackup registro de devolução com itens aninhados. Os itens não
// carregam identificador: serão reatribuídos na importação.
type DevolucaoBackup struct {
	ID         int64                 `json:"id,omitempty"`
	Numero     string                `json:"numero,omitempty"`
	Cliente    string                `json:"cliente,omitempty"`
	Data       *time.Time            `json:"data,omitempty"`
	Observacao string                `json:"observacao,omitempty"`
	Status     string                `json:"status,omitempty"`
	CriadoEm   *time.Time            `json:"criadoEm,omitempty"`
	Itens      []ItemDevolucaoBackup `json:"itens,omitempty"`
}

// ItemDevolucaoBackup linha de devolução no documento de backup (sem identificadores).
type ItemDevolucaoBackup struct {
	Codigo     string          `json:"codigo,omitempty"`
	Descricao  string          `json:"descricao,omitempty"`
	Quantidade int             `json:"quantidade,omitempty"`
	Valor      decimal.Decimal `json:"valor,omitempty"`
}

// EmpresaBackup dados da empresa no documento de backup.
type EmpresaBackup struct {
	Nome     string `json:"nome,omitempty"`
	CNPJ     string `json:"cnpj,omitempty"`
	Endereco string `json:"endereco,omitempty"`
	Cidade   string `json:"cidade,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// RestoreSummary resumo apresentado ao usuário antes da ação destrutiva.
type RestoreSummary struct {
	Total        int  `json:"total"`
	Garantias    int  `json:"garantias"`
	Pessoas      int  `json:"pessoas"`
	Fornecedores int  `json:"fornecedores"`
	Lotes        int  `json:"lotes"`
	Devolucoes   int  `json:"devolucoes"`
	Empresa      bool `json:"empresa"`
}
