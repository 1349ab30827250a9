package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"garantias/internal/application/dto"
	"garantias/internal/domain"
	"garantias/internal/domain/entity"
)

// Campos usados para farejar o formato legado (array puro de registros de
// garantia exportado por versões antigas). Só codigo e descricao identificam
// uma garantia; arrays de outros objetos que por acaso compartilham campos
// como fornecedor não passam.
var camposGarantiaLegado = []string{"codigo", "descricao"}

// Codec serializa o repositório inteiro em um documento portátil e faz o
// caminho inverso a partir de bytes não confiáveis.
type Codec struct {
	repos Repos
}

// NewCodec constrói o codec sobre os repositórios de leitura.
func NewCodec(repos Repos) *Codec {
	return &Codec{repos: repos}
}

// Export lê todas as coleções e monta o documento de backup. O documento é
// autossuficiente: reconstrói as coleções sem contexto externo. IDs de itens
// de devolução são descartados (serão reatribuídos na importação); os demais
// identificadores são mantidos.
func (c *Codec) Export(ctx context.Context) (*dto.BackupDocument, error) {
	doc := &dto.BackupDocument{}

	garantias, err := c.repos.Garantias.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("exportar garantias: %w", err)
	}
	for _, g := range garantias {
		doc.Warranties = append(doc.Warranties, fromGarantia(g))
	}

	pessoas, err := c.repos.Pessoas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("exportar pessoas: %w", err)
	}
	for _, p := range pessoas {
		doc.Persons = append(doc.Persons, fromPessoa(p))
	}

	fornecedores, err := c.repos.Fornecedores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("exportar fornecedores: %w", err)
	}
	for _, f := range fornecedores {
		doc.Suppliers = append(doc.Suppliers, fromFornecedor(f))
	}

	lotes, err := c.repos.Lotes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("exportar lotes: %w", err)
	}
	for _, l := range lotes {
		doc.Lotes = append(doc.Lotes, fromLote(l))
	}

	devolucoes, err := c.repos.Devolucoes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("exportar devoluções: %w", err)
	}
	for _, d := range devolucoes {
		doc.Devolucoes = append(doc.Devolucoes, fromDevolucao(d))
	}

	empresa, err := c.repos.Empresa.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("exportar dados da empresa: %w", err)
	}
	if empresa != nil {
		e := fromEmpresa(empresa)
		doc.CompanyData = &e
	}

	return doc, nil
}

// Decode interpreta bytes não confiáveis como documento de backup.
// Parse em variantes etiquetadas: tenta a forma atual primeiro; se não
// couber, tenta a forma legada (array puro de registros de garantia);
// só então rejeita com domain.ErrValidacao. Bytes que não são JSON são
// rejeitados com domain.ErrSintaxe, erro distinto com a mesma garantia: a
// validação é um portão, nada é limpo antes dela passar.
func (c *Codec) Decode(raw []byte) (*dto.BackupDocument, error) {
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w", domain.ErrSintaxe)
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w", domain.ErrSintaxe)
	}

	switch trimmed[0] {
	case '{':
		return decodeAtual(raw)
	case '[':
		return decodeLegado(raw)
	default:
		return nil, fmt.Errorf("%w: esperado objeto ou array no topo", domain.ErrValidacao)
	}
}

// decodeAtual valida a forma multi-coleção. Exige ao menos um dos seis
// membros reconhecidos presente no objeto.
func decodeAtual(raw []byte) (*dto.BackupDocument, error) {
	var sonda map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sonda); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidacao, err)
	}
	reconhecidos := []string{"warranties", "persons", "suppliers", "lotes", "devolucoes", "companyData"}
	algum := false
	for _, k := range reconhecidos {
		if _, ok := sonda[k]; ok {
			algum = true
			break
		}
	}
	if !algum {
		return nil, fmt.Errorf("%w: nenhuma das coleções reconhecidas está presente", domain.ErrValidacao)
	}

	var doc dto.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidacao, err)
	}
	return &doc, nil
}

// decodeLegado interpreta o array puro exportado por versões antigas como
// {warranties: array}. A detecção sonda se os elementos são objetos contendo
// codigo ou descricao; qualquer elemento sem esses campos rejeita o arquivo.
func decodeLegado(raw []byte) (*dto.BackupDocument, error) {
	var elems []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidacao, err)
	}
	if len(elems) == 0 {
		return nil, fmt.Errorf("%w: array vazio não identifica um export legado", domain.ErrValidacao)
	}
	for _, e := range elems {
		if !contemCampoGarantia(e) {
			return nil, fmt.Errorf("%w: elemento do array não parece um registro de garantia", domain.ErrValidacao)
		}
	}

	var warranties []dto.GarantiaBackup
	if err := json.Unmarshal(raw, &warranties); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidacao, err)
	}
	return &dto.BackupDocument{Warranties: warranties}, nil
}

func contemCampoGarantia(obj map[string]json.RawMessage) bool {
	for _, campo := range camposGarantiaLegado {
		if _, ok := obj[campo]; ok {
			return true
		}
	}
	return false
}

// conversões entidade <-> documento

func fromGarantia(g *entity.Garantia) dto.GarantiaBackup {
	criado := g.CriadoEm
	return dto.GarantiaBackup{
		ID:          g.ID,
		Codigo:      g.Codigo,
		Descricao:   g.Descricao,
		Fornecedor:  g.Fornecedor,
		Quantidade:  g.Quantidade,
		Defeito:     g.Defeito,
		Requisicoes: g.Requisicoes,
		NotaCompra:  g.NotaCompra,
		ValorCompra: g.ValorCompra,
		Cliente:     g.Cliente,
		Mecanico:    g.Mecanico,
		NotaSaida:   g.NotaSaida,
		NotaRetorno: g.NotaRetorno,
		Observacao:  g.Observacao,
		CriadoEm:    &criado,
		Status:      g.Status,
		LoteID:      g.LoteID,
	}
}

func toGarantia(b dto.GarantiaBackup) *entity.Garantia {
	g := &entity.Garantia{
		ID:          b.ID,
		Codigo:      b.Codigo,
		Descricao:   b.Descricao,
		Fornecedor:  b.Fornecedor,
		Quantidade:  b.Quantidade,
		Defeito:     b.Defeito,
		Requisicoes: b.Requisicoes,
		NotaCompra:  b.NotaCompra,
		ValorCompra: b.ValorCompra,
		Cliente:     b.Cliente,
		Mecanico:    b.Mecanico,
		NotaSaida:   b.NotaSaida,
		NotaRetorno: b.NotaRetorno,
		Observacao:  b.Observacao,
		Status:      b.Status,
		LoteID:      b.LoteID,
	}
	if b.CriadoEm != nil {
		g.CriadoEm = *b.CriadoEm
	} else {
		g.CriadoEm = time.Now()
	}
	if g.Status == "" {
		g.Status = entity.StatusGarantiaEmAnalise
	}
	return g
}

func fromPessoa(p *entity.Pessoa) dto.PessoaBackup {
	criado := p.CriadoEm
	return dto.PessoaBackup{
		ID:         p.ID,
		Nome:       p.Nome,
		Tipo:       p.Tipo,
		Telefone:   p.Telefone,
		Email:      p.Email,
		Observacao: p.Observacao,
		CriadoEm:   &criado,
	}
}

func toPessoa(b dto.PessoaBackup) *entity.Pessoa {
	p := &entity.Pessoa{
		ID:         b.ID,
		Nome:       b.Nome,
		Tipo:       b.Tipo,
		Telefone:   b.Telefone,
		Email:      b.Email,
		Observacao: b.Observacao,
	}
	if b.CriadoEm != nil {
		p.CriadoEm = *b.CriadoEm
	} else {
		p.CriadoEm = time.Now()
	}
	if p.Tipo == "" {
		p.Tipo = entity.TipoPessoaCliente
	}
	return p
}

func fromFornecedor(f *entity.Fornecedor) dto.FornecedorBackup {
	criado := f.CriadoEm
	return dto.FornecedorBackup{
		ID:         f.ID,
		Nome:       f.Nome,
		CNPJ:       f.CNPJ,
		Telefone:   f.Telefone,
		Email:      f.Email,
		Contato:    f.Contato,
		Observacao: f.Observacao,
		CriadoEm:   &criado,
	}
}

func toFornecedor(b dto.FornecedorBackup) *entity.Fornecedor {
	f := &entity.Fornecedor{
		ID:         b.ID,
		Nome:       b.Nome,
		CNPJ:       b.CNPJ,
		Telefone:   b.Telefone,
		Email:      b.Email,
		Contato:    b.Contato,
		Observacao: b.Observacao,
	}
	if b.CriadoEm != nil {
		f.CriadoEm = *b.CriadoEm
	} else {
		f.CriadoEm = time.Now()
	}
	return f
}

func fromLote(l *entity.Lote) dto.LoteBackup {
	criado := l.CriadoEm
	return dto.LoteBackup{
		ID:         l.ID,
		Codigo:     l.Codigo,
		Fornecedor: l.Fornecedor,
		DataEnvio:  l.DataEnvio,
		Observacao: l.Observacao,
		Status:     l.Status,
		CriadoEm:   &criado,
	}
}

func toLote(b dto.LoteBackup) *entity.Lote {
	l := &entity.Lote{
		ID:         b.ID,
		Codigo:     b.Codigo,
		Fornecedor: b.Fornecedor,
		DataEnvio:  b.DataEnvio,
		Observacao: b.Observacao,
		Status:     b.Status,
	}
	if b.CriadoEm != nil {
		l.CriadoEm = *b.CriadoEm
	} else {
		l.CriadoEm = time.Now()
	}
	if l.Status == "" {
		l.Status = entity.StatusLoteAberto
	}
	return l
}

func fromDevolucao(d *entity.Devolucao) dto.DevolucaoBackup {
	criado := d.CriadoEm
	out := dto.DevolucaoBackup{
		ID:         d.ID,
		Numero:     d.Numero,
		Cliente:    d.Cliente,
		Data:       d.Data,
		Observacao: d.Observacao,
		Status:     d.Status,
		CriadoEm:   &criado,
	}
	for _, it := range d.Itens {
		out.Itens = append(out.Itens, dto.ItemDevolucaoBackup{
			Codigo:     it.Codigo,
			Descricao:  it.Descricao,
			Quantidade: it.Quantidade,
			Valor:      it.Valor,
		})
	}
	return out
}

func toDevolucao(b dto.DevolucaoBackup) *entity.Devolucao {
	d := &entity.Devolucao{
		ID:         b.ID,
		Numero:     b.Numero,
		Cliente:    b.Cliente,
		Data:       b.Data,
		Observacao: b.Observacao,
		Status:     b.Status,
	}
	if b.CriadoEm != nil {
		d.CriadoEm = *b.CriadoEm
	} else {
		d.CriadoEm = time.Now()
	}
	if d.Status == "" {
		d.Status = entity.StatusDevolucaoPendente
	}
	for _, it := range b.Itens {
		d.Itens = append(d.Itens, entity.ItemDevolucao{
			Codigo:     it.Codigo,
			Descricao:  it.Descricao,
			Quantidade: it.Quantidade,
			Valor:      it.Valor,
		})
	}
	return d
}

func fromEmpresa(e *entity.DadosEmpresa) dto.EmpresaBackup {
	return dto.EmpresaBackup{
		Nome:     e.Nome,
		CNPJ:     e.CNPJ,
		Endereco: e.Endereco,
		Cidade:   e.Cidade,
		Telefone: e.Telefone,
		Email:    e.Email,
	}
}

func toEmpresa(b dto.EmpresaBackup) *entity.DadosEmpresa {
	return &entity.DadosEmpresa{
		Nome:         b.Nome,
		CNPJ:         b.CNPJ,
		Endereco:     b.Endereco,
		Cidade:       b.Cidade,
		Telefone:     b.Telefone,
		Email:        b.Email,
		AtualizadoEm: time.Now(),
	}
}
