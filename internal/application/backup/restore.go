package backup

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"garantias/internal/application/dto"
	"garantias/internal/domain"
	"garantias/internal/pubsub"
	"garantias/pkg/logger"
)

// Estado do orquestrador de restauração.
type Estado int

const (
	// EstadoOcioso aguardando a seleção de um arquivo.
	EstadoOcioso Estado = iota
	// EstadoAguardandoConfirmacao documento decodificado, resumo apresentado,
	// nada destrutivo executado ainda.
	EstadoAguardandoConfirmacao
	// EstadoGravando limpar-e-inserir em andamento dentro da transação.
	EstadoGravando
)

// String devolve o nome do estado para logs e respostas de diagnóstico.
func (e Estado) String() string {
	switch e {
	case EstadoAguardandoConfirmacao:
		return "aguardando_confirmacao"
	case EstadoGravando:
		return "gravando"
	default:
		return "ocioso"
	}
}

// Orchestrator coordena a substituição completa das coleções a partir de um
// documento de backup. A validação é um portão estrito: nenhuma coleção é
// limpa antes de o documento decodificar e validar por inteiro. A gravação
// roda em uma única transação: uma restauração é substituição verdadeira,
// nunca mesclagem, e nunca deixa o armazenamento limpo-porém-parcial.
type Orchestrator struct {
	codec *Codec
	tx    TxRunner
	pub   pubsub.Publisher
	log   *logger.Logger

	mu       sync.Mutex
	estado   Estado
	pendente *dto.BackupDocument
}

// NewOrchestrator constrói o orquestrador.
func NewOrchestrator(codec *Codec, tx TxRunner, pub pubsub.Publisher, log *logger.Logger) *Orchestrator {
	return &Orchestrator{codec: codec, tx: tx, pub: pub, log: log}
}

// Estado devolve o estado corrente (para diagnóstico e testes).
func (o *Orchestrator) Estado() Estado {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.estado
}

// Preview decodifica o arquivo e, em caso de sucesso, guarda o documento e
// devolve o resumo para confirmação do usuário (Ocioso → AguardandoConfirmacao).
// Falha de validação ou sintaxe volta a Ocioso com o armazenamento intocado.
// Uma nova seleção de arquivo substitui o documento pendente anterior.
func (o *Orchestrator) Preview(raw []byte) (*dto.RestoreSummary, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.estado == EstadoGravando {
		return nil, fmt.Errorf("%w: restauração em andamento", domain.ErrRestauracao)
	}

	doc, err := o.codec.Decode(raw)
	if err != nil {
		o.estado = EstadoOcioso
		o.pendente = nil
		return nil, err
	}

	o.pendente = doc
	o.estado = EstadoAguardandoConfirmacao
	resumo := resumir(doc)
	o.log.Info().
		Int("total", resumo.Total).
		Int("garantias", resumo.Garantias).
		Int("devolucoes", resumo.Devolucoes).
		Msg("backup decodificado, aguardando confirmação")
	return resumo, nil
}

// Cancel descarta o documento pendente e volta a Ocioso.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pendente = nil
	o.estado = EstadoOcioso
}

// Confirm executa a substituição: limpa TODAS as coleções antes de inserir
// qualquer registro e então insere na ordem lotes → garantias → pessoas/
// fornecedores → devoluções (com itens) → dados da empresa, tudo em uma
// transação. IDs de topo presentes no documento são preservados; itens de
// devolução recebem IDs novos. Ao concluir, emite o broadcast de dados
// alterados exatamente uma vez e volta a Ocioso.
func (o *Orchestrator) Confirm(ctx context.Context) error {
	o.mu.Lock()
	if o.estado != EstadoAguardandoConfirmacao || o.pendente == nil {
		o.mu.Unlock()
		return domain.ErrConfirmacaoPendente
	}
	doc := o.pendente
	o.estado = EstadoGravando
	o.mu.Unlock()

	// A transação roda fora do lock para que Estado() permaneça observável
	// durante a gravação. EstadoGravando é o guarda contra Preview/Confirm
	// concorrentes: ambos o rejeitam até a transação terminar.
	err := o.tx.Run(ctx, func(r Repos) error {
		return aplicar(ctx, r, doc)
	})

	o.mu.Lock()
	o.pendente = nil
	o.estado = EstadoOcioso
	o.mu.Unlock()

	if err != nil {
		o.log.Error().Err(err).Msg("restauração falhou; transação revertida, dados anteriores preservados")
		return fmt.Errorf("%w: %v", domain.ErrRestauracao, err)
	}

	if pubErr := o.pub.Publish(ctx, pubsub.TopicDadosAlterados, message.NewMessage(watermill.NewUUID(), nil)); pubErr != nil {
		// o broadcast é melhor-esforço: os dados já estão gravados
		o.log.Warn().Err(pubErr).Msg("falha ao emitir broadcast de dados alterados")
	}

	o.log.Info().Msg("restauração concluída")
	return nil
}

// aplicar faz o limpar-e-inserir dentro da transação.
func aplicar(ctx context.Context, r Repos, doc *dto.BackupDocument) error {
	// limpeza de todas as coleções antes de qualquer inserção
	if err := r.Garantias.Clear(ctx); err != nil {
		return err
	}
	if err := r.Pessoas.Clear(ctx); err != nil {
		return err
	}
	if err := r.Fornecedores.Clear(ctx); err != nil {
		return err
	}
	if err := r.Devolucoes.Clear(ctx); err != nil {
		return err
	}
	if err := r.Lotes.Clear(ctx); err != nil {
		return err
	}
	if err := r.Empresa.Clear(ctx); err != nil {
		return err
	}

	// pais primeiro: lotes antes de garantias (lote_id referencia lotes)
	for _, b := range doc.Lotes {
		if err := r.Lotes.Create(ctx, toLote(b)); err != nil {
			return err
		}
	}
	for _, b := range doc.Warranties {
		if err := r.Garantias.Create(ctx, toGarantia(b)); err != nil {
			return err
		}
	}
	for _, b := range doc.Persons {
		if err := r.Pessoas.Create(ctx, toPessoa(b)); err != nil {
			return err
		}
	}
	for _, b := range doc.Suppliers {
		if err := r.Fornecedores.Create(ctx, toFornecedor(b)); err != nil {
			return err
		}
	}
	for _, b := range doc.Devolucoes {
		if err := r.Devolucoes.Create(ctx, toDevolucao(b)); err != nil {
			return err
		}
	}
	if doc.CompanyData != nil {
		if err := r.Empresa.Save(ctx, toEmpresa(*doc.CompanyData)); err != nil {
			return err
		}
	}
	return nil
}

// resumir conta os registros das seis coleções do documento.
func resumir(doc *dto.BackupDocument) *dto.RestoreSummary {
	s := &dto.RestoreSummary{
		Garantias:    len(doc.Warranties),
		Pessoas:      len(doc.Persons),
		Fornecedores: len(doc.Suppliers),
		Lotes:        len(doc.Lotes),
		Devolucoes:   len(doc.Devolucoes),
		Empresa:      doc.CompanyData != nil,
	}
	s.Total = s.Garantias + s.Pessoas + s.Fornecedores + s.Lotes + s.Devolucoes
	if s.Empresa {
		s.Total++
	}
	return s
}
