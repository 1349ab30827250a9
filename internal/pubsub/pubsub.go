// Package pubsub define o barramento de eventos interno da aplicação.
package pubsub

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
)

// TopicDadosAlterados é o broadcast sem payload emitido após qualquer mutação
// em massa (importação de backup concluída). Consumidores que fazem cache de
// leituras devem recarregar ao recebê-lo.
const TopicDadosAlterados = "dados.alterados"

// Publisher publica mensagens em um tópico.
type Publisher interface {
	Publish(ctx context.Context, topic string, msg *message.Message) error
}

// Subscriber consome mensagens de um tópico.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// PubSub combina publicação e assinatura.
type PubSub interface {
	Publisher
	Subscriber
	Close() error
}
