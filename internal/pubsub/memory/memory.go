// Package memory implementa o barramento de eventos em processo via gochannel do watermill.
package memory

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"garantias/internal/pubsub"
)

var _ pubsub.PubSub = (*PubSub)(nil)

// PubSub barramento em memória. Processo único: suficiente para o modelo de
// um escritor por vez da aplicação.
type PubSub struct {
	ch *gochannel.GoChannel
}

// NewPubSub cria o barramento em memória.
func NewPubSub() *PubSub {
	ch := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: 16,
		},
		watermill.NopLogger{},
	)
	return &PubSub{ch: ch}
}

// Publish publica uma mensagem no tópico.
func (p *PubSub) Publish(ctx context.Context, topic string, msg *message.Message) error {
	return p.ch.Publish(topic, msg)
}

// Subscribe assina um tópico.
func (p *PubSub) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return p.ch.Subscribe(ctx, topic)
}

// Close encerra o barramento.
func (p *PubSub) Close() error {
	return p.ch.Close()
}
