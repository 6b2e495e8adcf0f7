package outbound

import (
	"context"
	"log/slog"

	"bot-lab/contract"
	"bot-lab/segment"
)

// Pipeline consumes messages from a channel and forwards their segmented
// chunks to the transport. No retries: a transport error drops the rest of
// the message, and retrying belongs to whatever owns the connection.
type Pipeline struct {
	log       *slog.Logger
	transport contract.Transport
	queue     <-chan Message
	maxBytes  int
}

// NewPipeline builds a pipeline worker; maxBytes <= 0 selects
// segment.DefaultMaxBytes.
func NewPipeline(log *slog.Logger, transport contract.Transport, queue <-chan Message, maxBytes int) *Pipeline {
	if maxBytes <= 0 {
		maxBytes = segment.DefaultMaxBytes
	}
	return &Pipeline{log: log, transport: transport, queue: queue, maxBytes: maxBytes}
}

// Run drains the queue until the context ends or the queue closes. A closed
// queue is a normal shutdown and returns nil.
func (p *Pipeline) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-p.queue:
			if !ok {
				p.log.Debug("Outbound queue closed, stopping")
				return nil
			}
			p.deliver(ctx, msg)
		}
	}
}

// deliver splits the message until nothing is left over, sending each
// sendable piece as its own protocol line.
func (p *Pipeline) deliver(ctx context.Context, msg Message) {
	text := msg.Text
	sent := 0
	for text != "" {
		sendable, excess := segment.Split(text, p.maxBytes)
		if sendable != "" {
			if err := p.transport.Send(ctx, msg.Target, sendable); err != nil {
				p.log.Error("Transport rejected chunk, dropping message",
					"id", msg.ID, "target", msg.Target, "sent", sent, "error", err)
				return
			}
			sent++
		}
		text = excess
	}
	p.log.Debug("Message delivered", "id", msg.ID, "target", msg.Target, "chunks", sent)
}
