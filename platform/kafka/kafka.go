package kafka

import (
	"context"
)

// MessageHandler processes one consumed record. A returned error skips the record; it is not redelivered.
type MessageHandler func(ctx context.Context, msg Message) error

type Middleware func(next MessageHandler) MessageHandler

// Chain wraps h so that mws[0] is the outermost layer.
func Chain(h MessageHandler, mws ...Middleware) MessageHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	return h
}

type Consumer interface {
	Consume(ctx context.Context, handler MessageHandler) error
}

// Producer publishes to the topic it was built for.
type Producer interface {
	Send(ctx context.Context, key, value []byte) error
}
