package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	tag := func(name string) Middleware {
		return func(next MessageHandler) MessageHandler {
			return func(ctx context.Context, msg Message) error {
				calls = append(calls, name)
				return next(ctx, msg)
			}
		}
	}

	h := Chain(func(context.Context, Message) error {
		calls = append(calls, "handler")
		return nil
	}, tag("outer"), tag("inner"))

	require.NoError(t, h(context.Background(), Message{}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestHeaderCarrier(t *testing.T) {
	t.Parallel()

	c := HeaderCarrier{}
	c.Set("traceparent", "00-abc-def-01")

	assert.Equal(t, "00-abc-def-01", c.Get("traceparent"))
	assert.Empty(t, c.Get("missing"))
	assert.Equal(t, []string{"traceparent"}, c.Keys())
}
