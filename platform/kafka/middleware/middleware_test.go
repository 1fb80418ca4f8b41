package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/you-humble/repair-workshop/platform/kafka"
)

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Info(_ context.Context, msg string, _ ...zap.Field) {
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Error(_ context.Context, msg string, _ ...zap.Field) {
	l.errors = append(l.errors, msg)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	log := &recordingLogger{}
	handler := Recovery(log)(func(context.Context, kafka.Message) error {
		panic("boom")
	})

	err := handler(context.Background(), kafka.Message{Topic: "inventory.low_stock"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Len(t, log.errors, 1)
}

func TestLogging(t *testing.T) {
	t.Parallel()

	log := &recordingLogger{}
	want := errors.New("handler failed")
	handler := Logging(log)(func(context.Context, kafka.Message) error { return want })

	err := handler(context.Background(), kafka.Message{Topic: "repair.events"})
	assert.ErrorIs(t, err, want)
	assert.Equal(t, []string{"Kafka msg handled"}, log.infos)
}
