package consumer

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
)

func TestToMessage(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	record := &sarama.ConsumerMessage{
		Key:       []byte("part-1"),
		Value:     []byte("payload"),
		Topic:     "inventory.low_stock",
		Partition: 2,
		Offset:    41,
		Timestamp: ts,
		Headers: []*sarama.RecordHeader{
			{Key: []byte("traceparent"), Value: []byte("00-abc")},
			nil,
			{Key: nil, Value: []byte("dropped")},
		},
	}

	msg := toMessage(record)

	assert.Equal(t, "inventory.low_stock", msg.Topic)
	assert.Equal(t, int32(2), msg.Partition)
	assert.Equal(t, int64(41), msg.Offset)
	assert.Equal(t, []byte("part-1"), msg.Key)
	assert.Equal(t, ts, msg.Timestamp)
	assert.Equal(t, map[string][]byte{"traceparent": []byte("00-abc")}, msg.Headers)
}
