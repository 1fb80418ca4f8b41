package kafka

import "time"

// Message is a broker-agnostic copy of a consumed record.
type Message struct {
	Headers        map[string][]byte
	Timestamp      time.Time
	BlockTimestamp time.Time

	Key       []byte
	Value     []byte
	Topic     string
	Partition int32
	Offset    int64
}

// HeaderCarrier adapts message headers to the otel TextMapCarrier interface.
type HeaderCarrier map[string][]byte

func (c HeaderCarrier) Get(key string) string { return string(c[key]) }

func (c HeaderCarrier) Set(key, value string) { c[key] = []byte(value) }

func (c HeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}

	return keys
}
