package converter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/you-humble/repair-workshop/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) RepairEventToPayload(e model.RepairEvent) ([]byte, error) {
	return marshal(map[string]any{
		"event_uuid":  e.EventID.String(),
		"type":        string(e.Type),
		"repair_uuid": e.RepairID.String(),
		"status":      string(e.Status),
		"total_cost":  e.TotalCost.String(),
		"profit":      e.Profit.String(),
		"occurred_at": e.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
}

func (c *kafkaConverter) PayloadToRepairEvent(data []byte) (model.RepairEvent, error) {
	pb, err := unmarshal(data)
	if err != nil {
		return model.RepairEvent{}, err
	}

	f := fields{pb: pb}
	e := model.RepairEvent{
		EventID:    f.uuid("event_uuid"),
		Type:       model.RepairEventType(f.str("type")),
		RepairID:   f.uuid("repair_uuid"),
		Status:     model.RepairStatus(f.str("status")),
		TotalCost:  f.decimal("total_cost"),
		Profit:     f.decimal("profit"),
		OccurredAt: f.time("occurred_at"),
	}
	if f.err != nil {
		return model.RepairEvent{}, f.err
	}

	return e, nil
}

func (c *kafkaConverter) LowStockAlertToPayload(a model.LowStockAlert) ([]byte, error) {
	return marshal(map[string]any{
		"event_uuid":  a.EventID.String(),
		"part_uuid":   a.PartID.String(),
		"part_name":   a.PartName,
		"quantity":    a.Quantity,
		"threshold":   a.Threshold,
		"occurred_at": a.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
}

func (c *kafkaConverter) PayloadToLowStockAlert(data []byte) (model.LowStockAlert, error) {
	pb, err := unmarshal(data)
	if err != nil {
		return model.LowStockAlert{}, err
	}

	f := fields{pb: pb}
	a := model.LowStockAlert{
		EventID:    f.uuid("event_uuid"),
		PartID:     f.uuid("part_uuid"),
		PartName:   f.str("part_name"),
		Quantity:   f.int("quantity"),
		Threshold:  f.int("threshold"),
		OccurredAt: f.time("occurred_at"),
	}
	if f.err != nil {
		return model.LowStockAlert{}, f.err
	}

	return a, nil
}

func marshal(m map[string]any) ([]byte, error) {
	pb, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("failed to build protobuf struct: %w", err)
	}

	payload, err := proto.Marshal(pb)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf: %w", err)
	}

	return payload, nil
}

func unmarshal(data []byte) (*structpb.Struct, error) {
	var pb structpb.Struct
	if err := proto.Unmarshal(data, &pb); err != nil {
		return nil, fmt.Errorf("failed to unmarshal protobuf: %w", err)
	}

	return &pb, nil
}

// fields reads typed values out of a struct and keeps the first error.
type fields struct {
	pb  *structpb.Struct
	err error
}

func (f *fields) str(key string) string {
	v, ok := f.pb.GetFields()[key]
	if !ok {
		if f.err == nil {
			f.err = fmt.Errorf("missing field %q", key)
		}
		return ""
	}

	return v.GetStringValue()
}

func (f *fields) int(key string) int64 {
	v, ok := f.pb.GetFields()[key]
	if !ok {
		if f.err == nil {
			f.err = fmt.Errorf("missing field %q", key)
		}
		return 0
	}

	return int64(v.GetNumberValue())
}

func (f *fields) uuid(key string) uuid.UUID {
	s := f.str(key)
	id, err := uuid.Parse(s)
	if err != nil && f.err == nil {
		f.err = fmt.Errorf("field %q: %w", key, err)
	}

	return id
}

func (f *fields) decimal(key string) decimal.Decimal {
	s := f.str(key)
	d, err := decimal.NewFromString(s)
	if err != nil && f.err == nil {
		f.err = fmt.Errorf("field %q: %w", key, err)
	}

	return d
}

func (f *fields) time(key string) time.Time {
	s := f.str(key)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil && f.err == nil {
		f.err = fmt.Errorf("field %q: %w", key, err)
	}

	return t
}
