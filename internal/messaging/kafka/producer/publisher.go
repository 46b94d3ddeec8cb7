package producer

import (
	"context"

	"go-salon/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// publishEvent writes one outbox row to its topic. The aggregate id keys the
// message so consumers see events for one shift or payslip in order; tenant
// and tracing fields travel as headers so consumers can filter without
// decoding the payload.
func publishEvent(ctx context.Context, writer *kafkago.Writer, event kafka.OutboxEvent) error {
	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		{Key: "salon_id", Value: []byte(event.SalonID)},
	}
	if event.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	return writer.WriteMessages(ctx, kafkago.Message{
		Topic:   event.Topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	})
}
