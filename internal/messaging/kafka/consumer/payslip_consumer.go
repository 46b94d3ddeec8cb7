package consumer

import (
	"context"
	"encoding/json"

	"go-salon/internal/events"
	"go-salon/internal/payslip"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumePayslipRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	payslipService payslip.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip")
	log.Info("payslip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip consumer stopped")
				return
			}
			log.Error("fetch payslip message failed", zap.Error(err))
			continue
		}

		var event events.PayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = payslipService.GenerateDocument(ctx, event.SalonID, event.EmployeeID, event.Month, event.Year)
		if err != nil {
			log.Error("generate payslip document failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("salon_id", event.SalonID),
				zap.Int("month", event.Month),
				zap.Int("year", event.Year),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip message failed", zap.Error(err))
			continue
		}

		log.Info("payslip document generated",
			zap.String("employee_id", event.EmployeeID),
			zap.String("salon_id", event.SalonID),
			zap.Int("month", event.Month),
			zap.Int("year", event.Year),
		)
	}
}
