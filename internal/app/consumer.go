package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go-salon/internal/attendance"
	"go-salon/internal/bonus"
	"go-salon/internal/employee"
	"go-salon/internal/events"
	"go-salon/internal/messaging/kafka"
	"go-salon/internal/messaging/kafka/consumer"
	"go-salon/internal/payslip"
	"go-salon/internal/sale"
	"go-salon/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	var remote payslip.RemoteSource
	if baseURL := os.Getenv("PAYROLL_REMOTE_URL"); baseURL != "" {
		remote = payslip.NewHTTPRemoteSource(baseURL, 5*time.Second)
	}

	storageDir := os.Getenv("PAYSLIP_STORAGE_DIR")
	if storageDir == "" {
		storageDir = filepath.Join("storage", "payslips")
	}

	payslipService := payslip.NewService(payslip.Deps{
		DB:         sqlDB,
		Employees:  employee.NewRepository(gormDB),
		Attendance: attendance.NewRepository(gormDB),
		Sales:      sale.NewRepository(gormDB),
		Bonuses:    bonus.NewRepository(gormDB),
		Remote:     remote,
		Documents:  payslip.NewDocumentRepository(gormDB),
		Outbox:     kafka.NewOutboxRepository(sqlDB),
		StorageDir: storageDir,
	})

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayslipRequestedTopic,
		GroupID:        "go-salon-payslip",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayslipRequested(ctx, reader, payslipService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
