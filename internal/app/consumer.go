package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-comp/internal/bonus"
	"go-comp/internal/config"
	"go-comp/internal/employee"
	"go-comp/internal/events"
	"go-comp/internal/messaging/kafka"
	"go-comp/internal/messaging/kafka/consumer"
	"go-comp/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer recalculates open bonus assignments whenever an employee's
// salary changes.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	directory := employee.NewDirectory(employee.NewRepository(gormDB))
	bonusService := bonus.NewService(sqlDB, bonus.NewRepository(gormDB), directory, kafka.NewOutboxRepository(gormDB), bonus.Options{
		DefaultCurrency:    cfg.Engine.DefaultCurrency,
		StrictPlaceholders: cfg.Engine.StrictPlaceholders,
	}, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeCompensationChangedTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeCompensationChanged(ctx, reader, bonusService, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
