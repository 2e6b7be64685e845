package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/config"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/costrollup"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/messaging/kafka"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/messaging/kafka/consumer"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer books approved material requests from procurement onto the ledger.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connectDatabase(cfg.Database)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	ledgerRepo := ledger.NewRepository(gormDB)
	ledgerService := ledger.NewServiceWithOutbox(
		sqlDB,
		ledgerRepo,
		kafka.NewOutboxRepository(sqlDB),
		costrollup.NewService(ledgerRepo, redisClient),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          cfg.Kafka.MaterialApprovedTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMaterialApproved(ctx, reader, ledgerService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
