package producer

import (
	"context"
	"errors"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/messaging/kafka"

	"github.com/bsm/redislock"
	"go.uber.org/zap"
)

const (
	relayLockKey = "outbox:relay"
	batchSize    = 50
)

// Locker hands out the relay lease. *redislock.Client satisfies it.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

// ProcessOutboxEvents relays pending outbox rows to Kafka until ctx is done.
// With a non-nil locker only the replica holding the lease publishes. Events
// of one partition key leave in insertion order: a failed key is skipped for
// the rest of its batch, and ListPending holds its later events back until
// the failed one is due again.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	locker Locker,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := relayOnce(ctx, repo, writer, locker, log, 2*pollInterval); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
		}
	}
}

func relayOnce(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	locker Locker,
	logger *zap.Logger,
	lease time.Duration,
) error {
	if locker == nil {
		return processPendingEvents(ctx, repo, writer, logger)
	}

	lock, err := locker.Obtain(ctx, relayLockKey, lease, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		logger.Debug("outbox relay lease held elsewhere")
		return nil
	}
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release(context.WithoutCancel(ctx))
	}()

	return processPendingEvents(ctx, repo, writer, logger)
}

func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) error {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	logger.Info("processing pending outbox events", zap.Int("count", len(events)))

	// later events of a failed key wait for the next poll, where ListPending
	// keeps them behind the failed one
	blocked := make(map[string]bool)
	for _, event := range events {
		key := buildMessage(event).Key
		if blocked[string(key)] {
			continue
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			blocked[string(key)] = true
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}
