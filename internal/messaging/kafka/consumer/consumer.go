package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/events"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"
	ledgererrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger/errors"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/apperror"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// MaterialRecorder writes approved material costs to the ledger.
type MaterialRecorder interface {
	RecordMaterialApproval(ctx context.Context, projectID string, req ledger.MaterialApprovalRequest) (ledger.LedgerEntryResponse, error)
}

var (
	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 30 * time.Second
)

// ConsumeMaterialApproved books each event before fetching the next one. A
// transient failure is retried on the same message so no later offset is
// committed ahead of it.
func ConsumeMaterialApproved(
	ctx context.Context,
	reader MessageReader,
	recorder MaterialRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.material_approved")
	log.Info("material approved consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("material approved consumer stopped")
				return
			}
			log.Error("fetch material approved message failed", zap.Error(err))
			continue
		}

		if !handleWithRetry(ctx, recorder, msg, log) {
			log.Info("material approved consumer stopped",
				zap.Int64("uncommitted_offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit material approved message failed", zap.Error(err))
		}
	}
}

// handleWithRetry repeats handleMaterialApproved with capped exponential
// backoff. It returns false only when ctx ends first.
func handleWithRetry(ctx context.Context, recorder MaterialRecorder, msg kafkago.Message, log *zap.Logger) bool {
	delay := retryBaseDelay
	for attempt := 1; ; attempt++ {
		if handleMaterialApproved(ctx, recorder, msg, log) {
			return true
		}

		log.Warn("material approved event will be retried",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
		)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		delay *= 2
		if delay > retryMaxDelay {
			delay = retryMaxDelay
		}
	}
}

// handleMaterialApproved reports whether msg is done with and may be
// committed. Redeliveries and malformed events are done with; transient
// failures are not.
func handleMaterialApproved(ctx context.Context, recorder MaterialRecorder, msg kafkago.Message, log *zap.Logger) bool {
	var event events.MaterialApprovedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode material approved event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return true
	}

	for _, h := range msg.Headers {
		if h.Key == "request_id" {
			ctx = contextutil.WithRequestID(ctx, string(h.Value))
		}
	}

	approvedAt := event.ApprovedAt
	entry, err := recorder.RecordMaterialApproval(ctx, event.ProjectID, ledger.MaterialApprovalRequest{
		MaterialRequestID: event.MaterialRequestID,
		Description:       event.Description,
		Category:          event.Category,
		Amount:            event.Amount,
		ApprovedBy:        event.ApprovedBy,
		ApprovedAt:        &approvedAt,
	})
	if err != nil {
		if errors.Is(err, ledgererrors.ErrStorageConflict) {
			log.Warn("material approval already on ledger, skipping",
				zap.String("material_request_id", event.MaterialRequestID),
				zap.String("project_id", event.ProjectID),
			)
			return true
		}
		if status := apperror.ToHTTP(err).Status; status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			log.Error("material approved event rejected",
				zap.String("material_request_id", event.MaterialRequestID),
				zap.String("project_id", event.ProjectID),
				zap.Error(err),
			)
			return true
		}

		log.Error("record material approval failed",
			zap.String("material_request_id", event.MaterialRequestID),
			zap.String("project_id", event.ProjectID),
			zap.Error(err),
		)
		return false
	}

	log.Info("material approval recorded from event",
		zap.String("material_request_id", event.MaterialRequestID),
		zap.String("project_id", event.ProjectID),
		zap.Int64("entry_id", entry.ID),
	)
	return true
}
