package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/events"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"
	ledgererrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger/errors"
	mock_ledger "github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger/mock"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeRecorder struct {
	err      error
	failures int
	onCall   func(n int)
	calls    []ledger.MaterialApprovalRequest
	requests []string
}

func (f *fakeRecorder) RecordMaterialApproval(ctx context.Context, projectID string, req ledger.MaterialApprovalRequest) (ledger.LedgerEntryResponse, error) {
	f.calls = append(f.calls, req)
	f.requests = append(f.requests, contextutil.GetRequestID(ctx))
	if f.onCall != nil {
		f.onCall(len(f.calls))
	}
	if f.failures > 0 {
		f.failures--
		return ledger.LedgerEntryResponse{}, assert.AnError
	}
	if f.err != nil {
		return ledger.LedgerEntryResponse{}, f.err
	}
	return ledger.LedgerEntryResponse{ID: int64(len(f.calls)), ProjectID: projectID}, nil
}

// scriptedReader serves msgs then cancels the consumer.
type scriptedReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func materialMessage(t *testing.T, offset int64) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(events.MaterialApprovedEvent{
		EventType:         "material.approved",
		MaterialRequestID: "MR-7",
		ProjectID:         "8c7d3f3e-5a0b-4bde-9a57-1f2f0c6b1d11",
		Description:       "Cement 50 bags",
		Amount:            decimal.RequireFromString("18500.00"),
		ApprovedBy:        "mgr-1",
		ApprovedAt:        time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return kafkago.Message{
		Offset:  offset,
		Value:   body,
		Headers: []kafkago.Header{{Key: "request_id", Value: []byte("req-9")}},
	}
}

func TestHandleMaterialApproved(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("recorded", func(t *testing.T) {
		rec := &fakeRecorder{}

		done := handleMaterialApproved(ctx, rec, materialMessage(t, 1), log)

		assert.True(t, done)
		require.Len(t, rec.calls, 1)
		assert.Equal(t, "MR-7", rec.calls[0].MaterialRequestID)
		assert.True(t, rec.calls[0].Amount.Equal(decimal.RequireFromString("18500")))
		require.NotNil(t, rec.calls[0].ApprovedAt)
		assert.Equal(t, 4, rec.calls[0].ApprovedAt.Day())
		assert.Equal(t, []string{"req-9"}, rec.requests)
	})

	t.Run("redelivery committed", func(t *testing.T) {
		rec := &fakeRecorder{err: ledgererrors.ErrStorageConflict}

		assert.True(t, handleMaterialApproved(ctx, rec, materialMessage(t, 1), log))
	})

	t.Run("invalid event committed", func(t *testing.T) {
		rec := &fakeRecorder{err: ledgererrors.ErrInvalidProjectID}

		assert.True(t, handleMaterialApproved(ctx, rec, materialMessage(t, 1), log))
	})

	t.Run("malformed payload committed without recording", func(t *testing.T) {
		rec := &fakeRecorder{}

		done := handleMaterialApproved(ctx, rec, kafkago.Message{Value: []byte("{not json")}, log)

		assert.True(t, done)
		assert.Empty(t, rec.calls)
	})

	t.Run("transient failure left uncommitted", func(t *testing.T) {
		rec := &fakeRecorder{err: assert.AnError}

		assert.False(t, handleMaterialApproved(ctx, rec, materialMessage(t, 1), log))
	})
}

func TestConsumeMaterialApproved_CommitsHandledMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{
		msgs: []kafkago.Message{
			materialMessage(t, 10),
			{Offset: 11, Value: []byte("garbage")},
		},
		cancel: cancel,
	}
	rec := &fakeRecorder{}

	ConsumeMaterialApproved(ctx, reader, rec, zap.NewNop())

	assert.Equal(t, []int64{10, 11}, reader.committed)
	assert.Len(t, rec.calls, 1)
}

func withFastRetry(t *testing.T) {
	t.Helper()
	base, ceiling := retryBaseDelay, retryMaxDelay
	retryBaseDelay, retryMaxDelay = time.Millisecond, 4*time.Millisecond
	t.Cleanup(func() { retryBaseDelay, retryMaxDelay = base, ceiling })
}

func TestConsumeMaterialApproved_RetriesTransientFailureBeforeMovingOn(t *testing.T) {
	withFastRetry(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{
		msgs:   []kafkago.Message{materialMessage(t, 1), materialMessage(t, 2)},
		cancel: cancel,
	}
	rec := &fakeRecorder{failures: 2}

	ConsumeMaterialApproved(ctx, reader, rec, zap.NewNop())

	assert.Equal(t, []int64{1, 2}, reader.committed)
	assert.Len(t, rec.calls, 4)
}

func TestConsumeMaterialApproved_StopsWithoutCommittingWhileRetrying(t *testing.T) {
	withFastRetry(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{
		msgs:   []kafkago.Message{materialMessage(t, 1), materialMessage(t, 2)},
		cancel: cancel,
	}
	rec := &fakeRecorder{
		err: assert.AnError,
		onCall: func(n int) {
			if n == 3 {
				cancel()
			}
		},
	}

	ConsumeMaterialApproved(ctx, reader, rec, zap.NewNop())

	assert.Empty(t, reader.committed)
	assert.Len(t, reader.msgs, 1, "offset 2 must not be fetched while offset 1 is unbooked")
}

func TestConsumeMaterialApproved_MissingReferenceIsCommittedNotRetried(t *testing.T) {
	withFastRetry(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	body, err := json.Marshal(events.MaterialApprovedEvent{
		ProjectID:   "8c7d3f3e-5a0b-4bde-9a57-1f2f0c6b1d11",
		Description: "Sand 2 trucks",
		Amount:      decimal.NewFromInt(9000),
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	ledgerService := mock_ledger.NewMockService(ctrl)
	ledgerService.EXPECT().
		RecordMaterialApproval(gomock.Any(), "8c7d3f3e-5a0b-4bde-9a57-1f2f0c6b1d11", gomock.Any()).
		Return(ledger.LedgerEntryResponse{}, ledgererrors.ErrInvalidReference).
		Times(1)

	reader := &scriptedReader{msgs: []kafkago.Message{{Offset: 5, Value: body}}, cancel: cancel}

	ConsumeMaterialApproved(ctx, reader, ledgerService, zap.NewNop())

	assert.Equal(t, []int64{5}, reader.committed)
}
