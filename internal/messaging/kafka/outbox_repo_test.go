package kafka_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("req-1", "wage", "w-1", "p-1", "wage.reviewed", "payroll.wage.reviewed.v1",
		map[string]string{"status": "APPROVED"})

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.JSONEq(t, `{"status":"APPROVED"}`, string(event.Payload))

	_, err = kafka.NewOutboxEvent("req-1", "wage", "w-1", "p-1", "wage.reviewed", "", map[string]string{})
	assert.EqualError(t, err, "outbox topic is required")
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	event := kafka.OutboxEvent{
		ID: "e-1", RequestID: "r-1", AggregateType: "ledger_entry", AggregateID: "42", PartitionKey: "p-1",
		EventType: "ledger.entry.recorded", Topic: "finance.ledger.entry.recorded.v1",
		Payload: []byte(`{}`), Status: kafka.OutboxStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs("e-1", "r-1", "ledger_entry", "42", "p-1", "ledger.entry.recorded", "finance.ledger.entry.recorded.v1", []byte(`{}`), "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)
	assert.NoError(t, repo.WithTx(tx).Create(context.Background(), event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "partition_key",
		"event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("e-1", "r-1", "wage", "w-1", "p-1", "wage.reviewed", "payroll.wage.reviewed.v1", []byte(`{}`), "failed", 2, now)

	mock.ExpectQuery(`(?s)FROM outbox_events o\s+WHERE .*NOT EXISTS \(.*older\.partition_key = o\.partition_key.*older\.next_retry_at > NOW\(\).*\(older\.created_at, older\.id\) < \(o\.created_at, o\.id\).*ORDER BY o\.created_at ASC, o\.id ASC`).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "p-1", events[0].PartitionKey)
	assert.Equal(t, 2, events[0].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailedTruncatesReason(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	long := strings.Repeat("x", 600)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("e-1", kafka.OutboxStatusFailed, long[:500]).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "e-1", long))
	assert.NoError(t, mock.ExpectationsWereMet())
}
