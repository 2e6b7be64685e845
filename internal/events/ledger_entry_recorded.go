package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const LedgerEntryRecordedTopic = "finance.ledger.entry.recorded.v1"

type LedgerEntryRecordedEvent struct {
	EventType   string          `json:"event_type"`
	EntryID     int64           `json:"entry_id"`
	ProjectID   string          `json:"project_id"`
	Type        string          `json:"type"`
	ReferenceID string          `json:"reference_id"`
	Amount      decimal.Decimal `json:"amount"`
	EntryDate   string          `json:"entry_date"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
