package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const WageReviewedTopic = "payroll.wage.reviewed.v1"

type WageReviewedEvent struct {
	EventType   string          `json:"event_type"`
	WageID      string          `json:"wage_id"`
	ProjectID   string          `json:"project_id"`
	LabourID    string          `json:"labour_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ReviewedBy  string          `json:"reviewed_by"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
