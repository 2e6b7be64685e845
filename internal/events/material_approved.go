package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialApprovedTopic is produced by the procurement service when a material
// request is approved. The ledger consumes it.
const MaterialApprovedTopic = "procurement.material.approved.v1"

type MaterialApprovedEvent struct {
	EventType         string          `json:"event_type"`
	MaterialRequestID string          `json:"material_request_id"`
	ProjectID         string          `json:"project_id"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Amount            decimal.Decimal `json:"amount"`
	ApprovedBy        string          `json:"approved_by"`
	ApprovedAt        time.Time       `json:"approved_at"`
}
