package ledger

import (
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/response"

	"github.com/shopspring/decimal"
)

// WageApproval carries what the ledger needs from an approved wage claim.
type WageApproval struct {
	WageID      string
	ProjectID   string
	LabourID    string
	WageType    string
	Amount      decimal.Decimal
	ApprovedBy  string
	ApprovedAt  time.Time
	Description string
}

type LedgerQueryRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Type      string `form:"type"`
	Page      *int   `form:"page"`
	Limit     *int   `form:"limit"`
}

type CreateAdjustmentRequest struct {
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required,max=500"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"max=50"`
	Notes       *string         `json:"notes"`
}

type MaterialApprovalRequest struct {
	MaterialRequestID string          `json:"material_request_id" binding:"required,max=64"`
	Description       string          `json:"description" binding:"required"`
	Category          string          `json:"category" binding:"max=50"`
	Amount            decimal.Decimal `json:"amount"`
	ApprovedBy        string          `json:"approved_by"`
	ApprovedAt        *time.Time      `json:"approved_at"`
}

type LedgerEntryResponse struct {
	ID           int64           `json:"id"`
	ProjectID    string          `json:"project_id"`
	Date         string          `json:"date"`
	Type         string          `json:"type"`
	ReferenceID  string          `json:"reference_id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	RunningTotal decimal.Decimal `json:"running_total"`
	Category     string          `json:"category"`
	ApprovedBy   *string         `json:"approved_by"`
	ApprovedAt   *string         `json:"approved_at"`
}

type LedgerResponse struct {
	Entries    []LedgerEntryResponse   `json:"entries"`
	Pagination response.PaginationMeta `json:"pagination"`
}

type AdjustmentResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   string          `json:"created_at"`
}

type RecordAdjustmentResponse struct {
	Adjustment AdjustmentResponse  `json:"adjustment"`
	Entry      LedgerEntryResponse `json:"entry"`
}
