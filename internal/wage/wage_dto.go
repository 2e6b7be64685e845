package wage

import (
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"

	"github.com/shopspring/decimal"
)

type UnprocessedRequest struct {
	ProjectID string `form:"project_id" binding:"required,uuid"`
}

type GenerateItem struct {
	AttendanceID string `json:"attendance_id" binding:"required,uuid"`
}

type GenerateWagesRequest struct {
	WageData []GenerateItem `json:"wage_data" binding:"required,min=1,max=500,dive"`
}

type GenerateFailure struct {
	AttendanceID string `json:"attendance_id"`
	Code         string `json:"code"`
	Message      string `json:"message"`
}

type GenerateWagesResponse struct {
	Wages  []WageResponse    `json:"wages"`
	Failed []GenerateFailure `json:"failed"`
}

type ReviewWageRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReviewWageResponse struct {
	Wage        WageResponse                `json:"wage"`
	LedgerEntry *ledger.LedgerEntryResponse `json:"ledger_entry,omitempty"`
}

type WageHistoryFilter struct {
	ProjectID string `form:"project_id" binding:"omitempty,uuid"`
	Status    string `form:"status"`
}

type WageResponse struct {
	ID           string          `json:"id"`
	AttendanceID string          `json:"attendance_id"`
	LabourID     string          `json:"labour_id"`
	ProjectID    string          `json:"project_id"`
	WorkDate     string          `json:"work_date"`
	WageType     string          `json:"wage_type"`
	Rate         decimal.Decimal `json:"rate"`
	WorkedHours  decimal.Decimal `json:"worked_hours"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	CreatedBy    string          `json:"created_by"`
	ReviewedBy   *string         `json:"reviewed_by"`
	ReviewedAt   *string         `json:"reviewed_at"`
	CreatedAt    string          `json:"created_at"`
}
