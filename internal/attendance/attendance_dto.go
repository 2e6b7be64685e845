package attendance

import "github.com/shopspring/decimal"

type RecordAttendanceRequest struct {
	ProjectID   string          `json:"project_id" binding:"required,uuid"`
	LabourID    string          `json:"labour_id" binding:"required,uuid"`
	WorkDate    string          `json:"work_date" binding:"required"`
	WorkedHours decimal.Decimal `json:"worked_hours"`
	WageType    string          `json:"wage_type" binding:"required,oneof=HOURLY DAILY PIECE_RATE"`
	Notes       *string         `json:"notes"`
}

type ListAttendanceRequest struct {
	ProjectID string `form:"project_id" binding:"required,uuid"`
}

type AttendanceResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	LabourID    string          `json:"labour_id"`
	WorkDate    string          `json:"work_date"`
	WorkedHours decimal.Decimal `json:"worked_hours"`
	WageType    string          `json:"wage_type"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   string          `json:"created_at"`
}
