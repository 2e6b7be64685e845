package wage

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"

	uniqueAttendanceConstraint = "uq_wage_records_attendance"
)

// WageRecord is the claim derived from exactly one attendance record. Only
// review changes it, and only out of PENDING.
type WageRecord struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	AttendanceID uuid.UUID       `gorm:"column:attendance_id;type:uuid;not null;uniqueIndex:uq_wage_records_attendance"`
	LabourID     uuid.UUID       `gorm:"column:labour_id;type:uuid;not null;index"`
	ProjectID    uuid.UUID       `gorm:"column:project_id;type:uuid;not null;index:idx_wage_project_status"`
	WorkDate     time.Time       `gorm:"column:work_date;type:date;not null"`
	WageType     string          `gorm:"column:wage_type;type:varchar(20);not null"`
	Rate         decimal.Decimal `gorm:"column:rate;type:numeric(14,2);not null"`
	WorkedHours  decimal.Decimal `gorm:"column:worked_hours;type:numeric(6,2);not null"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount;type:numeric(14,2);not null"`
	Status       string          `gorm:"column:status;type:varchar(20);not null;index:idx_wage_project_status"`
	CreatedBy    string          `gorm:"column:created_by;type:varchar(64);not null"`
	ReviewedBy   *string         `gorm:"column:reviewed_by;type:varchar(64)"`
	ReviewedAt   *time.Time      `gorm:"column:reviewed_at"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (WageRecord) TableName() string {
	return "wage_records"
}
