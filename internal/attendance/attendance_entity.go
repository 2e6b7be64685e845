package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	WageTypeHourly    = "HOURLY"
	WageTypeDaily     = "DAILY"
	WageTypePieceRate = "PIECE_RATE"
)

// AttendanceRecord is one labourer's presence on a project for a work date.
// Rows are immutable once written.
type AttendanceRecord struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	ProjectID   uuid.UUID       `gorm:"column:project_id;type:uuid;not null;index:idx_attendance_project_date"`
	LabourID    uuid.UUID       `gorm:"column:labour_id;type:uuid;not null;index"`
	WorkDate    time.Time       `gorm:"column:work_date;type:date;not null;index:idx_attendance_project_date"`
	WorkedHours decimal.Decimal `gorm:"column:worked_hours;type:numeric(6,2);not null"`
	WageType    string          `gorm:"column:wage_type;type:varchar(20);not null"`
	Notes       *string         `gorm:"column:notes;type:text"`
	CreatedBy   string          `gorm:"column:created_by;type:varchar(64);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
