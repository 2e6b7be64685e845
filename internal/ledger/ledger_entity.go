package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EntryTypeMaterial   = "MATERIAL"
	EntryTypeWage       = "WAGE"
	EntryTypeAdjustment = "ADJUSTMENT"

	CategoryLabourHourly = "LABOUR_HOURLY"
	CategoryLabourDaily  = "LABOUR_DAILY"
	CategoryMaterial     = "MATERIAL"
	CategoryAdjustment   = "ADJUSTMENT"

	uniqueReferenceConstraint = "uq_ledger_entries_reference"
	maxReferenceLen           = 64
)

// LedgerEntry is one financial event of a project. ID is assigned by the
// database in insertion order and breaks ties between entries of the same day.
// Running totals are never stored.
type LedgerEntry struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID   uuid.UUID       `gorm:"column:project_id;type:uuid;not null;uniqueIndex:uq_ledger_entries_reference,priority:1;index:idx_ledger_project_date,priority:1"`
	EntryDate   time.Time       `gorm:"column:entry_date;type:date;not null;index:idx_ledger_project_date,priority:2"`
	Type        string          `gorm:"column:type;type:varchar(20);not null;uniqueIndex:uq_ledger_entries_reference,priority:2"`
	ReferenceID string          `gorm:"column:reference_id;type:varchar(64);not null;uniqueIndex:uq_ledger_entries_reference,priority:3"`
	Description string          `gorm:"column:description;type:text"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	Category    string          `gorm:"column:category;type:varchar(50)"`
	ApprovedBy  *string         `gorm:"column:approved_by;type:varchar(64)"`
	ApprovedAt  *time.Time      `gorm:"column:approved_at"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
}

func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

type LedgerAdjustment struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	ProjectID      uuid.UUID       `gorm:"column:project_id;type:uuid;not null;index"`
	AdjustmentDate time.Time       `gorm:"column:adjustment_date;type:date;not null"`
	Description    string          `gorm:"column:description;type:text;not null"`
	Amount         decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	Category       string          `gorm:"column:category;type:varchar(50)"`
	Notes          *string         `gorm:"column:notes;type:text"`
	CreatedBy      string          `gorm:"column:created_by;type:varchar(64);not null"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
}

func (LedgerAdjustment) TableName() string {
	return "ledger_adjustments"
}
