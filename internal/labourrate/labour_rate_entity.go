package labourrate

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const uniqueEffectiveConstraint = "uq_labour_rate_effective"

type LabourRate struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	ProjectID     uuid.UUID       `gorm:"column:project_id;type:uuid;not null;uniqueIndex:uq_labour_rate_effective"`
	LabourID      uuid.UUID       `gorm:"column:labour_id;type:uuid;not null;uniqueIndex:uq_labour_rate_effective"`
	WageType      string          `gorm:"column:wage_type;type:varchar(20);not null;uniqueIndex:uq_labour_rate_effective"`
	Rate          decimal.Decimal `gorm:"column:rate;type:numeric(14,2);not null"`
	EffectiveDate time.Time       `gorm:"column:effective_date;type:date;not null;uniqueIndex:uq_labour_rate_effective"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

func (LabourRate) TableName() string {
	return "labour_rates"
}
