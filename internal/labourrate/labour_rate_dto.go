package labourrate

import "github.com/shopspring/decimal"

type CreateLabourRateRequest struct {
	ProjectID     string          `json:"project_id" binding:"required,uuid"`
	LabourID      string          `json:"labour_id" binding:"required,uuid"`
	WageType      string          `json:"wage_type" binding:"required,oneof=HOURLY DAILY"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate string          `json:"effective_date" binding:"required"`
}

type ListLabourRateRequest struct {
	ProjectID string `form:"project_id" binding:"required,uuid"`
}

type LabourRateResponse struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	LabourID      string          `json:"labour_id"`
	WageType      string          `json:"wage_type"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate string          `json:"effective_date"`
}
