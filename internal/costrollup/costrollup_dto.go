package costrollup

import "github.com/shopspring/decimal"

type WeeklyCostRequest struct {
	ProjectID string `form:"project_id" binding:"required,uuid"`
}

type WeeklyCost struct {
	WeekStart string          `json:"week_start"`
	ISOWeek   string          `json:"iso_week"`
	TotalCost decimal.Decimal `json:"total_cost"`
}
