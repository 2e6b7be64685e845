package wage

import (
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/attendance"
	wageerrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/wage/errors"

	"github.com/shopspring/decimal"
)

// ComputeTotal prices one attendance: hourly work is rate times hours, a day
// is paid the flat rate whatever the hours. The result is rounded to paise.
func ComputeTotal(wageType string, rate, workedHours decimal.Decimal) (decimal.Decimal, error) {
	switch wageType {
	case attendance.WageTypeHourly:
		return rate.Mul(workedHours).Round(2), nil
	case attendance.WageTypeDaily:
		return rate.Round(2), nil
	default:
		return decimal.Zero, wageerrors.ErrInvalidWageType
	}
}
