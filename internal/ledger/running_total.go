package ledger

import "github.com/shopspring/decimal"

// runningTotals walks span in ledger order starting from opening and returns
// the cumulative balance after each entry, keyed by entry id.
func runningTotals(opening decimal.Decimal, span []LedgerEntry) map[int64]decimal.Decimal {
	totals := make(map[int64]decimal.Decimal, len(span))
	balance := opening
	for _, e := range span {
		balance = balance.Add(e.Amount)
		totals[e.ID] = balance
	}
	return totals
}

func categoryForWageType(wageType string) string {
	if wageType == "HOURLY" {
		return CategoryLabourHourly
	}
	return CategoryLabourDaily
}
