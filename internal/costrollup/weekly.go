package costrollup

import (
	"fmt"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"
)

const dateLayout = "2006-01-02"

// weekStart returns the Monday of t's ISO week.
func weekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// bucketWeekly sums entries per ISO week. Only weeks with entries appear,
// oldest first. entries must be ordered by date.
func bucketWeekly(entries []ledger.LedgerEntry) []WeeklyCost {
	res := []WeeklyCost{}
	for _, e := range entries {
		start := weekStart(e.EntryDate)
		label := start.Format(dateLayout)
		if n := len(res); n > 0 && res[n-1].WeekStart == label {
			res[n-1].TotalCost = res[n-1].TotalCost.Add(e.Amount)
			continue
		}
		year, week := start.ISOWeek()
		res = append(res, WeeklyCost{
			WeekStart: label,
			ISOWeek:   fmt.Sprintf("%d-W%02d", year, week),
			TotalCost: e.Amount,
		})
	}
	return res
}
