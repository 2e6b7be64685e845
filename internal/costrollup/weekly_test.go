package costrollup

import (
	"testing"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func TestWeekStart(t *testing.T) {
	cases := map[string]string{
		"2026-03-02": "2026-03-02", // Monday
		"2026-03-08": "2026-03-02", // Sunday
		"2026-03-04": "2026-03-02",
		"2027-01-01": "2026-12-28", // Friday, ISO week 53 of 2026
	}
	for in, want := range cases {
		assert.Equal(t, want, weekStart(date(in)).Format(dateLayout), in)
	}
}

func TestBucketWeekly(t *testing.T) {
	entries := []ledger.LedgerEntry{
		{EntryDate: date("2026-03-02"), Amount: decimal.NewFromInt(400)},
		{EntryDate: date("2026-03-08"), Amount: decimal.RequireFromString("99.50")},
		{EntryDate: date("2026-03-23"), Amount: decimal.NewFromInt(1000)},
		{EntryDate: date("2027-01-01"), Amount: decimal.NewFromInt(5)},
	}

	got := bucketWeekly(entries)

	assert.Equal(t, []WeeklyCost{
		{WeekStart: "2026-03-02", ISOWeek: "2026-W10", TotalCost: decimal.RequireFromString("499.50")},
		{WeekStart: "2026-03-23", ISOWeek: "2026-W13", TotalCost: decimal.NewFromInt(1000)},
		{WeekStart: "2026-12-28", ISOWeek: "2026-W53", TotalCost: decimal.NewFromInt(5)},
	}, got)
}

func TestBucketWeekly_Empty(t *testing.T) {
	got := bucketWeekly(nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
