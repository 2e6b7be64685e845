package wage_test

import (
	"testing"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/wage"
	wageerrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/wage/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	cases := []struct {
		name     string
		wageType string
		rate     string
		hours    string
		want     string
		err      error
	}{
		{"hourly", "HOURLY", "50", "8", "400.00", nil},
		{"hourly fractional hours", "HOURLY", "62.50", "7.25", "453.13", nil},
		{"daily ignores hours", "DAILY", "900", "3.5", "900.00", nil},
		{"piece rate", "PIECE_RATE", "10", "8", "", wageerrors.ErrInvalidWageType},
		{"unknown", "WEEKLY", "10", "8", "", wageerrors.ErrInvalidWageType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := wage.ComputeTotal(tc.wageType, decimal.RequireFromString(tc.rate), decimal.RequireFromString(tc.hours))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got.StringFixed(2))
		})
	}
}
