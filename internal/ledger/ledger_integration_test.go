package ledger_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/domain"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"
	ledgererrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger/errors"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/database/dbtest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type ledgerFixture struct {
	svc       ledger.Service
	repo      ledger.Repository
	projectID uuid.UUID
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	gdb := dbtest.Open(t, &ledger.LedgerEntry{}, &ledger.LedgerAdjustment{})
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	repo := ledger.NewRepository(gdb)
	return &ledgerFixture{
		svc:       ledger.NewService(sqlDB, repo),
		repo:      repo,
		projectID: uuid.New(),
	}
}

func (f *ledgerFixture) seed(t *testing.T, date, typ, amount string) {
	t.Helper()
	require.NoError(t, f.repo.Create(context.Background(), &ledger.LedgerEntry{
		ProjectID:   f.projectID,
		EntryDate:   day(date),
		Type:        typ,
		ReferenceID: uuid.NewString(),
		Amount:      decimal.RequireFromString(amount),
	}))
}

// Insertion order differs from date order on purpose.
func (f *ledgerFixture) seedMixed(t *testing.T) {
	f.seed(t, "2026-03-03", ledger.EntryTypeWage, "400")
	f.seed(t, "2026-03-01", ledger.EntryTypeMaterial, "1000")
	f.seed(t, "2026-03-02", ledger.EntryTypeWage, "250.50")
	f.seed(t, "2026-03-02", ledger.EntryTypeAdjustment, "-100")
	f.seed(t, "2026-03-05", ledger.EntryTypeMaterial, "300")
	f.seed(t, "2026-03-03", ledger.EntryTypeWage, "49.50")
}

func TestLedger_UnfilteredLastRunningTotalEqualsSum(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedMixed(t)

	resp, err := f.svc.Query(context.Background(), f.projectID.String(), ledger.LedgerQueryRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 6)

	sum := decimal.Zero
	prev := decimal.Zero
	for _, e := range resp.Entries {
		sum = sum.Add(e.Amount)
		assert.True(t, prev.Add(e.Amount).Equal(e.RunningTotal), "entry %d", e.ID)
		prev = e.RunningTotal
	}
	assert.Equal(t, "1900.00", resp.Entries[5].RunningTotal.StringFixed(2))
	assert.True(t, sum.Equal(resp.Entries[5].RunningTotal))

	dates := make([]string, len(resp.Entries))
	for i, e := range resp.Entries {
		dates[i] = e.Date
	}
	assert.Equal(t, []string{"2026-03-01", "2026-03-02", "2026-03-02", "2026-03-03", "2026-03-03", "2026-03-05"}, dates)
}

func TestLedger_TypeFilterKeepsTrueRunningTotals(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedMixed(t)
	ctx := context.Background()

	all, err := f.svc.Query(ctx, f.projectID.String(), ledger.LedgerQueryRequest{})
	require.NoError(t, err)
	truth := map[int64]string{}
	for _, e := range all.Entries {
		truth[e.ID] = e.RunningTotal.StringFixed(2)
	}

	wages, err := f.svc.Query(ctx, f.projectID.String(), ledger.LedgerQueryRequest{Type: ledger.EntryTypeWage})
	require.NoError(t, err)
	require.Len(t, wages.Entries, 3)
	for _, e := range wages.Entries {
		assert.Equal(t, ledger.EntryTypeWage, e.Type)
		assert.Equal(t, truth[e.ID], e.RunningTotal.StringFixed(2))
	}
	assert.Equal(t, "1250.50", wages.Entries[0].RunningTotal.StringFixed(2))
}

func TestLedger_DateRangeAndPagination(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedMixed(t)
	ctx := context.Background()
	page, limit := 2, 2

	resp, err := f.svc.Query(ctx, f.projectID.String(), ledger.LedgerQueryRequest{
		StartDate: "2026-03-02",
		EndDate:   "2026-03-05",
		Page:      &page,
		Limit:     &limit,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "1550.50", resp.Entries[0].RunningTotal.StringFixed(2))
	assert.Equal(t, "1600.00", resp.Entries[1].RunningTotal.StringFixed(2))
}

func TestLedger_RecordAdjustmentVisibleAsEntry(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	out, err := f.svc.RecordAdjustment(ctx, domain.Actor{UserID: "owner-1"}, f.projectID.String(), ledger.CreateAdjustmentRequest{
		Date:        "2026-03-04",
		Description: "Site cleanup",
		Amount:      decimal.RequireFromString("75.25"),
	})
	require.NoError(t, err)

	resp, err := f.svc.Query(ctx, f.projectID.String(), ledger.LedgerQueryRequest{Type: ledger.EntryTypeAdjustment})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, out.Adjustment.ID, resp.Entries[0].ReferenceID)
	assert.Equal(t, "75.25", resp.Entries[0].RunningTotal.StringFixed(2))
}

func TestLedger_MaterialApprovalExactlyOnce(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	req := ledger.MaterialApprovalRequest{
		MaterialRequestID: "MR-77",
		Description:       "Rebar",
		Amount:            decimal.NewFromInt(5200),
	}

	_, err := f.svc.RecordMaterialApproval(ctx, f.projectID.String(), req)
	require.NoError(t, err)
	_, err = f.svc.RecordMaterialApproval(ctx, f.projectID.String(), req)
	assert.ErrorIs(t, err, ledgererrors.ErrStorageConflict)

	resp, err := f.svc.Query(ctx, f.projectID.String(), ledger.LedgerQueryRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 1)
}

func TestLedger_Export(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedMixed(t)

	var buf bytes.Buffer
	require.NoError(t, f.svc.Export(context.Background(), f.projectID.String(), ledger.LedgerQueryRequest{Type: ledger.EntryTypeMaterial}, &buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Ledger")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Running Total", rows[0][6])
	assert.Equal(t, "2026-03-01", rows[1][0])
	assert.Equal(t, "1000", rows[1][6])
	assert.Equal(t, "1900", rows[2][6])
}
