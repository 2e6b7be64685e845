package costrollup_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/costrollup"
	mock_costrollup "github.com/rayyanshaikh123/bharatbuild-sub004/internal/costrollup/mock"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeSource struct {
	calls   int
	entries []ledger.LedgerEntry
	err     error
	onFind  func()
}

func (f *fakeSource) FindCostEntries(ctx context.Context, projectID string) ([]ledger.LedgerEntry, error) {
	f.calls++
	entries := f.entries
	if f.onFind != nil {
		f.onFind()
	}
	return entries, f.err
}

func TestCostRollupService_WeeklyCost(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.NewString()
	versionKey := costrollup.GetWeeklyCostVersionKey(projectID)
	cacheKey := costrollup.GetWeeklyCostKey(projectID, 3)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	expected := []costrollup.WeeklyCost{
		{WeekStart: "2026-03-02", ISOWeek: "2026-W10", TotalCost: decimal.NewFromInt(400)},
	}

	t.Run("cache hit skips the ledger", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		source := &fakeSource{}
		svc := costrollup.NewService(source, rdb)

		cached, _ := json.Marshal(expected)
		redisMock.ExpectGet(versionKey).SetVal("3")
		redisMock.ExpectGet(cacheKey).SetVal(string(cached))

		got, err := svc.WeeklyCost(ctx, projectID)

		assert.NoError(t, err)
		assert.Equal(t, "400", got[0].TotalCost.String())
		assert.Equal(t, 0, source.calls)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		source := &fakeSource{entries: []ledger.LedgerEntry{
			{EntryDate: monday, Type: ledger.EntryTypeWage, Amount: decimal.NewFromInt(400)},
		}}
		svc := costrollup.NewService(source, rdb)

		data, _ := json.Marshal(expected)
		redisMock.ExpectGet(versionKey).RedisNil()
		redisMock.ExpectGet(costrollup.GetWeeklyCostKey(projectID, 0)).RedisNil()
		redisMock.ExpectSet(costrollup.GetWeeklyCostKey(projectID, 0), data, 30*time.Minute).SetVal("OK")

		got, err := svc.WeeklyCost(ctx, projectID)

		assert.NoError(t, err)
		assert.Equal(t, expected, got)
		assert.Equal(t, 1, source.calls)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("empty project is an empty list", func(t *testing.T) {
		svc := costrollup.NewService(&fakeSource{}, nil)

		got, err := svc.WeeklyCost(ctx, projectID)

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unreadable version computes without caching", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		source := &fakeSource{entries: []ledger.LedgerEntry{
			{EntryDate: monday, Type: ledger.EntryTypeWage, Amount: decimal.NewFromInt(400)},
		}}
		svc := costrollup.NewService(source, rdb)

		redisMock.ExpectGet(versionKey).SetErr(errors.New("connection refused"))

		got, err := svc.WeeklyCost(ctx, projectID)

		assert.NoError(t, err)
		assert.Equal(t, expected, got)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("ledger error surfaces", func(t *testing.T) {
		source := mock_costrollup.NewMockEntrySource(gomock.NewController(t))
		source.EXPECT().FindCostEntries(gomock.Any(), projectID).Return(nil, errors.New("timeout"))
		svc := costrollup.NewService(source, nil)

		_, err := svc.WeeklyCost(ctx, projectID)

		assert.EqualError(t, err, "timeout")
	})
}

func TestCostRollupService_LedgerChangedBumpsVersion(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	svc := costrollup.NewService(&fakeSource{}, rdb)
	projectID := uuid.NewString()

	redisMock.ExpectIncr(costrollup.GetWeeklyCostVersionKey(projectID)).SetVal(1)

	svc.LedgerChanged(context.Background(), projectID)

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCostRollupService_WriteDuringComputeIsNotServedStale(t *testing.T) {
	ctx := context.Background()
	rdb, redisMock := redismock.NewClientMock()
	projectID := uuid.NewString()
	versionKey := costrollup.GetWeeklyCostVersionKey(projectID)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	before := []ledger.LedgerEntry{{EntryDate: monday, Type: ledger.EntryTypeWage, Amount: decimal.NewFromInt(400)}}
	after := append(before, ledger.LedgerEntry{EntryDate: monday, Type: ledger.EntryTypeMaterial, Amount: decimal.NewFromInt(100)})

	source := &fakeSource{entries: before}
	svc := costrollup.NewService(source, rdb)
	source.onFind = func() {
		// a wage approval commits right after the rollup read the ledger
		source.onFind = nil
		source.entries = after
		svc.LedgerChanged(ctx, projectID)
	}

	staleData, _ := json.Marshal([]costrollup.WeeklyCost{
		{WeekStart: "2026-03-02", ISOWeek: "2026-W10", TotalCost: decimal.NewFromInt(400)},
	})
	freshData, _ := json.Marshal([]costrollup.WeeklyCost{
		{WeekStart: "2026-03-02", ISOWeek: "2026-W10", TotalCost: decimal.NewFromInt(500)},
	})

	redisMock.ExpectGet(versionKey).RedisNil()
	redisMock.ExpectGet(costrollup.GetWeeklyCostKey(projectID, 0)).RedisNil()
	redisMock.ExpectIncr(versionKey).SetVal(1)
	redisMock.ExpectSet(costrollup.GetWeeklyCostKey(projectID, 0), staleData, 30*time.Minute).SetVal("OK")
	redisMock.ExpectGet(versionKey).SetVal("1")
	redisMock.ExpectGet(costrollup.GetWeeklyCostKey(projectID, 1)).RedisNil()
	redisMock.ExpectSet(costrollup.GetWeeklyCostKey(projectID, 1), freshData, 30*time.Minute).SetVal("OK")

	_, err := svc.WeeklyCost(ctx, projectID)
	assert.NoError(t, err)

	got, err := svc.WeeklyCost(ctx, projectID)

	assert.NoError(t, err)
	assert.Equal(t, "500", got[0].TotalCost.String())
	assert.Equal(t, 2, source.calls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

var _ ledger.ChangeNotifier = costrollup.NewService(nil, nil)
