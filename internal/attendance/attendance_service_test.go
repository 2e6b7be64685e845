package attendance_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/attendance"
	attendanceerrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/attendance/errors"
	mock_attendance "github.com/rayyanshaikh123/bharatbuild-sub004/internal/attendance/mock"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *mock_attendance.MockRepository
	service attendance.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := mock_attendance.NewMockRepository(ctrl)
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		service: attendance.NewService(db, repo),
	}
}

func TestAttendanceService_Record(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{UserID: "engineer-7", Role: domain.RoleEngineer}
	projectID := uuid.New().String()
	labourID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *attendance.AttendanceRecord) error {
				assert.Equal(t, projectID, a.ProjectID.String())
				assert.Equal(t, labourID, a.LabourID.String())
				assert.Equal(t, "2026-03-02", a.WorkDate.Format("2006-01-02"))
				assert.True(t, decimal.NewFromInt(8).Equal(a.WorkedHours))
				assert.Equal(t, "engineer-7", a.CreatedBy)
				return nil
			})

		resp, err := deps.service.Record(ctx, actor, attendance.RecordAttendanceRequest{
			ProjectID:   projectID,
			LabourID:    labourID,
			WorkDate:    "2026-03-02",
			WorkedHours: decimal.NewFromInt(8),
			WageType:    attendance.WageTypeHourly,
		})

		assert.NoError(t, err)
		assert.Equal(t, attendance.WageTypeHourly, resp.WageType)
		assert.Equal(t, "2026-03-02", resp.WorkDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid date", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Record(ctx, actor, attendance.RecordAttendanceRequest{
			ProjectID: projectID, LabourID: labourID, WorkDate: "02/03/2026", WageType: attendance.WageTypeDaily,
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateFormat)
	})

	t.Run("hours out of range", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Record(ctx, actor, attendance.RecordAttendanceRequest{
			ProjectID: projectID, LabourID: labourID, WorkDate: "2026-03-02",
			WorkedHours: decimal.NewFromInt(25), WageType: attendance.WageTypeHourly,
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidWorkedHours)
	})

	t.Run("persist error rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := deps.service.Record(ctx, actor, attendance.RecordAttendanceRequest{
			ProjectID: projectID, LabourID: labourID, WorkDate: "2026-03-02",
			WorkedHours: decimal.NewFromInt(8), WageType: attendance.WageTypeHourly,
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAttendanceService_GetAll(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New().String()

	deps := setupServiceTest(t)
	deps.repo.EXPECT().
		FindAllByProject(ctx, projectID).
		Return([]attendance.AttendanceRecord{
			{ID: uuid.New(), ProjectID: uuid.MustParse(projectID), LabourID: uuid.New(), WageType: attendance.WageTypeDaily},
		}, nil)

	resp, err := deps.service.GetAll(ctx, projectID)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, projectID, resp[0].ProjectID)
}
