package attendance

import (
	"context"
	"database/sql"
	"time"

	attendanceerrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/attendance/errors"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/domain"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

var maxWorkedHours = decimal.NewFromInt(24)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, actor domain.Actor, req RecordAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, projectID string) ([]AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l, now: time.Now}
}

func (s *service) Record(ctx context.Context, actor domain.Actor, req RecordAttendanceRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	workDate, err := time.Parse(dateLayout, req.WorkDate)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}
	if req.WorkedHours.IsNegative() || req.WorkedHours.GreaterThan(maxWorkedHours) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidWorkedHours
	}

	row := &AttendanceRecord{
		ID:          uuid.New(),
		ProjectID:   uuid.MustParse(req.ProjectID),
		LabourID:    uuid.MustParse(req.LabourID),
		WorkDate:    workDate.UTC(),
		WorkedHours: req.WorkedHours,
		WageType:    req.WageType,
		Notes:       req.Notes,
		CreatedBy:   actor.UserID,
		CreatedAt:   s.now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		log.Error("record attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	log.Info("attendance recorded",
		zap.String("attendance_id", row.ID.String()),
		zap.String("project_id", req.ProjectID),
		zap.String("labour_id", req.LabourID),
	)
	return MapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, projectID string) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAllByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return MapToListResponse(rows), nil
}

func MapToResponse(a AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID.String(),
		ProjectID:   a.ProjectID.String(),
		LabourID:    a.LabourID.String(),
		WorkDate:    a.WorkDate.Format(dateLayout),
		WorkedHours: a.WorkedHours,
		WageType:    a.WageType,
		Notes:       a.Notes,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}

func MapToListResponse(rows []AttendanceRecord) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = MapToResponse(r)
	}
	return res
}
