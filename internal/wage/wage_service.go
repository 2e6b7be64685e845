package wage

import (
	"context"
	"database/sql"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/attendance"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/domain"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/events"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/labourrate"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/messaging/kafka"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/apperror"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/contextutil"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/database"
	wageerrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/wage/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// LedgerRecorder materializes an approved wage inside the caller's transaction.
type LedgerRecorder interface {
	RecordWageApproval(ctx context.Context, tx *sql.Tx, w ledger.WageApproval) (ledger.LedgerEntryResponse, error)
}

//go:generate mockgen -source=wage_service.go -destination=mock/wage_service_mock.go -package=mock
type Service interface {
	ListUnprocessed(ctx context.Context, projectID string) ([]attendance.AttendanceResponse, error)
	Generate(ctx context.Context, actor domain.Actor, req GenerateWagesRequest) (GenerateWagesResponse, error)
	Review(ctx context.Context, actor domain.Actor, wageID string, req ReviewWageRequest) (ReviewWageResponse, error)
	GetHistory(ctx context.Context, filter WageHistoryFilter) ([]WageResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	attendance attendance.Repository
	rates      labourrate.Repository
	ledger     LedgerRecorder
	outbox     kafka.OutboxRepository
	notifier   ledger.ChangeNotifier
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	attendanceRepo attendance.Repository,
	rateRepo labourrate.Repository,
	ledgerRecorder LedgerRecorder,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, attendanceRepo, rateRepo, ledgerRecorder, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	attendanceRepo attendance.Repository,
	rateRepo labourrate.Repository,
	ledgerRecorder LedgerRecorder,
	outboxRepo kafka.OutboxRepository,
	notifier ledger.ChangeNotifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("wage.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wage.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		attendance: attendanceRepo,
		rates:      rateRepo,
		ledger:     ledgerRecorder,
		outbox:     outboxRepo,
		notifier:   notifier,
		logger:     l,
		now:        time.Now,
	}
}

func (s *service) ListUnprocessed(ctx context.Context, projectID string) ([]attendance.AttendanceResponse, error) {
	rows, err := s.repo.FindUnprocessedAttendance(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return attendance.MapToListResponse(rows), nil
}

// Generate prices each attendance in its own transaction so one failure never
// takes its siblings down with it.
func (s *service) Generate(ctx context.Context, actor domain.Actor, req GenerateWagesRequest) (GenerateWagesResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	resp := GenerateWagesResponse{
		Wages:  make([]WageResponse, 0, len(req.WageData)),
		Failed: []GenerateFailure{},
	}
	for _, item := range req.WageData {
		if err := ctx.Err(); err != nil {
			return resp, err
		}

		w, err := s.generateOne(ctx, actor, item.AttendanceID)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			if httpErr.Status >= 500 {
				log.Error("generate wage failed",
					zap.String("attendance_id", item.AttendanceID),
					zap.Error(err),
				)
			}
			resp.Failed = append(resp.Failed, GenerateFailure{
				AttendanceID: item.AttendanceID,
				Code:         httpErr.Code,
				Message:      httpErr.Message,
			})
			continue
		}
		resp.Wages = append(resp.Wages, mapToResponse(*w))
	}

	log.Info("wage generation finished",
		zap.Int("requested", len(req.WageData)),
		zap.Int("created", len(resp.Wages)),
		zap.Int("failed", len(resp.Failed)),
	)
	return resp, nil
}

func (s *service) generateOne(ctx context.Context, actor domain.Actor, attendanceID string) (*WageRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	att, err := s.attendance.WithTx(tx).FindByID(ctx, attendanceID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, wageerrors.ErrAttendanceNotFound
		}
		return nil, err
	}

	qtx := s.repo.WithTx(tx)
	exists, err := qtx.ExistsByAttendanceID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, wageerrors.ErrAlreadyProcessed
	}

	if att.WageType != attendance.WageTypeHourly && att.WageType != attendance.WageTypeDaily {
		return nil, wageerrors.ErrInvalidWageType
	}

	rate, err := s.rates.WithTx(tx).FindEffective(ctx, att.ProjectID.String(), att.LabourID.String(), att.WageType, att.WorkDate)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, wageerrors.ErrRateNotConfigured
		}
		return nil, err
	}

	total, err := ComputeTotal(att.WageType, rate.Rate, att.WorkedHours)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	w := &WageRecord{
		ID:           uuid.New(),
		AttendanceID: att.ID,
		LabourID:     att.LabourID,
		ProjectID:    att.ProjectID,
		WorkDate:     att.WorkDate,
		WageType:     att.WageType,
		Rate:         rate.Rate,
		WorkedHours:  att.WorkedHours,
		TotalAmount:  total,
		Status:       StatusPending,
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := qtx.Create(ctx, w); err != nil {
		return nil, mapCreateError(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, mapCreateError(err)
	}
	return w, nil
}

// Review applies a terminal decision to a pending claim. Approval writes the
// ledger entry in the same transaction as the status change.
func (s *service) Review(ctx context.Context, actor domain.Actor, wageID string, req ReviewWageRequest) (ReviewWageResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.Status != StatusApproved && req.Status != StatusRejected {
		return ReviewWageResponse{}, wageerrors.ErrInvalidDecision
	}
	if _, err := uuid.Parse(wageID); err != nil {
		return ReviewWageResponse{}, wageerrors.ErrWageNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReviewWageResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	w, err := qtx.FindByID(ctx, wageID)
	if err != nil {
		if database.IsNotFound(err) {
			return ReviewWageResponse{}, wageerrors.ErrWageNotFound
		}
		return ReviewWageResponse{}, err
	}
	if w.Status != StatusPending {
		return ReviewWageResponse{}, wageerrors.ErrInvalidTransition
	}

	reviewedAt := s.now().UTC()
	affected, err := qtx.UpdateStatus(ctx, wageID, StatusPending, req.Status, actor.UserID, reviewedAt)
	if err != nil {
		return ReviewWageResponse{}, err
	}
	if affected == 0 {
		return ReviewWageResponse{}, wageerrors.ErrInvalidTransition
	}
	reviewer := actor.UserID
	w.Status = req.Status
	w.ReviewedBy = &reviewer
	w.ReviewedAt = &reviewedAt
	w.UpdatedAt = reviewedAt

	var entry *ledger.LedgerEntryResponse
	if req.Status == StatusApproved {
		recorded, err := s.ledger.RecordWageApproval(ctx, tx, ledger.WageApproval{
			WageID:     w.ID.String(),
			ProjectID:  w.ProjectID.String(),
			LabourID:   w.LabourID.String(),
			WageType:   w.WageType,
			Amount:     w.TotalAmount,
			ApprovedBy: actor.UserID,
			ApprovedAt: reviewedAt,
		})
		if err != nil {
			log.Warn("wage approval rolled back, ledger write failed",
				zap.String("wage_id", wageID),
				zap.Error(err),
			)
			return ReviewWageResponse{}, err
		}
		entry = &recorded
	}

	if err := s.queueReviewed(ctx, tx, w); err != nil {
		log.Error("queue wage reviewed event failed", zap.String("wage_id", wageID), zap.Error(err))
		return ReviewWageResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ReviewWageResponse{}, err
	}

	if entry != nil && s.notifier != nil {
		s.notifier.LedgerChanged(ctx, w.ProjectID.String())
	}

	log.Info("wage reviewed",
		zap.String("wage_id", wageID),
		zap.String("status", req.Status),
		zap.String("reviewed_by", actor.UserID),
	)
	return ReviewWageResponse{Wage: mapToResponse(*w), LedgerEntry: entry}, nil
}

func (s *service) queueReviewed(ctx context.Context, tx *sql.Tx, w *WageRecord) error {
	if s.outbox == nil {
		return nil
	}
	event := events.WageReviewedEvent{
		EventType:   "wage.reviewed",
		WageID:      w.ID.String(),
		ProjectID:   w.ProjectID.String(),
		LabourID:    w.LabourID.String(),
		Status:      w.Status,
		TotalAmount: w.TotalAmount,
		ReviewedBy:  *w.ReviewedBy,
		OccurredAt:  *w.ReviewedAt,
	}
	msg, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"wage",
		event.WageID,
		event.ProjectID,
		event.EventType,
		events.WageReviewedTopic,
		event,
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, msg)
}

func (s *service) GetHistory(ctx context.Context, filter WageHistoryFilter) ([]WageResponse, error) {
	switch filter.Status {
	case "", StatusPending, StatusApproved, StatusRejected:
	default:
		return nil, wageerrors.ErrInvalidStatusFilter
	}

	rows, err := s.repo.FindAll(ctx, HistoryFilter{ProjectID: filter.ProjectID, Status: filter.Status})
	if err != nil {
		return nil, err
	}
	res := make([]WageResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func mapToResponse(w WageRecord) WageResponse {
	res := WageResponse{
		ID:           w.ID.String(),
		AttendanceID: w.AttendanceID.String(),
		LabourID:     w.LabourID.String(),
		ProjectID:    w.ProjectID.String(),
		WorkDate:     w.WorkDate.Format(dateLayout),
		WageType:     w.WageType,
		Rate:         w.Rate,
		WorkedHours:  w.WorkedHours,
		TotalAmount:  w.TotalAmount,
		Status:       w.Status,
		CreatedBy:    w.CreatedBy,
		ReviewedBy:   w.ReviewedBy,
		CreatedAt:    w.CreatedAt.Format(time.RFC3339),
	}
	if w.ReviewedAt != nil {
		at := w.ReviewedAt.Format(time.RFC3339)
		res.ReviewedAt = &at
	}
	return res
}
