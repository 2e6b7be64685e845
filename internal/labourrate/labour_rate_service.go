package labourrate

import (
	"context"
	"database/sql"
	"time"

	labourrateerrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/labourrate/errors"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=labour_rate_service.go -destination=mock/labour_rate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLabourRateRequest) (LabourRateResponse, error)
	GetAll(ctx context.Context, projectID string) ([]LabourRateResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("labourrate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("labourrate.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLabourRateRequest) (LabourRateResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	effectiveDate, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return LabourRateResponse{}, labourrateerrors.ErrInvalidEffectiveDate
	}
	if !req.Rate.IsPositive() {
		return LabourRateResponse{}, labourrateerrors.ErrInvalidRate
	}

	rate := &LabourRate{
		ID:            uuid.New(),
		ProjectID:     uuid.MustParse(req.ProjectID),
		LabourID:      uuid.MustParse(req.LabourID),
		WageType:      req.WageType,
		Rate:          req.Rate.Round(2),
		EffectiveDate: effectiveDate.UTC(),
		CreatedAt:     time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LabourRateResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, rate); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			log.Error("create labour rate failed", zap.Error(err))
		}
		return LabourRateResponse{}, mapped
	}
	if err := tx.Commit(); err != nil {
		return LabourRateResponse{}, err
	}

	log.Info("labour rate configured",
		zap.String("project_id", req.ProjectID),
		zap.String("labour_id", req.LabourID),
		zap.String("wage_type", req.WageType),
		zap.String("rate", rate.Rate.StringFixed(2)),
	)
	return mapToResponse(*rate), nil
}

func (s *service) GetAll(ctx context.Context, projectID string) ([]LabourRateResponse, error) {
	rows, err := s.repo.FindAllByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	res := make([]LabourRateResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func mapToResponse(r LabourRate) LabourRateResponse {
	return LabourRateResponse{
		ID:            r.ID.String(),
		ProjectID:     r.ProjectID.String(),
		LabourID:      r.LabourID.String(),
		WageType:      r.WageType,
		Rate:          r.Rate,
		EffectiveDate: r.EffectiveDate.Format(dateLayout),
	}
}
