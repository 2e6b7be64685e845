package labourrate

import (
	"context"
	"database/sql"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/project"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/database"

	"gorm.io/gorm"
)

//go:generate mockgen -source=labour_rate_repo.go -destination=mock/labour_rate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *LabourRate) error
	FindAllByProject(ctx context.Context, projectID string) ([]LabourRate, error)
	// FindEffective returns the rate in force on day: the latest row whose
	// effective_date is not after it.
	FindEffective(ctx context.Context, projectID, labourID, wageType string, day time.Time) (*LabourRate, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, rate *LabourRate) error {
	return r.conn(ctx).Create(rate).Error
}

func (r *repository) FindAllByProject(ctx context.Context, projectID string) ([]LabourRate, error) {
	var rows []LabourRate
	err := r.conn(ctx).
		Scopes(project.Scope(projectID)).
		Order("labour_id ASC, wage_type ASC, effective_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindEffective(ctx context.Context, projectID, labourID, wageType string, day time.Time) (*LabourRate, error) {
	var rate LabourRate
	err := r.conn(ctx).
		Scopes(project.Scope(projectID)).
		Where("labour_id = ? AND wage_type = ? AND effective_date <= ?", labourID, wageType, day).
		Order("effective_date DESC").
		First(&rate).Error
	return &rate, err
}
