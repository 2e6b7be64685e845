package ledger

import (
	"context"
	"database/sql"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/project"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/database"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntryFilter narrows the displayed rows of a ledger query. Zero values mean
// no restriction.
type EntryFilter struct {
	From *time.Time
	To   *time.Time
	Type string
}

// Position identifies an entry in the (entry_date, id) order of a project.
type Position struct {
	Date time.Time
	ID   int64
}

//go:generate mockgen -source=ledger_repo.go -destination=mock/ledger_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *LedgerEntry) error
	CreateAdjustment(ctx context.Context, a *LedgerAdjustment) error
	FindPage(ctx context.Context, projectID string, filter EntryFilter, offset, limit int) ([]LedgerEntry, error)
	Count(ctx context.Context, projectID string, filter EntryFilter) (int64, error)
	// SumBefore totals every entry of the project strictly before pos,
	// regardless of type.
	SumBefore(ctx context.Context, projectID string, pos Position) (decimal.Decimal, error)
	// FindSpan returns every entry of the project from first to last inclusive,
	// regardless of type.
	FindSpan(ctx context.Context, projectID string, first, last Position) ([]LedgerEntry, error)
	FindCostEntries(ctx context.Context, projectID string) ([]LedgerEntry, error)
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

func (r *repository) Create(ctx context.Context, e *LedgerEntry) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) CreateAdjustment(ctx context.Context, a *LedgerAdjustment) error {
	return r.conn(ctx).Create(a).Error
}

func filtered(projectID string, filter EntryFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Scopes(project.Scope(projectID))
		if filter.From != nil {
			db = db.Where("entry_date >= ?", *filter.From)
		}
		if filter.To != nil {
			db = db.Where("entry_date <= ?", *filter.To)
		}
		if filter.Type != "" {
			db = db.Where("type = ?", filter.Type)
		}
		return db
	}
}

func (r *repository) FindPage(ctx context.Context, projectID string, filter EntryFilter, offset, limit int) ([]LedgerEntry, error) {
	var rows []LedgerEntry
	err := r.conn(ctx).
		Scopes(filtered(projectID, filter)).
		Order("entry_date ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) Count(ctx context.Context, projectID string, filter EntryFilter) (int64, error) {
	var total int64
	err := r.conn(ctx).
		Model(&LedgerEntry{}).
		Scopes(filtered(projectID, filter)).
		Count(&total).Error
	return total, err
}

func (r *repository) SumBefore(ctx context.Context, projectID string, pos Position) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.conn(ctx).
		Model(&LedgerEntry{}).
		Scopes(project.Scope(projectID)).
		Where("(entry_date < ? OR (entry_date = ? AND id < ?))", pos.Date, pos.Date, pos.ID).
		Select("SUM(amount)").
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal.Round(2), nil
}

func (r *repository) FindSpan(ctx context.Context, projectID string, first, last Position) ([]LedgerEntry, error) {
	var rows []LedgerEntry
	err := r.conn(ctx).
		Scopes(project.Scope(projectID)).
		Where("(entry_date > ? OR (entry_date = ? AND id >= ?))", first.Date, first.Date, first.ID).
		Where("(entry_date < ? OR (entry_date = ? AND id <= ?))", last.Date, last.Date, last.ID).
		Order("entry_date ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindCostEntries(ctx context.Context, projectID string) ([]LedgerEntry, error) {
	var rows []LedgerEntry
	err := r.conn(ctx).
		Scopes(project.Scope(projectID)).
		Where("type IN ?", []string{EntryTypeWage, EntryTypeMaterial}).
		Order("entry_date ASC, id ASC").
		Find(&rows).Error
	return rows, err
}
