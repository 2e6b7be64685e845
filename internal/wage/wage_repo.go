package wage

import (
	"context"
	"database/sql"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/attendance"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/project"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/database"

	"gorm.io/gorm"
)

type HistoryFilter struct {
	ProjectID string
	Status    string
}

//go:generate mockgen -source=wage_repo.go -destination=mock/wage_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// FindUnprocessedAttendance is the set difference of the project's
	// attendance and the attendance ids already carrying a wage record.
	FindUnprocessedAttendance(ctx context.Context, projectID string) ([]attendance.AttendanceRecord, error)
	ExistsByAttendanceID(ctx context.Context, attendanceID string) (bool, error)
	Create(ctx context.Context, w *WageRecord) error
	FindByID(ctx context.Context, id string) (*WageRecord, error)
	FindAll(ctx context.Context, filter HistoryFilter) ([]WageRecord, error)
	// UpdateStatus moves the record from one status to another and reports
	// how many rows changed. Zero means the record was no longer in from.
	UpdateStatus(ctx context.Context, id, from, to, reviewedBy string, reviewedAt time.Time) (int64, error)
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

func (r *repository) FindUnprocessedAttendance(ctx context.Context, projectID string) ([]attendance.AttendanceRecord, error) {
	var rows []attendance.AttendanceRecord
	err := r.conn(ctx).
		Scopes(project.Scope(projectID)).
		Where("NOT EXISTS (SELECT 1 FROM wage_records w WHERE w.attendance_id = attendance_records.id)").
		Order("work_date ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ExistsByAttendanceID(ctx context.Context, attendanceID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&WageRecord{}).
		Where("attendance_id = ?", attendanceID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, w *WageRecord) error {
	return r.conn(ctx).Create(w).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*WageRecord, error) {
	var w WageRecord
	err := r.conn(ctx).First(&w, "id = ?", id).Error
	return &w, err
}

func (r *repository) FindAll(ctx context.Context, filter HistoryFilter) ([]WageRecord, error) {
	q := r.conn(ctx)
	if filter.ProjectID != "" {
		q = q.Scopes(project.Scope(filter.ProjectID))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var rows []WageRecord
	err := q.Order("created_at ASC, id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, from, to, reviewedBy string, reviewedAt time.Time) (int64, error) {
	res := r.conn(ctx).
		Model(&WageRecord{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":      to,
			"reviewed_by": reviewedBy,
			"reviewed_at": reviewedAt,
			"updated_at":  reviewedAt,
		})
	return res.RowsAffected, res.Error
}
