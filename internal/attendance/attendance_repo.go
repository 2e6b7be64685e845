package attendance

import (
	"context"
	"database/sql"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/project"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/database"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *AttendanceRecord) error
	FindByID(ctx context.Context, id string) (*AttendanceRecord, error)
	FindAllByProject(ctx context.Context, projectID string) ([]AttendanceRecord, error)
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

func (r *repository) Create(ctx context.Context, a *AttendanceRecord) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*AttendanceRecord, error) {
	var a AttendanceRecord
	err := r.conn(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindAllByProject(ctx context.Context, projectID string) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.conn(ctx).
		Scopes(project.Scope(projectID)).
		Order("work_date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}
