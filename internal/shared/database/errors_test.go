package database_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/database"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_wage_records_attendance"}

	assert.True(t, database.IsUniqueViolation(fmt.Errorf("insert: %w", pgErr), "uq_wage_records_attendance"))
	assert.True(t, database.IsUniqueViolation(pgErr, ""))
	assert.False(t, database.IsUniqueViolation(pgErr, "uq_ledger_entries_reference"))
	assert.False(t, database.IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))

	assert.True(t, database.IsUniqueViolation(gorm.ErrDuplicatedKey, "uq_wage_records_attendance"))
	assert.True(t, database.IsUniqueViolation(errors.New("UNIQUE constraint failed: wage_records.attendance_id"), ""))
	assert.True(t, database.IsUniqueViolation(
		errors.New(`ERROR: duplicate key value violates unique constraint "uq_ledger_entries_reference"`),
		"uq_ledger_entries_reference",
	))
	assert.False(t, database.IsUniqueViolation(errors.New("connection refused"), ""))
	assert.False(t, database.IsUniqueViolation(nil, ""))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, database.IsNotFound(fmt.Errorf("find: %w", gorm.ErrRecordNotFound)))
	assert.False(t, database.IsNotFound(errors.New("boom")))
}
