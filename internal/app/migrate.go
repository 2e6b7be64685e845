package app

import (
	"fmt"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/attendance"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/labourrate"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/messaging/kafka"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/wage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table the services own, in dependency order.
func Models() []any {
	return []any{
		&attendance.AttendanceRecord{},
		&labourrate.LabourRate{},
		&wage.WageRecord{},
		&ledger.LedgerEntry{},
		&ledger.LedgerAdjustment{},
		&kafka.OutboxRecord{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	zap.L().Named("app.migrate").Info("schema migrated", zap.Int("tables", len(Models())))
	return nil
}
