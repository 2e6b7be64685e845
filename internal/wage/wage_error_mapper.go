package wage

import (
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/database"
	wageerrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/wage/errors"
)

// mapCreateError turns a lost race on attendance_id into AlreadyProcessed.
func mapCreateError(err error) error {
	if err == nil {
		return nil
	}
	if database.IsUniqueViolation(err, uniqueAttendanceConstraint) {
		return wageerrors.ErrAlreadyProcessed
	}
	return err
}
