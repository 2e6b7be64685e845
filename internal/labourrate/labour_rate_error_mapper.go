package labourrate

import (
	labourrateerrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/labourrate/errors"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/database"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if database.IsUniqueViolation(err, uniqueEffectiveConstraint) {
		return labourrateerrors.ErrRateEffectiveDateAlreadyExists
	}
	return err
}
