package ledger

import (
	ledgererrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger/errors"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/database"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if database.IsUniqueViolation(err, uniqueReferenceConstraint) {
		return ledgererrors.ErrStorageConflict
	}
	return err
}
