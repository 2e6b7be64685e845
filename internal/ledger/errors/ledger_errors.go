package ledgererrors

import (
	"net/http"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidDateRange,
		"start_date must be on or before end_date, both formatted YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPage = apperror.New(
		apperror.CodeInvalidPage,
		"page must be at least 1 and limit between 1 and 500",
		http.StatusBadRequest,
	)
	ErrInvalidEntryType = apperror.New(
		apperror.CodeInvalidInput,
		"type must be one of MATERIAL, WAGE, ADJUSTMENT",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must not be zero",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"project id must be a UUID",
		http.StatusBadRequest,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"material_request_id is required and at most 64 characters",
		http.StatusBadRequest,
	)
	// ErrStorageConflict is returned when an event has already been
	// materialized for the same project, type and reference.
	ErrStorageConflict = apperror.New(
		apperror.CodeStorageConflict,
		"ledger entry already recorded for this reference",
		http.StatusConflict,
	)
)
