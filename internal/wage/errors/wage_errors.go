package wageerrors

import (
	"net/http"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/apperror"
)

var (
	ErrAlreadyProcessed = apperror.New(
		apperror.CodeAlreadyProcessed,
		"attendance record already has a wage claim",
		http.StatusConflict,
	)
	ErrInvalidWageType = apperror.New(
		apperror.CodeInvalidWageType,
		"wage type must be HOURLY or DAILY",
		http.StatusBadRequest,
	)
	ErrRateNotConfigured = apperror.New(
		apperror.CodeInvalidState,
		"no labour rate configured for this labourer, wage type and date",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidTransition,
		"wage claim is not pending",
		http.StatusConflict,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of APPROVED, REJECTED",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of PENDING, APPROVED, REJECTED",
		http.StatusBadRequest,
	)
	ErrWageNotFound = apperror.New(
		apperror.CodeNotFound,
		"wage claim not found",
		http.StatusNotFound,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
)
