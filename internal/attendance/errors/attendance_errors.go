package attendanceerrors

import (
	"net/http"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid work_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidWorkedHours = apperror.New(
		apperror.CodeInvalidInput,
		"worked_hours must be between 0 and 24",
		http.StatusBadRequest,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
)
