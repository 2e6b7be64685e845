package labourrateerrors

import (
	"net/http"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/apperror"
)

var (
	ErrRateEffectiveDateAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a rate for this labourer and wage type already starts on that date",
		http.StatusConflict,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid effective_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"rate must be greater than zero",
		http.StatusBadRequest,
	)
)
