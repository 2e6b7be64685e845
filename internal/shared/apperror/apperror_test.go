package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.New(apperror.CodeAlreadyProcessed, "attendance already processed", http.StatusConflict)

		httpErr := apperror.ToHTTP(fmt.Errorf("generate: %w", err))

		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, apperror.CodeAlreadyProcessed, httpErr.Code)
		assert.Equal(t, "attendance already processed", httpErr.Message)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection reset"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "pq")
	})
}

func TestAppError_WrapAndIs(t *testing.T) {
	cause := errors.New("duplicate key value")
	wrapped := apperror.Wrap(cause, apperror.CodeNotFound, "Resource not found", http.StatusNotFound)

	assert.True(t, errors.Is(wrapped, apperror.ErrNotFound))
	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, "Resource not found: duplicate key value", wrapped.Error())
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeNotFound, "x", http.StatusNotFound))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		Attendance string `validate:"required"`
		Status     string `validate:"oneof=APPROVED REJECTED"`
	}
	v := validator.New()

	err := apperror.MapValidationError(v.Struct(payload{Status: "APPROVED"}))
	assert.Equal(t, "Attendance is required", err.Error())

	err = apperror.MapValidationError(v.Struct(payload{Attendance: "x", Status: "PAID"}))
	assert.Equal(t, "Status must be one of [APPROVED REJECTED]", err.Error())

	err = apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, "Invalid input", err.Error())
}
