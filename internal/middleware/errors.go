package middleware

import (
	"net/http"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/apperror"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New("INVALID_TOKEN", "Invalid or malformed token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New("TOKEN_EXPIRED", "Token has expired", http.StatusUnauthorized)
	ErrMissingClaim  = apperror.New("INVALID_TOKEN", "Required claim missing from token", http.StatusUnauthorized)
	ErrTooManyCalls  = apperror.New("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)
	ErrProcessing    = apperror.New("PROCESSING", "A request with this idempotency key is still being processed", http.StatusConflict)
)
