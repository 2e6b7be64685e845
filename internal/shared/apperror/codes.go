package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Payroll and ledger
	CodeAlreadyProcessed  = "ALREADY_PROCESSED"
	CodeInvalidWageType   = "INVALID_WAGE_TYPE"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeInvalidDateRange  = "INVALID_DATE_RANGE"
	CodeInvalidPage       = "INVALID_PAGE"
	CodeStorageConflict   = "STORAGE_CONFLICT"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
