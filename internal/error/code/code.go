package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: not authenticated.
	StatusUnauthorized = 401
	// StatusForbidden - 403: not allowed.
	StatusForbidden = 403
	// StatusNotFound - 404: resource missing.
	StatusNotFound = 404
	// StatusConflict - 409: state conflict.
	StatusConflict = 409
	// StatusTooManyRequests - 429: rate limited.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal error.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: dependency down.
	StatusServiceUnavailable = 503
	// StatusGatewayTimeout - 504: dependency too slow.
	StatusGatewayTimeout = 504
)

// General error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body could not be bound.
	ErrBind
	// ErrValidation - 400: request failed validation.
	ErrValidation
	// ErrTokenInvalid - 401: missing, invalid, or revoked token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: rate limited.
	ErrTooManyRequests
	// ErrForbidden - 403: role lacks the capability.
	ErrForbidden
	// ErrConflict - 409: request conflicts with stored state.
	ErrConflict
)

// Account error codes (101xxx).
const (
	// ErrUserNotFound - 404: user does not exist.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409: email already registered.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: wrong email or password.
	ErrUserPasswordIncorrect
	// ErrUserPending - 403: account awaits approval.
	ErrUserPending
)

// Relief ledger error codes (103xxx).
const (
	// ErrHouseholdNotFound - 404: household does not exist.
	ErrHouseholdNotFound int = iota + 103000
	// ErrAidRecordNotFound - 404: aid record does not exist.
	ErrAidRecordNotFound
)

// Storage error codes (105xxx).
const (
	// ErrDatabase - 503: storage unavailable.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
	// ErrDatabaseTimeout - 504: storage did not answer in time.
	ErrDatabaseTimeout
)
