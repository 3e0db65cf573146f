package code

var codeMessageMap = map[int]string{
	// General
	ErrSuccess:         "success",
	ErrUnknown:         "internal server error",
	ErrBind:            "invalid request body",
	ErrValidation:      "validation failed",
	ErrTokenInvalid:    "invalid or expired token",
	ErrTooManyRequests: "too many requests",
	ErrForbidden:       "insufficient permissions",
	ErrConflict:        "conflict",

	// Accounts
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "email already registered",
	ErrUserPasswordIncorrect: "invalid email or password",
	ErrUserPending:           "account pending approval",

	// Relief ledger
	ErrHouseholdNotFound: "household not found",
	ErrAidRecordNotFound: "aid record not found",

	// Storage
	ErrDatabase:        "storage unavailable",
	ErrRecordNotFound:  "record not found",
	ErrDatabaseTimeout: "storage timeout, please retry",
}

var codeStatusMap = map[int]int{
	// General
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrForbidden:       StatusForbidden,
	ErrConflict:        StatusConflict,

	// Accounts
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusConflict,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrUserPending:           StatusForbidden,

	// Relief ledger
	ErrHouseholdNotFound: StatusNotFound,
	ErrAidRecordNotFound: StatusNotFound,

	// Storage
	ErrDatabase:        StatusServiceUnavailable,
	ErrRecordNotFound:  StatusNotFound,
	ErrDatabaseTimeout: StatusGatewayTimeout,
}

// GetMessage returns the default message of an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "internal server error"
}

// GetStatus returns the HTTP status of an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
