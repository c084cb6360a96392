package apperror

import (
	"fmt"
	"net/http"

	"valvetrace/internal/core/domain"
)

// AppError is a structured error that maps to HTTP responses. The Code field
// is machine-readable and stable; for quota denials it carries the ledger
// reason code verbatim.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Transfer denials (ledger reason codes) ----

var denialMessages = map[string]string{
	domain.ReasonPlantOwnershipFinal:         "Asset is installed at a plant; ownership is final",
	domain.ReasonAssetBurned:                 "Asset is burned; only restore may act on it",
	domain.ReasonManufacturerLimitExceeded:   "Manufacturer transfer limit reached for this asset",
	domain.ReasonDistributorLimitExceeded:    "Distributor transfer limit reached for this asset",
	domain.ReasonGlobalTransferLimitExceeded: "Global transfer limit reached for this asset",
	domain.ReasonNotCurrentOwner:             "Declared owner does not hold this asset",
}

// TransferDenied converts a ledger denial reason code into an AppError.
// The reason code is exposed verbatim as the error code.
func TransferDenied(reasonCode string) *AppError {
	msg, ok := denialMessages[reasonCode]
	if !ok {
		msg = "Transfer denied"
	}
	return New(reasonCode, msg, http.StatusConflict)
}

// ---- Registry & workflow conflicts ----

func ErrDuplicateAsset(serial string) *AppError {
	return New("DUPLICATE_ASSET", fmt.Sprintf("Serial number %s is already tokenized", serial), http.StatusConflict)
}

func ErrAlreadyBurned() *AppError {
	return New("ALREADY_BURNED", "Asset is already burned", http.StatusConflict)
}

func ErrNotBurned() *AppError {
	return New("NOT_BURNED", "Asset is not burned; nothing to restore", http.StatusConflict)
}

func ErrAssetBurned() *AppError {
	return New(domain.ReasonAssetBurned, denialMessages[domain.ReasonAssetBurned], http.StatusConflict)
}

func ErrReturnNotPending() *AppError {
	return New("RETURN_NOT_PENDING", "Return request has already been resolved", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("NOT_FOUND", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Validation ----

// Validation returns a validation error. Rejected before any persistence
// access; no ledger entry is written for these.
func Validation(message string) *AppError {
	return New("VALIDATION_ERROR", message, http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrActorSuspended() *AppError {
	return New("AUTH_004", "Actor account is suspended", http.StatusForbidden)
}

func ErrForbidden() *AppError {
	return New("AUTH_005", "Caller class may not perform this operation", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}
