package models

import "fmt"

// Error codes used in API responses and internal error handling.
const (
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeNumberConversion = "NUMBER_CONVERSION_FAILED"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// ErrorDetail is the structured error in API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CalcError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type CalcError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *CalcError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CalcError) Unwrap() error {
	return e.Err
}

// NewCalcError creates a new CalcError.
func NewCalcError(code, message string, err error) *CalcError {
	return &CalcError{Code: code, Message: message, Err: err}
}

// ToDetail converts an internal error to an API-facing ErrorDetail.
func (e *CalcError) ToDetail() *ErrorDetail {
	return &ErrorDetail{Code: e.Code, Message: e.Message}
}
