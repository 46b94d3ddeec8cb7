package apperror

import "fmt"

// AppError is the error currency of the service layer. Handlers never build
// status codes themselves; they surface whatever AppError the service chose,
// and anything that is not an AppError collapses to a generic 500.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy carrying extra client-facing context, leaving
// the shared sentinel untouched.
func (e *AppError) WithDetails(details any) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap keeps the original error reachable through errors.Is/As while the
// client sees only code and message.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
