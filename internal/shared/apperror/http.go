package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the flattened shape handlers hand to the response envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to an HTTPError. Unknown errors collapse to a
// generic 500 so internal details never leak to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		httpErr := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
		if httpErr.Status == 0 {
			httpErr.Status = http.StatusInternalServerError
		}
		return httpErr
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}
