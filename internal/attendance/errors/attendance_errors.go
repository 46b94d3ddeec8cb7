package attendanceerrors

import (
	"net/http"

	"go-salon/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrDuplicateAttendance = apperror.New(
		apperror.CodeConflict,
		"attendance already recorded for this employee and date",
		http.StatusConflict,
	)
)
