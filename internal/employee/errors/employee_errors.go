package employeeerrors

import (
	"net/http"

	"go-salon/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidSalonID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid salon id",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryType = apperror.New(
		apperror.CodeInvalidInput,
		"salary_type must be one of MONTHLY, DAILY, HOURLY",
		http.StatusBadRequest,
	)
	ErrInvalidCommissionRate = apperror.New(
		apperror.CodeInvalidInput,
		"commission_rate must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee already exists",
		http.StatusConflict,
	)
)
