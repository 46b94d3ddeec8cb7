package bonuserrors

import (
	"net/http"

	"go-salon/internal/shared/apperror"
)

var (
	ErrBonusNotFound = apperror.New(
		apperror.CodeNotFound,
		"bonus not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrMissingAmount = apperror.New(
		apperror.CodeInvalidInput,
		"bonus amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrMissingReason = apperror.New(
		apperror.CodeInvalidInput,
		"bonus reason is required",
		http.StatusBadRequest,
	)
)
