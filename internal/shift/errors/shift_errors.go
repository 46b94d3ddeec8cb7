package shifterrors

import (
	"net/http"

	"go-salon/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"shift not found",
		http.StatusNotFound,
	)
	ErrInvalidCashierID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid cashier id",
		http.StatusBadRequest,
	)
	ErrInvalidShiftID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid shift id",
		http.StatusBadRequest,
	)
	ErrShiftAlreadyOpen = apperror.New(
		apperror.CodeConflict,
		"cashier already has an open shift",
		http.StatusConflict,
	)
	ErrShiftAlreadyClosed = apperror.New(
		apperror.CodeInvalidState,
		"shift is already closed",
		http.StatusConflict,
	)
	ErrActualCashRequired = apperror.New(
		apperror.CodeInvalidInput,
		"actual cash count is required to close a shift",
		http.StatusBadRequest,
	)
	ErrDifferenceReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a reason is required when the drawer does not balance",
		http.StatusBadRequest,
	)
)
