package saleerrors

import (
	"net/http"

	"go-salon/internal/shared/apperror"
)

var (
	ErrSaleNotFound = apperror.New(
		apperror.CodeNotFound,
		"sale not found",
		http.StatusNotFound,
	)
	ErrInvalidSpecialistID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid specialist id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected RFC3339",
		http.StatusBadRequest,
	)
)
