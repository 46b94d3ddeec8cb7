package paysliperrors

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
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year is out of range",
		http.StatusBadRequest,
	)
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip document not generated yet",
		http.StatusNotFound,
	)
)
