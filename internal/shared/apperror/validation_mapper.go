package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns the first validator error into a user-facing
// AppError ("Actual Cash is required" instead of a struct dump).
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]

		fieldName := e.Field()
		humanReadableField := formatFieldName(fieldName)

		details := map[string]string{"field": fieldName, "rule": e.Tag()}

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField).WithDetails(details)
		default:
			return InvalidField(humanReadableField).WithDetails(details)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
