package employee

import (
	"errors"
	"strings"

	employeeerrors "go-salon/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return employeeerrors.ErrEmployeeAlreadyExists
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
