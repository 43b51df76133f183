package employee

import (
	"errors"
	"net/http"
	"strings"

	employeeerrors "go-staffhub/internal/employee/errors"
	"go-staffhub/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapPersistError translates store constraint violations into the public
// taxonomy so raw database errors never leak to the client.
func mapPersistError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrRelatedRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return employeeerrors.ErrDuplicateEntry
		case "23503":
			return employeeerrors.ErrInvalidReferenceData
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return employeeerrors.ErrDuplicateEntry
	}
	if strings.Contains(errMsg, "violates foreign key constraint") {
		return employeeerrors.ErrInvalidReferenceData
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "Failed to add employee", http.StatusInternalServerError)
}
