package utils

import (
	"errors"
	"net/http"

	"github.com/jackc/pgconn"
)

/*
   Sentinel errors for tenancy domain logic.
   The controller can do: if errors.Is(err, ErrXYZ) { ... }
*/
var (
	ErrUnitOccupied = errors.New("unit_occupied")

	// For concurrency conflicts
	ErrRowVersionConflict = errors.New("row_version_conflict")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else if errors.Is(err, ErrRowVersionConflict) {
		RespondErrorWithCode(w, http.StatusConflict, ErrCodeRowVersionConflict, "The record was modified concurrently, please retry", nil, err)
	} else {
		// Fallback for unexpected error types
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}

// Postgres error codes worth distinguishing at the boundary.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// WrapPgError converts store-level constraint failures into AppErrors so the
// boundary can answer 400/409 instead of 500. Other errors pass through.
func WrapPgError(err error, publicMessage string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation, pgCheckViolation:
		return &AppError{StatusCode: http.StatusBadRequest, Code: ErrCodeConstraintViolation, Message: publicMessage, Err: err}
	case pgUniqueViolation:
		return &AppError{StatusCode: http.StatusConflict, Code: ErrCodeConstraintViolation, Message: publicMessage, Err: err}
	}
	return err
}
