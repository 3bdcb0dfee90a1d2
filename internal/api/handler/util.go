package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/koladefi/financial-operations/internal/api/problem"
	"github.com/koladefi/financial-operations/internal/models"
)

// RespondJSON writes a JSON response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError writes an error response.
func RespondError(w http.ResponseWriter, r *http.Request, status int, problemType, message string) {
	if problemType != "" && problemType != "about:blank" && !strings.HasPrefix(problemType, "http") {
		problemType = problem.Type(problemType)
	}
	problem.Write(w, r, status, problemType, http.StatusText(status), message)
}

// mapLedgerError translates the core error taxonomy into one distinct
// response category per kind.
func mapLedgerError(err error) (status int, problemType, message string, ok bool) {
	switch {
	case errors.Is(err, models.ErrInvalidTransaction):
		return http.StatusBadRequest, "transaction/invalid", err.Error(), true
	case errors.Is(err, models.ErrAccountNotFound):
		return http.StatusNotFound, "account/not-found", err.Error(), true
	case errors.Is(err, models.ErrAccountNotActive):
		return http.StatusUnprocessableEntity, "account/not-active", err.Error(), true
	case errors.Is(err, models.ErrRateLimited):
		return http.StatusTooManyRequests, "rate-limit-exceeded", err.Error(), true
	case errors.Is(err, models.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "transaction/insufficient-funds", err.Error(), true
	case errors.Is(err, models.ErrInternalInconsistency):
		return http.StatusInternalServerError, "ledger/inconsistency", err.Error(), true
	default:
		return 0, "", "", false
	}
}

func mapDBError(err error) (status int, problemType, message string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return 0, "", "", false
	}

	switch pgErr.Code {
	case "23505": // unique_violation
		return http.StatusConflict, "db/unique-violation", "resource already exists", true
	case "23503": // foreign_key_violation
		return http.StatusBadRequest, "db/foreign-key-violation", "invalid reference", true
	case "23514": // check_violation
		return http.StatusBadRequest, "db/check-violation", "request violates data constraints", true
	case "23502": // not_null_violation
		return http.StatusBadRequest, "db/not-null-violation", "missing required field", true
	default:
		return 0, "", "", false
	}
}
