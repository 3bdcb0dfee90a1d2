package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koladefi/financial-operations/internal/models"
)

func TestMapLedgerError(t *testing.T) {
	tests := []struct {
		err         error
		wantStatus  int
		wantProblem string
	}{
		{fmt.Errorf("%w: bad amount", models.ErrInvalidTransaction), http.StatusBadRequest, "transaction/invalid"},
		{fmt.Errorf("%w: abc", models.ErrAccountNotFound), http.StatusNotFound, "account/not-found"},
		{fmt.Errorf("%w: frozen", models.ErrAccountNotActive), http.StatusUnprocessableEntity, "account/not-active"},
		{fmt.Errorf("%w: balance 1.00", models.ErrInsufficientFunds), http.StatusUnprocessableEntity, "transaction/insufficient-funds"},
		{fmt.Errorf("%w: caller alice", models.ErrRateLimited), http.StatusTooManyRequests, "rate-limit-exceeded"},
		{fmt.Errorf("%w: 0 rows", models.ErrInternalInconsistency), http.StatusInternalServerError, "ledger/inconsistency"},
	}

	for _, tc := range tests {
		status, problemType, _, ok := mapLedgerError(tc.err)
		require.True(t, ok, "expected %v to map", tc.err)
		assert.Equal(t, tc.wantStatus, status)
		assert.Equal(t, tc.wantProblem, problemType)
	}

	_, _, _, ok := mapLedgerError(fmt.Errorf("something unrelated"))
	assert.False(t, ok)
}

func TestMapDBError(t *testing.T) {
	status, problemType, _, ok := mapDBError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}))
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "db/unique-violation", problemType)

	_, _, _, ok = mapDBError(fmt.Errorf("plain failure"))
	assert.False(t, ok)
}
