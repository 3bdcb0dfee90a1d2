package service

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/koladefi/financial-operations/internal/domain"
	"github.com/koladefi/financial-operations/internal/models"
	"github.com/koladefi/financial-operations/internal/repository"
)

// setupTestDB connects to the local Postgres instance, ensures the schema
// exists, and wipes ledger data between tests.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: DATABASE_URL not set")
	}
	db, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	t.Cleanup(db.Close)

	ensureSchema(t, db)

	if _, err := db.Exec(context.Background(), "TRUNCATE TABLE transactions, accounts CASCADE"); err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}

	return db
}

func ensureSchema(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	sql := `
		CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY,
			customer_id UUID NOT NULL,
			account_number TEXT NOT NULL UNIQUE,
			account_type TEXT NOT NULL,
			balance DECIMAL(19, 4) NOT NULL,
			currency TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY,
			account_id UUID NOT NULL REFERENCES accounts(id),
			destination_account_id UUID REFERENCES accounts(id),
			transaction_type TEXT NOT NULL,
			amount DECIMAL(19, 4) NOT NULL,
			reference TEXT NOT NULL UNIQUE,
			description TEXT,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`
	if _, err := db.Exec(context.Background(), sql); err != nil {
		t.Fatalf("failed to ensure schema: %v", err)
	}
}

// createTestAccount seeds an account with the given balance and status.
func createTestAccount(t *testing.T, repo *repository.Repository, db *pgxpool.Pool, currency, balance, status string) *models.Account {
	t.Helper()

	acct := &models.Account{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		AccountNumber: "ACC-test-" + uuid.NewString(),
		AccountType:   domain.AccountTypeChecking,
		Balance:       decimal.RequireFromString(balance),
		Currency:      currency,
		Status:        status,
	}
	if err := repo.CreateAccount(context.Background(), db, acct); err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return acct
}

func accountBalance(t *testing.T, db *pgxpool.Pool, id uuid.UUID) string {
	t.Helper()

	var balance string
	if err := db.QueryRow(context.Background(), "SELECT balance::text FROM accounts WHERE id = $1", id).Scan(&balance); err != nil {
		t.Fatalf("failed to read balance: %v", err)
	}
	return balance
}
