package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/koladefi/financial-operations/internal/domain"
	"github.com/koladefi/financial-operations/internal/models"
)

// ErrNoRows is returned when a keyed lookup matches nothing.
var ErrNoRows = pgx.ErrNoRows

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so every query can run
// either standalone or inside a unit of work.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Pool exposes the underlying pool for callers that manage their own scope.
func (r *Repository) Pool() *pgxpool.Pool {
	return r.db
}

const accountColumns = `id, customer_id, account_number, account_type, balance::text, currency, status, created_at, updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var (
		acct    models.Account
		balance string
	)
	err := row.Scan(&acct.ID, &acct.CustomerID, &acct.AccountNumber, &acct.AccountType,
		&balance, &acct.Currency, &acct.Status, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		return nil, err
	}
	acct.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parse stored balance: %w", err)
	}
	return &acct, nil
}

// CreateAccount inserts a new account row and fills in the timestamps.
func (r *Repository) CreateAccount(ctx context.Context, db DBTX, acct *models.Account) error {
	query := `
		INSERT INTO accounts (id, customer_id, account_number, account_type, balance, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := db.QueryRow(ctx, query,
		acct.ID, acct.CustomerID, acct.AccountNumber, acct.AccountType,
		domain.FormatAmount(acct.Balance), acct.Currency, acct.Status,
	).Scan(&acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccount fetches an account by id without locking it.
func (r *Repository) GetAccount(ctx context.Context, db DBTX, id uuid.UUID) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	acct, err := scanAccount(db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acct, nil
}

// GetAccountForUpdate fetches an account under an exclusive row lock. The
// lock is scoped to the transaction db belongs to and releases on
// commit or rollback.
func (r *Repository) GetAccountForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	acct, err := scanAccount(db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return acct, nil
}

// UpdateAccountBalance writes a recomputed balance and refreshes updated_at.
// The caller must hold the account's row lock.
func (r *Repository) UpdateAccountBalance(ctx context.Context, db DBTX, id uuid.UUID, balance decimal.Decimal) error {
	tag, err := db.Exec(ctx,
		`UPDATE accounts SET balance = $1, updated_at = NOW() WHERE id = $2`,
		domain.FormatAmount(balance), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("%w: balance update affected %d rows for account %s",
			models.ErrInternalInconsistency, tag.RowsAffected(), id)
	}
	return nil
}

// UpdateAccountStatus moves an account to a new lifecycle status.
func (r *Repository) UpdateAccountStatus(ctx context.Context, db DBTX, id uuid.UUID, status string) error {
	tag, err := db.Exec(ctx,
		`UPDATE accounts SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return ErrNoRows
	}
	return nil
}

const transactionColumns = `id, account_id, destination_account_id, transaction_type, amount::text, reference, description, status, created_at, updated_at`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var (
		txn    models.Transaction
		amount string
	)
	err := row.Scan(&txn.ID, &txn.AccountID, &txn.DestinationAccountID, &txn.TransactionType,
		&amount, &txn.Reference, &txn.Description, &txn.Status, &txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		return nil, err
	}
	txn.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse stored amount: %w", err)
	}
	return &txn, nil
}

// InsertTransaction appends a transaction record and fills in the timestamps.
func (r *Repository) InsertTransaction(ctx context.Context, db DBTX, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, account_id, destination_account_id, transaction_type, amount, reference, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := db.QueryRow(ctx, query,
		txn.ID, txn.AccountID, txn.DestinationAccountID, txn.TransactionType,
		domain.FormatAmount(txn.Amount), txn.Reference, txn.Description, txn.Status,
	).Scan(&txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction fetches a transaction by id.
func (r *Repository) GetTransaction(ctx context.Context, db DBTX, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	txn, err := scanTransaction(db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions returns transactions touching an account as the source,
// most recent first.
func (r *Repository) ListTransactions(ctx context.Context, db DBTX, accountID uuid.UUID, limit int) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := db.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txns, nil
}
