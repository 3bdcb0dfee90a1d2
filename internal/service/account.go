package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/koladefi/financial-operations/internal/domain"
	"github.com/koladefi/financial-operations/internal/models"
	"github.com/koladefi/financial-operations/internal/repository"
)

const (
	defaultTransactionLimit = 20
	maxTransactionLimit     = 100
)

// AccountService owns account identity and lifecycle. Accounts are created
// active and never deleted, only moved to closed.
type AccountService struct {
	repo *repository.Repository
}

func NewAccountService(repo *repository.Repository) *AccountService {
	return &AccountService{repo: repo}
}

// CreateAccount opens a new active account with balance equal to the
// initial deposit (zero when absent).
func (s *AccountService) CreateAccount(ctx context.Context, customerID uuid.UUID, accountType, currency string, initialDeposit decimal.Decimal) (*models.Account, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("%w: customer_id is required", models.ErrInvalidTransaction)
	}
	if _, err := domain.ParseAccountType(accountType); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidTransaction, err)
	}
	if _, err := domain.ParseCurrency(currency); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidTransaction, err)
	}
	if initialDeposit.IsNegative() {
		return nil, fmt.Errorf("%w: initial deposit cannot be negative", models.ErrInvalidTransaction)
	}

	acct := &models.Account{
		ID:            uuid.New(),
		CustomerID:    customerID,
		AccountNumber: newAccountNumber(),
		AccountType:   accountType,
		Balance:       initialDeposit,
		Currency:      currency,
		Status:        domain.AccountStatusActive,
	}
	if err := s.repo.CreateAccount(ctx, s.repo.Pool(), acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// GetAccount fetches an account by id.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	acct, err := s.repo.GetAccount(ctx, s.repo.Pool(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", models.ErrAccountNotFound, id)
		}
		return nil, err
	}
	return acct, nil
}

// CloseAccount moves an account to the closed status. Closed accounts keep
// their rows and history; nothing is ever deleted.
func (s *AccountService) CloseAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.UpdateAccountStatus(ctx, s.repo.Pool(), id, domain.AccountStatusClosed); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return fmt.Errorf("%w: %s", models.ErrAccountNotFound, id)
		}
		return err
	}
	return nil
}

// ListTransactions returns an account's transactions, most recent first.
func (s *AccountService) ListTransactions(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit < 1 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}

	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.repo.ListTransactions(ctx, s.repo.Pool(), accountID, limit)
}

func newAccountNumber() string {
	return "ACC-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
