package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/koladefi/financial-operations/internal/domain"
	"github.com/koladefi/financial-operations/internal/models"
	"github.com/koladefi/financial-operations/internal/observability"
	"github.com/koladefi/financial-operations/internal/repository"
)

// LedgerService atomically validates and applies transactions. It holds at
// most the row locks its own request needs, from acquisition through commit,
// and never caches balances across requests: the store is the single source
// of truth.
type LedgerService struct {
	repo  *repository.Repository
	store *repository.Store
}

func NewLedgerService(repo *repository.Repository, store *repository.Store) *LedgerService {
	return &LedgerService{repo: repo, store: store}
}

// Apply executes one transaction against the ledger.
//
// Accounts are locked in ascending id order regardless of which side
// initiated the request. Two concurrent transfers over the same pair in
// opposite directions therefore acquire locks in the same order, so no
// cycle of waiters can form. Balances are re-read under lock; a pre-lock
// snapshot is never trusted. The balance updates and the transaction record
// land in one commit or not at all.
//
// Apply does not deduplicate resubmissions: every call mints a fresh
// reference and a fresh mutation. Callers wanting retry safety send an
// Idempotency-Key at the HTTP boundary.
func (s *LedgerService) Apply(ctx context.Context, cmd SubmitTransactionCmd) (*models.Transaction, error) {
	if err := ValidateSubmit(&cmd); err != nil {
		return nil, err
	}

	touched := []uuid.UUID{cmd.SourceAccountID}
	if cmd.TransactionType == domain.TxTypeTransfer {
		touched = append(touched, *cmd.DestinationAccountID)
	}
	sort.Slice(touched, func(i, j int) bool {
		return touched[i].String() < touched[j].String()
	})

	var committed *models.Transaction
	err := s.store.RunInTx(ctx, func(tx pgx.Tx) error {
		accounts := make(map[uuid.UUID]*models.Account, len(touched))
		for _, id := range touched {
			acct, err := s.repo.GetAccountForUpdate(ctx, tx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNoRows) {
					return fmt.Errorf("%w: %s", models.ErrAccountNotFound, id)
				}
				return err
			}
			accounts[id] = acct
		}

		source := accounts[cmd.SourceAccountID]
		if source.Status != domain.AccountStatusActive {
			return fmt.Errorf("%w: account %s is %s", models.ErrAccountNotActive, source.ID, source.Status)
		}

		var dest *models.Account
		if cmd.TransactionType == domain.TxTypeTransfer {
			dest = accounts[*cmd.DestinationAccountID]
			if dest.Status != domain.AccountStatusActive {
				return fmt.Errorf("%w: account %s is %s", models.ErrAccountNotActive, dest.ID, dest.Status)
			}
			if source.Currency != dest.Currency {
				return fmt.Errorf("%w: currency mismatch, source is %s and destination is %s",
					models.ErrInvalidTransaction, source.Currency, dest.Currency)
			}
		}

		var newBalance decimal.Decimal
		if domain.Debits(cmd.TransactionType) {
			if source.Balance.LessThan(cmd.Amount) {
				observability.IncrementInsufficientFunds(cmd.TransactionType)
				return models.ErrInsufficientFunds
			}
			newBalance = source.Balance.Sub(cmd.Amount)
		} else {
			newBalance = source.Balance.Add(cmd.Amount)
		}

		if err := s.repo.UpdateAccountBalance(ctx, tx, source.ID, newBalance); err != nil {
			return err
		}
		if dest != nil {
			if err := s.repo.UpdateAccountBalance(ctx, tx, dest.ID, dest.Balance.Add(cmd.Amount)); err != nil {
				return err
			}
		}

		txn := &models.Transaction{
			ID:                   uuid.New(),
			AccountID:            cmd.SourceAccountID,
			DestinationAccountID: cmd.DestinationAccountID,
			TransactionType:      cmd.TransactionType,
			Amount:               cmd.Amount,
			Reference:            newReference(),
			Description:          cmd.Description,
			Status:               domain.TxStatusCompleted,
		}
		if err := s.repo.InsertTransaction(ctx, tx, txn); err != nil {
			return err
		}

		committed = txn
		return nil
	})
	if err != nil {
		observability.IncrementTransaction(cmd.TransactionType, "failed")
		return nil, err
	}

	observability.IncrementTransaction(cmd.TransactionType, "completed")
	return committed, nil
}

// newReference mints a globally unique transaction reference.
func newReference() string {
	return "TXN-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
