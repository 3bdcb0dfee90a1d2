package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/koladefi/financial-operations/internal/domain"
	"github.com/koladefi/financial-operations/internal/models"
)

// SubmitTransactionCmd is a validated request to mutate one or two balances.
type SubmitTransactionCmd struct {
	SourceAccountID      uuid.UUID
	DestinationAccountID *uuid.UUID
	TransactionType      string
	Amount               decimal.Decimal
	Description          *string
}

// ValidateSubmit maps the command onto the closed transaction taxonomy and
// rejects structurally invalid requests. It runs before any lock is taken,
// so malformed input never contends for the locked path.
func ValidateSubmit(cmd *SubmitTransactionCmd) error {
	if _, err := domain.ParseTransactionType(cmd.TransactionType); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidTransaction, err)
	}
	if cmd.SourceAccountID == uuid.Nil {
		return fmt.Errorf("%w: source account is required", models.ErrInvalidTransaction)
	}
	if !cmd.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", models.ErrInvalidTransaction, cmd.Amount)
	}
	if cmd.Amount.Exponent() < -domain.MoneyScale {
		return fmt.Errorf("%w: amount %s exceeds scale %d", models.ErrInvalidTransaction, cmd.Amount, domain.MoneyScale)
	}

	if cmd.TransactionType == domain.TxTypeTransfer {
		if cmd.DestinationAccountID == nil || *cmd.DestinationAccountID == uuid.Nil {
			return fmt.Errorf("%w: transfer requires a destination account", models.ErrInvalidTransaction)
		}
		if *cmd.DestinationAccountID == cmd.SourceAccountID {
			return fmt.Errorf("%w: cannot transfer to the same account", models.ErrInvalidTransaction)
		}
	} else if cmd.DestinationAccountID != nil {
		return fmt.Errorf("%w: destination account only valid for transfers", models.ErrInvalidTransaction)
	}

	return nil
}
