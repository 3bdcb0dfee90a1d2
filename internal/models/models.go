package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a ledger entity holding a fixed-point balance in one currency.
// The ledger engine is the only writer of Balance and UpdatedAt, and only
// inside a committed store transaction.
type Account struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	AccountNumber string          `json:"account_number"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Transaction is a single recorded balance adjustment against one or two
// accounts. DestinationAccountID is set only for transfers.
type Transaction struct {
	ID                   uuid.UUID       `json:"id"`
	AccountID            uuid.UUID       `json:"account_id"`
	DestinationAccountID *uuid.UUID      `json:"destination_account_id,omitempty"`
	TransactionType      string          `json:"transaction_type"`
	Amount               decimal.Decimal `json:"amount"`
	Reference            string          `json:"reference"`
	Description          *string         `json:"description,omitempty"`
	Status               string          `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}
