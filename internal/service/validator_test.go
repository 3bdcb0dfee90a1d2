package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koladefi/financial-operations/internal/domain"
	"github.com/koladefi/financial-operations/internal/models"
)

func validTransferCmd() SubmitTransactionCmd {
	dest := uuid.New()
	return SubmitTransactionCmd{
		SourceAccountID:      uuid.New(),
		DestinationAccountID: &dest,
		TransactionType:      domain.TxTypeTransfer,
		Amount:               decimal.RequireFromString("40.00"),
	}
}

func TestValidateSubmit(t *testing.T) {
	cmd := validTransferCmd()
	require.NoError(t, ValidateSubmit(&cmd))

	deposit := SubmitTransactionCmd{
		SourceAccountID: uuid.New(),
		TransactionType: domain.TxTypeDeposit,
		Amount:          decimal.RequireFromString("10"),
	}
	require.NoError(t, ValidateSubmit(&deposit))
}

func TestValidateSubmit_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitTransactionCmd)
	}{
		{"unknown type", func(c *SubmitTransactionCmd) { c.TransactionType = "chargeback" }},
		{"zero amount", func(c *SubmitTransactionCmd) { c.Amount = decimal.Zero }},
		{"negative amount", func(c *SubmitTransactionCmd) { c.Amount = decimal.RequireFromString("-5") }},
		{"excess scale", func(c *SubmitTransactionCmd) { c.Amount = decimal.RequireFromString("1.00001") }},
		{"missing source", func(c *SubmitTransactionCmd) { c.SourceAccountID = uuid.Nil }},
		{"transfer without destination", func(c *SubmitTransactionCmd) { c.DestinationAccountID = nil }},
		{"transfer to self", func(c *SubmitTransactionCmd) { c.DestinationAccountID = &c.SourceAccountID }},
		{"destination on withdrawal", func(c *SubmitTransactionCmd) { c.TransactionType = domain.TxTypeWithdrawal }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validTransferCmd()
			tc.mutate(&cmd)
			err := ValidateSubmit(&cmd)
			assert.ErrorIs(t, err, models.ErrInvalidTransaction)
		})
	}
}
