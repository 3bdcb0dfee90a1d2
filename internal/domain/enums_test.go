package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionType(t *testing.T) {
	for _, v := range []string{TxTypeDeposit, TxTypeWithdrawal, TxTypeTransfer, TxTypePayment, TxTypeFee, TxTypeInterest} {
		got, err := ParseTransactionType(v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := ParseTransactionType("chargeback")
	assert.Error(t, err)
}

func TestParseCurrency(t *testing.T) {
	_, err := ParseCurrency("USD")
	require.NoError(t, err)

	_, err = ParseCurrency("NGN")
	assert.Error(t, err)
}

func TestParseAccountType(t *testing.T) {
	_, err := ParseAccountType(AccountTypeCreditCard)
	require.NoError(t, err)

	_, err = ParseAccountType("offshore")
	assert.Error(t, err)
}

func TestDebits(t *testing.T) {
	assert.True(t, Debits(TxTypeWithdrawal))
	assert.True(t, Debits(TxTypeTransfer))
	assert.True(t, Debits(TxTypePayment))
	assert.True(t, Debits(TxTypeFee))
	assert.False(t, Debits(TxTypeDeposit))
	assert.False(t, Debits(TxTypeInterest))
}
