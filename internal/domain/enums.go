package domain

import "fmt"

// Closed enumerations for the account/transaction core. Values are the
// strings persisted in the accounts and transactions tables.
const (
	AccountTypeChecking   = "checking"
	AccountTypeSavings    = "savings"
	AccountTypeInvestment = "investment"
	AccountTypeCreditCard = "credit_card"
	AccountTypeLoan       = "loan"

	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
	CurrencyJPY = "JPY"
	CurrencyCAD = "CAD"

	AccountStatusActive          = "active"
	AccountStatusInactive        = "inactive"
	AccountStatusFrozen          = "frozen"
	AccountStatusClosed          = "closed"
	AccountStatusPendingApproval = "pending_approval"

	TxTypeDeposit    = "deposit"
	TxTypeWithdrawal = "withdrawal"
	TxTypeTransfer   = "transfer"
	TxTypePayment    = "payment"
	TxTypeFee        = "fee"
	TxTypeInterest   = "interest"

	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
	TxStatusFailed    = "failed"
	TxStatusReversed  = "reversed"
)

var accountTypes = map[string]struct{}{
	AccountTypeChecking:   {},
	AccountTypeSavings:    {},
	AccountTypeInvestment: {},
	AccountTypeCreditCard: {},
	AccountTypeLoan:       {},
}

var currencies = map[string]struct{}{
	CurrencyUSD: {},
	CurrencyEUR: {},
	CurrencyGBP: {},
	CurrencyJPY: {},
	CurrencyCAD: {},
}

var accountStatuses = map[string]struct{}{
	AccountStatusActive:          {},
	AccountStatusInactive:        {},
	AccountStatusFrozen:          {},
	AccountStatusClosed:          {},
	AccountStatusPendingApproval: {},
}

var txTypes = map[string]struct{}{
	TxTypeDeposit:    {},
	TxTypeWithdrawal: {},
	TxTypeTransfer:   {},
	TxTypePayment:    {},
	TxTypeFee:        {},
	TxTypeInterest:   {},
}

// ParseAccountType validates a wire value against the closed account type set.
func ParseAccountType(v string) (string, error) {
	if _, ok := accountTypes[v]; !ok {
		return "", fmt.Errorf("unknown account type: %q", v)
	}
	return v, nil
}

// ParseCurrency validates a wire value against the supported currency set.
func ParseCurrency(v string) (string, error) {
	if _, ok := currencies[v]; !ok {
		return "", fmt.Errorf("unsupported currency: %q", v)
	}
	return v, nil
}

// ParseAccountStatus validates a stored account status value.
func ParseAccountStatus(v string) (string, error) {
	if _, ok := accountStatuses[v]; !ok {
		return "", fmt.Errorf("unknown account status: %q", v)
	}
	return v, nil
}

// ParseTransactionType validates a wire value against the transaction taxonomy.
func ParseTransactionType(v string) (string, error) {
	if _, ok := txTypes[v]; !ok {
		return "", fmt.Errorf("unknown transaction type: %q", v)
	}
	return v, nil
}

// Debits reports whether the transaction type subtracts from the source
// account. The remaining types (deposit, interest) credit the source.
func Debits(txType string) bool {
	switch txType {
	case TxTypeWithdrawal, TxTypeTransfer, TxTypePayment, TxTypeFee:
		return true
	default:
		return false
	}
}
