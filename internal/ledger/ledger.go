// Package ledger owns every mutation of a customer's balance. The stored
// balance is a cache; the transaction log is the source of truth, and this
// package is the only place the two are ever reconciled.
package ledger

import (
	"github.com/vyapaarbook/vyapaarbook/internal/transaction"
)

// Contribution returns the signed effect of one transaction on its
// customer's outstanding balance, in paise.
//
// The rule, applied uniformly wherever a balance is touched:
//   - a payment reduces the balance by its amount, whatever its status
//   - a sale still due or partially settled increases the balance by its
//     recorded amount (for a partial sale the recorded amount is the
//     outstanding portion)
//   - a sale settled in full at recording time leaves the balance unchanged
func Contribution(typ transaction.Type, status transaction.Status, amount int64) int64 {
	switch {
	case typ == transaction.TypePayment:
		return -amount
	case typ == transaction.TypeSale && status == transaction.StatusPaid:
		return 0
	default:
		return amount
	}
}

// Balance folds the contribution rule over a transaction history.
func Balance(txs []*transaction.Transaction) int64 {
	var sum int64
	for _, t := range txs {
		sum += Contribution(t.Type, t.Status, t.Amount)
	}

	return sum
}
