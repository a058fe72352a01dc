package engine

import (
	"time"

	"github.com/soldeapp/solde/internal/models"
)

// BalanceOptions widens the transaction set a balance fold admits.
// The zero value is the realized balance: real, non-simulated
// transactions only.
type BalanceOptions struct {
	// IncludeSimulations admits transactions flagged as simulations.
	IncludeSimulations bool
	// IncludePotential admits scheduled (potential) transactions. Used by
	// forward-looking projections, never by realized balances.
	IncludePotential bool
}

// admits reports whether a transaction passes the option filters as of
// the given date.
func (o BalanceOptions) admits(tx *models.Transaction, asOf time.Time) bool {
	if tx.EffectiveDate.After(asOf) {
		return false
	}
	if tx.Status == models.StatusPotential && !o.IncludePotential {
		return false
	}
	if tx.IsSimulation && !o.IncludeSimulations {
		return false
	}
	return true
}

// AccountBalance computes the realized balance of an account as of a
// date: the account's initial balance plus the fold of its real,
// non-simulated transactions with effective date at or before asOf.
// Unknown account IDs yield zero.
func AccountBalance(l *Ledger, accountID string, asOf time.Time) float64 {
	return AccountBalanceWith(l, accountID, asOf, BalanceOptions{})
}

// AccountBalanceWith computes an account balance with explicit options.
func AccountBalanceWith(l *Ledger, accountID string, asOf time.Time, opts BalanceOptions) float64 {
	var balance float64
	if acc := l.Account(accountID); acc != nil {
		balance = acc.InitialBalance
	}
	for _, tx := range l.accountTransactions(accountID) {
		if tx.EffectiveDate.After(asOf) {
			break // index is sorted by effective date
		}
		if !opts.admits(tx, asOf) {
			continue
		}
		balance += tx.SignedAmount()
	}
	return balance
}

// ReserveBalance computes the realized balance of a reserve as of a date:
// the fold of real, non-simulated transactions carrying its reserve ID,
// independent of the parent account's other activity. Reserves have no
// initial balance; everything is derived from the ledger.
func ReserveBalance(l *Ledger, reserveID string, asOf time.Time) float64 {
	return ReserveBalanceWith(l, reserveID, asOf, BalanceOptions{})
}

// ReserveBalanceWith computes a reserve balance with explicit options.
func ReserveBalanceWith(l *Ledger, reserveID string, asOf time.Time, opts BalanceOptions) float64 {
	var balance float64
	for _, tx := range l.reserveTransactions(reserveID) {
		if tx.EffectiveDate.After(asOf) {
			break
		}
		if !opts.admits(tx, asOf) {
			continue
		}
		balance += tx.SignedAmount()
	}
	return balance
}

// MainBalance computes the unreserved portion of an account's balance:
// the account balance minus the sum of its reserve balances.
func MainBalance(l *Ledger, accountID string, asOf time.Time) float64 {
	balance := AccountBalance(l, accountID, asOf)
	for _, rid := range l.AccountReserveIDs(accountID) {
		balance -= ReserveBalance(l, rid, asOf)
	}
	return balance
}

// ReserveConsistency reports whether an account's reserves fit inside its
// balance as of a date. A main balance below -Epsilon means the reserves
// claim more money than the account holds: a data inconsistency in the
// snapshot. The deficit (positive when inconsistent) is returned for
// reporting.
func ReserveConsistency(l *Ledger, accountID string, asOf time.Time) (deficit float64, ok bool) {
	main := MainBalance(l, accountID, asOf)
	if main < -Epsilon {
		return -main, false
	}
	return 0, true
}
