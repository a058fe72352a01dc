// Package engine computes balances, spending windows, amortization state,
// and cash-flow forecasts from an immutable ledger snapshot. Every function
// is a pure projection of (entities, reference date) → result: no clock
// reads, no I/O, no mutation of inputs. Concurrent callers may share one
// ledger.
package engine

import (
	"sort"

	"github.com/soldeapp/solde/internal/models"
)

// Epsilon is the rounding tolerance used when comparing derived balances.
// A reserve aggregate exceeding its account balance by more than Epsilon
// signals a data inconsistency in the snapshot, not an engine bug.
const Epsilon = 0.01

// Ledger is an indexed, immutable view over a snapshot's transactions.
// Transactions are pre-indexed by account, reserve, and recurring stream,
// each index sorted by (effective date, ID) so that folds run in one pass
// and summation order is stable regardless of input ordering.
type Ledger struct {
	accounts    map[string]*models.Account
	reserves    map[string]*models.Reserve
	byAccount   map[string][]*models.Transaction
	byReserve   map[string][]*models.Transaction
	byRecurring map[string][]*models.Transaction

	accountOrder []string
	reserveOrder map[string][]string // accountID → reserve IDs, snapshot order

	txs []models.Transaction // private copy, never reordered for callers
}

// NewLedger builds an indexed ledger from accounts, reserves, and
// transactions. The inputs are copied; the caller's slices are never
// reordered or retained.
func NewLedger(accounts []models.Account, reserves []models.Reserve, transactions []models.Transaction) *Ledger {
	l := &Ledger{
		accounts:     make(map[string]*models.Account, len(accounts)),
		reserves:     make(map[string]*models.Reserve, len(reserves)),
		byAccount:    make(map[string][]*models.Transaction),
		byReserve:    make(map[string][]*models.Transaction),
		byRecurring:  make(map[string][]*models.Transaction),
		reserveOrder: make(map[string][]string),
		txs:          make([]models.Transaction, len(transactions)),
	}

	accs := make([]models.Account, len(accounts))
	copy(accs, accounts)
	for i := range accs {
		l.accounts[accs[i].ID] = &accs[i]
		l.accountOrder = append(l.accountOrder, accs[i].ID)
	}

	ress := make([]models.Reserve, len(reserves))
	copy(ress, reserves)
	for i := range ress {
		l.reserves[ress[i].ID] = &ress[i]
		l.reserveOrder[ress[i].AccountID] = append(l.reserveOrder[ress[i].AccountID], ress[i].ID)
	}

	copy(l.txs, transactions)
	for i := range l.txs {
		tx := &l.txs[i]
		l.byAccount[tx.AccountID] = append(l.byAccount[tx.AccountID], tx)
		if tx.ReserveID != "" {
			l.byReserve[tx.ReserveID] = append(l.byReserve[tx.ReserveID], tx)
		}
		if tx.RecurringID != "" {
			l.byRecurring[tx.RecurringID] = append(l.byRecurring[tx.RecurringID], tx)
		}
	}

	for _, idx := range []map[string][]*models.Transaction{l.byAccount, l.byReserve, l.byRecurring} {
		for _, txs := range idx {
			sortTransactions(txs)
		}
	}

	return l
}

// NewLedgerFromSnapshot builds an indexed ledger from a full snapshot.
func NewLedgerFromSnapshot(snap *models.Snapshot) *Ledger {
	return NewLedger(snap.Accounts, snap.Reserves, snap.Transactions)
}

// sortTransactions orders transactions by effective date, breaking ties by
// ID. The tiebreak keeps folds deterministic for same-day transactions.
func sortTransactions(txs []*models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].EffectiveDate.Equal(txs[j].EffectiveDate) {
			return txs[i].EffectiveDate.Before(txs[j].EffectiveDate)
		}
		return txs[i].ID < txs[j].ID
	})
}

// Account returns the account with the given ID, or nil.
func (l *Ledger) Account(id string) *models.Account {
	return l.accounts[id]
}

// Reserve returns the reserve with the given ID, or nil.
func (l *Ledger) Reserve(id string) *models.Reserve {
	return l.reserves[id]
}

// AccountIDs returns all account IDs in snapshot order.
func (l *Ledger) AccountIDs() []string {
	out := make([]string, len(l.accountOrder))
	copy(out, l.accountOrder)
	return out
}

// AccountReserveIDs returns the IDs of the reserves owned by an account,
// in snapshot order.
func (l *Ledger) AccountReserveIDs(accountID string) []string {
	ids := l.reserveOrder[accountID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// accountTransactions returns the account's transactions sorted by
// (effective date, ID). The returned slice is shared: callers must not
// modify it.
func (l *Ledger) accountTransactions(accountID string) []*models.Transaction {
	return l.byAccount[accountID]
}

// reserveTransactions returns the reserve's transactions sorted by
// (effective date, ID).
func (l *Ledger) reserveTransactions(reserveID string) []*models.Transaction {
	return l.byReserve[reserveID]
}

// recurringTransactions returns the transactions linked to a recurring
// stream, sorted by (effective date, ID).
func (l *Ledger) recurringTransactions(recurringID string) []*models.Transaction {
	return l.byRecurring[recurringID]
}
