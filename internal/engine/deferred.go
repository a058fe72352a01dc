package engine

import (
	"fmt"
	"time"

	"github.com/soldeapp/solde/internal/models"
)

// DeferredSpending describes the open billing window of a deferred-debit
// account: the expenses accrued since the last settlement and the date
// they will debit.
type DeferredSpending struct {
	Total         float64   `json:"total"`
	WindowStart   time.Time `json:"window_start"`
	NextDebitDate time.Time `json:"next_debit_date"`
}

// DeferredDebitSpending computes the current open billing window of a
// deferred-debit account as of now: the sum of real, non-simulated
// expenses whose effective date falls inside [last settlement, next
// settlement). The settlement day starts a new window, so a reference
// date landing exactly on a settlement day opens a fresh (empty) window
// rather than closing the old one.
func DeferredDebitSpending(l *Ledger, accountID string, now time.Time) (DeferredSpending, error) {
	acc := l.Account(accountID)
	if acc == nil {
		return DeferredSpending{}, fmt.Errorf("account %q not found", accountID)
	}
	if !acc.IsDeferredDebit() {
		return DeferredSpending{}, fmt.Errorf("account %q is not a deferred-debit account", accountID)
	}

	today := startOfDay(now)
	windowStart := lastSettlementDate(today, acc.SettlementDay)
	nextDebit := nextSettlementDate(today, acc.SettlementDay)

	var total float64
	for _, tx := range l.accountTransactions(accountID) {
		if !tx.EffectiveDate.Before(nextDebit) {
			break // index is sorted by effective date
		}
		if tx.EffectiveDate.Before(windowStart) {
			continue
		}
		if !tx.IsReal() || tx.Type != models.TxExpense {
			continue
		}
		total += tx.Amount
	}

	return DeferredSpending{
		Total:         total,
		WindowStart:   windowStart,
		NextDebitDate: nextDebit,
	}, nil
}

// startOfDay truncates a time to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// settlementDateIn places the settlement day inside a month, clamping to
// the month's length (day 31 settles on Feb 28/29).
func settlementDateIn(year int, month time.Month, day int, loc *time.Location) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// lastSettlementDate returns the most recent settlement date at or before
// today. Today itself counts: the settlement day starts the new window.
func lastSettlementDate(today time.Time, settlementDay int) time.Time {
	d := settlementDateIn(today.Year(), today.Month(), settlementDay, today.Location())
	if d.After(today) {
		prev := today.AddDate(0, 0, -today.Day()) // last day of previous month
		d = settlementDateIn(prev.Year(), prev.Month(), settlementDay, today.Location())
	}
	return d
}

// nextSettlementDate returns the first settlement date strictly after
// today.
func nextSettlementDate(today time.Time, settlementDay int) time.Time {
	d := settlementDateIn(today.Year(), today.Month(), settlementDay, today.Location())
	if d.After(today) {
		return d
	}
	next := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, 1, 0)
	return settlementDateIn(next.Year(), next.Month(), settlementDay, today.Location())
}
