// Package interfaces defines service contracts for Solde
package interfaces

import (
	"time"

	"github.com/soldeapp/solde/internal/engine"
	"github.com/soldeapp/solde/internal/models"
)

// ProjectionService computes balances, spending windows, amortization
// state, and forecasts from ledger snapshots. Implementations are
// stateless beyond configuration: every method is a pure projection of
// its snapshot and reference date, safe for concurrent use.
type ProjectionService interface {
	// AccountBalance returns an account's realized balance as of a date.
	AccountBalance(snap *models.Snapshot, accountID string, asOf time.Time) (float64, error)

	// ReserveBalance returns a reserve's derived balance as of a date.
	ReserveBalance(snap *models.Snapshot, reserveID string, asOf time.Time) (float64, error)

	// DeferredDebitSpending returns the open billing window of a
	// deferred-debit account.
	DeferredDebitSpending(snap *models.Snapshot, accountID string, now time.Time) (engine.DeferredSpending, error)

	// LoanStatus returns the remaining balance and progress of a loan.
	LoanStatus(snap *models.Snapshot, loanID string) (remaining, progressPct float64, err error)

	// Forecast returns the monthly projected-balance series over the
	// configured horizon.
	Forecast(snap *models.Snapshot, now time.Time) ([]engine.ForecastPoint, error)

	// NetWorth returns the net-worth breakdown as of a date.
	NetWorth(snap *models.Snapshot, asOf time.Time) (engine.NetWorthBreakdown, error)
}

// InsightService computes the monthly aggregates behind the dashboard's
// insight and alert panels.
type InsightService interface {
	// ExpenseInsight returns the month's per-category expense breakdown.
	ExpenseInsight(snap *models.Snapshot, month time.Time) ([]engine.CategoryExpense, error)

	// SavingsInsight returns the month's income/expense summary.
	SavingsInsight(snap *models.Snapshot, month time.Time) (engine.SavingsInsight, error)

	// BudgetAlerts returns the month's budget-limit utilization.
	BudgetAlerts(snap *models.Snapshot, month time.Time) ([]engine.BudgetAlert, error)

	// GoalProgress returns a goal-tracked reserve's standing as of a date.
	GoalProgress(snap *models.Snapshot, reserveID string, asOf time.Time) (engine.GoalProgress, error)
}
