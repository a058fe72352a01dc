// Package projection wires the pure engine to configuration and logging
// for the surrounding application.
package projection

import (
	"fmt"
	"time"

	"github.com/soldeapp/solde/internal/common"
	"github.com/soldeapp/solde/internal/engine"
	"github.com/soldeapp/solde/internal/interfaces"
	"github.com/soldeapp/solde/internal/models"
)

// Compile-time interface checks
var (
	_ interfaces.ProjectionService = (*Service)(nil)
	_ interfaces.InsightService    = (*Service)(nil)
)

// Service implements ProjectionService and InsightService. It holds only
// configuration-derived settings and a logger; all state lives in the
// snapshots passed per call, so one Service is safe for concurrent use.
type Service struct {
	forecast engine.ForecastOptions
	insights engine.InsightSettings
	logger   *common.Logger
}

// NewService creates a projection service from configuration.
func NewService(cfg *common.Config, logger *common.Logger) *Service {
	return &Service{
		forecast: engine.ForecastOptions{
			HorizonMonths:      cfg.Forecast.HorizonMonths,
			AccountIDs:         cfg.Forecast.AccountIDs,
			IncludeSimulations: cfg.Forecast.IncludeSimulations,
		},
		insights: engine.InsightSettings{
			IncludedIncomeCategoryIDs:  cfg.Insights.IncludedIncomeCategoryIDs,
			ExcludedExpenseCategoryIDs: cfg.Insights.ExcludedExpenseCategoryIDs,
		},
		logger: logger,
	}
}

// AccountBalance returns an account's realized balance as of a date.
func (s *Service) AccountBalance(snap *models.Snapshot, accountID string, asOf time.Time) (float64, error) {
	l := engine.NewLedgerFromSnapshot(snap)
	if l.Account(accountID) == nil {
		return 0, fmt.Errorf("account %q not found", accountID)
	}
	balance := engine.AccountBalance(l, accountID, asOf)

	if deficit, ok := engine.ReserveConsistency(l, accountID, asOf); !ok {
		s.logger.Warn().Str("account", accountID).Float64("deficit", deficit).
			Msg("Reserves exceed account balance; snapshot data is inconsistent")
	}

	s.logger.Debug().Str("account", accountID).Time("as_of", asOf).
		Float64("balance", balance).Msg("Account balance computed")
	return balance, nil
}

// ReserveBalance returns a reserve's derived balance as of a date.
func (s *Service) ReserveBalance(snap *models.Snapshot, reserveID string, asOf time.Time) (float64, error) {
	l := engine.NewLedgerFromSnapshot(snap)
	if l.Reserve(reserveID) == nil {
		return 0, fmt.Errorf("reserve %q not found", reserveID)
	}
	return engine.ReserveBalance(l, reserveID, asOf), nil
}

// DeferredDebitSpending returns the open billing window of a
// deferred-debit account.
func (s *Service) DeferredDebitSpending(snap *models.Snapshot, accountID string, now time.Time) (engine.DeferredSpending, error) {
	l := engine.NewLedgerFromSnapshot(snap)
	spending, err := engine.DeferredDebitSpending(l, accountID, now)
	if err != nil {
		return engine.DeferredSpending{}, err
	}
	s.logger.Debug().Str("account", accountID).Float64("total", spending.Total).
		Time("next_debit", spending.NextDebitDate).Msg("Deferred-debit window computed")
	return spending, nil
}

// LoanStatus returns the remaining balance and progress of a loan.
func (s *Service) LoanStatus(snap *models.Snapshot, loanID string) (float64, float64, error) {
	var loan *models.Loan
	for i := range snap.Loans {
		if snap.Loans[i].ID == loanID {
			loan = &snap.Loans[i]
			break
		}
	}
	if loan == nil {
		return 0, 0, fmt.Errorf("loan %q not found", loanID)
	}
	l := engine.NewLedgerFromSnapshot(snap)
	return engine.LoanRemainingBalance(l, loan), engine.LoanProgress(l, loan), nil
}

// Forecast returns the monthly projected-balance series over the
// configured horizon.
func (s *Service) Forecast(snap *models.Snapshot, now time.Time) ([]engine.ForecastPoint, error) {
	l := engine.NewLedgerFromSnapshot(snap)
	points := engine.Forecast(l, snap.RecurringTemplates, s.forecast, now)
	s.logger.Debug().Int("points", len(points)).Time("now", now).Msg("Forecast computed")
	return points, nil
}

// NetWorth returns the net-worth breakdown as of a date.
func (s *Service) NetWorth(snap *models.Snapshot, asOf time.Time) (engine.NetWorthBreakdown, error) {
	l := engine.NewLedgerFromSnapshot(snap)
	return engine.NetWorth(l, snap.Loans, snap.ManualAssets, asOf), nil
}

// ExpenseInsight returns the month's per-category expense breakdown.
func (s *Service) ExpenseInsight(snap *models.Snapshot, month time.Time) ([]engine.CategoryExpense, error) {
	l := engine.NewLedgerFromSnapshot(snap)
	return engine.ExpenseInsight(l, snap.Categories, month, s.insights), nil
}

// SavingsInsight returns the month's income/expense summary.
func (s *Service) SavingsInsight(snap *models.Snapshot, month time.Time) (engine.SavingsInsight, error) {
	l := engine.NewLedgerFromSnapshot(snap)
	return engine.ComputeSavingsInsight(l, month, s.insights), nil
}

// BudgetAlerts returns the month's budget-limit utilization.
func (s *Service) BudgetAlerts(snap *models.Snapshot, month time.Time) ([]engine.BudgetAlert, error) {
	l := engine.NewLedgerFromSnapshot(snap)
	return engine.BudgetAlerts(l, snap.BudgetLimits, month), nil
}

// GoalProgress returns a goal-tracked reserve's standing as of a date.
func (s *Service) GoalProgress(snap *models.Snapshot, reserveID string, asOf time.Time) (engine.GoalProgress, error) {
	var reserve *models.Reserve
	for i := range snap.Reserves {
		if snap.Reserves[i].ID == reserveID {
			reserve = &snap.Reserves[i]
			break
		}
	}
	if reserve == nil {
		return engine.GoalProgress{}, fmt.Errorf("reserve %q not found", reserveID)
	}
	l := engine.NewLedgerFromSnapshot(snap)
	return engine.SavingsGoalProgress(l, reserve, asOf), nil
}
