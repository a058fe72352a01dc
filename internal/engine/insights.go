package engine

import (
	"sort"
	"time"

	"github.com/soldeapp/solde/internal/models"
)

// InsightSettings scopes the savings and expense aggregates.
type InsightSettings struct {
	// IncludedIncomeCategoryIDs, when non-empty, restricts income to
	// these categories.
	IncludedIncomeCategoryIDs []string
	// ExcludedExpenseCategoryIDs removes these categories from expense
	// aggregates.
	ExcludedExpenseCategoryIDs []string
}

func (s InsightSettings) incomeIncluded(categoryID string) bool {
	if len(s.IncludedIncomeCategoryIDs) == 0 {
		return true
	}
	for _, id := range s.IncludedIncomeCategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

func (s InsightSettings) expenseExcluded(categoryID string) bool {
	for _, id := range s.ExcludedExpenseCategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// monthInterval returns the [start, next-month-start) interval containing
// the given date.
func monthInterval(month time.Time) (start, end time.Time) {
	start = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return start, start.AddDate(0, 1, 0)
}

// inMonth reports whether a transaction's effective date falls inside the
// month's interval.
func inMonth(tx *models.Transaction, start, end time.Time) bool {
	return !tx.EffectiveDate.Before(start) && tx.EffectiveDate.Before(end)
}

// CategoryExpense is one bucket of the monthly expense breakdown.
type CategoryExpense struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
}

// ExpenseInsight aggregates the month's real, non-simulated expenses per
// category, largest first. Transactions referencing a category that does
// not exist are bucketed under the unknown category rather than dropped.
func ExpenseInsight(l *Ledger, categories []models.Category, month time.Time, settings InsightSettings) []CategoryExpense {
	start, end := monthInterval(month)

	known := make(map[string]string, len(categories))
	for _, c := range categories {
		known[c.ID] = c.Name
	}

	totals := make(map[string]float64)
	for i := range l.txs {
		tx := &l.txs[i]
		if !tx.IsReal() || tx.Type != models.TxExpense || !inMonth(tx, start, end) {
			continue
		}
		if settings.expenseExcluded(tx.CategoryID) {
			continue
		}
		id := tx.CategoryID
		if _, ok := known[id]; !ok {
			id = models.CategoryUnknown
		}
		totals[id] += tx.Amount
	}

	out := make([]CategoryExpense, 0, len(totals))
	for id, total := range totals {
		name := known[id]
		if id == models.CategoryUnknown {
			name = models.CategoryUnknown
		}
		out = append(out, CategoryExpense{CategoryID: id, CategoryName: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out
}

// SavingsInsight summarizes a month's actual cash flow: real,
// non-simulated income and expenses and their difference.
type SavingsInsight struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// ComputeSavingsInsight folds the month's real, non-simulated
// transactions into income and expense totals, honoring the settings'
// category scoping. Simulated transactions never enter actual aggregates.
func ComputeSavingsInsight(l *Ledger, month time.Time, settings InsightSettings) SavingsInsight {
	start, end := monthInterval(month)

	var in SavingsInsight
	for i := range l.txs {
		tx := &l.txs[i]
		if !tx.IsReal() || !inMonth(tx, start, end) {
			continue
		}
		switch tx.Type {
		case models.TxIncome:
			if settings.incomeIncluded(tx.CategoryID) {
				in.Income += tx.Amount
			}
		case models.TxExpense:
			if !settings.expenseExcluded(tx.CategoryID) {
				in.Expenses += tx.Amount
			}
		}
	}
	in.Net = in.Income - in.Expenses
	return in
}

// BudgetAlert reports a month's spending against one budget limit.
type BudgetAlert struct {
	CategoryID string  `json:"category_id"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Ratio      float64 `json:"ratio"` // 0 when the limit amount is 0
	Exceeded   bool    `json:"exceeded"`
}

// BudgetAlerts computes spent/limit utilization per budget limit for a
// month. A zero limit amount yields a zero ratio, never a division by
// zero; the limit still flags as exceeded once anything is spent.
func BudgetAlerts(l *Ledger, limits []models.BudgetLimit, month time.Time) []BudgetAlert {
	start, end := monthInterval(month)

	spentByCategory := make(map[string]float64)
	for i := range l.txs {
		tx := &l.txs[i]
		if !tx.IsReal() || tx.Type != models.TxExpense || !inMonth(tx, start, end) {
			continue
		}
		spentByCategory[tx.CategoryID] += tx.Amount
	}

	out := make([]BudgetAlert, 0, len(limits))
	for _, limit := range limits {
		spent := spentByCategory[limit.CategoryID]
		alert := BudgetAlert{
			CategoryID: limit.CategoryID,
			Limit:      limit.Amount,
			Spent:      spent,
		}
		if limit.Amount > 0 {
			alert.Ratio = spent / limit.Amount
			alert.Exceeded = alert.Ratio >= 1
		} else {
			alert.Exceeded = spent > 0
		}
		out = append(out, alert)
	}
	return out
}

// GoalProgress reports a goal-tracked reserve's standing.
type GoalProgress struct {
	Balance         float64 `json:"balance"`
	TargetAmount    float64 `json:"target_amount"`
	PercentComplete float64 `json:"percent_complete"` // 0 when no target, capped at 100
	// MonthlyRequired is the contribution per remaining month needed to
	// reach the target by the target date. Zero when the goal has no
	// date, is already met, or the date has passed.
	MonthlyRequired float64 `json:"monthly_required"`
}

// SavingsGoalProgress measures a reserve against its savings goal as of
// a date. Reserves without a target yield zero progress rather than a
// division by zero.
func SavingsGoalProgress(l *Ledger, reserve *models.Reserve, asOf time.Time) GoalProgress {
	gp := GoalProgress{
		Balance:      ReserveBalance(l, reserve.ID, asOf),
		TargetAmount: reserve.TargetAmount,
	}
	if reserve.TargetAmount <= 0 {
		return gp
	}

	gp.PercentComplete = gp.Balance / reserve.TargetAmount * 100
	if gp.PercentComplete > 100 {
		gp.PercentComplete = 100
	}
	if gp.PercentComplete < 0 {
		gp.PercentComplete = 0
	}

	remaining := reserve.TargetAmount - gp.Balance
	if remaining <= 0 || reserve.TargetDate == nil {
		return gp
	}
	months := monthsUntil(startOfDay(asOf), *reserve.TargetDate)
	if months <= 0 {
		return gp
	}
	gp.MonthlyRequired = remaining / float64(months)
	return gp
}

// monthsUntil counts the whole months from a date until a deadline,
// rounding up so a partial month still gets a contribution.
func monthsUntil(from, until time.Time) int {
	if !until.After(from) {
		return 0
	}
	months := (until.Year()-from.Year())*12 + int(until.Month()) - int(from.Month())
	if until.Day() > from.Day() {
		months++
	}
	if months < 1 {
		months = 1
	}
	return months
}
