package engine

import (
	"time"

	"github.com/soldeapp/solde/internal/models"
)

// DefaultHorizonMonths is the forecast horizon when none is specified.
const DefaultHorizonMonths = 12

// ForecastPoint is one entry of the monthly forecast series.
type ForecastPoint struct {
	Month        time.Time `json:"month"` // end-of-month boundary
	TotalBalance float64   `json:"total_balance"`
}

// ForecastOptions scopes a forecast computation.
type ForecastOptions struct {
	// HorizonMonths is the number of monthly points; DefaultHorizonMonths
	// when zero or negative.
	HorizonMonths int
	// AccountIDs restricts the forecast to these accounts. Empty means
	// all accounts participate.
	AccountIDs []string
	// IncludeSimulations admits simulated transactions into the forecast.
	IncludeSimulations bool
}

// Forecast produces the projected total balance of the included accounts
// at each of the next end-of-month boundaries, starting with the current
// month. Each point sums, per account: the initial balance, every
// existing transaction (real and potential) effective at or before the
// boundary, and every recurring instance projected between now and the
// boundary. The result is fully materialized, chronological, and a pure
// function of its inputs.
func Forecast(l *Ledger, templates []models.RecurringTemplate, opts ForecastOptions, now time.Time) []ForecastPoint {
	horizon := opts.HorizonMonths
	if horizon <= 0 {
		horizon = DefaultHorizonMonths
	}

	included := includedAccounts(l, opts.AccountIDs)
	includedSet := make(map[string]bool, len(included))
	for _, id := range included {
		includedSet[id] = true
	}

	today := startOfDay(now)
	boundaries := make([]time.Time, horizon)
	for i := 0; i < horizon; i++ {
		// day 0 of month m+1 is the last day of month m+i
		boundaries[i] = time.Date(today.Year(), today.Month()+time.Month(i)+1, 0, 0, 0, 0, 0, today.Location())
	}

	// Expand recurring templates once across the whole horizon.
	var projected []models.Transaction
	for i := range templates {
		if !includedSet[templates[i].AccountID] {
			continue
		}
		projected = append(projected, ProjectTemplate(&templates[i], today, boundaries[horizon-1])...)
	}

	balanceOpts := BalanceOptions{
		IncludePotential:   true,
		IncludeSimulations: opts.IncludeSimulations,
	}

	points := make([]ForecastPoint, horizon)
	for i, boundary := range boundaries {
		var total float64
		for _, id := range included {
			total += AccountBalanceWith(l, id, boundary, balanceOpts)
		}
		for j := range projected {
			if !projected[j].EffectiveDate.After(boundary) {
				total += projected[j].SignedAmount()
			}
		}
		points[i] = ForecastPoint{Month: boundary, TotalBalance: total}
	}
	return points
}

// includedAccounts resolves the inclusion list into an ordered list of
// known account IDs, defaulting to every account in the ledger. Order is
// deterministic so the summation is reproducible bit-for-bit.
func includedAccounts(l *Ledger, accountIDs []string) []string {
	if len(accountIDs) == 0 {
		return l.AccountIDs()
	}
	var included []string
	seen := make(map[string]bool, len(accountIDs))
	for _, id := range accountIDs {
		if l.Account(id) != nil && !seen[id] {
			included = append(included, id)
			seen[id] = true
		}
	}
	return included
}
