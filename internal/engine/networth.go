package engine

import (
	"time"

	"github.com/soldeapp/solde/internal/models"
)

// NetWorthComponent is one contributor to the net-worth breakdown.
type NetWorthComponent struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// NetWorthBreakdown decomposes net worth into account balances, manual
// assets, and outstanding loan principal.
type NetWorthBreakdown struct {
	Accounts []NetWorthComponent `json:"accounts"`
	Assets   []NetWorthComponent `json:"assets"`
	Loans    []NetWorthComponent `json:"loans"`

	AccountsTotal    float64 `json:"accounts_total"`
	AssetsTotal      float64 `json:"assets_total"`
	LoansOutstanding float64 `json:"loans_outstanding"`
	Total            float64 `json:"total"` // accounts + assets − loans
}

// NetWorth computes the net-worth breakdown as of a date: realized
// account balances plus manual asset values, minus the remaining
// principal of every loan.
func NetWorth(l *Ledger, loans []models.Loan, assets []models.ManualAsset, asOf time.Time) NetWorthBreakdown {
	var nw NetWorthBreakdown

	for _, id := range l.AccountIDs() {
		acc := l.Account(id)
		balance := AccountBalance(l, id, asOf)
		nw.Accounts = append(nw.Accounts, NetWorthComponent{ID: id, Name: acc.Name, Value: balance})
		nw.AccountsTotal += balance
	}

	for _, a := range assets {
		nw.Assets = append(nw.Assets, NetWorthComponent{ID: a.ID, Name: a.Name, Value: a.Value})
		nw.AssetsTotal += a.Value
	}

	for i := range loans {
		remaining := LoanRemainingBalance(l, &loans[i])
		nw.Loans = append(nw.Loans, NetWorthComponent{ID: loans[i].ID, Name: loans[i].Name, Value: remaining})
		nw.LoansOutstanding += remaining
	}

	nw.Total = nw.AccountsTotal + nw.AssetsTotal - nw.LoansOutstanding
	return nw
}
