package models

import "fmt"

// Snapshot is the complete ledger state handed to the projection engine:
// every entity set the engine can derive balances and forecasts from.
// The engine never mutates a snapshot; callers may share one read-only
// snapshot across concurrent computations.
type Snapshot struct {
	Accounts           []Account           `json:"accounts"`
	Reserves           []Reserve           `json:"reserves,omitempty"`
	Transactions       []Transaction       `json:"transactions"`
	RecurringTemplates []RecurringTemplate `json:"recurring_templates,omitempty"`
	Loans              []Loan              `json:"loans,omitempty"`
	ManualAssets       []ManualAsset       `json:"manual_assets,omitempty"`
	Categories         []Category          `json:"categories,omitempty"`
	BudgetLimits       []BudgetLimit       `json:"budget_limits,omitempty"`
}

// Validate checks every entity in the snapshot. Malformed entities are an
// ingestion error: they fail loudly here, before any projection runs.
func (s *Snapshot) Validate() error {
	for i := range s.Accounts {
		if err := s.Accounts[i].Validate(); err != nil {
			return fmt.Errorf("account %d (%s): %w", i, s.Accounts[i].ID, err)
		}
	}
	for i := range s.Reserves {
		if err := s.Reserves[i].Validate(); err != nil {
			return fmt.Errorf("reserve %d (%s): %w", i, s.Reserves[i].ID, err)
		}
	}
	for i := range s.Transactions {
		if err := s.Transactions[i].Validate(); err != nil {
			return fmt.Errorf("transaction %d (%s): %w", i, s.Transactions[i].ID, err)
		}
	}
	for i := range s.RecurringTemplates {
		if err := s.RecurringTemplates[i].Validate(); err != nil {
			return fmt.Errorf("recurring template %d (%s): %w", i, s.RecurringTemplates[i].ID, err)
		}
	}
	for i := range s.Loans {
		if err := s.Loans[i].Validate(); err != nil {
			return fmt.Errorf("loan %d (%s): %w", i, s.Loans[i].ID, err)
		}
	}
	return nil
}
