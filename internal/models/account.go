// Package models defines the ledger entities consumed by the projection
// engine. All entities are immutable value snapshots: balances are always
// derived from the transaction ledger, never stored.
package models

import (
	"fmt"
	"strings"
	"time"
)

// AccountType categorizes how an account settles its transactions.
type AccountType string

const (
	// AccountStandard debits and credits immediately on the effective date.
	AccountStandard AccountType = "standard"
	// AccountDeferredDebit accrues expenses into a periodic settlement
	// (credit-card style) instead of debiting per transaction.
	AccountDeferredDebit AccountType = "deferred_debit"
	// AccountSavings behaves like a standard account; the distinction is
	// presentational (goal tracking happens on reserves).
	AccountSavings AccountType = "savings"
)

// validAccountTypes lists all accepted account types.
var validAccountTypes = map[AccountType]bool{
	AccountStandard:      true,
	AccountDeferredDebit: true,
	AccountSavings:       true,
}

// ValidAccountType returns true if t is a valid account type.
func ValidAccountType(t AccountType) bool {
	return validAccountTypes[t]
}

// Account represents a bank account owning transactions and reserves.
type Account struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	InitialBalance float64     `json:"initial_balance"`
	Currency       string      `json:"currency,omitempty"`
	Color          string      `json:"color,omitempty"`
	Icon           string      `json:"icon,omitempty"`
	// SettlementDay is the day of month (1-31) on which a deferred-debit
	// account settles its open window. Clamped to the month length when
	// the month is shorter. Ignored for other account types.
	SettlementDay int       `json:"settlement_day,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// IsDeferredDebit returns true for deferred-debit accounts.
func (a *Account) IsDeferredDebit() bool {
	return a.Type == AccountDeferredDebit
}

// Validate checks that an account has valid field values.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !ValidAccountType(a.Type) {
		return fmt.Errorf("invalid account type %q; must be standard, deferred_debit, or savings", a.Type)
	}
	if a.Type == AccountDeferredDebit && (a.SettlementDay < 1 || a.SettlementDay > 31) {
		return fmt.Errorf("deferred-debit account requires settlement_day between 1 and 31, got %d", a.SettlementDay)
	}
	return nil
}

// Reserve is a named, ring-fenced sub-balance inside an account. Its
// balance is derived from transactions carrying its ReserveID. A target
// amount and date turn it into a savings goal.
type Reserve struct {
	ID           string     `json:"id"`
	AccountID    string     `json:"account_id"`
	Name         string     `json:"name"`
	TargetAmount float64    `json:"target_amount,omitempty"`
	TargetDate   *time.Time `json:"target_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at,omitempty"`
}

// HasGoal returns true if the reserve tracks a savings goal.
func (r *Reserve) HasGoal() bool {
	return r.TargetAmount > 0
}

// Validate checks that a reserve has valid field values.
func (r *Reserve) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(r.AccountID) == "" {
		return fmt.Errorf("account_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.TargetAmount < 0 {
		return fmt.Errorf("target_amount must not be negative")
	}
	return nil
}

// ManualAsset is a non-transactional net-worth contributor (real estate,
// vehicles, collectibles).
type ManualAsset struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
