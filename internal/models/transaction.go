package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType categorizes the direction of a transaction.
// Amounts are stored positive; the type carries the sign.
type TransactionType string

const (
	TxIncome  TransactionType = "income"
	TxExpense TransactionType = "expense"
)

// validTransactionTypes lists all accepted transaction types.
var validTransactionTypes = map[TransactionType]bool{
	TxIncome:  true,
	TxExpense: true,
}

// ValidTransactionType returns true if t is a valid transaction type.
func ValidTransactionType(t TransactionType) bool {
	return validTransactionTypes[t]
}

// TransactionStatus distinguishes settled history from scheduled events.
type TransactionStatus string

const (
	// StatusReal marks a settled transaction: immutable historical fact.
	StatusReal TransactionStatus = "real"
	// StatusPotential marks a scheduled-but-not-settled transaction.
	// Potential transactions never contribute to a realized balance.
	StatusPotential TransactionStatus = "potential"
)

// ValidTransactionStatus returns true if s is a valid transaction status.
func ValidTransactionStatus(s TransactionStatus) bool {
	return s == StatusReal || s == StatusPotential
}

// Transaction represents a single ledger entry.
//
// Date is the nominal/scheduled date used for upcoming-event projections.
// EffectiveDate is the accounting date: it alone decides which period the
// transaction falls into for balance purposes. The two differ for
// deferred-debit cards, where a purchase settles on a later statement date.
type Transaction struct {
	ID            string            `json:"id"`
	AccountID     string            `json:"account_id"`
	ReserveID     string            `json:"reserve_id,omitempty"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        float64           `json:"amount"` // stored positive, sign carried by Type
	Date          time.Time         `json:"date"`
	EffectiveDate time.Time         `json:"effective_date"`
	IsSimulation  bool              `json:"is_simulation,omitempty"`
	CategoryID    string            `json:"category_id,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
	RecurringID   string            `json:"recurring_id,omitempty"`
	Description   string            `json:"description,omitempty"`
	CreatedAt     time.Time         `json:"created_at,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at,omitempty"`
}

// SignedAmount returns the amount with its type-directed sign applied:
// positive for income, negative for expense.
func (t *Transaction) SignedAmount() float64 {
	if t.Type == TxExpense {
		return -t.Amount
	}
	return t.Amount
}

// IsReal returns true for settled, non-simulated transactions — the only
// ones that contribute to realized balances and actual aggregates.
func (t *Transaction) IsReal() bool {
	return t.Status == StatusReal && !t.IsSimulation
}

// HasTag returns true if the transaction carries the given tag.
func (t *Transaction) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// NewTransactionID returns a unique transaction ID with "tx_" prefix.
func NewTransactionID() string {
	return "tx_" + uuid.NewString()[:8]
}

// Validate checks that a transaction has valid field values.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.AccountID) == "" {
		return fmt.Errorf("account_id is required")
	}
	if !ValidTransactionType(t.Type) {
		return fmt.Errorf("invalid transaction type %q; must be income or expense", t.Type)
	}
	if !ValidTransactionStatus(t.Status) {
		return fmt.Errorf("invalid transaction status %q; must be real or potential", t.Status)
	}
	if t.Amount < 0 {
		return fmt.Errorf("amount must be stored positive; the type carries the sign")
	}
	if math.IsInf(t.Amount, 0) || math.IsNaN(t.Amount) {
		return fmt.Errorf("amount must be finite")
	}
	if t.Amount >= 1e15 {
		return fmt.Errorf("amount exceeds maximum (1e15)")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if t.EffectiveDate.IsZero() {
		return fmt.Errorf("effective_date is required")
	}
	return nil
}
