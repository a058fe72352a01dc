package models

import (
	"fmt"
	"strings"
	"time"
)

// RecurringFrequency describes the cadence of a recurring template.
type RecurringFrequency string

const (
	FreqMonthly RecurringFrequency = "monthly"
	FreqWeekly  RecurringFrequency = "weekly"
	FreqCustom  RecurringFrequency = "custom"
)

// validRecurringFrequencies lists all accepted frequencies.
var validRecurringFrequencies = map[RecurringFrequency]bool{
	FreqMonthly: true,
	FreqWeekly:  true,
	FreqCustom:  true,
}

// ValidRecurringFrequency returns true if f is a valid frequency.
func ValidRecurringFrequency(f RecurringFrequency) bool {
	return validRecurringFrequencies[f]
}

// RecurringTemplate generates future transaction instances on a cadence.
// Templates are rules, not transactions: expansion is a pure function and
// generated instances are ephemeral, recomputed on every call.
type RecurringTemplate struct {
	ID        string             `json:"id"`
	AccountID string             `json:"account_id"`
	Name      string             `json:"name"`
	Type      TransactionType    `json:"type"`
	Amount    float64            `json:"amount"` // stored positive, sign carried by Type
	Frequency RecurringFrequency `json:"frequency"`
	// DayOfMonth anchors monthly templates (1-31, clamped to short months).
	DayOfMonth int `json:"day_of_month,omitempty"`
	// Weekday anchors weekly templates.
	Weekday time.Weekday `json:"weekday,omitempty"`
	// IntervalDays is the custom-cadence interval, anchored at StartDate.
	IntervalDays int       `json:"interval_days,omitempty"`
	StartDate    time.Time `json:"start_date"`
	// EndDate, when set, is the last date an instance may fall on.
	EndDate *time.Time `json:"end_date,omitempty"`
	// RemainingOccurrences, when positive, caps how many instances may
	// still be generated after StartDate.
	RemainingOccurrences int    `json:"remaining_occurrences,omitempty"`
	CategoryID           string `json:"category_id,omitempty"`
}

// Validate checks that a template has valid field values.
func (rt *RecurringTemplate) Validate() error {
	if strings.TrimSpace(rt.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(rt.AccountID) == "" {
		return fmt.Errorf("account_id is required")
	}
	if !ValidTransactionType(rt.Type) {
		return fmt.Errorf("invalid transaction type %q; must be income or expense", rt.Type)
	}
	if rt.Amount < 0 {
		return fmt.Errorf("amount must be stored positive; the type carries the sign")
	}
	if !ValidRecurringFrequency(rt.Frequency) {
		return fmt.Errorf("invalid frequency %q; must be monthly, weekly, or custom", rt.Frequency)
	}
	if rt.Frequency == FreqMonthly && (rt.DayOfMonth < 1 || rt.DayOfMonth > 31) {
		return fmt.Errorf("monthly template requires day_of_month between 1 and 31, got %d", rt.DayOfMonth)
	}
	if rt.Frequency == FreqCustom && rt.IntervalDays < 1 {
		return fmt.Errorf("custom template requires interval_days >= 1, got %d", rt.IntervalDays)
	}
	if rt.StartDate.IsZero() {
		return fmt.Errorf("start_date is required")
	}
	if rt.EndDate != nil && rt.EndDate.Before(rt.StartDate) {
		return fmt.Errorf("end_date must not precede start_date")
	}
	return nil
}
