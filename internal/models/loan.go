package models

import (
	"fmt"
	"strings"
)

// Loan tracks an amortizing debt repaid through a linked recurring
// payment stream. Remaining balance is derived straight-line from the
// count of observed payments: no interest schedule is modelled, so the
// term acts as a divisor rather than an amortization table. Callers must
// not read interest-accurate figures out of it.
type Loan struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	InitialAmount float64 `json:"initial_amount"`
	TermInMonths  int     `json:"term_in_months"`
	// PaymentsMadeInitially counts payments made before the ledger began
	// tracking this loan.
	PaymentsMadeInitially int `json:"payments_made_initially,omitempty"`
	// LinkedRecurringID ties the loan to the recurring payment stream
	// whose real transactions count as payments.
	LinkedRecurringID string `json:"linked_recurring_id"`
}

// Validate checks that a loan has valid field values.
func (l *Loan) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if l.InitialAmount < 0 {
		return fmt.Errorf("initial_amount must not be negative")
	}
	if l.TermInMonths < 0 {
		return fmt.Errorf("term_in_months must not be negative")
	}
	if l.PaymentsMadeInitially < 0 {
		return fmt.Errorf("payments_made_initially must not be negative")
	}
	if strings.TrimSpace(l.LinkedRecurringID) == "" {
		return fmt.Errorf("linked_recurring_id is required")
	}
	return nil
}
