package models

import (
	"strings"
	"testing"
	"time"
)

func TestValidTransactionType(t *testing.T) {
	for _, tt := range []TransactionType{TxIncome, TxExpense} {
		if !ValidTransactionType(tt) {
			t.Errorf("ValidTransactionType(%q) = false, want true", tt)
		}
	}
	for _, tt := range []TransactionType{"", "INCOME", "transfer"} {
		if ValidTransactionType(tt) {
			t.Errorf("ValidTransactionType(%q) = true, want false", tt)
		}
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	income := Transaction{Type: TxIncome, Amount: 100}
	if got := income.SignedAmount(); got != 100 {
		t.Errorf("income SignedAmount = %v, want 100", got)
	}
	expense := Transaction{Type: TxExpense, Amount: 100}
	if got := expense.SignedAmount(); got != -100 {
		t.Errorf("expense SignedAmount = %v, want -100", got)
	}
}

func TestTransaction_IsReal(t *testing.T) {
	real := Transaction{Status: StatusReal}
	if !real.IsReal() {
		t.Error("real non-simulated transaction should be real")
	}
	potential := Transaction{Status: StatusPotential}
	if potential.IsReal() {
		t.Error("potential transaction must never count as real")
	}
	sim := Transaction{Status: StatusReal, IsSimulation: true}
	if sim.IsReal() {
		t.Error("simulated transaction must never count as real")
	}
}

func TestTransaction_Validate(t *testing.T) {
	day := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	valid := Transaction{
		ID:            "tx1",
		AccountID:     "acc1",
		Type:          TxExpense,
		Status:        StatusReal,
		Amount:        42,
		Date:          day,
		EffectiveDate: day,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid transaction rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
		want   string
	}{
		{"missing account", func(tx *Transaction) { tx.AccountID = "" }, "account_id"},
		{"bad type", func(tx *Transaction) { tx.Type = "transfer" }, "type"},
		{"bad status", func(tx *Transaction) { tx.Status = "done" }, "status"},
		{"negative amount", func(tx *Transaction) { tx.Amount = -5 }, "positive"},
		{"zero date", func(tx *Transaction) { tx.Date = time.Time{} }, "date"},
		{"zero effective date", func(tx *Transaction) { tx.EffectiveDate = time.Time{} }, "effective_date"},
	}
	for _, tc := range cases {
		tx := valid
		tc.mutate(&tx)
		err := tx.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestNewTransactionID(t *testing.T) {
	id := NewTransactionID()
	if !strings.HasPrefix(id, "tx_") {
		t.Errorf("NewTransactionID() = %q, want tx_ prefix", id)
	}
	if id == NewTransactionID() {
		t.Error("consecutive IDs should differ")
	}
}
