package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/soldeapp/solde/internal/models"
)

func loanPayment(id string, effective time.Time) models.Transaction {
	tx := realExpense(id, "acc1", 1000, effective)
	tx.RecurringID = "rec_loan"
	return tx
}

func testLoan() models.Loan {
	return models.Loan{
		ID:                "loan1",
		Name:              "Car loan",
		InitialAmount:     12000,
		TermInMonths:      12,
		LinkedRecurringID: "rec_loan",
	}
}

func TestLoanRemainingBalance_Scenario(t *testing.T) {
	// 12000 over 12 months, 3 linked real payments → 9000 remaining, 25%.
	loan := testLoan()
	txs := []models.Transaction{
		loanPayment("tx1", date(2025, time.January, 5)),
		loanPayment("tx2", date(2025, time.February, 5)),
		loanPayment("tx3", date(2025, time.March, 5)),
	}
	l := NewLedger(nil, nil, txs)

	if got := LoanRemainingBalance(l, &loan); got != 9000 {
		t.Errorf("LoanRemainingBalance = %v, want 9000", got)
	}
	if got := LoanProgress(l, &loan); got != 25 {
		t.Errorf("LoanProgress = %v, want 25", got)
	}
}

func TestLoanRemainingBalance_Monotonicity(t *testing.T) {
	loan := testLoan()

	prev := loan.InitialAmount
	var txs []models.Transaction
	for i := 0; i < 15; i++ {
		txs = append(txs, loanPayment(fmt.Sprintf("tx%02d", i), date(2025, time.January, 1).AddDate(0, i, 0)))
		got := LoanRemainingBalance(NewLedger(nil, nil, txs), &loan)
		if got > prev {
			t.Fatalf("remaining balance increased: %v after %d payments, was %v", got, i+1, prev)
		}
		prev = got
	}
	// Payments exceed the term: floored at zero, progress clamped at 100.
	l := NewLedger(nil, nil, txs)
	if got := LoanRemainingBalance(l, &loan); got != 0 {
		t.Errorf("LoanRemainingBalance = %v, want 0 once payments >= term", got)
	}
	if got := LoanProgress(l, &loan); got != 100 {
		t.Errorf("LoanProgress = %v, want 100 (clamped)", got)
	}
}

func TestLoanRemainingBalance_InitialPayments(t *testing.T) {
	loan := testLoan()
	loan.PaymentsMadeInitially = 6
	l := NewLedger(nil, nil, []models.Transaction{
		loanPayment("tx1", date(2025, time.January, 5)),
	})

	// 6 prior + 1 observed = 7 of 12 → 12000 × 5/12 = 5000.
	if got := LoanRemainingBalance(l, &loan); got != 5000 {
		t.Errorf("LoanRemainingBalance = %v, want 5000", got)
	}
}

func TestLoanRemainingBalance_IgnoresNonRealPayments(t *testing.T) {
	loan := testLoan()

	sim := loanPayment("tx1", date(2025, time.January, 5))
	sim.IsSimulation = true
	potential := loanPayment("tx2", date(2025, time.February, 5))
	potential.Status = models.StatusPotential
	other := realExpense("tx3", "acc1", 1000, date(2025, time.March, 5)) // no recurring link

	l := NewLedger(nil, nil, []models.Transaction{sim, potential, other})
	if got := LoanRemainingBalance(l, &loan); got != 12000 {
		t.Errorf("LoanRemainingBalance = %v, want 12000 (no real linked payments)", got)
	}
}

func TestLoan_ZeroGuards(t *testing.T) {
	l := NewLedger(nil, nil, nil)

	zeroTerm := models.Loan{ID: "l1", Name: "x", InitialAmount: 5000, LinkedRecurringID: "r"}
	if got := LoanRemainingBalance(l, &zeroTerm); got != 0 {
		t.Errorf("LoanRemainingBalance(term=0) = %v, want 0", got)
	}
	if got := LoanProgress(l, &zeroTerm); got != 0 {
		t.Errorf("LoanProgress(term=0) = %v, want 0", got)
	}

	zeroAmount := models.Loan{ID: "l2", Name: "y", TermInMonths: 12, LinkedRecurringID: "r"}
	if got := LoanRemainingBalance(l, &zeroAmount); got != 0 {
		t.Errorf("LoanRemainingBalance(amount=0) = %v, want 0", got)
	}
}
