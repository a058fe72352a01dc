package engine

import (
	"testing"
	"time"

	"github.com/soldeapp/solde/internal/models"
)

func deferredAccount(settlementDay int) models.Account {
	return models.Account{
		ID:            "card1",
		Name:          "Card",
		Type:          models.AccountDeferredDebit,
		SettlementDay: settlementDay,
	}
}

func TestDeferredDebitSpending_Scenario(t *testing.T) {
	// Settlement day 15; expense of 50 effective on the 20th; now the 25th.
	acc := deferredAccount(15)
	txs := []models.Transaction{
		realExpense("tx1", "card1", 50, date(2025, time.March, 20)),
	}
	l := NewLedger([]models.Account{acc}, nil, txs)

	spending, err := DeferredDebitSpending(l, "card1", date(2025, time.March, 25))
	if err != nil {
		t.Fatalf("DeferredDebitSpending: %v", err)
	}
	if spending.Total != 50 {
		t.Errorf("Total = %v, want 50", spending.Total)
	}
	want := date(2025, time.April, 15)
	if !spending.NextDebitDate.Equal(want) {
		t.Errorf("NextDebitDate = %s, want %s",
			spending.NextDebitDate.Format("2006-01-02"), want.Format("2006-01-02"))
	}
	if !spending.WindowStart.Equal(date(2025, time.March, 15)) {
		t.Errorf("WindowStart = %s, want 2025-03-15", spending.WindowStart.Format("2006-01-02"))
	}
}

func TestDeferredDebitSpending_OnSettlementDay(t *testing.T) {
	// The settlement day starts a new window: expenses from before today
	// belong to the closed window, today's expenses to the new one.
	acc := deferredAccount(15)
	txs := []models.Transaction{
		realExpense("tx1", "card1", 80, date(2025, time.March, 10)), // old window
		realExpense("tx2", "card1", 30, date(2025, time.March, 15)), // new window
	}
	l := NewLedger([]models.Account{acc}, nil, txs)

	spending, err := DeferredDebitSpending(l, "card1", date(2025, time.March, 15))
	if err != nil {
		t.Fatalf("DeferredDebitSpending: %v", err)
	}
	if spending.Total != 30 {
		t.Errorf("Total = %v, want 30 (settlement day opens a new window)", spending.Total)
	}
	if !spending.WindowStart.Equal(date(2025, time.March, 15)) {
		t.Errorf("WindowStart = %s, want 2025-03-15", spending.WindowStart.Format("2006-01-02"))
	}
	if !spending.NextDebitDate.Equal(date(2025, time.April, 15)) {
		t.Errorf("NextDebitDate = %s, want 2025-04-15", spending.NextDebitDate.Format("2006-01-02"))
	}
}

func TestDeferredDebitSpending_ShortMonthClamp(t *testing.T) {
	// Day-31 settlement clamps to the end of February.
	acc := deferredAccount(31)
	l := NewLedger([]models.Account{acc}, nil, nil)

	spending, err := DeferredDebitSpending(l, "card1", date(2025, time.February, 10))
	if err != nil {
		t.Fatalf("DeferredDebitSpending: %v", err)
	}
	if !spending.WindowStart.Equal(date(2025, time.January, 31)) {
		t.Errorf("WindowStart = %s, want 2025-01-31", spending.WindowStart.Format("2006-01-02"))
	}
	if !spending.NextDebitDate.Equal(date(2025, time.February, 28)) {
		t.Errorf("NextDebitDate = %s, want 2025-02-28", spending.NextDebitDate.Format("2006-01-02"))
	}
}

func TestDeferredDebitSpending_IgnoresNonWindowTransactions(t *testing.T) {
	acc := deferredAccount(15)

	income := realIncome("tx1", "card1", 500, date(2025, time.March, 20))
	sim := realExpense("tx2", "card1", 40, date(2025, time.March, 21))
	sim.IsSimulation = true
	potential := realExpense("tx3", "card1", 60, date(2025, time.March, 22))
	potential.Status = models.StatusPotential
	before := realExpense("tx4", "card1", 25, date(2025, time.March, 10))
	counted := realExpense("tx5", "card1", 15, date(2025, time.March, 18))

	l := NewLedger([]models.Account{acc}, nil,
		[]models.Transaction{income, sim, potential, before, counted})

	spending, err := DeferredDebitSpending(l, "card1", date(2025, time.March, 25))
	if err != nil {
		t.Fatalf("DeferredDebitSpending: %v", err)
	}
	if spending.Total != 15 {
		t.Errorf("Total = %v, want 15", spending.Total)
	}
}

func TestDeferredDebitSpending_WrongAccountType(t *testing.T) {
	acc := models.Account{ID: "acc1", Name: "Checking", Type: models.AccountStandard}
	l := NewLedger([]models.Account{acc}, nil, nil)

	if _, err := DeferredDebitSpending(l, "acc1", date(2025, time.March, 1)); err == nil {
		t.Error("expected error for non-deferred-debit account")
	}
	if _, err := DeferredDebitSpending(l, "missing", date(2025, time.March, 1)); err == nil {
		t.Error("expected error for unknown account")
	}
}
