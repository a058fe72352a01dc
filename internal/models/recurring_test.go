package models

import (
	"testing"
	"time"
)

func validTemplate() RecurringTemplate {
	return RecurringTemplate{
		ID:         "rec1",
		AccountID:  "acc1",
		Name:       "Rent",
		Type:       TxExpense,
		Amount:     800,
		Frequency:  FreqMonthly,
		DayOfMonth: 1,
		StartDate:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRecurringTemplate_Validate(t *testing.T) {
	tmpl := validTemplate()
	if err := tmpl.Validate(); err != nil {
		t.Errorf("valid template rejected: %v", err)
	}

	badDay := validTemplate()
	badDay.DayOfMonth = 0
	if err := badDay.Validate(); err == nil {
		t.Error("monthly template without day_of_month accepted")
	}

	badCustom := validTemplate()
	badCustom.Frequency = FreqCustom
	badCustom.IntervalDays = 0
	if err := badCustom.Validate(); err == nil {
		t.Error("custom template without interval_days accepted")
	}

	badEnd := validTemplate()
	end := badEnd.StartDate.AddDate(0, 0, -1)
	badEnd.EndDate = &end
	if err := badEnd.Validate(); err == nil {
		t.Error("end_date before start_date accepted")
	}

	badFreq := validTemplate()
	badFreq.Frequency = "yearly"
	if err := badFreq.Validate(); err == nil {
		t.Error("unknown frequency accepted")
	}
}

func TestAccount_Validate(t *testing.T) {
	acc := Account{ID: "acc1", Name: "Checking", Type: AccountStandard}
	if err := acc.Validate(); err != nil {
		t.Errorf("valid account rejected: %v", err)
	}

	card := Account{ID: "card1", Name: "Card", Type: AccountDeferredDebit}
	if err := card.Validate(); err == nil {
		t.Error("deferred-debit account without settlement_day accepted")
	}
	card.SettlementDay = 15
	if err := card.Validate(); err != nil {
		t.Errorf("valid deferred-debit account rejected: %v", err)
	}
}

func TestCategoryName(t *testing.T) {
	categories := []Category{{ID: "cat1", Name: "Food"}}
	if got := CategoryName(categories, "cat1"); got != "Food" {
		t.Errorf("CategoryName = %q, want Food", got)
	}
	if got := CategoryName(categories, "missing"); got != CategoryUnknown {
		t.Errorf("CategoryName(dangling) = %q, want %q", got, CategoryUnknown)
	}
	if got := CategoryName(categories, ""); got != CategoryUnknown {
		t.Errorf("CategoryName(empty) = %q, want %q", got, CategoryUnknown)
	}
}
