package engine

import (
	"time"

	"github.com/soldeapp/solde/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func realIncome(id, accountID string, amount float64, effective time.Time) models.Transaction {
	return models.Transaction{
		ID:            id,
		AccountID:     accountID,
		Type:          models.TxIncome,
		Status:        models.StatusReal,
		Amount:        amount,
		Date:          effective,
		EffectiveDate: effective,
	}
}

func realExpense(id, accountID string, amount float64, effective time.Time) models.Transaction {
	tx := realIncome(id, accountID, amount, effective)
	tx.Type = models.TxExpense
	return tx
}
