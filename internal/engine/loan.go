package engine

import "github.com/soldeapp/solde/internal/models"

// Loan amortization uses a straight-line-by-payment-count model: the
// remaining balance is the initial amount scaled by the fraction of term
// payments still outstanding. The term acts as a divisor, not an interest
// schedule — figures are not interest-accurate and callers must not treat
// them as such. Should an interest-rate field ever be introduced, that is
// a model revision, not a reinterpretation of these functions.

// loanPaymentsMade counts the payments observed for a loan: real,
// non-simulated transactions on its linked recurring stream plus the
// payments made before the ledger began tracking.
func loanPaymentsMade(l *Ledger, loan *models.Loan) int {
	made := loan.PaymentsMadeInitially
	for _, tx := range l.recurringTransactions(loan.LinkedRecurringID) {
		if tx.IsReal() {
			made++
		}
	}
	return made
}

// LoanRemainingBalance derives the remaining principal of a loan from its
// linked payment stream: initialAmount × max(0, 1 − paymentsMade/term).
// Monotonically non-increasing as payments accrue, floored at zero. A
// zero term means nothing is outstanding.
func LoanRemainingBalance(l *Ledger, loan *models.Loan) float64 {
	if loan.TermInMonths <= 0 || loan.InitialAmount <= 0 {
		return 0
	}
	made := loanPaymentsMade(l, loan)
	fraction := 1 - float64(made)/float64(loan.TermInMonths)
	if fraction < 0 {
		fraction = 0
	}
	return loan.InitialAmount * fraction
}

// LoanProgress returns the repayment progress as a percentage, clamped
// to [0, 100]. A zero term yields zero rather than a division by zero.
func LoanProgress(l *Ledger, loan *models.Loan) float64 {
	if loan.TermInMonths <= 0 {
		return 0
	}
	pct := float64(loanPaymentsMade(l, loan)) / float64(loan.TermInMonths) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
